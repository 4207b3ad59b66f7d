package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"mvp-challenge/internal/app"
	"mvp-challenge/internal/config"
	"mvp-challenge/internal/domain"
	"mvp-challenge/internal/infra/memory"
	pgloader "mvp-challenge/internal/infra/postgres"
	redisinfra "mvp-challenge/internal/infra/redis"
	transport "mvp-challenge/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the challenge server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	service, cleanup, err := buildGameService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting mvp challenge on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildGameService wires the record store and award repository from config:
// Redis and Postgres when configured, in-memory with the embedded dataset
// otherwise. The returned cleanup closes any opened connections.
func buildGameService(ctx context.Context, cfg config.Config) (*app.GameService, func(), error) {
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		var err error
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
	}

	var loader memory.AwardLoader = memory.NewStaticAwardLoader(domain.DefaultAwardTable())
	if pool != nil {
		loader = pgloader.NewAwardLoader(pool)
	}

	datasetTTL := config.TTLDuration(cfg.Game.DatasetTTL, time.Hour)
	var awards app.AwardRepository
	if redisClient != nil {
		awards = redisinfra.NewAwardRepository(redisClient, loader, datasetTTL)
	} else {
		awards = memory.NewAwardRepository(loader, datasetTTL)
	}

	var records app.RecordStore
	if redisClient != nil {
		records = redisinfra.NewRecordStore(redisClient)
	} else {
		records = memory.NewRecordStore()
	}

	feedbackDelay := config.TTLDuration(cfg.Game.FeedbackDelay, 1500*time.Millisecond)
	service := app.NewGameService(records, awards, feedbackDelay)

	cleanup := func() {
		if pool != nil {
			pool.Close()
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}
	return service, cleanup, nil
}

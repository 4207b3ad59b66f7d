package integration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"mvp-challenge/internal/app"
	"mvp-challenge/internal/domain"
	pgloader "mvp-challenge/internal/infra/postgres"
	pgmigrations "mvp-challenge/internal/infra/postgres/migrations"
	infraredis "mvp-challenge/internal/infra/redis"
)

func TestDailyChallengeEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	applyMigrations(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewAwardLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	awards := infraredis.NewAwardRepository(redisClient, loader, 5*time.Minute)
	records := infraredis.NewRecordStore(redisClient)
	service := app.NewGameService(records, awards, 5*time.Millisecond)

	// The migration seeds the full 1960-2024 table.
	table, err := awards.GetTable(ctx)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if len(table) != 65 {
		t.Fatalf("expected 65 seeded years, got %d", len(table))
	}
	if table[1966] != "Bart Starr" {
		t.Fatalf("unexpected 1966 winner %q", table[1966])
	}

	snap, err := service.Start(ctx, "u1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.Phase != domain.PhaseAwaitingAnswer || snap.QuestionCount != 10 {
		t.Fatalf("expected a fresh 10-question game, got %+v", snap)
	}

	// Sudden death: one wrong answer finishes and persists the day.
	final, err := service.Submit(ctx, "u1", "xqzvw")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if final.Phase != domain.PhaseCompleted || final.Score != 0 {
		t.Fatalf("expected immediate completion, got %+v", final)
	}

	lastPlayed, err := redisClient.Get(ctx, "mvp:record:nfl_mvp_last_played").Result()
	if err != nil {
		t.Fatalf("read last played: %v", err)
	}
	if lastPlayed != app.DateKey(time.Now()) {
		t.Fatalf("expected today's date key, got %q", lastPlayed)
	}

	// A fresh service against the same store refuses a replay.
	service2 := app.NewGameService(records, awards, 5*time.Millisecond)
	again, err := service2.Start(ctx, "u1")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if again.Phase != domain.PhaseCompleted || again.Score != 0 || len(again.History) != 1 {
		t.Fatalf("expected rehydrated completed view, got %+v", again)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "mvp", "POSTGRES_PASSWORD": "mvppass", "POSTGRES_DB": "mvpdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://mvp:mvppass@%s:%s/mvpdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func applyMigrations(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}

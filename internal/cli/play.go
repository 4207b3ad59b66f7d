package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mvp-challenge/internal/app"
	"mvp-challenge/internal/config"
	"mvp-challenge/internal/domain"
)

// NewPlayCmd builds the CLI subcommand to play today's challenge in the
// terminal. It is a thin view over the game session: it renders snapshots
// and dispatches start/submit intents.
func NewPlayCmd(configPath *string) *cobra.Command {
	var player string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play today's challenge in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, player)
		},
	}
	cmd.Flags().StringVar(&player, "player", "local", "player id for stored results")
	return cmd
}

func runPlay(ctx context.Context, configPath, player string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		// Playable without a config file: in-memory stores, embedded dataset.
		log.Printf("config not loaded (%v), playing with in-memory storage", err)
		cfg = config.Config{}
	}

	service, cleanup, err := buildGameService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	snap, err := service.Start(ctx, player)
	if err != nil {
		return err
	}
	if snap.Phase == domain.PhaseCompleted {
		renderCompleted(ctx, service, player, snap)
		return nil
	}

	fmt.Println("NFL MVP Challenge")
	fmt.Println()

	updates, cancel, err := service.Subscribe(ctx, player)
	if err != nil {
		return err
	}
	defer cancel()

	scanner := bufio.NewScanner(os.Stdin)
	for snap := range updates {
		switch snap.Phase {
		case domain.PhaseAwaitingAnswer:
			fmt.Printf("Question %d/%d — score %d\n", snap.QuestionIndex+1, snap.QuestionCount, snap.Score)
			fmt.Printf("%d: Who was the NFL MVP?\n", snap.Year)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				if _, err := service.Submit(ctx, player, scanner.Text()); err == nil {
					break
				}
				// empty input is a no-op; ask again
			}
		case domain.PhaseShowingFeedback:
			fmt.Println(snap.Feedback)
			fmt.Println()
		case domain.PhaseCompleted:
			if snap.Feedback != "" {
				fmt.Println(snap.Feedback)
				fmt.Println()
			}
			renderCompleted(ctx, service, player, snap)
			return nil
		}
	}
	return nil
}

func renderCompleted(ctx context.Context, service *app.GameService, player string, snap domain.Snapshot) {
	fmt.Println("Today's game complete!")
	fmt.Printf("Score: %d/%d\n", snap.Score, snap.QuestionCount)
	if snap.Score == snap.QuestionCount {
		fmt.Println("Perfect score!")
	}
	if snap.BestScore > 0 {
		fmt.Printf("Best score: %d/%d\n", snap.BestScore, snap.QuestionCount)
	}
	if len(snap.History) > 0 {
		fmt.Println()
		for i, rec := range snap.History {
			mark := "✗"
			if rec.Correct {
				mark = "✓"
			}
			fmt.Printf("%2d. %d  %s %s\n", i+1, rec.Year, rec.Answer, mark)
		}
	}
	if text, err := service.Share(ctx, player); err == nil {
		fmt.Println()
		fmt.Println(text)
		fmt.Println()
		fmt.Println("Copy the block above to share your result.")
	}
	fmt.Printf("Next game in: %s\n", snap.NextGameIn)
}

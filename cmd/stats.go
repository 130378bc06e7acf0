package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dipin-Adhikari/akshara/internal/curriculum"
	"github.com/Dipin-Adhikari/akshara/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <user_id>",
	Short: "Show a learner's module statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd, args[0])
	},
}

func runStats(cmd *cobra.Command, userID string) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := curriculum.NewService(st.AttemptRepo(), st.LearnerRepo(), logger)

	fmt.Printf("Progress for %s\n\n", userID)
	for _, desc := range curriculum.Modules() {
		status, err := svc.ModuleStatus(ctx, desc.ModuleID, userID)
		if err != nil {
			return fmt.Errorf("module %s: %w", desc.ModuleID, err)
		}
		fmt.Printf("%s %s (level %d)\n", status.Emoji, status.Name, statsLevel(ctx, svc, userID, desc.ModuleID))
		fmt.Printf("  attempts %d, correct %d, accuracy %.1f%%\n", status.Attempts, status.Correct, status.Accuracy)
	}

	letters, err := st.AttemptRepo().WeakLetters(ctx, userID, 3)
	if err != nil {
		return fmt.Errorf("weak letters: %w", err)
	}
	if len(letters) > 0 {
		fmt.Printf("\nLetters to practice: %v\n", letters)
	}
	return nil
}

func statsLevel(ctx context.Context, svc *curriculum.Service, userID, moduleID string) int {
	level, err := svc.Level(ctx, userID, moduleID)
	if err != nil {
		return 1
	}
	return level
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tutoring statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		tut, err := repo.TutoringStats(ctx)
		if err != nil {
			return fmt.Errorf("tutoring stats: %w", err)
		}
		quiz, err := repo.QuizStats(ctx)
		if err != nil {
			return fmt.Errorf("quiz stats: %w", err)
		}

		fmt.Println("Tutoring")
		fmt.Printf("  Sessions started:    %d\n", tut.Sessions)
		fmt.Printf("  Messages exchanged:  %d\n", tut.Messages)
		fmt.Printf("  Sections completed:  %d\n", tut.SectionsCompleted)
		fmt.Printf("  Documents finished:  %d\n", tut.DocumentsComplete)

		fmt.Println("\nQuizzes")
		fmt.Printf("  Answers:   %d\n", quiz.Answers)
		fmt.Printf("  Correct:   %d\n", quiz.Correct)
		if quiz.Answers > 0 {
			fmt.Printf("  Accuracy:  %.0f%%\n", quiz.Accuracy*100)
		}

		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/app"
	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	eventRepo := st.EventRepo()

	lib := library.New(st.SnapshotRepo(), eventRepo)
	if err := lib.Load(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not restore document library:", err)
	}

	sessions, err := tutor.NewStore(tutor.StoreTypeMemory)
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	defer sessions.Close()

	var completer tutor.Completer
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutoring replies will fall back to canned text.")
	} else {
		completer = tutor.NewProviderCompleter(provider)
	}

	opts := app.Options{
		EventRepo: eventRepo,
		Library:   lib,
		Engine:    tutor.NewEngine(sessions, completer, eventRepo),
	}

	return app.Run(opts)
}

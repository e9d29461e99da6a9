package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/bilan/internal/app"
	"github.com/abhisek/bilan/internal/interview"
	"github.com/abhisek/bilan/internal/llm"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/store"
	"github.com/abhisek/bilan/internal/synthesis"
	"github.com/spf13/cobra"
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

	ctrl := session.NewController(resolveUserID(cmd),
		st.SessionRepo(), st.AssessmentRepo(), session.DefaultConfig())

	// The question bank keeps the interview going without a provider,
	// and backstops generation failures with one.
	bank := interview.NewBank()
	var generator interview.Generator = bank
	var synthProvider llm.Provider

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "L'entretien utilisera les questions pre-redigees.")
	} else {
		generator = interview.WithFallback(
			interview.New(provider, interview.DefaultConfig()), bank)
		synthProvider = provider
	}

	startNew, _ := cmd.Flags().GetBool("new")
	return app.Run(app.Options{
		Controller:  ctrl,
		Generator:   generator,
		Synthesis:   synthesis.NewService(synthProvider, synthesis.DefaultConfig()),
		Assessments: st.AssessmentRepo(),
		StartNew:    startNew,
	})
}

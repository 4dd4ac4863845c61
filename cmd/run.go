package cmd

import (
	"fmt"
	"os"

	"github.com/avyukth/medsim/internal/app"
	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/store"
	"github.com/spf13/cobra"
)

const noCredentialHint = "No LLM credential found. Set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY."

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
	defer func() { _ = st.Close() }()

	opts := app.Options{
		EventRepo: st.EventRepo(),
	}

	cfg, found := llm.DiscoverConfig()
	if !found {
		fmt.Fprintln(os.Stderr, noCredentialHint)
		opts.ProviderWarning = noCredentialHint
	} else {
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			opts.ProviderWarning = fmt.Sprintf("Provider setup failed: %v", err)
		} else {
			opts.Provider = provider
		}
	}

	return app.Run(opts)
}

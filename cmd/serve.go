package cmd

import (
	"fmt"

	"github.com/avyukth/medsim/internal/api"
	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Serve encounter sessions over HTTP instead of the terminal UI. Reads medsim.yaml and MEDSIM_SERVER_* env vars.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := api.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		llmCfg, found := llm.DiscoverConfig()
		if !found {
			return fmt.Errorf("no LLM credential found: set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY")
		}
		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		server := api.NewServer(api.Options{
			Config:    cfg,
			Provider:  provider,
			EventRepo: st.EventRepo(),
		})

		fmt.Printf("Listening on %s\n", cfg.Addr)
		return server.Run()
	},
}

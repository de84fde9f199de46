package commands

import (
	"os"
	"os/signal"
	"syscall"

	"explorer-state/internal/httpapi"
	"explorer-state/internal/mcp"

	"github.com/spf13/cobra"
)

var httpAddr string

var serveCmd = &cobra.Command{
	Use:         "serve",
	Short:       "Run the MCP server on stdio",
	Annotations: map[string]string{"server": "mcp"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return mcp.NewServer(cfg, Version).Start(ctx)
	},
}

var httpCmd = &cobra.Command{
	Use:         "http",
	Short:       "Serve the link codec and metrics over HTTP",
	Annotations: map[string]string{"server": "http"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := httpAddr
		if addr == "" {
			addr = cfg.HTTPAddr
		}
		return httpapi.New(cfg.BaseURL).ListenAndServe(ctx, addr)
	},
}

func init() {
	httpCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address (default EXPLORER_HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd, httpCmd)
}

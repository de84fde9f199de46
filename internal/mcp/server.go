package mcp

import (
	"context"

	"explorer-state/internal/config"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server exposes the explorer link codec to MCP clients over stdio.
type Server struct {
	cfg     *config.AppConfig
	version string
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig, version string) *Server {
	return &Server{cfg: cfg, version: version}
}

// Start serves MCP requests on stdin/stdout until the client disconnects or
// ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	server := sdk.NewServer(&sdk.Implementation{
		Name:    "explorer-state",
		Version: s.version,
	}, nil)
	s.registerTools(server)

	log.Info().Str("baseURL", s.cfg.BaseURL).Msg("MCP server listening on stdio")
	return server.Run(ctx, &sdk.StdioTransport{})
}

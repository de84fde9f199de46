package mcp

import (
	"context"
	"fmt"

	"explorer-state/internal/explorer"
	"explorer-state/internal/navigation"
	"explorer-state/internal/statefile"
	"explorer-state/internal/visuals"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

type DecodeInput struct {
	URL string `json:"url" jsonschema:"Explorer link or bare query string"`
}

type DecodeOutput struct {
	State    statefile.Document `json:"state"`
	Findings []explorer.Finding `json:"findings,omitempty"`
	Flow     string             `json:"flow" jsonschema:"Mermaid flowchart of the query"`
}

type EncodeInput struct {
	State   statefile.Document `json:"state"`
	BaseURL string             `json:"base_url,omitempty" jsonschema:"Explorer page to build the link on"`
}

type EncodeOutput struct {
	URL string `json:"url"`
}

type PreviewInput struct {
	URL    string      `json:"url" jsonschema:"Explorer link or bare query string"`
	Labels []string    `json:"labels" jsonschema:"x-axis labels"`
	Values [][]float64 `json:"values" jsonschema:"points per series"`
}

type PreviewOutput struct {
	Chart string `json:"chart"`
}

func (s *Server) handleDecode(ctx context.Context, _ *sdk.CallToolRequest, in DecodeInput) (*sdk.CallToolResult, DecodeOutput, error) {
	params, err := navigation.ParamMapFromLink(in.URL)
	if err != nil {
		return nil, DecodeOutput{}, err
	}

	state := explorer.ToInitialState(params)
	findings := explorer.Diagnose(params)
	log.Debug().Str("url", in.URL).Int("findings", len(findings)).Msg("Decoded explorer link")

	return nil, DecodeOutput{
		State:    statefile.FromRequest(state.Request()),
		Findings: findings,
		Flow:     visuals.GenerateQueryFlow(state),
	}, nil
}

func (s *Server) handleEncode(ctx context.Context, _ *sdk.CallToolRequest, in EncodeInput) (*sdk.CallToolResult, EncodeOutput, error) {
	base := in.BaseURL
	if base == "" {
		base = s.cfg.BaseURL
	}

	link, err := explorer.BuildLink(base, in.State.Request())
	if err != nil {
		return nil, EncodeOutput{}, fmt.Errorf("failed to build link: %w", err)
	}
	log.Debug().Str("url", link).Msg("Encoded explorer link")

	return nil, EncodeOutput{URL: link}, nil
}

func (s *Server) handlePreview(ctx context.Context, _ *sdk.CallToolRequest, in PreviewInput) (*sdk.CallToolResult, PreviewOutput, error) {
	params, err := navigation.ParamMapFromLink(in.URL)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	r := explorer.ToInitialState(params).Request()
	chart := visuals.GenerateSeriesChart(r, in.Labels, in.Values)
	if chart == "" {
		return nil, PreviewOutput{}, fmt.Errorf("nothing to chart: link has %d series and %d labels", len(r.Series), len(in.Labels))
	}

	return nil, PreviewOutput{Chart: chart}, nil
}

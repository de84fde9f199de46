package mcp

import (
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools(server *sdk.Server) {
	sdk.AddTool(server, &sdk.Tool{
		Name: "decode_explorer_url",
		Description: "Decode an Explorer link (or its bare query string) into the visualization state it opens: " +
			"scope, series, interval, group-by, order-by and time range.\n\n" +
			"Malformed parameters never fail the decode; they reset that facet to its default. " +
			"The 'findings' list names every parameter that was dropped or downgraded, so report them to the user " +
			"instead of assuming the link shows what its author intended.",
	}, s.handleDecode)

	sdk.AddTool(server, &sdk.Tool{
		Name: "encode_explorer_url",
		Description: "Build a shareable Explorer link from a visualization state.\n\n" +
			"Series use a visualization type (line, area, scatter, column), an aggregation (AVG, SUM, MIN, MAX, COUNT, P99, ...) and a bare attribute key. " +
			"An order-by is only honored when interval is NONE. " +
			"If base_url is omitted the configured Explorer URL is used.",
	}, s.handleEncode)

	sdk.AddTool(server, &sdk.Tool{
		Name: "preview_explorer_chart",
		Description: "Render a Mermaid preview of the chart an Explorer link describes, using caller-supplied data points. " +
			"values[i] holds the points of the i-th series, aligned with labels.",
	}, s.handlePreview)
}

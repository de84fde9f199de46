package visuals

import (
	"strings"
	"testing"

	"explorer-state/internal/explorer"
	"explorer-state/internal/navigation"
)

func TestGenerateQueryFlow(t *testing.T) {
	state := explorer.ToInitialState(navigation.ParseParamMap(
		"scope=spans&series=line:AVG(duration)&interval=NONE&group=service&other=true&limit=3",
	))

	out := GenerateQueryFlow(state)

	for _, want := range []string{
		"flowchart LR",
		`ctx["Spans"]`,
		`s0["line AVG(duration)"]`,
		`grp["group by service, top 3 + other"]`,
		`ord["order AVG(duration) DESC"]`,
		"grp --> ord",
		`ivl["interval NONE"]`,
		"ord --> ivl",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected flow to contain %q:\n%s", want, out)
		}
	}
}

func TestGenerateQueryFlow_NoSeries(t *testing.T) {
	out := GenerateQueryFlow(explorer.ToInitialState(navigation.ParseParamMap("")))
	if !strings.Contains(out, "ctx --> none") {
		t.Errorf("expected placeholder node:\n%s", out)
	}
	if !strings.Contains(out, "ctx --> ivl") {
		t.Errorf("expected interval attached to context:\n%s", out)
	}
}

func TestGenerateSeriesChart(t *testing.T) {
	r := explorer.VisualizationRequest{
		Context: explorer.ContextEndpoint,
		Series: []explorer.Series{
			{Type: explorer.VisualizationLine, Aggregation: explorer.AggregationAverage, Key: "duration"},
			{Type: explorer.VisualizationColumn, Aggregation: explorer.AggregationCount, Key: "calls"},
		},
	}

	out := GenerateSeriesChart(r, []string{"10:00", "10:05"}, [][]float64{{12, 18}, {40}})

	for _, want := range []string{
		`title "Endpoint Traces: AVG(duration), COUNT(calls)"`,
		`x-axis ["10:00", "10:05"]`,
		"y-axis 0 --> 44",
		"line [12.0, 18.0]",
		"bar [40.0, 0.0]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected chart to contain %q:\n%s", want, out)
		}
	}
}

func TestGenerateSeriesChart_Empty(t *testing.T) {
	if out := GenerateSeriesChart(explorer.VisualizationRequest{}, []string{"a"}, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

package visuals

import (
	"fmt"
	"math"
	"strings"

	"explorer-state/internal/explorer"
)

// GenerateQueryFlow creates a Mermaid flowchart of what an explorer state
// queries: context, series, grouping, ordering and bucketing.
func GenerateQueryFlow(state explorer.InitialState) string {
	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("flowchart LR\n")
	sb.WriteString(fmt.Sprintf("    ctx[\"%s\"]\n", state.ContextToggle.Label))

	for i, s := range state.Series {
		sb.WriteString(fmt.Sprintf("    s%d[\"%s %s(%s)\"]\n", i, s.Type, s.Aggregation, s.Key))
		sb.WriteString(fmt.Sprintf("    ctx --> s%d\n", i))
	}
	if len(state.Series) == 0 {
		sb.WriteString("    none[\"no series\"]\n")
		sb.WriteString("    ctx --> none\n")
	}

	tail := "ctx"
	if g := state.GroupBy; g != nil {
		keys := make([]string, 0, len(g.KeyExpressions))
		for _, e := range g.KeyExpressions {
			keys = append(keys, explorer.EncodeAttributeExpression(e))
		}
		label := fmt.Sprintf("group by %s, top %d", strings.Join(keys, ", "), g.Limit)
		if g.IncludeRest {
			label += " + other"
		}
		sb.WriteString(fmt.Sprintf("    grp[\"%s\"]\n", label))
		sb.WriteString(fmt.Sprintf("    %s --> grp\n", tail))
		tail = "grp"
	}

	if o := state.OrderBy; o != nil {
		sb.WriteString(fmt.Sprintf("    ord[\"order %s(%s) %s\"]\n", o.Aggregation, o.Key, o.Direction))
		sb.WriteString(fmt.Sprintf("    %s --> ord\n", tail))
		tail = "ord"
	}

	sb.WriteString(fmt.Sprintf("    ivl[\"interval %s\"]\n", explorer.FormatInterval(state.Interval)))
	sb.WriteString(fmt.Sprintf("    %s --> ivl\n", tail))
	sb.WriteString("```")
	return sb.String()
}

// GenerateSeriesChart creates a Mermaid xychart-beta preview of a request.
// values[i] holds the points of series i, aligned with labels. Column series
// are drawn as bars and every other visualization type as a line.
func GenerateSeriesChart(r explorer.VisualizationRequest, labels []string, values [][]float64) string {
	if len(r.Series) == 0 || len(labels) == 0 {
		return ""
	}

	quoted := make([]string, 0, len(labels))
	for _, l := range labels {
		quoted = append(quoted, fmt.Sprintf("\"%s\"", l))
	}

	names := make([]string, 0, len(r.Series))
	for _, s := range r.Series {
		names = append(names, fmt.Sprintf("%s(%s)", s.Aggregation, s.Key))
	}

	maxVal := 0.0
	for _, points := range values {
		for _, v := range points {
			maxVal = math.Max(maxVal, v)
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"%s: %s\"\n", r.Context.Label(), strings.Join(names, ", ")))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(quoted, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis 0 --> %d\n", int(math.Ceil(math.Max(1, maxVal+maxVal/10)))))

	for i, s := range r.Series {
		points := make([]string, len(labels))
		for j := range labels {
			v := 0.0
			if i < len(values) && j < len(values[i]) {
				v = values[i][j]
			}
			points[j] = fmt.Sprintf("%.1f", v)
		}
		kind := "line"
		if s.Type == explorer.VisualizationColumn {
			kind = "bar"
		}
		sb.WriteString(fmt.Sprintf("    %s [%s]\n", kind, strings.Join(points, ", ")))
	}

	sb.WriteString("```")
	return sb.String()
}

// Package statefile reads and writes explorer state documents: YAML or JSON
// files describing a visualization request, used to build links in bulk and
// to print decoded links in a readable form.
package statefile

import (
	"explorer-state/internal/explorer"
)

// Document is the on-disk form of a visualization request.
type Document struct {
	Scope     string      `json:"scope" yaml:"scope" jsonschema:"data context: endpoint-traces or spans"`
	Interval  string      `json:"interval,omitempty" yaml:"interval,omitempty" jsonschema:"AUTO, NONE or a duration such as 5m"`
	Series    []SeriesDoc `json:"series,omitempty" yaml:"series,omitempty" jsonschema:"plotted series in display order"`
	GroupBy   *GroupByDoc `json:"groupBy,omitempty" yaml:"groupBy,omitempty" jsonschema:"optional grouping"`
	OrderBy   *OrderByDoc `json:"orderBy,omitempty" yaml:"orderBy,omitempty" jsonschema:"sort order, only used when interval is NONE"`
	TimeRange string      `json:"timeRange,omitempty" yaml:"timeRange,omitempty" jsonschema:"relative duration such as 1h or startMillis-endMillis"`
}

type SeriesDoc struct {
	Type        string `json:"type" yaml:"type" jsonschema:"line, area, scatter or column"`
	Aggregation string `json:"aggregation" yaml:"aggregation" jsonschema:"aggregation such as AVG or P99"`
	Key         string `json:"key" yaml:"key" jsonschema:"attribute key"`
}

type AttributeDoc struct {
	Key     string `json:"key" yaml:"key"`
	Subpath string `json:"subpath,omitempty" yaml:"subpath,omitempty"`
}

type GroupByDoc struct {
	Keys        []AttributeDoc `json:"keys" yaml:"keys"`
	IncludeRest bool           `json:"includeRest,omitempty" yaml:"includeRest,omitempty"`
	Limit       int            `json:"limit,omitempty" yaml:"limit,omitempty" jsonschema:"maximum number of groups, default 5"`
}

type OrderByDoc struct {
	Aggregation string `json:"aggregation" yaml:"aggregation"`
	Key         string `json:"key" yaml:"key"`
	Direction   string `json:"direction" yaml:"direction" jsonschema:"ASC or DESC"`
}

// FromRequest converts a request into its document form.
func FromRequest(r explorer.VisualizationRequest) Document {
	doc := Document{
		Scope:    r.Context.ScopeParam(),
		Interval: explorer.FormatInterval(r.Interval),
	}
	if r.TimeRange != nil {
		doc.TimeRange = r.TimeRange.Token()
	}

	for _, s := range r.Series {
		doc.Series = append(doc.Series, SeriesDoc{
			Type:        string(s.Type),
			Aggregation: string(s.Aggregation),
			Key:         s.Key,
		})
	}

	if r.GroupBy != nil {
		g := &GroupByDoc{IncludeRest: r.GroupBy.IncludeRest, Limit: r.GroupBy.Limit}
		for _, e := range r.GroupBy.KeyExpressions {
			g.Keys = append(g.Keys, AttributeDoc{Key: e.Key, Subpath: e.Subpath})
		}
		doc.GroupBy = g
	}

	if r.OrderBy != nil {
		doc.OrderBy = &OrderByDoc{
			Aggregation: string(r.OrderBy.Aggregation),
			Key:         r.OrderBy.Key,
			Direction:   string(r.OrderBy.Direction),
		}
	}

	return doc
}

// Request converts the document into a visualization request using the same
// fallbacks as URL decoding.
func (d Document) Request() explorer.VisualizationRequest {
	r := explorer.VisualizationRequest{
		Context:   explorer.ContextFromScope(d.Scope),
		Interval:  explorer.ParseInterval(d.Interval),
		TimeRange: explorer.DecodeTimeRange(d.TimeRange, d.TimeRange != ""),
	}

	for _, s := range d.Series {
		r.Series = append(r.Series, explorer.Series{
			Type:        explorer.VisualizationType(s.Type),
			Aggregation: explorer.Aggregation(s.Aggregation),
			Key:         s.Key,
		})
	}

	if d.GroupBy != nil && len(d.GroupBy.Keys) > 0 {
		g := &explorer.GroupBy{IncludeRest: d.GroupBy.IncludeRest, Limit: d.GroupBy.Limit}
		if g.Limit < 1 {
			g.Limit = explorer.DefaultGroupLimit
		}
		for _, k := range d.GroupBy.Keys {
			g.KeyExpressions = append(g.KeyExpressions, explorer.AttributeExpression{Key: k.Key, Subpath: k.Subpath})
		}
		r.GroupBy = g
	}

	if d.OrderBy != nil {
		dir := explorer.SortDirection(d.OrderBy.Direction)
		if dir == "" {
			dir = explorer.SortDescending
		}
		r.OrderBy = &explorer.OrderBy{
			Aggregation: explorer.Aggregation(d.OrderBy.Aggregation),
			Key:         d.OrderBy.Key,
			Direction:   dir,
		}
	}

	return r
}

// Package explorer maps the Explorer's visualization request to and from its
// shareable URL query-string form. Every decoder falls back to a default
// instead of failing, so any hand-edited link still lands on a renderable
// state.
package explorer

// Query parameter keys. These are part of the shareable-link contract.
const (
	ParamScope      = "scope"
	ParamInterval   = "interval"
	ParamSeries     = "series"
	ParamOrder      = "order"
	ParamGroup      = "group"
	ParamOtherGroup = "other"
	ParamGroupLimit = "limit"
	ParamTime       = "time"
)

// DefaultGroupLimit is used when the limit parameter is absent or unparsable.
const DefaultGroupLimit = 5

// Context is the data set the explorer queries.
type Context int

const (
	ContextEndpoint Context = iota
	ContextSpan

	contextCount
)

type contextInfo struct {
	scope     string
	dashboard string
	label     string
}

var contexts = [...]contextInfo{
	ContextEndpoint: {scope: "endpoint-traces", dashboard: "API_TRACE", label: "Endpoint Traces"},
	ContextSpan:     {scope: "spans", dashboard: "SPAN", label: "Spans"},
}

// Fails to compile when a Context is added without a contexts entry.
func _() {
	var x [1]struct{}
	_ = x[len(contexts)-int(contextCount)]
}

// ScopeParam is the value written to the scope query parameter.
func (c Context) ScopeParam() string { return contexts[c].scope }

// DashboardContext is the trace type the generated dashboards query.
func (c Context) DashboardContext() string { return contexts[c].dashboard }

// Label is the toggle label shown for the context.
func (c Context) Label() string { return contexts[c].label }

func (c Context) String() string { return c.ScopeParam() }

// ContextItem is one entry of the context toggle.
type ContextItem struct {
	Label   string
	Context Context
}

// ContextItems lists the supported contexts in toggle order.
func ContextItems() []ContextItem {
	items := make([]ContextItem, 0, len(contexts))
	for i := range contexts {
		c := Context(i)
		items = append(items, ContextItem{Label: c.Label(), Context: c})
	}
	return items
}

// ContextFromScope resolves a scope parameter value. Unknown or empty values
// resolve to the first context.
func ContextFromScope(scope string) Context {
	for i, info := range contexts {
		if info.scope == scope {
			return Context(i)
		}
	}
	return ContextEndpoint
}

// VisualizationType is how a series is drawn.
type VisualizationType string

const (
	VisualizationLine    VisualizationType = "line"
	VisualizationArea    VisualizationType = "area"
	VisualizationScatter VisualizationType = "scatter"
	VisualizationColumn  VisualizationType = "column"
)

// Known reports whether t is one of the supported visualization types.
func (t VisualizationType) Known() bool {
	switch t {
	case VisualizationLine, VisualizationArea, VisualizationScatter, VisualizationColumn:
		return true
	}
	return false
}

// Aggregation is the metric aggregation applied to an attribute.
type Aggregation string

const (
	AggregationAverage       Aggregation = "AVG"
	AggregationSum           Aggregation = "SUM"
	AggregationMin           Aggregation = "MIN"
	AggregationMax           Aggregation = "MAX"
	AggregationCount         Aggregation = "COUNT"
	AggregationAvgRateSecond Aggregation = "AVGRATE_SEC"
	AggregationAvgRateMinute Aggregation = "AVGRATE_MIN"
	AggregationDistinctCount Aggregation = "DISTINCT_COUNT"
	AggregationP99           Aggregation = "P99"
	AggregationP95           Aggregation = "P95"
	AggregationP90           Aggregation = "P90"
	AggregationP50           Aggregation = "P50"
)

// Known reports whether a is one of the supported aggregations.
func (a Aggregation) Known() bool {
	switch a {
	case AggregationAverage, AggregationSum, AggregationMin, AggregationMax, AggregationCount,
		AggregationAvgRateSecond, AggregationAvgRateMinute, AggregationDistinctCount,
		AggregationP99, AggregationP95, AggregationP90, AggregationP50:
		return true
	}
	return false
}

// SortDirection orders results of a non time-bucketed view.
type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// Known reports whether d is ASC or DESC.
func (d SortDirection) Known() bool {
	return d == SortAscending || d == SortDescending
}

// Series is one plotted metric.
type Series struct {
	Type        VisualizationType
	Aggregation Aggregation
	Key         string
}

// AttributeExpression names an attribute, optionally drilling into a subpath
// of a map-valued attribute. "__" must not appear in either part.
type AttributeExpression struct {
	Key     string
	Subpath string
}

// GroupBy buckets results by attribute expressions.
type GroupBy struct {
	KeyExpressions []AttributeExpression
	IncludeRest    bool
	Limit          int
}

// OrderBy sorts an aggregate view.
type OrderBy struct {
	Aggregation Aggregation
	Key         string
	Direction   SortDirection
}

// VisualizationRequest is the in-memory explorer state that gets written to
// the URL on every edit.
type VisualizationRequest struct {
	Context   Context
	Series    []Series
	Interval  Interval
	GroupBy   *GroupBy
	OrderBy   *OrderBy
	TimeRange TimeRange
}

// InitialState is the state reconstructed from the URL on navigation.
type InitialState struct {
	ContextToggle ContextItem
	Series        []Series
	Interval      Interval
	GroupBy       *GroupBy
	OrderBy       *OrderBy
	TimeRange     TimeRange
}

// Request returns the visualization request the state describes.
func (s InitialState) Request() VisualizationRequest {
	return VisualizationRequest{
		Context:   s.ContextToggle.Context,
		Series:    s.Series,
		Interval:  s.Interval,
		GroupBy:   s.GroupBy,
		OrderBy:   s.OrderBy,
		TimeRange: s.TimeRange,
	}
}

package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorer-state/internal/navigation"
)

func roundTrip(r VisualizationRequest) InitialState {
	return ToInitialState(navigation.NewParamMap(ToQueryParams(r).Values()))
}

func sampleRequest() VisualizationRequest {
	return VisualizationRequest{
		Context: ContextSpan,
		Series: []Series{
			{Type: VisualizationLine, Aggregation: AggregationAverage, Key: "duration"},
			{Type: VisualizationColumn, Aggregation: AggregationCount, Key: "calls"},
		},
		Interval: DurationInterval{Duration: minutes(5)},
		GroupBy: &GroupBy{
			KeyExpressions: []AttributeExpression{{Key: "service"}, {Key: "tags", Subpath: "env"}},
			IncludeRest:    true,
			Limit:          8,
		},
		OrderBy:   &OrderBy{Aggregation: AggregationCount, Key: "calls", Direction: SortAscending},
		TimeRange: RelativeTimeRange{Duration: minutes(30)},
	}
}

func TestRoundTrip_TimeBucketedDropsOrder(t *testing.T) {
	r := sampleRequest()

	got := roundTrip(r)

	assert.Equal(t, r.Context, got.ContextToggle.Context)
	assert.Equal(t, r.Series, got.Series)
	assert.Equal(t, r.Interval, got.Interval)
	assert.Equal(t, r.GroupBy, got.GroupBy)
	assert.Equal(t, r.TimeRange, got.TimeRange)
	assert.Nil(t, got.OrderBy)
}

func TestRoundTrip_AggregateKeepsOrder(t *testing.T) {
	r := sampleRequest()
	r.Interval = NoInterval{}

	got := roundTrip(r)

	assert.Equal(t, r, got.Request())
}

func TestRoundTrip_AutoIntervalAndNoGrouping(t *testing.T) {
	r := VisualizationRequest{
		Context:   ContextEndpoint,
		Series:    []Series{{Type: VisualizationArea, Aggregation: AggregationP99, Key: "duration"}},
		Interval:  AutoInterval{},
		TimeRange: DefaultTimeRange,
	}

	params := ToQueryParams(r)
	assert.Empty(t, params[ParamInterval])
	assert.Empty(t, params[ParamOrder])

	got := roundTrip(r)
	assert.Equal(t, r, got.Request())
}

func TestToInitialState_Example(t *testing.T) {
	p := navigation.ParseParamMap("scope=spans&series=line:AVG(duration)&interval=5m")

	got := ToInitialState(p)

	assert.Equal(t, ContextItem{Label: "Spans", Context: ContextSpan}, got.ContextToggle)
	assert.Equal(t, []Series{{Type: VisualizationLine, Aggregation: AggregationAverage, Key: "duration"}}, got.Series)
	assert.Equal(t, DurationInterval{Duration: minutes(5)}, got.Interval)
	assert.Nil(t, got.OrderBy)
	assert.Nil(t, got.GroupBy)
	assert.Equal(t, DefaultTimeRange, got.TimeRange)
}

func TestToInitialState_Defaults(t *testing.T) {
	got := ToInitialState(navigation.ParseParamMap(""))

	assert.Equal(t, ContextEndpoint, got.ContextToggle.Context)
	assert.Empty(t, got.Series)
	assert.Equal(t, AutoInterval{}, got.Interval)
	assert.Nil(t, got.GroupBy)
	assert.Nil(t, got.OrderBy)
}

func TestToInitialState_OrderOnlyWithoutInterval(t *testing.T) {
	withInterval := ToInitialState(navigation.ParseParamMap("series=line:AVG(duration)&interval=1m&order=SUM(calls):ASC"))
	assert.Nil(t, withInterval.OrderBy)

	aggregate := ToInitialState(navigation.ParseParamMap("series=line:AVG(duration)&interval=NONE&order=SUM(calls):ASC"))
	require.NotNil(t, aggregate.OrderBy)
	assert.Equal(t, OrderBy{Aggregation: AggregationSum, Key: "calls", Direction: SortAscending}, *aggregate.OrderBy)

	defaulted := ToInitialState(navigation.ParseParamMap("series=line:AVG(duration)&interval=NONE"))
	require.NotNil(t, defaulted.OrderBy)
	assert.Equal(t, OrderBy{Aggregation: AggregationAverage, Key: "duration", Direction: SortDescending}, *defaulted.OrderBy)

	empty := ToInitialState(navigation.ParseParamMap("interval=NONE"))
	assert.Nil(t, empty.OrderBy)
}

func TestApplyRequest_ThroughNavigator(t *testing.T) {
	n, err := navigation.NewURLNavigator("http://localhost/explorer?scope=spans&group=old&limit=2&filter=service_EQ_api")
	require.NoError(t, err)

	r := sampleRequest()
	r.GroupBy = nil
	ApplyRequest(n, r)

	p := n.QueryParamMap()
	assert.False(t, p.Has(ParamGroup))
	assert.False(t, p.Has(ParamGroupLimit))
	v, _ := p.Get("filter")
	assert.Equal(t, "service_EQ_api", v, "unrelated parameters are kept")

	state := CurrentState(n)
	assert.Equal(t, r.Series, state.Series)
}

func TestDiagnose(t *testing.T) {
	p := navigation.ParseParamMap(
		"scope=logs&series=line:AVG(duration)&series=line:AVG&series=pie:AVG(calls)" +
			"&interval=5x&order=AVG(duration):DESC&limit=abc&time=soon",
	)

	findings := Diagnose(p)

	byParam := map[string][]string{}
	for _, f := range findings {
		byParam[f.Param] = append(byParam[f.Param], f.Reason)
	}
	assert.Len(t, byParam[ParamScope], 1)
	assert.Len(t, byParam[ParamSeries], 2)
	assert.Len(t, byParam[ParamInterval], 1)
	assert.Equal(t, []string{"ignored unless interval is NONE"}, byParam[ParamOrder])
	assert.Equal(t, []string{"ignored without a group parameter"}, byParam[ParamGroupLimit])
	assert.Len(t, byParam[ParamTime], 1)
}

func TestDiagnose_CleanLink(t *testing.T) {
	r := sampleRequest()
	r.Interval = NoInterval{}
	p := navigation.NewParamMap(ToQueryParams(r).Values())
	assert.Empty(t, Diagnose(p))
}

func TestDiagnose_UnknownOrderMembers(t *testing.T) {
	p := navigation.ParseParamMap("series=line:AVG(duration)&interval=NONE&order=BOGUS(duration):UP")

	findings := Diagnose(p)

	require.Len(t, findings, 2)
	assert.Equal(t, ParamOrder, findings[0].Param)
	assert.Equal(t, "unknown aggregation BOGUS", findings[0].Reason)
	assert.Equal(t, "unknown direction UP", findings[1].Reason)
}

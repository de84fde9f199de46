package explorer

import "explorer-state/internal/navigation"

// ToInitialState rebuilds the explorer state from the URL parameters.
// Ordering only applies to aggregate views, so the order parameter is read
// only when the interval is NONE.
func ToInitialState(p navigation.ParamMap) InitialState {
	scope, _ := p.Get(ParamScope)
	ctx := ContextFromScope(scope)

	series := DecodeSeriesList(p.GetAll(ParamSeries))

	intervalToken, intervalPresent := p.Get(ParamInterval)
	interval := DecodeInterval(intervalToken, intervalPresent)

	var orderBy *OrderBy
	if IsNoInterval(interval) {
		orderToken, orderPresent := p.Get(ParamOrder)
		orderBy = DecodeOrderBy(orderToken, orderPresent, series)
	}

	timeToken, timePresent := p.Get(ParamTime)

	return InitialState{
		ContextToggle: ContextItem{Label: ctx.Label(), Context: ctx},
		Series:        series,
		Interval:      interval,
		GroupBy:       DecodeGroupBy(p),
		OrderBy:       orderBy,
		TimeRange:     DecodeTimeRange(timeToken, timePresent),
	}
}

// ToQueryParams is the inverse of ToInitialState. Every explorer parameter is
// either set or explicitly cleared so merging the result into the current URL
// never leaves stale state behind.
func ToQueryParams(r VisualizationRequest) navigation.QueryParams {
	params := navigation.QueryParams{}.
		Set(ParamScope, r.Context.ScopeParam()).
		Set(ParamInterval, EncodeInterval(r.Interval)...).
		Set(ParamSeries, EncodeSeriesList(r.Series)...).
		Set(ParamTime, EncodeTimeRange(r.TimeRange)...)

	return params.
		Merge(EncodeOrderByParams(r.OrderBy)).
		Merge(EncodeGroupBy(r.GroupBy))
}

// ApplyRequest writes r into the navigator's current URL.
func ApplyRequest(n navigation.Navigator, r VisualizationRequest) {
	n.AddQueryParametersToURL(ToQueryParams(r))
}

// CurrentState reads the explorer state from the navigator's current URL.
func CurrentState(n navigation.Navigator) InitialState {
	return ToInitialState(n.QueryParamMap())
}

// BuildLink merges r into base and returns the resulting explorer link.
// Parameters of base that the explorer does not own are kept.
func BuildLink(base string, r VisualizationRequest) (string, error) {
	n, err := navigation.NewURLNavigator(base)
	if err != nil {
		return "", err
	}
	ApplyRequest(n, r)
	return n.String(), nil
}

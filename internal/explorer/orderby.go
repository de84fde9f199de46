package explorer

import "explorer-state/internal/navigation"

// EncodeOrderBy renders o as "AGG(key):DIR", e.g. "AVG(duration):DESC".
func EncodeOrderBy(o OrderBy) string {
	return string(o.Aggregation) + "(" + o.Key + "):" + string(o.Direction)
}

// ParseOrderBy parses an "AGG(key):DIR" token. Aggregation and direction are
// taken verbatim; membership in their enums is not checked.
func ParseOrderBy(token string) (OrderBy, bool) {
	sc := newTokenScanner(token)
	agg := sc.word()
	sc.literal('(')
	key := sc.word()
	sc.literal(')')
	sc.literal(':')
	dir := sc.word()
	if !sc.done() {
		return OrderBy{}, false
	}
	return OrderBy{
		Aggregation: Aggregation(agg),
		Key:         key,
		Direction:   SortDirection(dir),
	}, true
}

// DecodeOrderBy parses the order parameter, falling back to a descending sort
// on the first series when the token is absent or malformed. With no token
// and no series there is nothing to sort by and nil is returned.
func DecodeOrderBy(token string, present bool, fallback []Series) *OrderBy {
	if present {
		if o, ok := ParseOrderBy(token); ok {
			return &o
		}
	}
	if len(fallback) == 0 {
		return nil
	}
	return &OrderBy{
		Aggregation: fallback[0].Aggregation,
		Key:         fallback[0].Key,
		Direction:   SortDescending,
	}
}

// EncodeOrderByParams returns the order parameter update. Nil clears it.
func EncodeOrderByParams(o *OrderBy) navigation.QueryParams {
	params := navigation.QueryParams{}
	if o == nil {
		return params.Clear(ParamOrder)
	}
	return params.Set(ParamOrder, EncodeOrderBy(*o))
}

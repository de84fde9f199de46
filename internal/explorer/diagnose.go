package explorer

import (
	"fmt"

	"explorer-state/internal/navigation"
)

// Finding describes one facet that decoding silently dropped or downgraded.
type Finding struct {
	Param  string `json:"param"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s=%q: %s", f.Param, f.Value, f.Reason)
}

// Diagnose reports what ToInitialState would discard or reset for p.
// It never changes how p decodes.
func Diagnose(p navigation.ParamMap) []Finding {
	var findings []Finding
	add := func(param, value, reason string) {
		findings = append(findings, Finding{Param: param, Value: value, Reason: reason})
	}

	if scope, ok := p.Get(ParamScope); ok && ContextFromScope(scope).ScopeParam() != scope {
		add(ParamScope, scope, "unknown scope, using "+ContextEndpoint.ScopeParam())
	}

	var series []Series
	for _, tok := range p.GetAll(ParamSeries) {
		s, ok := DecodeSeries(tok)
		if !ok {
			add(ParamSeries, tok, "malformed series token dropped")
			continue
		}
		series = append(series, s)
		if !s.Type.Known() {
			add(ParamSeries, tok, "unknown visualization type "+string(s.Type))
		}
		if !s.Aggregation.Known() {
			add(ParamSeries, tok, "unknown aggregation "+string(s.Aggregation))
		}
	}

	intervalToken, intervalPresent := p.Get(ParamInterval)
	interval := DecodeInterval(intervalToken, intervalPresent)
	if intervalPresent && intervalToken != intervalNoneToken {
		if _, ok := parseDuration(intervalToken); !ok {
			add(ParamInterval, intervalToken, "unparsable interval, using AUTO")
		}
	}

	if orderToken, ok := p.Get(ParamOrder); ok {
		switch o, parsed := ParseOrderBy(orderToken); {
		case !IsNoInterval(interval):
			add(ParamOrder, orderToken, "ignored unless interval is NONE")
		case !parsed && len(series) == 0:
			add(ParamOrder, orderToken, "malformed order token dropped")
		case !parsed:
			add(ParamOrder, orderToken, "malformed order token, sorting by first series")
		default:
			if !o.Aggregation.Known() {
				add(ParamOrder, orderToken, "unknown aggregation "+string(o.Aggregation))
			}
			if !o.Direction.Known() {
				add(ParamOrder, orderToken, "unknown direction "+string(o.Direction))
			}
		}
	}

	if p.Has(ParamGroup) {
		if limit, ok := p.Get(ParamGroupLimit); ok {
			if _, valid := parseLimit(limit, true); !valid {
				add(ParamGroupLimit, limit, fmt.Sprintf("invalid limit, using %d", DefaultGroupLimit))
			}
		}
		if other, ok := p.Get(ParamOtherGroup); ok && other != "true" {
			add(ParamOtherGroup, other, "only \"true\" enables the other group")
		}
	} else {
		for _, k := range []string{ParamOtherGroup, ParamGroupLimit} {
			if v, ok := p.Get(k); ok {
				add(k, v, "ignored without a group parameter")
			}
		}
	}

	if token, ok := p.Get(ParamTime); ok {
		if _, valid := parseTimeRange(token, true); !valid {
			add(ParamTime, token, "malformed time range, using "+DefaultTimeRange.Token())
		}
	}

	return findings
}

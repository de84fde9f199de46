package explorer

// EncodeSeries renders s as "type:AGG(key)", e.g. "line:AVG(duration)".
func EncodeSeries(s Series) string {
	return string(s.Type) + ":" + string(s.Aggregation) + "(" + s.Key + ")"
}

// DecodeSeries parses a "type:AGG(key)" token. Each part must be a bare word;
// anything else is reported as no match.
func DecodeSeries(token string) (Series, bool) {
	sc := newTokenScanner(token)
	typ := sc.word()
	sc.literal(':')
	agg := sc.word()
	sc.literal('(')
	key := sc.word()
	sc.literal(')')
	if !sc.done() {
		return Series{}, false
	}
	return Series{
		Type:        VisualizationType(typ),
		Aggregation: Aggregation(agg),
		Key:         key,
	}, true
}

// EncodeSeriesList renders each series as its own parameter value.
func EncodeSeriesList(series []Series) []string {
	out := make([]string, 0, len(series))
	for _, s := range series {
		out = append(out, EncodeSeries(s))
	}
	return out
}

// DecodeSeriesList decodes every token independently, dropping malformed ones.
func DecodeSeriesList(tokens []string) []Series {
	out := make([]Series, 0, len(tokens))
	for _, tok := range tokens {
		if s, ok := DecodeSeries(tok); ok {
			out = append(out, s)
		}
	}
	return out
}

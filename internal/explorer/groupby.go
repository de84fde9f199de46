package explorer

import (
	"strconv"
	"strings"

	"explorer-state/internal/navigation"
)

const subpathSeparator = "__"

// EncodeAttributeExpression renders "key" or "key__subpath".
func EncodeAttributeExpression(e AttributeExpression) string {
	if e.Subpath == "" {
		return e.Key
	}
	return e.Key + subpathSeparator + e.Subpath
}

// DecodeAttributeExpression splits on the first "__".
func DecodeAttributeExpression(token string) AttributeExpression {
	key, subpath, _ := strings.Cut(token, subpathSeparator)
	return AttributeExpression{Key: key, Subpath: subpath}
}

// EncodeGroupBy returns updates for the group, other and limit parameters.
// With no grouping all three are cleared so a previous grouping does not
// linger in the URL. A false include-rest flag is written by omission.
func EncodeGroupBy(g *GroupBy) navigation.QueryParams {
	params := navigation.QueryParams{}
	if g == nil || len(g.KeyExpressions) == 0 {
		return params.Clear(ParamGroup).Clear(ParamOtherGroup).Clear(ParamGroupLimit)
	}

	keys := make([]string, 0, len(g.KeyExpressions))
	for _, e := range g.KeyExpressions {
		keys = append(keys, EncodeAttributeExpression(e))
	}
	params.Set(ParamGroup, keys...)

	if g.IncludeRest {
		params.Set(ParamOtherGroup, "true")
	} else {
		params.Clear(ParamOtherGroup)
	}

	return params.Set(ParamGroupLimit, strconv.Itoa(g.Limit))
}

// DecodeGroupBy reads the group parameters. Without a group parameter there
// is no grouping and nil is returned.
func DecodeGroupBy(p navigation.ParamMap) *GroupBy {
	if !p.Has(ParamGroup) {
		return nil
	}

	tokens := p.GetAll(ParamGroup)
	exprs := make([]AttributeExpression, 0, len(tokens))
	for _, tok := range tokens {
		exprs = append(exprs, DecodeAttributeExpression(tok))
	}

	other, _ := p.Get(ParamOtherGroup)
	limitToken, limitPresent := p.Get(ParamGroupLimit)

	return &GroupBy{
		KeyExpressions: exprs,
		IncludeRest:    other == "true",
		Limit:          decodeLimit(limitToken, limitPresent),
	}
}

func decodeLimit(token string, present bool) int {
	limit, ok := parseLimit(token, present)
	if !ok {
		return DefaultGroupLimit
	}
	return limit
}

func parseLimit(token string, present bool) (int, bool) {
	if !present {
		return 0, false
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

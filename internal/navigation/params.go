package navigation

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ParamMap is a read-only view over the query parameters of the current URL.
type ParamMap struct {
	values url.Values
}

// NewParamMap wraps the given values. The map is copied so later edits to v
// are not observed.
func NewParamMap(v url.Values) ParamMap {
	cp := make(url.Values, len(v))
	for k, vals := range v {
		cp[k] = append([]string(nil), vals...)
	}
	return ParamMap{values: cp}
}

// ParseParamMap parses a raw query string. Malformed pairs are skipped;
// whatever could be parsed is kept.
func ParseParamMap(rawQuery string) ParamMap {
	v, _ := url.ParseQuery(rawQuery)
	return NewParamMap(v)
}

// Get returns the first value for key and whether the key was present.
func (p ParamMap) Get(key string) (string, bool) {
	vals, ok := p.values[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// GetAll returns every value for key in URL order.
func (p ParamMap) GetAll(key string) []string {
	return append([]string(nil), p.values[key]...)
}

// Has reports whether key appears at least once, even with an empty value.
func (p ParamMap) Has(key string) bool {
	return len(p.values[key]) > 0
}

// Keys returns the parameter names in sorted order.
func (p ParamMap) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns a copy of the underlying values.
func (p ParamMap) Values() url.Values {
	return NewParamMap(p.values).values
}

// ParamMapFromLink accepts a full URL or a bare query string and returns its
// parameters.
func ParamMapFromLink(link string) (ParamMap, error) {
	if link == "" {
		return ParamMap{}, ErrEmptyURL
	}
	if !strings.Contains(link, "?") && !strings.Contains(link, "://") {
		return ParseParamMap(link), nil
	}
	u, err := url.Parse(link)
	if err != nil {
		return ParamMap{}, fmt.Errorf("failed to parse link %q: %w", link, err)
	}
	return ParseParamMap(u.RawQuery), nil
}

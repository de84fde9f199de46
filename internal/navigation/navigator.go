package navigation

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
)

// ErrEmptyURL is returned when a navigator is created without a URL.
var ErrEmptyURL = errors.New("navigation: empty url")

// QueryParams is a set of query parameter updates. A key mapped to an empty
// slice clears that parameter from the URL instead of leaving it stale.
type QueryParams map[string][]string

// Set assigns the given values to key. No values means clear.
func (q QueryParams) Set(key string, values ...string) QueryParams {
	q[key] = values
	return q
}

// Clear marks key for removal.
func (q QueryParams) Clear(key string) QueryParams {
	q[key] = nil
	return q
}

// Merge copies every entry of other into q, other winning on conflicts.
func (q QueryParams) Merge(other QueryParams) QueryParams {
	for k, v := range other {
		q[k] = v
	}
	return q
}

// ApplyTo writes the updates into v: cleared keys are deleted, others replaced.
func (q QueryParams) ApplyTo(v url.Values) {
	for k, vals := range q {
		if len(vals) == 0 {
			v.Del(k)
			continue
		}
		v[k] = append([]string(nil), vals...)
	}
}

// Values renders the updates as fresh url.Values, dropping cleared keys.
func (q QueryParams) Values() url.Values {
	v := url.Values{}
	q.ApplyTo(v)
	return v
}

// Navigator reads the current query parameters and merges updates into the
// current URL.
type Navigator interface {
	QueryParamMap() ParamMap
	AddQueryParametersToURL(params QueryParams)
}

// URLNavigator is a Navigator over a single in-memory URL. Updates are
// last-write-wins.
type URLNavigator struct {
	mu  sync.RWMutex
	url *url.URL
}

// NewURLNavigator parses raw and returns a navigator positioned on it.
func NewURLNavigator(raw string) (*URLNavigator, error) {
	if raw == "" {
		return nil, ErrEmptyURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url %q: %w", raw, err)
	}
	return &URLNavigator{url: u}, nil
}

// QueryParamMap returns the parameters of the current URL.
func (n *URLNavigator) QueryParamMap() ParamMap {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return ParseParamMap(n.url.RawQuery)
}

// AddQueryParametersToURL merges params into the current URL, keeping any
// parameter the update does not mention.
func (n *URLNavigator) AddQueryParametersToURL(params QueryParams) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, _ := url.ParseQuery(n.url.RawQuery)
	params.ApplyTo(v)
	n.url.RawQuery = v.Encode()
}

// String returns the current URL.
func (n *URLNavigator) String() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.url.String()
}

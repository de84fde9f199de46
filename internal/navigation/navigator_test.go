package navigation

import (
	"errors"
	"net/url"
	"testing"
)

func TestParamMap_GetAndHas(t *testing.T) {
	p := ParseParamMap("series=a&series=b&group=&scope=spans")

	if v, ok := p.Get("scope"); !ok || v != "spans" {
		t.Errorf("expected scope=spans, got %q (present=%v)", v, ok)
	}
	if _, ok := p.Get("interval"); ok {
		t.Error("expected interval to be absent")
	}
	if got := p.GetAll("series"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected series values: %v", got)
	}
	if !p.Has("group") {
		t.Error("expected empty group value to count as present")
	}
	if p.Has("limit") {
		t.Error("expected limit to be absent")
	}
}

func TestParamMap_IsolatedFromSource(t *testing.T) {
	src := url.Values{"scope": {"spans"}}
	p := NewParamMap(src)
	src.Set("scope", "endpoint-traces")

	if v, _ := p.Get("scope"); v != "spans" {
		t.Errorf("param map observed later edit: %q", v)
	}
}

func TestURLNavigator_MergeClearsAndKeeps(t *testing.T) {
	n, err := NewURLNavigator("http://localhost/explorer?group=service&other=true&limit=3&time=1h")
	if err != nil {
		t.Fatal(err)
	}

	n.AddQueryParametersToURL(QueryParams{}.
		Clear("group").
		Clear("other").
		Clear("limit").
		Set("series", "line:AVG(duration)", "column:SUM(calls)"))

	p := n.QueryParamMap()
	for _, k := range []string{"group", "other", "limit"} {
		if p.Has(k) {
			t.Errorf("expected %s to be cleared", k)
		}
	}
	if v, _ := p.Get("time"); v != "1h" {
		t.Errorf("expected untouched time param, got %q", v)
	}
	if got := p.GetAll("series"); len(got) != 2 {
		t.Errorf("expected two series, got %v", got)
	}
}

func TestNewURLNavigator_Empty(t *testing.T) {
	_, err := NewURLNavigator("")
	if !errors.Is(err, ErrEmptyURL) {
		t.Errorf("expected ErrEmptyURL, got %v", err)
	}
}

func TestQueryParams_Values(t *testing.T) {
	q := QueryParams{}.Set("scope", "spans").Clear("order")
	v := q.Values()
	if v.Get("scope") != "spans" {
		t.Errorf("expected scope=spans, got %q", v.Get("scope"))
	}
	if _, ok := v["order"]; ok {
		t.Error("cleared key should not be rendered")
	}
}

func TestParamMapFromLink(t *testing.T) {
	tests := []struct {
		link  string
		scope string
	}{
		{"http://localhost:2020/explorer?scope=spans&interval=5m", "spans"},
		{"/explorer?scope=spans", "spans"},
		{"scope=endpoint-traces&series=line:AVG(duration)", "endpoint-traces"},
		{"http://localhost:2020/explorer", ""},
	}
	for _, tt := range tests {
		p, err := ParamMapFromLink(tt.link)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.link, err)
		}
		if got, _ := p.Get("scope"); got != tt.scope {
			t.Errorf("%s: expected scope %q, got %q", tt.link, tt.scope, got)
		}
	}

	if _, err := ParamMapFromLink(""); !errors.Is(err, ErrEmptyURL) {
		t.Errorf("expected ErrEmptyURL, got %v", err)
	}
}

package explorer

import (
	"fmt"

	"github.com/prometheus/common/model"
)

const (
	intervalAutoToken = "AUTO"
	intervalNoneToken = "NONE"
)

// Interval is the time-bucketing width of a visualization. It is one of
// AutoInterval, NoInterval or DurationInterval.
type Interval interface {
	isInterval()
}

// AutoInterval lets the backend pick a bucket width. It is the default and is
// represented in the URL by omitting the parameter.
type AutoInterval struct{}

// NoInterval requests a single aggregate value per group instead of a time series.
type NoInterval struct{}

// DurationInterval buckets by a fixed width.
type DurationInterval struct {
	Duration model.Duration
}

func (AutoInterval) isInterval()     {}
func (NoInterval) isInterval()       {}
func (DurationInterval) isInterval() {}

// MatchInterval dispatches on the interval variant. Each variant has its own
// required argument, so adding a variant breaks every caller at compile time.
// A nil interval is treated as auto.
func MatchInterval[T any](
	i Interval,
	auto func() T,
	none func() T,
	duration func(model.Duration) T,
) T {
	switch v := i.(type) {
	case nil, AutoInterval:
		return auto()
	case NoInterval:
		return none()
	case DurationInterval:
		return duration(v.Duration)
	default:
		panic(fmt.Sprintf("explorer: unexpected interval %T", i))
	}
}

// IsNoInterval reports whether i requests an aggregate (non time-bucketed) view.
func IsNoInterval(i Interval) bool {
	return MatchInterval(i,
		func() bool { return false },
		func() bool { return true },
		func(model.Duration) bool { return false },
	)
}

// EncodeInterval returns the interval parameter values. Auto yields no values,
// which clears the parameter.
func EncodeInterval(i Interval) []string {
	return MatchInterval(i,
		func() []string { return nil },
		func() []string { return []string{intervalNoneToken} },
		func(d model.Duration) []string { return []string{d.String()} },
	)
}

// DecodeInterval parses the interval parameter. Absent or unparsable tokens
// decode to auto.
func DecodeInterval(token string, present bool) Interval {
	if !present {
		return AutoInterval{}
	}
	if token == intervalNoneToken {
		return NoInterval{}
	}
	if d, ok := parseDuration(token); ok {
		return DurationInterval{Duration: d}
	}
	return AutoInterval{}
}

// FormatInterval renders any interval as a single token, including AUTO.
func FormatInterval(i Interval) string {
	return MatchInterval(i,
		func() string { return intervalAutoToken },
		func() string { return intervalNoneToken },
		func(d model.Duration) string { return d.String() },
	)
}

// ParseInterval is the inverse of FormatInterval. Empty and unknown tokens
// parse to auto.
func ParseInterval(token string) Interval {
	if token == "" || token == intervalAutoToken {
		return AutoInterval{}
	}
	return DecodeInterval(token, true)
}

// parseDuration accepts tokens such as "30s", "5m", "1h30m" or "1d".
// Zero-length durations are rejected.
func parseDuration(token string) (model.Duration, bool) {
	if token == "" {
		return 0, false
	}
	d, err := model.ParseDuration(token)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

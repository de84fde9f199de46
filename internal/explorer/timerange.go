package explorer

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/common/model"
)

// DefaultTimeRange is used when the time parameter is absent or malformed.
var DefaultTimeRange TimeRange = RelativeTimeRange{Duration: model.Duration(time.Hour)}

// TimeRange is the window the explorer queries: either relative to now or
// fixed between two instants.
type TimeRange interface {
	isTimeRange()
	// Token is the value written to the time parameter.
	Token() string
}

// RelativeTimeRange covers the last Duration up to now.
type RelativeTimeRange struct {
	Duration model.Duration
}

// FixedTimeRange covers [Start, End].
type FixedTimeRange struct {
	Start time.Time
	End   time.Time
}

func (RelativeTimeRange) isTimeRange() {}
func (FixedTimeRange) isTimeRange()    {}

func (r RelativeTimeRange) Token() string { return r.Duration.String() }

func (r FixedTimeRange) Token() string {
	return strconv.FormatInt(r.Start.UnixMilli(), 10) + "-" + strconv.FormatInt(r.End.UnixMilli(), 10)
}

// EncodeTimeRange returns the time parameter value. A nil range encodes the default.
func EncodeTimeRange(r TimeRange) []string {
	if r == nil {
		r = DefaultTimeRange
	}
	return []string{r.Token()}
}

// DecodeTimeRange parses "<duration>" or "<startMillis>-<endMillis>".
func DecodeTimeRange(token string, present bool) TimeRange {
	r, ok := parseTimeRange(token, present)
	if !ok {
		return DefaultTimeRange
	}
	return r
}

func parseTimeRange(token string, present bool) (TimeRange, bool) {
	if !present || token == "" {
		return nil, false
	}
	if start, end, found := strings.Cut(token, "-"); found {
		startMs, err := strconv.ParseInt(start, 10, 64)
		if err != nil {
			return nil, false
		}
		endMs, err := strconv.ParseInt(end, 10, 64)
		if err != nil || endMs <= startMs {
			return nil, false
		}
		return FixedTimeRange{Start: time.UnixMilli(startMs).UTC(), End: time.UnixMilli(endMs).UTC()}, true
	}
	d, ok := parseDuration(token)
	if !ok {
		return nil, false
	}
	return RelativeTimeRange{Duration: d}, true
}

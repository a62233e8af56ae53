package omi

import (
	"time"

	"github.com/signadot/go-omi/wire"
)

// IntervalMode classifies a read interval.
type IntervalMode int

const (
	NoInterval IntervalMode = iota
	OneShotInterval
	OnChangeInterval
	PeriodicInterval
)

func (m IntervalMode) String() string {
	switch m {
	case NoInterval:
		return "none"
	case OneShotInterval:
		return "one-shot"
	case OnChangeInterval:
		return "on-change"
	case PeriodicInterval:
		return "periodic"
	}
	return "unknown"
}

// Interval is the polling interval of a read. The zero Interval is unset.
// Negative durations are one-shot, zero pushes on change and positive
// durations poll periodically.
type Interval struct {
	d   time.Duration
	set bool
}

var (
	OneShot  = IntervalOf(-time.Second)
	OnChange = IntervalOf(0)
)

func IntervalOf(d time.Duration) Interval {
	return Interval{d: d, set: true}
}

func (i Interval) IsSet() bool { return i.set }

func (i Interval) Duration() (d time.Duration, ok bool) {
	return i.d, i.set
}

func (i Interval) Mode() IntervalMode {
	switch {
	case !i.set:
		return NoInterval
	case i.d < 0:
		return OneShotInterval
	case i.d == 0:
		return OnChangeInterval
	}
	return PeriodicInterval
}

func (i Interval) Equal(o Interval) bool { return i == o }

func (i Interval) String() string {
	if !i.set {
		return ""
	}
	return wire.FormatSeconds(i.d)
}

func ParseInterval(s string) (Interval, error) {
	d, err := wire.ParseSeconds(s)
	if err != nil {
		return Interval{}, err
	}
	return IntervalOf(d), nil
}

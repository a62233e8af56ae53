package omi

import (
	"strings"
	"time"

	"github.com/signadot/go-omi/wire"
)

// TTL is the time-to-live of an envelope.
//
// The zero TTL lives forever. A finite TTL of zero or less is immediate: the
// request is answered once and nothing is kept. The two never compare
// equal.
type TTL struct {
	d      time.Duration
	finite bool
}

// Forever is the unbounded TTL, encoded as "INF".
var Forever TTL

// TTLOf returns a finite TTL of d.
func TTLOf(d time.Duration) TTL {
	return TTL{d: d, finite: true}
}

func (t TTL) IsForever() bool { return !t.finite }

func (t TTL) IsImmediate() bool { return t.finite && t.d <= 0 }

// Duration returns the duration of a finite TTL; ok is false for Forever.
func (t TTL) Duration() (d time.Duration, ok bool) {
	return t.d, t.finite
}

func (t TTL) Equal(o TTL) bool { return t == o }

func (t TTL) String() string {
	if !t.finite {
		return wire.Infinity
	}
	return wire.FormatSeconds(t.d)
}

func (t TTL) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TTL) UnmarshalText(d []byte) error {
	pt, err := ParseTTL(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// ParseTTL parses the lexical form of a ttl attribute.
func ParseTTL(s string) (TTL, error) {
	if strings.TrimPrefix(s, "+") == wire.Infinity {
		return Forever, nil
	}
	d, err := wire.ParseSeconds(s)
	if err != nil {
		return TTL{}, err
	}
	return TTLOf(d), nil
}

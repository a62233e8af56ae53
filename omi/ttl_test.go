package omi

import (
	"testing"
	"time"
)

func TestTTL(t *testing.T) {
	if !Forever.IsForever() || Forever.IsImmediate() || Forever.String() != "INF" {
		t.Errorf("Forever: %s", Forever)
	}
	zero := TTLOf(0)
	if zero.IsForever() || !zero.IsImmediate() || zero.Equal(Forever) {
		t.Error("TTLOf(0) conflated with Forever")
	}
	if !TTLOf(-time.Second).IsImmediate() {
		t.Error("negative TTL is not immediate")
	}
	tests := []struct {
		in   string
		want TTL
		text string
	}{
		{"INF", Forever, "INF"},
		{"+INF", Forever, "INF"},
		{"0", TTLOf(0), "0"},
		{"-1", TTLOf(-time.Second), "-1"},
		{"1.25", TTLOf(1250 * time.Millisecond), "1.25"},
		{"1e1", TTLOf(10 * time.Second), "10"},
	}
	for _, tt := range tests {
		var got TTL
		if err := got.UnmarshalText([]byte(tt.in)); err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("%q: got %s", tt.in, got)
		}
		if d, _ := got.MarshalText(); string(d) != tt.text {
			t.Errorf("%q: marshalled %q", tt.in, d)
		}
	}
	for _, s := range []string{"", "inf", "-INF", "forever", "NaN", "0x10"} {
		if _, err := ParseTTL(s); err == nil {
			t.Errorf("%q accepted", s)
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		in   string
		mode IntervalMode
	}{
		{"-1", OneShotInterval},
		{"-0.5", OneShotInterval},
		{"0", OnChangeInterval},
		{"2.5", PeriodicInterval},
	}
	for _, tt := range tests {
		i, err := ParseInterval(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if i.Mode() != tt.mode || i.String() != tt.in {
			t.Errorf("%q: mode %s string %q", tt.in, i.Mode(), i.String())
		}
	}
	var unset Interval
	if unset.IsSet() || unset.Mode() != NoInterval || unset.Equal(OnChange) {
		t.Error("zero Interval is set")
	}
	if !OneShot.Equal(IntervalOf(-time.Second)) {
		t.Error("OneShot is not -1s")
	}
	if _, err := ParseInterval("soon"); err == nil {
		t.Error("malformed interval accepted")
	}
}

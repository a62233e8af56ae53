package wire

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"0", 0},
		{"1", time.Second},
		{"+1", time.Second},
		{"-1", -time.Second},
		{"0.000000001", time.Nanosecond},
		{".5", 500 * time.Millisecond},
		{"1.", time.Second},
		{"2.25", 2250 * time.Millisecond},
		{"1.5e2", 150 * time.Second},
		{"1E-3", time.Millisecond},
		{"1.0000000004", time.Second},
	}
	for _, tt := range tests {
		got, err := ParseSeconds(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, s := range []string{"", ".", "-", "abc", "0x10", "1_0", "INF", "NaN", "1e", "1e400", " 1", "99999999999999999999",
		"9223372036.854775808", "-9223372036.854775809", "9223372037"} {
		if _, err := ParseSeconds(s); !errors.Is(err, ErrScalar) {
			t.Errorf("%q: got %v, want ErrScalar", s, err)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{time.Second, "1"},
		{-1500 * time.Millisecond, "-1.5"},
		{time.Nanosecond, "0.000000001"},
		{math.MinInt64, "-9223372036.854775808"},
		{math.MaxInt64, "9223372036.854775807"},
	}
	for _, tt := range tests {
		got := FormatSeconds(tt.in)
		if got != tt.want {
			t.Errorf("%v: got %q, want %q", tt.in, got, tt.want)
		}
		back, err := ParseSeconds(got)
		if err != nil || back != tt.in {
			t.Errorf("%q parsed back as %v, %v", got, back, err)
		}
	}
}

func TestTimes(t *testing.T) {
	ts, err := ParseTime("2024-01-02T03:04:05.5+02:00")
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseTime(FormatTime(ts))
	if err != nil || !back.Equal(ts) {
		t.Errorf("round trip: %v %v", back, err)
	}
	if _, err := ParseTime("2024-01-02"); !errors.Is(err, ErrScalar) {
		t.Errorf("date without time accepted: %v", err)
	}
	u, err := ParseUnixTime("10")
	if err != nil || !u.Equal(time.Unix(10, 0)) {
		t.Errorf("unix time: %v %v", u, err)
	}
	for _, s := range []string{"", "1.5", "x"} {
		if _, err := ParseUnixTime(s); err == nil {
			t.Errorf("%q accepted", s)
		}
	}
}

func TestParsePositive(t *testing.T) {
	if n, err := ParsePositive("12"); err != nil || n != 12 {
		t.Errorf("got %d, %v", n, err)
	}
	for _, s := range []string{"0", "-1", "", "1.0", "4294967296"} {
		if _, err := ParsePositive(s); err == nil {
			t.Errorf("%q accepted", s)
		}
	}
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("boom")
	err := error(Errorf("/omiEnvelope/@ttl", "malformed attribute", cause))
	if !errors.Is(err, ErrDecode) || !errors.Is(err, cause) {
		t.Errorf("%v does not match its sentinels", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Path != "/omiEnvelope/@ttl" {
		t.Errorf("got %+v", de)
	}
}

package wire

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrScalar = errors.New("malformed scalar")

// ParseSeconds parses a decimal number of seconds, as used by the ttl and
// interval attributes. Plain decimals with up to nine fractional digits are
// converted exactly; exponent forms are rounded to the nearest nanosecond.
func ParseSeconds(s string) (time.Duration, error) {
	sign, body := splitSign(s)
	intPart, frac, _ := strings.Cut(body, ".")
	if (intPart == "" && frac == "") || !digits(intPart) || !digits(frac) || len(frac) > 9 {
		return parseFloatSeconds(s)
	}
	if intPart == "" {
		intPart = "0"
	}
	sec, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil || sec > math.MaxInt64/uint64(time.Second) {
		return 0, fmt.Errorf("%w: %q out of range", ErrScalar, s)
	}
	var ns uint64
	if frac != "" {
		ns, _ = strconv.ParseUint(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
	}
	// below 2^64: sec*1e9 < 2^63 and ns < 1e9
	mag := sec*uint64(time.Second) + ns
	limit := uint64(math.MaxInt64)
	if sign < 0 {
		limit++
	}
	if mag > limit {
		return 0, fmt.Errorf("%w: %q out of range", ErrScalar, s)
	}
	if sign < 0 {
		// 1<<63 converts and negates to math.MinInt64
		return -time.Duration(mag), nil
	}
	return time.Duration(mag), nil
}

func parseFloatSeconds(s string) (time.Duration, error) {
	if !isExpDecimal(s) {
		return 0, fmt.Errorf("%w: %q is not a number of seconds", ErrScalar, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrScalar, s, err)
	}
	ns := math.Round(f * float64(time.Second))
	if ns >= math.MaxInt64 || ns <= math.MinInt64 {
		return 0, fmt.Errorf("%w: %q out of range", ErrScalar, s)
	}
	return time.Duration(ns), nil
}

// FormatSeconds formats d as decimal seconds without loss.
func FormatSeconds(d time.Duration) string {
	neg := d < 0
	var u uint64
	if neg {
		u = uint64(-(d + 1)) + 1
	} else {
		u = uint64(d)
	}
	sec, ns := u/uint64(time.Second), u%uint64(time.Second)
	s := strconv.FormatUint(sec, 10)
	if ns != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
	}
	if neg {
		return "-" + s
	}
	return s
}

// ParseTime parses an RFC 3339 timestamp.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an RFC 3339 timestamp", ErrScalar, s)
	}
	return t, nil
}

func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseUnixTime parses integral seconds since the Unix epoch.
func ParseUnixTime(s string) (time.Time, error) {
	sign, body := splitSign(s)
	if body == "" || !digits(body) {
		return time.Time{}, fmt.Errorf("%w: %q is not a unix time", ErrScalar, s)
	}
	n, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q out of range", ErrScalar, s)
	}
	return time.Unix(int64(sign)*n, 0), nil
}

// ParsePositive parses a strictly positive integer.
func ParsePositive(s string) (int, error) {
	sign, body := splitSign(s)
	if sign < 0 || body == "" || !digits(body) {
		return 0, fmt.Errorf("%w: %q is not a positive integer", ErrScalar, s)
	}
	n, err := strconv.ParseInt(body, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", ErrScalar, s)
	}
	return int(n), nil
}

func splitSign(s string) (int, string) {
	switch {
	case strings.HasPrefix(s, "-"):
		return -1, s[1:]
	case strings.HasPrefix(s, "+"):
		return 1, s[1:]
	}
	return 1, s
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isExpDecimal reports whether s has the form [+-]digits[.digits][(e|E)[+-]digits].
func isExpDecimal(s string) bool {
	_, body := splitSign(s)
	mant, exp, hasExp := strings.Cut(strings.ToLower(body), "e")
	intPart, frac, _ := strings.Cut(mant, ".")
	if intPart == "" && frac == "" {
		return false
	}
	if !digits(intPart) || !digits(frac) {
		return false
	}
	if !hasExp {
		return true
	}
	_, exp = splitSign(exp)
	return exp != "" && digits(exp)
}

package odf

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Value is the current value of an InfoItem.
//
// Type holds the schema type name as written on the wire (for example
// "xs:double"); the empty string means an untyped string. A zero Time means
// the value carries no timestamp.
type Value struct {
	Type string
	Text string
	Time time.Time
}

// Equal reports whether v and o hold the same content and timestamp.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.Type == o.Type && v.Text == o.Text && v.Time.Equal(o.Time)
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Check verifies that Text is a lexically valid instance of Type. Types
// that are not XML schema builtins are accepted as is.
func (v *Value) Check() error {
	if v == nil {
		return nil
	}
	return CheckTyped(v.Type, v.Text)
}

// CheckTyped verifies that text is a valid lexical form for the schema
// type typ.
func CheckTyped(typ, text string) error {
	local := typ
	if i := strings.IndexByte(typ, ':'); i >= 0 {
		prefix := typ[:i]
		if prefix != "xs" && prefix != "xsd" {
			return nil
		}
		local = typ[i+1:]
	}
	var err error
	switch local {
	case "", "string", "anyURI", "token", "normalizedString":
		return nil
	case "double", "float":
		switch text {
		case "INF", "-INF", "NaN":
			return nil
		}
		if !onlyRunes(text, "0123456789+-.eE") {
			return fmt.Errorf("%w: %q is not %s", ErrBadValue, text, typ)
		}
		_, err = strconv.ParseFloat(text, 64)
	case "decimal":
		if !onlyRunes(text, "0123456789+-.") {
			return fmt.Errorf("%w: %q is not %s", ErrBadValue, text, typ)
		}
		if _, ok := new(big.Rat).SetString(text); !ok {
			err = fmt.Errorf("invalid decimal")
		}
	case "integer", "long", "int", "short", "byte":
		var bits int
		switch local {
		case "long", "integer":
			bits = 64
		case "int":
			bits = 32
		case "short":
			bits = 16
		case "byte":
			bits = 8
		}
		if local == "integer" {
			if _, ok := new(big.Int).SetString(strings.TrimPrefix(text, "+"), 10); !ok {
				err = fmt.Errorf("invalid integer")
			}
			break
		}
		_, err = strconv.ParseInt(strings.TrimPrefix(text, "+"), 10, bits)
	case "unsignedLong", "unsignedInt", "unsignedShort", "unsignedByte", "nonNegativeInteger", "positiveInteger":
		var bits int
		switch local {
		case "unsignedInt":
			bits = 32
		case "unsignedShort":
			bits = 16
		case "unsignedByte":
			bits = 8
		default:
			bits = 64
		}
		var u uint64
		u, err = strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, bits)
		if err == nil && local == "positiveInteger" && u == 0 {
			err = fmt.Errorf("not positive")
		}
	case "boolean":
		switch text {
		case "true", "false", "1", "0":
			return nil
		}
		err = fmt.Errorf("invalid boolean")
	case "dateTime":
		_, err = time.Parse(time.RFC3339Nano, text)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %q is not %s", ErrBadValue, text, typ)
	}
	return nil
}

func onlyRunes(s, allowed string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool {
		return !strings.ContainsRune(allowed, r)
	})
}

package omi

import (
	"errors"
	"fmt"
)

// Kind identifies the payload variant of an envelope.
type Kind int

const (
	ReadKind Kind = iota
	WriteKind
	CancelKind
	ResponseKind
)

var ErrBadKind = errors.New("bad payload kind")

func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"read":     ReadKind,
		"write":    WriteKind,
		"cancel":   CancelKind,
		"response": ResponseKind,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case ReadKind:
		return []byte("read"), nil
	case WriteKind:
		return []byte("write"), nil
	case CancelKind:
		return []byte("cancel"), nil
	case ResponseKind:
		return []byte("response"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a payload kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

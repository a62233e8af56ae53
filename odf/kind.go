package odf

import (
	"errors"
	"fmt"
)

// Kind is the kind of a node in an Objects tree.
type Kind int

const (
	// ObjectsKind is the root of a tree. Its ID is always "Objects".
	ObjectsKind Kind = iota
	ObjectKind
	InfoItemKind
)

// RootID is the identifier of the root of every Objects tree.
const RootID = "Objects"

var ErrBadKind = errors.New("bad kind")

func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"Objects":  ObjectsKind,
		"Object":   ObjectKind,
		"InfoItem": InfoItemKind,
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
	case ObjectsKind:
		return []byte("Objects"), nil
	case ObjectKind:
		return []byte("Object"), nil
	case InfoItemKind:
		return []byte("InfoItem"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
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

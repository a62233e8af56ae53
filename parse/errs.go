package parse

import (
	"github.com/signadot/go-omi/wire"
)

const (
	reasonMalformed   = "malformed document"
	reasonUnexpected  = "unexpected element"
	reasonUnexpAttr   = "unexpected attribute"
	reasonUnexpText   = "unexpected text"
	reasonDuplicate   = "duplicate element"
	reasonMissing     = "missing element"
	reasonMissingAttr = "missing attribute"
	reasonBadAttr     = "malformed attribute"
	reasonBadValue    = "malformed value"
	reasonUnboundNS   = "unbound namespace prefix"
)

func unexpected(path string) error {
	return wire.Errorf(path, reasonUnexpected, nil)
}

func duplicate(path string) error {
	return wire.Errorf(path, reasonDuplicate, nil)
}

func badAttr(path, name string, err error) error {
	return wire.Errorf(path+"/@"+name, reasonBadAttr, err)
}

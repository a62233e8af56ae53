package omi

import (
	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/wire"
)

// WriteRequest writes the values carried by its embedded Objects tree.
type WriteRequest struct {
	RequestBase
}

// NewWrite validates w and returns it. At least one embedded node must
// carry a value.
func NewWrite(w WriteRequest) (*WriteRequest, error) {
	res := &w
	if err := checkPayload(res); err != nil {
		return nil, err
	}
	return res, nil
}

// WriteObjects returns a write request for the values in root.
func WriteObjects(root *odf.Node) (*WriteRequest, error) {
	return NewWrite(WriteRequest{RequestBase: RequestBase{Msg: ObjectsMsg(root)}})
}

func (w *WriteRequest) required() error {
	path := wire.ElemWrite
	if err := w.RequestBase.check(path); err != nil {
		return err
	}
	if !w.Objects().HasValue() {
		return invalid(RuleRequired, path, "no values")
	}
	return nil
}

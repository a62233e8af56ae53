package wire

import (
	"errors"
	"fmt"
)

var ErrDecode = errors.New("decode error")

// DecodeError reports wire content that cannot be mapped to the model.
// Path locates the offending element, for example
// "/omiEnvelope/read[1]/msg[1]/Objects[1]/Object[2]".
type DecodeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("wire: %s at %s", e.Reason, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func Errorf(path, reason string, err error) *DecodeError {
	return &DecodeError{Path: path, Reason: reason, Err: err}
}

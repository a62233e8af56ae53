package odf

import (
	"errors"
	"fmt"
)

var (
	ErrStructure = errors.New("structural error")
	ErrConflict  = errors.New("merge conflict")
	ErrNotFound  = errors.New("not found")
	ErrBadValue  = errors.New("bad value")
)

// StructuralError reports a node that cannot be built as part of a tree.
type StructuralError struct {
	Path   string
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("odf: %s", e.Reason)
	}
	return fmt.Sprintf("odf: %s: %s", e.Path, e.Reason)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructure
}

// MergeConflict reports two trees that cannot be merged at Path.
type MergeConflict struct {
	Path   string
	Reason string
}

func (e *MergeConflict) Error() string {
	return fmt.Sprintf("odf: merge conflict at %s: %s", e.Path, e.Reason)
}

func (e *MergeConflict) Is(target error) bool {
	return target == ErrConflict
}

// NotFound reports a path that does not resolve to a node.
type NotFound struct {
	Path string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("odf: %s: not found", e.Path)
}

func (e *NotFound) Is(target error) bool {
	return target == ErrNotFound
}

package omi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalid            = errors.New("invalid envelope")
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// Validation rules, in the order Validate applies them.
const (
	RulePayload    = "payload"
	RuleRequired   = "required"
	RuleNodeTree   = "node-tree"
	RuleReturnCode = "return-code"
)

// ValidationError reports a well formed envelope that breaks a rule.
type ValidationError struct {
	Rule   string
	Path   string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("omi: %s", e.Reason)
	if e.Path != "" {
		msg = fmt.Sprintf("omi: %s: %s", e.Path, e.Reason)
	}
	msg += " [" + e.Rule + "]"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// UnsupportedVersionError reports an envelope version outside the
// allow-list.
type UnsupportedVersionError struct {
	Version   string
	Supported []string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("omi: unsupported version %q (supported: %s)", e.Version, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

func invalid(rule, path, reason string) *ValidationError {
	return &ValidationError{Rule: rule, Path: path, Reason: reason}
}

package omi

import (
	"errors"
	"log/slog"

	"github.com/signadot/go-omi/debug"
	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/wire"
)

type validateOpts struct {
	versions []string
	log      *slog.Logger
}

type ValidateOption func(*validateOpts)

// Versions sets the version allow-list.
func Versions(vs ...string) ValidateOption {
	return func(o *validateOpts) { o.versions = vs }
}

func Logger(l *slog.Logger) ValidateOption {
	return func(o *validateOpts) { o.log = l }
}

// Validate checks env and returns the first violation:
//
//  0. the version is in the allow-list (UnsupportedVersionError)
//  1. there is exactly one payload
//  2. payload specific required fields are present
//  3. embedded Objects trees are trees with unique sibling ids
//  4. return codes are in the enumerated set
//
// Validate never repairs an envelope.
func Validate(env *Envelope, opts ...ValidateOption) error {
	o := &validateOpts{versions: DefaultVersions}
	for _, f := range opts {
		f(o)
	}
	err := validate(env, o)
	if err != nil {
		if debug.Validate() {
			debug.Logf("omi.Validate: %v\n", err)
		}
		if o.log != nil {
			logValidation(o.log, err)
		}
	}
	return err
}

func validate(env *Envelope, o *validateOpts) error {
	if env == nil {
		return invalid(RulePayload, "", "nil envelope")
	}
	if err := CheckVersion(env.Version, o.versions); err != nil {
		return err
	}
	if env.Payload == nil || env.Payload.isNil() {
		return invalid(RulePayload, wire.ElemEnvelope, "envelope has no payload")
	}
	return checkPayload(env.Payload)
}

// checkPayload applies rules 2 to 4 to p.
func checkPayload(p Payload) error {
	if err := p.required(); err != nil {
		return err
	}
	for _, t := range p.trees() {
		if err := odf.Check(t.root); err != nil {
			var se *odf.StructuralError
			if errors.As(err, &se) {
				return &ValidationError{Rule: RuleNodeTree, Path: t.path + "/" + se.Path, Reason: se.Reason, Err: se.Err}
			}
			return &ValidationError{Rule: RuleNodeTree, Path: t.path, Reason: err.Error()}
		}
	}
	if l, ok := p.AsResponse(); ok {
		return l.returns()
	}
	return nil
}

func logValidation(l *slog.Logger, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		l.Debug("envelope rejected", "rule", ve.Rule, "path", ve.Path, "reason", ve.Reason)
		return
	}
	l.Debug("envelope rejected", "error", err)
}

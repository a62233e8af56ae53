package omi

import "slices"

// Version1 is the O-MI 1.0 protocol version.
const Version1 = "1.0"

// DefaultVersions is the version allow-list used when none is configured.
var DefaultVersions = []string{Version1}

// Envelope is an O-MI message: protocol version, time-to-live and exactly
// one payload.
type Envelope struct {
	Version string
	TTL     TTL
	Payload Payload
}

// Wrap validates and returns an envelope for p. It fails with an
// UnsupportedVersionError when version is not in the allow-list, which is
// DefaultVersions unless opts give another.
func Wrap(p Payload, version string, ttl TTL, opts ...ValidateOption) (*Envelope, error) {
	env := &Envelope{Version: version, TTL: ttl, Payload: p}
	if err := Validate(env, opts...); err != nil {
		return nil, err
	}
	return env, nil
}

// Kind returns the kind of the payload.
func (e *Envelope) Kind() Kind {
	return e.Payload.Kind()
}

// CheckVersion reports whether version is in versions.
func CheckVersion(version string, versions []string) error {
	if !slices.Contains(versions, version) {
		return &UnsupportedVersionError{Version: version, Supported: slices.Clone(versions)}
	}
	return nil
}

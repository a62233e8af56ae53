// Package omi models O-MI envelopes and their payloads.
//
// # Overview
//
// An Envelope carries a protocol version, a time-to-live and exactly one
// Payload. The payloads form a closed set:
//
//   - *ReadRequest: read, subscribe to or poll nodes
//   - *WriteRequest: write the values of an embedded Objects tree
//   - *CancelRequest: terminate subscriptions by request id
//   - *ResponseList: ordered results, each with a Return
//
// Payloads are built with NewRead, NewWrite, NewCancel and NewResponse and
// wrapped with Wrap. Every constructor validates its result, so a value
// returned without error is complete.
//
//	read, err := omi.NewRead(omi.ReadRequest{
//	    RequestBase: omi.RequestBase{NodeList: []string{"Objects/a/b"}},
//	    Interval:    omi.OneShot,
//	})
//	env, err := omi.Wrap(read, omi.Version1, omi.Forever)
//
// # Validation
//
// Validate applies the envelope rules in a fixed order and reports the
// first violation as a *ValidationError (with Rule and Path) or an
// *UnsupportedVersionError. It is called by the decoder after parsing and by
// the encoder before writing.
//
// # Time-to-live
//
// The zero TTL is Forever. TTLOf(d) with d <= 0 is immediate and is never
// equal to Forever.
//
// # Related Packages
//
//   - github.com/signadot/go-omi/odf - Objects trees
//   - github.com/signadot/go-omi/parse - decodes envelopes
//   - github.com/signadot/go-omi/encode - encodes envelopes
package omi

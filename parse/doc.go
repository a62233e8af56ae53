// Package parse decodes O-MI envelopes.
//
// The document is first read into a generic element graph and each element
// is then mapped by namespace and name onto the model in
// github.com/signadot/go-omi/omi. The mapping is strict:
//
//   - the version attribute is checked before anything else
//   - elements outside the known vocabulary fail with a *wire.DecodeError
//     naming their path, except under msg where elements of foreign
//     namespaces are kept verbatim as omi.Raw
//   - unknown unqualified attributes are errors
//   - attribute values are coerced exactly; there are no defaults for
//     malformed input
//
// A decoded envelope is passed to omi.Validate before it is returned, so
// Parse never returns an envelope the encoder would refuse.
//
// Paths in errors index every element among its same-named siblings,
// starting at 1:
//
//	/omiEnvelope/write[1]/msg[1]/Objects[1]/Object[2]/InfoItem[1]
package parse

// Package wire holds the vocabulary shared by the O-MI decoder and encoder:
// namespaces, element and attribute names, strict scalar coercions and the
// DecodeError type.
//
// All scalar parsers are strict: a malformed lexical form is an error, never
// a default.
package wire

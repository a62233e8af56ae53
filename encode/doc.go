// Package encode writes O-MI envelopes as XML.
//
// Encode validates the envelope with omi.Validate before writing anything,
// so an envelope that would not decode is never written. Output is compact
// unless Indent is given; text content is never reflowed, so whitespace in
// identifiers and values survives a round trip through
// github.com/signadot/go-omi/parse.
//
// Elements are written in a fixed order: payload attributes, then
// nodeList, requestID and msg. Inside an InfoItem the description comes
// first, then MetaData, then the value. Children of Objects and Object
// nodes keep their stored order.
//
// EncodeColors colours the output for terminals with
// github.com/fatih/color.
package encode

// Package wire implements the primitive codecs every payload and block
// layout is built from: fixed-size fields, uvarint-prefixed byte strings,
// unsigned LEB128 integers, booleans and count-prefixed lists.
//
// Encoding goes through an Encoder that records the first failure; decoding
// is a set of free functions threading an explicit (buf, off) cursor and
// returning the next offset, so no decoder keeps hidden state.
//
// # Errors
//
// Two error kinds are kept apart:
//
//   - *AssertionError: the caller handed a serializer a record that cannot
//     be encoded. It is a programming error; no bytes are produced.
//   - *DecodeError: the input bytes are malformed (truncated, trailing
//     bytes, overflowing or non-minimal varints, unknown tags).
//
// Use errors.Is with ErrAssertion / ErrDecode to tell them apart, or with
// the specific sentinels (ErrTruncated, ErrTrailingBytes, ...).
package wire

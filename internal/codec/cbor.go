// Package codec renders decoded blocks for the inspect command in CBOR and
// in CBOR diagnostic notation.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2) so the same
// block always produces the same bytes. Key and hash types serialise as
// hex text strings through their MarshalText methods, matching the JSON
// and YAML renderings.
package codec

import "github.com/fxamacker/cbor/v2"

var encMode cbor.EncMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to deterministic CBOR.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// Package inspect turns blocks into printable views for the CLI.
package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"trustchain/internal/block"
	"trustchain/internal/codec"
	"trustchain/internal/domain"
	"trustchain/internal/payload"
)

// Output formats accepted by Render.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCBOR     = "cbor"
	FormatCBORDiag = "cbor-diag"
)

// ErrUnknownFormat is returned by Render for formats other than the above.
var ErrUnknownFormat = errors.New("unknown output format")

// Verification outcomes recorded on a View.
const (
	VerifiedRoot      = "root"
	VerifiedSignature = "signature"
)

// View is the printable form of a block with its payload decoded.
type View struct {
	Hash         domain.Hash      `json:"hash"`
	TrustchainID domain.Hash      `json:"trustchain_id"`
	Index        uint64           `json:"index"`
	Nature       string           `json:"nature"`
	NatureTag    uint64           `json:"nature_tag"`
	Kind         string           `json:"kind"`
	Version      int              `json:"version"`
	Author       domain.Hash      `json:"author"`
	Signature    domain.Signature `json:"signature"`
	Verified     string           `json:"verified,omitempty"`
	Payload      payload.Record   `json:"payload"`
}

// NewView decodes b's payload and collects its header.
func NewView(b block.Block) (View, error) {
	rec, err := b.DecodePayload()
	if err != nil {
		return View{}, err
	}
	return View{
		Hash:         b.Hash(),
		TrustchainID: b.TrustchainID,
		Index:        b.Index,
		Nature:       b.Nature.String(),
		NatureTag:    uint64(b.Nature),
		Kind:         b.Nature.Kind().String(),
		Version:      b.Nature.Version(),
		Author:       b.Author,
		Signature:    b.Signature,
		Payload:      rec,
	}, nil
}

// Render encodes v in the given format. YAML and CBOR are produced from the
// JSON rendering so that every format shows the same field names and the
// same text form for keys and byte strings. FormatCBORDiag prints the CBOR
// encoding in diagnostic notation.
func Render(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML, FormatCBOR, FormatCBORDiag:
		tree, err := toTree(v)
		if err != nil {
			return nil, err
		}
		if format == FormatYAML {
			return yaml.Marshal(tree)
		}
		out, err := codec.Marshal(tree)
		if err != nil || format == FormatCBOR {
			return out, err
		}
		diag, err := codec.Diagnose(out)
		if err != nil {
			return nil, err
		}
		return []byte(diag + "\n"), nil
	default:
		return nil, fmt.Errorf("%w %q (want json, yaml, cbor or cbor-diag)", ErrUnknownFormat, format)
	}
}

// toTree converts v to the generic value tree its JSON encoding describes,
// keeping integers exact.
func toTree(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return normalize(tree), nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	case json.Number:
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return u
		}
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	default:
		return v
	}
}

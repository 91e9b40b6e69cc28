package block

import (
	"fmt"

	"trustchain/internal/nature"
	"trustchain/internal/payload"
	"trustchain/internal/wire"
)

// Serialize encodes b as canonical form followed by the signature.
func Serialize(b Block) []byte {
	return append(b.CanonicalForm(), b.Signature[:]...)
}

// Unserialize decodes a block. It rejects truncated input, trailing bytes,
// unregistered natures and payloads that do not decode under their nature.
// It does not verify the signature.
func Unserialize(buf []byte) (Block, error) {
	var b Block
	off, err := wire.ReadInto(buf, 0, b.TrustchainID[:], "trustchain_id")
	if err != nil {
		return Block{}, err
	}
	if b.Index, off, err = wire.ReadUvarint(buf, off, "index"); err != nil {
		return Block{}, err
	}
	natureOff := off
	var tag uint64
	if tag, off, err = wire.ReadUvarint(buf, off, "nature"); err != nil {
		return Block{}, err
	}
	if b.Nature, err = nature.Parse(tag); err != nil {
		return Block{}, wire.NewDecodeError("nature", natureOff, err)
	}
	if off, err = wire.ReadInto(buf, off, b.Author[:], "author"); err != nil {
		return Block{}, err
	}
	payloadOff := off
	if b.Payload, off, err = wire.ReadVariable(buf, off, "payload"); err != nil {
		return Block{}, err
	}
	if off, err = wire.ReadInto(buf, off, b.Signature[:], "signature"); err != nil {
		return Block{}, err
	}
	if err := wire.ExpectEnd(buf, off, "block"); err != nil {
		return Block{}, err
	}
	if _, err := payload.Unserialize(b.Nature, b.Payload); err != nil {
		return Block{}, fmt.Errorf("block payload at offset %d: %w", payloadOff, err)
	}
	return b, nil
}

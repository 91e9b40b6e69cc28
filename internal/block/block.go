// Package block implements the trustchain block: a signed envelope around
// one payload record.
//
// Wire layout:
//
//	trustchain_id (32) | index (uvarint) | nature (uvarint) |
//	author (32) | payload (uvarint length + bytes) | signature (64)
//
// Everything before the signature is the canonical form, which is exactly
// the message the author signs. Unserialize validates structure only;
// signatures are checked separately with Verify.
package block

import (
	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/payload"
	"trustchain/internal/wire"
)

// Block is one entry of a trustchain.
type Block struct {
	TrustchainID domain.Hash
	Index        uint64
	Nature       nature.Nature
	Author       domain.Hash
	Payload      []byte
	Signature    domain.Signature
}

// New builds an unsigned block carrying r under the preferred nature of its
// kind.
func New(trustchainID domain.Hash, index uint64, author domain.Hash, r payload.Record) (Block, error) {
	n := nature.Preferred(r.Kind())
	data, err := payload.Serialize(n, r)
	if err != nil {
		return Block{}, err
	}
	return Block{
		TrustchainID: trustchainID,
		Index:        index,
		Nature:       n,
		Author:       author,
		Payload:      data,
	}, nil
}

// CanonicalForm returns the signed portion of the block. The returned
// slice has room for the signature to be appended without copying.
func (b Block) CanonicalForm() []byte {
	e := wire.NewEncoder(2*domain.HashSize + 3*wire.MaxUvarintLen + len(b.Payload) + domain.SignatureSize)
	e.Fixed("trustchain_id", b.TrustchainID[:], domain.HashSize)
	e.Uvarint(b.Index)
	e.Uvarint(uint64(b.Nature))
	e.Fixed("author", b.Author[:], domain.HashSize)
	e.Variable(b.Payload)
	// Every field is sized by its type, so encoding cannot fail.
	out, _ := e.Bytes()
	return out
}

// Hash identifies the block by its content: BLAKE2b over the nature, author
// and payload. It excludes the trustchain id and index so that the root
// block's hash can serve as the trustchain id.
func (b Block) Hash() domain.Hash {
	e := wire.NewEncoder(wire.MaxUvarintLen + domain.HashSize + len(b.Payload))
	e.Uvarint(uint64(b.Nature))
	e.Fixed("author", b.Author[:], domain.HashSize)
	prefix, _ := e.Bytes()
	return crypto.Hash(prefix, b.Payload)
}

// DecodePayload decodes the payload with the codec selected by the nature.
func (b Block) DecodePayload() (payload.Record, error) {
	return payload.Unserialize(b.Nature, b.Payload)
}

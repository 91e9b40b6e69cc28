package block

import (
	"bytes"
	"errors"
	"fmt"

	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/payload"
)

var (
	// ErrInvalidSignature is returned when a block's signature does not
	// verify over its canonical form.
	ErrInvalidSignature = errors.New("block: invalid signature")
	// ErrNotRoot is returned by VerifyRoot for blocks that cannot start a
	// trustchain.
	ErrNotRoot = errors.New("block: not a trustchain root")
)

// RootIndex is the index of the first block of every trustchain.
const RootIndex = 1

// Sign returns a copy of b signed with key. The input is not modified.
func Sign(b Block, key domain.PrivateSignatureKey) Block {
	b.Payload = bytes.Clone(b.Payload)
	b.Signature = crypto.Sign(key, b.CanonicalForm())
	return b
}

// Verify checks b's signature against the author's public signature key.
func Verify(b Block, key domain.PublicSignatureKey) error {
	if !crypto.Verify(key, b.CanonicalForm(), b.Signature) {
		return ErrInvalidSignature
	}
	return nil
}

// NewRoot creates the signed root block of a new trustchain owned by key.
// The trustchain id is the root block's hash.
func NewRoot(key domain.PrivateSignatureKey) (Block, error) {
	rec := payload.TrustchainCreation{PublicSignatureKey: crypto.PublicSignatureKeyOf(key)}
	b, err := New(domain.Hash{}, RootIndex, domain.Hash{}, rec)
	if err != nil {
		return Block{}, err
	}
	b.TrustchainID = b.Hash()
	return Sign(b, key), nil
}

// VerifyRoot checks that b can start a trustchain: it is a trustchain
// creation at the root index with no author, its trustchain id is its own
// hash, and it is signed by the key it carries. It returns that key.
func VerifyRoot(b Block) (domain.PublicSignatureKey, error) {
	if b.Nature != nature.TrustchainCreation {
		return domain.PublicSignatureKey{}, fmt.Errorf("%w: nature is %s", ErrNotRoot, b.Nature)
	}
	if b.Index != RootIndex || !b.Author.IsZero() {
		return domain.PublicSignatureKey{}, fmt.Errorf("%w: index %d, author %s", ErrNotRoot, b.Index, b.Author)
	}
	if b.TrustchainID != b.Hash() {
		return domain.PublicSignatureKey{}, fmt.Errorf("%w: trustchain id is not the block hash", ErrNotRoot)
	}
	rec, err := payload.UnserializeTrustchainCreation(b.Payload)
	if err != nil {
		return domain.PublicSignatureKey{}, err
	}
	if err := Verify(b, rec.PublicSignatureKey); err != nil {
		return domain.PublicSignatureKey{}, err
	}
	return rec.PublicSignatureKey, nil
}

package types

import (
	"encoding/hex"
	"fmt"
)

// Sizes of the fixed-width protocol fields, in bytes.
const (
	HashSize                 = 32
	SignatureSize            = 64
	PublicSignatureKeySize   = 32
	PrivateSignatureKeySize  = 64
	PublicEncryptionKeySize  = 32
	PrivateEncryptionKeySize = 32
	SymmetricKeySize         = 32
	MacSize                  = 16
	XChaChaIVSize            = 24

	// SealOverhead is what an anonymous sealed box adds to its plaintext:
	// the ephemeral public key plus the Poly1305 tag.
	SealOverhead = 48

	SealedKeySize                  = SymmetricKeySize + SealOverhead
	SealedSignaturePrivateKeySize  = PrivateSignatureKeySize + SealOverhead
	SealedEncryptionPrivateKeySize = PrivateEncryptionKeySize + SealOverhead
)

// Hash is a BLAKE2b-256 digest. Block hashes double as trustchain, device
// and group identifiers.
type Hash [HashSize]byte

// Slice returns the hash as a []byte.
func (h Hash) Slice() []byte { return h[:] }

// IsZero reports whether every byte of the hash is zero.
func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) String() string                   { return hex.EncodeToString(h[:]) }
func (h Hash) MarshalText() ([]byte, error)     { return marshalHex(h[:]) }
func (h *Hash) UnmarshalText(text []byte) error { return unmarshalHex(h[:], text, "hash") }

// Signature is an Ed25519 signature.
type Signature [SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

func (s Signature) String() string                   { return hex.EncodeToString(s[:]) }
func (s Signature) MarshalText() ([]byte, error)     { return marshalHex(s[:]) }
func (s *Signature) UnmarshalText(text []byte) error { return unmarshalHex(s[:], text, "signature") }

// PublicSignatureKey is an Ed25519 public key.
type PublicSignatureKey [PublicSignatureKeySize]byte

// Slice returns the key as a []byte.
func (k PublicSignatureKey) Slice() []byte { return k[:] }

func (k PublicSignatureKey) String() string               { return hex.EncodeToString(k[:]) }
func (k PublicSignatureKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *PublicSignatureKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "public signature key")
}

// PrivateSignatureKey is an Ed25519 private key in its 64-byte seed||public form.
type PrivateSignatureKey [PrivateSignatureKeySize]byte

// Slice returns the key as a []byte.
func (k PrivateSignatureKey) Slice() []byte { return k[:] }

func (k PrivateSignatureKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *PrivateSignatureKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "private signature key")
}

// PublicEncryptionKey is a Curve25519 public key.
type PublicEncryptionKey [PublicEncryptionKeySize]byte

// Slice returns the key as a []byte.
func (k PublicEncryptionKey) Slice() []byte { return k[:] }

func (k PublicEncryptionKey) String() string               { return hex.EncodeToString(k[:]) }
func (k PublicEncryptionKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *PublicEncryptionKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "public encryption key")
}

// PrivateEncryptionKey is a clamped Curve25519 private key.
type PrivateEncryptionKey [PrivateEncryptionKeySize]byte

// Slice returns the key as a []byte.
func (k PrivateEncryptionKey) Slice() []byte { return k[:] }

func (k PrivateEncryptionKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *PrivateEncryptionKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "private encryption key")
}

// SymmetricKey is a resource encryption key.
type SymmetricKey [SymmetricKeySize]byte

// Slice returns the key as a []byte.
func (k SymmetricKey) Slice() []byte { return k[:] }

func (k SymmetricKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *SymmetricKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "symmetric key")
}

// Mac is a 16-byte authentication tag. Resource identifiers are the MAC of
// the resource's first encrypted chunk, so they share this type.
type Mac [MacSize]byte

// Slice returns the MAC as a []byte.
func (m Mac) Slice() []byte { return m[:] }

func (m Mac) String() string                   { return hex.EncodeToString(m[:]) }
func (m Mac) MarshalText() ([]byte, error)     { return marshalHex(m[:]) }
func (m *Mac) UnmarshalText(text []byte) error { return unmarshalHex(m[:], text, "mac") }

// SealedKey is a SymmetricKey or PrivateEncryptionKey inside an anonymous
// sealed box.
type SealedKey [SealedKeySize]byte

// Slice returns the sealed key as a []byte.
func (k SealedKey) Slice() []byte { return k[:] }

func (k SealedKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *SealedKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "sealed key")
}

// SealedSignaturePrivateKey is a PrivateSignatureKey inside an anonymous
// sealed box.
type SealedSignaturePrivateKey [SealedSignaturePrivateKeySize]byte

// Slice returns the sealed key as a []byte.
func (k SealedSignaturePrivateKey) Slice() []byte { return k[:] }

func (k SealedSignaturePrivateKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *SealedSignaturePrivateKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "sealed signature private key")
}

// SealedEncryptionPrivateKey has the same layout as SealedKey but is kept
// distinct so that group and user private keys are not mixed with resource
// keys.
type SealedEncryptionPrivateKey [SealedEncryptionPrivateKeySize]byte

// Slice returns the sealed key as a []byte.
func (k SealedEncryptionPrivateKey) Slice() []byte { return k[:] }

func (k SealedEncryptionPrivateKey) MarshalText() ([]byte, error) { return marshalHex(k[:]) }
func (k *SealedEncryptionPrivateKey) UnmarshalText(text []byte) error {
	return unmarshalHex(k[:], text, "sealed encryption private key")
}

func marshalHex(b []byte) ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out, nil
}

func unmarshalHex(dst, text []byte, name string) error {
	if hex.DecodedLen(len(text)) != len(dst) {
		return fmt.Errorf("%s: want %d hex bytes, got %d characters", name, len(dst), len(text))
	}
	if _, err := hex.Decode(dst, text); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"

	"trustchain/internal/domain"
)

// GenerateEncryptionKeyPair returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func GenerateEncryptionKeyPair() (priv domain.PrivateEncryptionKey, pub domain.PublicEncryptionKey, err error) {
	if _, err = rand.Read(priv[:]); err != nil {
		return
	}
	clamp(&priv)
	pub, err = PublicEncryptionKeyOf(priv)
	return
}

// PublicEncryptionKeyOf derives the public key for priv.
func PublicEncryptionKeyOf(priv domain.PrivateEncryptionKey) (pub domain.PublicEncryptionKey, err error) {
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

func clamp(k *domain.PrivateEncryptionKey) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"trustchain/internal/domain"
)

// GenerateSignatureKeyPair returns a new Ed25519 signing key pair.
func GenerateSignatureKeyPair() (priv domain.PrivateSignatureKey, pub domain.PublicSignatureKey, err error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, err
	}
	copy(priv[:], sk)
	copy(pub[:], pk)
	return priv, pub, nil
}

// Sign signs msg with priv.
func Sign(priv domain.PrivateSignatureKey, msg []byte) domain.Signature {
	var sig domain.Signature
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(priv[:]), msg))
	return sig
}

// Verify reports whether sig is a valid signature of msg by pub.
func Verify(pub domain.PublicSignatureKey, msg []byte, sig domain.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:])
}

// PublicSignatureKeyOf extracts the public half embedded in priv.
func PublicSignatureKeyOf(priv domain.PrivateSignatureKey) domain.PublicSignatureKey {
	var pub domain.PublicSignatureKey
	copy(pub[:], ed25519.PrivateKey(priv[:]).Public().(ed25519.PublicKey))
	return pub
}

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"trustchain/internal/domain"
)

// ErrDecrypt is returned when an AEAD ciphertext fails authentication.
var ErrDecrypt = errors.New("crypto: ciphertext failed authentication")

// AEADOverhead is what EncryptAEAD adds to a plaintext: the IV prefix and
// the Poly1305 tag.
const AEADOverhead = domain.XChaChaIVSize + domain.MacSize

// EncryptAEAD encrypts plaintext under key with XChaCha20-Poly1305 and a
// random IV. The output is iv || ciphertext || mac.
func EncryptAEAD(key domain.SymmetricKey, plaintext, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, domain.XChaChaIVSize, domain.XChaChaIVSize+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(out); err != nil {
		return nil, err
	}
	return aead.Seal(out, out[:domain.XChaChaIVSize], plaintext, ad), nil
}

// DecryptAEAD reverses EncryptAEAD.
func DecryptAEAD(key domain.SymmetricKey, ciphertext, ad []byte) ([]byte, error) {
	if len(ciphertext) < AEADOverhead {
		return nil, fmt.Errorf("crypto: ciphertext too short: %d bytes", len(ciphertext))
	}
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, err
	}
	iv, body := ciphertext[:domain.XChaChaIVSize], ciphertext[domain.XChaChaIVSize:]
	pt, err := aead.Open(nil, iv, body, ad)
	if err != nil {
		return nil, ErrDecrypt
	}
	return pt, nil
}

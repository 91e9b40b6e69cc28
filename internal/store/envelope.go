package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"trustchain/internal/crypto"
)

// envelopeVersion is the only on-disk format this package writes or reads.
const envelopeVersion = 1

// envelopeAD binds the ciphertext to its purpose so that a blob cannot be
// replayed as another kind of secret.
var envelopeAD = []byte("trustchain device keys")

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key store")
	// ErrUnsupportedEnvelope is returned for blobs written by a newer version.
	ErrUnsupportedEnvelope = errors.New("unsupported key store version")
)

// KDFParams are the scrypt cost parameters used to derive the envelope key.
type KDFParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// DefaultKDF is the interactive-login scrypt cost.
var DefaultKDF = KDFParams{N: 1 << 15, R: 8, P: 1}

// envelope is the on-disk JSON structure. The KDF parameters travel with the
// ciphertext so that they can be raised without breaking existing stores.
type envelope struct {
	V      int       `json:"v"`
	KDF    KDFParams `json:"scrypt"`
	Salt   []byte    `json:"salt"`
	Nonce  []byte    `json:"nonce"`
	Cipher []byte    `json:"cipher"`
}

func deriveKey(passphrase string, salt []byte, kdf KDFParams) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// seal encrypts raw under a key derived from passphrase and returns the JSON
// envelope.
func seal(passphrase string, raw []byte, kdf KDFParams) ([]byte, error) {
	env := envelope{
		V:     envelopeVersion,
		KDF:   kdf,
		Salt:  make([]byte, 16),
		Nonce: make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(env.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(env.Nonce); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, env.Salt, kdf)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	env.Cipher = aead.Seal(nil, env.Nonce, raw, envelopeAD)
	return json.MarshalIndent(env, "", "  ")
}

// open reverses seal. The caller owns the returned plaintext and should wipe
// it once decoded.
func open(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("parse key store: %w", err)
	}
	if env.V != envelopeVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedEnvelope, env.V)
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("parse key store: nonce is %d bytes", len(env.Nonce))
	}
	key, err := deriveKey(passphrase, env.Salt, env.KDF)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, envelopeAD)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

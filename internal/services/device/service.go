package device

import (
	"fmt"
	"unicode"

	"trustchain/internal/crypto"
	"trustchain/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages device key creation and access using a backing store.
//
// The device keys contain:
//   - An Ed25519 key pair that signs the blocks this device authors.
//   - An X25519 key pair that sealed resource and user keys are addressed to.
type Service struct {
	store domain.DeviceKeyStore
}

// New returns a device service backed by the given store.
func New(s domain.DeviceKeyStore) *Service { return &Service{store: s} }

// GenerateDeviceKeys creates new device keys, saves them encrypted with the
// passphrase, and returns them plus a short fingerprint of the public
// signature key.
func (s *Service) GenerateDeviceKeys(
	passphrase string,
) (domain.DeviceKeys, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.DeviceKeys{}, "", ErrWeakPassphrase
	}

	sigPriv, sigPub, err := crypto.GenerateSignatureKeyPair()
	if err != nil {
		return domain.DeviceKeys{}, "", err
	}
	encPriv, encPub, err := crypto.GenerateEncryptionKeyPair()
	if err != nil {
		return domain.DeviceKeys{}, "", err
	}

	keys := domain.DeviceKeys{
		SignaturePublic:   sigPub,
		SignaturePrivate:  sigPriv,
		EncryptionPublic:  encPub,
		EncryptionPrivate: encPriv,
	}
	if err := s.store.SaveDeviceKeys(passphrase, keys); err != nil {
		return domain.DeviceKeys{}, "", err
	}
	return keys, crypto.Fingerprint(keys.SignaturePublic.Slice()), nil
}

// LoadDeviceKeys decrypts and returns the local device keys.
func (s *Service) LoadDeviceKeys(passphrase string) (domain.DeviceKeys, error) {
	return s.store.LoadDeviceKeys(passphrase)
}

// FingerprintDevice returns a short fingerprint of the local public
// signature key.
func (s *Service) FingerprintDevice(passphrase string) (domain.Fingerprint, error) {
	keys, err := s.store.LoadDeviceKeys(passphrase)
	if err != nil {
		return "", err
	}
	defer crypto.WipeDeviceKeys(&keys)
	return crypto.Fingerprint(keys.SignaturePublic.Slice()), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len([]rune(passphrase)) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.DeviceKeyService.
var _ domain.DeviceKeyService = (*Service)(nil)

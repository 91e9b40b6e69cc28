package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"trustchain/internal/crypto"
	"trustchain/internal/domain"
)

const deviceKeysFilename = "device_keys.json.enc"

// ErrNoDeviceKeys is returned by LoadDeviceKeys before any keys were saved.
var ErrNoDeviceKeys = errors.New("no device keys; run keygen first")

// DeviceKeyFileStore persists the device keys as a passphrase-encrypted file.
type DeviceKeyFileStore struct {
	dir string
	kdf KDFParams
	mu  sync.Mutex
}

// Option configures a DeviceKeyFileStore.
type Option func(*DeviceKeyFileStore)

// WithKDF overrides the scrypt cost used for newly saved keys.
func WithKDF(p KDFParams) Option {
	return func(s *DeviceKeyFileStore) { s.kdf = p }
}

// NewDeviceKeyFileStore returns a store rooted at dir.
func NewDeviceKeyFileStore(dir string, opts ...Option) *DeviceKeyFileStore {
	s := &DeviceKeyFileStore{dir: dir, kdf: DefaultKDF}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location of the encrypted key file.
func (s *DeviceKeyFileStore) Path() string {
	return filepath.Join(s.dir, deviceKeysFilename)
}

// SaveDeviceKeys encrypts keys with passphrase and replaces the key file.
func (s *DeviceKeyFileStore) SaveDeviceKeys(passphrase string, keys domain.DeviceKeys) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	blob, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return fmt.Errorf("seal device keys: %w", err)
	}
	return writeFile(s.Path(), blob, 0o600)
}

// LoadDeviceKeys reads and decrypts the key file.
func (s *DeviceKeyFileStore) LoadDeviceKeys(passphrase string) (domain.DeviceKeys, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok, err := readFile(s.Path())
	if err != nil {
		return domain.DeviceKeys{}, err
	}
	if !ok {
		return domain.DeviceKeys{}, ErrNoDeviceKeys
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return domain.DeviceKeys{}, err
	}
	defer crypto.Wipe(raw)

	var keys domain.DeviceKeys
	if err := json.Unmarshal(raw, &keys); err != nil {
		return domain.DeviceKeys{}, fmt.Errorf("decode device keys: %w", err)
	}
	return keys, nil
}

// Compile-time assertion that DeviceKeyFileStore implements domain.DeviceKeyStore.
var _ domain.DeviceKeyStore = (*DeviceKeyFileStore)(nil)

package crypto

import (
	"crypto/rand"

	"trustchain/internal/domain"
)

// RandomSymmetricKey returns a fresh resource key.
func RandomSymmetricKey() (key domain.SymmetricKey, err error) {
	_, err = rand.Read(key[:])
	return key, err
}

// RandomMac returns 16 random bytes, for resource ids not yet bound to a
// ciphertext.
func RandomMac() (mac domain.Mac, err error) {
	_, err = rand.Read(mac[:])
	return mac, err
}

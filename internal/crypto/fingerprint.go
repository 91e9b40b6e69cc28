package crypto

import (
	"encoding/hex"

	"trustchain/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := Hash(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

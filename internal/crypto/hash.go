package crypto

import (
	"golang.org/x/crypto/blake2b"

	"trustchain/internal/domain"
)

// Hash returns the BLAKE2b-256 digest of the concatenation of parts.
func Hash(parts ...[]byte) domain.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only a key longer than 64 bytes makes New256 fail.
		panic(err)
	}
	for _, p := range parts {
		h.Write(p)
	}
	var out domain.Hash
	h.Sum(out[:0])
	return out
}

package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/nacl/box"

	"trustchain/internal/domain"
)

// ErrSealOpen is returned when a sealed box does not open with the given
// key pair.
var ErrSealOpen = errors.New("crypto: sealed box does not open with this key pair")

// SealKey seals a resource key to recipient.
func SealKey(key domain.SymmetricKey, recipient domain.PublicEncryptionKey) (out domain.SealedKey, err error) {
	err = seal(out[:0], key[:], recipient)
	return out, err
}

// OpenKey opens a sealed resource key with the recipient's key pair.
func OpenKey(sealed domain.SealedKey, pub domain.PublicEncryptionKey, priv domain.PrivateEncryptionKey) (out domain.SymmetricKey, err error) {
	err = open(out[:0], sealed[:], pub, priv)
	return out, err
}

// SealEncryptionPrivateKey seals a user or group private encryption key to recipient.
func SealEncryptionPrivateKey(key domain.PrivateEncryptionKey, recipient domain.PublicEncryptionKey) (out domain.SealedEncryptionPrivateKey, err error) {
	err = seal(out[:0], key[:], recipient)
	return out, err
}

func OpenEncryptionPrivateKey(sealed domain.SealedEncryptionPrivateKey, pub domain.PublicEncryptionKey, priv domain.PrivateEncryptionKey) (out domain.PrivateEncryptionKey, err error) {
	err = open(out[:0], sealed[:], pub, priv)
	return out, err
}

// SealSignaturePrivateKey seals a group private signature key to recipient.
func SealSignaturePrivateKey(key domain.PrivateSignatureKey, recipient domain.PublicEncryptionKey) (out domain.SealedSignaturePrivateKey, err error) {
	err = seal(out[:0], key[:], recipient)
	return out, err
}

func OpenSignaturePrivateKey(sealed domain.SealedSignaturePrivateKey, pub domain.PublicEncryptionKey, priv domain.PrivateEncryptionKey) (out domain.PrivateSignatureKey, err error) {
	err = open(out[:0], sealed[:], pub, priv)
	return out, err
}

// seal appends into dst, which must have exactly len(msg)+SealOverhead
// capacity so no reallocation happens.
func seal(dst, msg []byte, recipient domain.PublicEncryptionKey) error {
	_, err := box.SealAnonymous(dst, msg, (*[32]byte)(&recipient), rand.Reader)
	return err
}

func open(dst, sealed []byte, pub domain.PublicEncryptionKey, priv domain.PrivateEncryptionKey) error {
	if _, ok := box.OpenAnonymous(dst, sealed, (*[32]byte)(&pub), (*[32]byte)(&priv)); !ok {
		return ErrSealOpen
	}
	return nil
}

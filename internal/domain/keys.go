package domain

import "fmt"

// MustHash converts b to a Hash, panicking on a size mismatch.
func MustHash(b []byte) Hash {
	var out Hash
	mustCopy(out[:], b, "hash")
	return out
}

// MustSignature converts b to a Signature, panicking on a size mismatch.
func MustSignature(b []byte) Signature {
	var out Signature
	mustCopy(out[:], b, "signature")
	return out
}

func MustPublicSignatureKey(b []byte) PublicSignatureKey {
	var out PublicSignatureKey
	mustCopy(out[:], b, "public signature key")
	return out
}

func MustPrivateSignatureKey(b []byte) PrivateSignatureKey {
	var out PrivateSignatureKey
	mustCopy(out[:], b, "private signature key")
	return out
}

func MustPublicEncryptionKey(b []byte) PublicEncryptionKey {
	var out PublicEncryptionKey
	mustCopy(out[:], b, "public encryption key")
	return out
}

func MustPrivateEncryptionKey(b []byte) PrivateEncryptionKey {
	var out PrivateEncryptionKey
	mustCopy(out[:], b, "private encryption key")
	return out
}

func MustSymmetricKey(b []byte) SymmetricKey {
	var out SymmetricKey
	mustCopy(out[:], b, "symmetric key")
	return out
}

func MustMac(b []byte) Mac {
	var out Mac
	mustCopy(out[:], b, "mac")
	return out
}

func MustSealedKey(b []byte) SealedKey {
	var out SealedKey
	mustCopy(out[:], b, "sealed key")
	return out
}

func MustSealedSignaturePrivateKey(b []byte) SealedSignaturePrivateKey {
	var out SealedSignaturePrivateKey
	mustCopy(out[:], b, "sealed signature private key")
	return out
}

func MustSealedEncryptionPrivateKey(b []byte) SealedEncryptionPrivateKey {
	var out SealedEncryptionPrivateKey
	mustCopy(out[:], b, "sealed encryption private key")
	return out
}

func mustCopy(dst, src []byte, name string) {
	if len(src) != len(dst) {
		panic(fmt.Errorf("%s: want %d bytes, got %d", name, len(dst), len(src)))
	}
	copy(dst, src)
}

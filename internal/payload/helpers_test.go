package payload_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"trustchain/internal/domain"
)

// padded returns s followed by zero bytes up to n bytes.
func padded(s string, n int) []byte {
	out := make([]byte, n)
	copy(out, s)
	return out
}

func unhex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func concat(parts ...[]byte) []byte { return bytes.Join(parts, nil) }

// drawBytes never returns nil, matching what decoders produce.
func drawBytes(t *rapid.T, n int, label string) []byte {
	b := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, label)
	if b == nil {
		b = []byte{}
	}
	return b
}

func drawHash(t *rapid.T, label string) domain.Hash {
	return domain.MustHash(drawBytes(t, domain.HashSize, label))
}

func drawSignature(t *rapid.T, label string) domain.Signature {
	return domain.MustSignature(drawBytes(t, domain.SignatureSize, label))
}

func drawSigKey(t *rapid.T, label string) domain.PublicSignatureKey {
	return domain.MustPublicSignatureKey(drawBytes(t, domain.PublicSignatureKeySize, label))
}

func drawEncKey(t *rapid.T, label string) domain.PublicEncryptionKey {
	return domain.MustPublicEncryptionKey(drawBytes(t, domain.PublicEncryptionKeySize, label))
}

func drawMac(t *rapid.T, label string) domain.Mac {
	return domain.MustMac(drawBytes(t, domain.MacSize, label))
}

func drawSealedKey(t *rapid.T, label string) domain.SealedKey {
	return domain.MustSealedKey(drawBytes(t, domain.SealedKeySize, label))
}

func drawSealedEncKey(t *rapid.T, label string) domain.SealedEncryptionPrivateKey {
	return domain.MustSealedEncryptionPrivateKey(drawBytes(t, domain.SealedEncryptionPrivateKeySize, label))
}

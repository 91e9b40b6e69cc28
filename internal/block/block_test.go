package block_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"trustchain/internal/block"
	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/payload"
	"trustchain/internal/wire"
)

func randomHash(t *testing.T) domain.Hash {
	t.Helper()
	var h domain.Hash
	_, err := rand.Read(h[:])
	require.NoError(t, err)
	return h
}

func signingKey(t *testing.T) (domain.PrivateSignatureKey, domain.PublicSignatureKey) {
	t.Helper()
	priv, pub, err := crypto.GenerateSignatureKeyPair()
	require.NoError(t, err)
	return priv, pub
}

// keyPublishBlock mirrors a typical device key publish: a 72-byte encrypted
// key under the preferred nature at a high index.
func keyPublishBlock(t *testing.T) block.Block {
	t.Helper()
	rec := payload.KeyPublish{
		Recipient:  randomHash(t),
		ResourceID: domain.MustMac(bytes.Repeat([]byte{0x11}, domain.MacSize)),
		Key:        bytes.Repeat([]byte{0x22}, 72),
	}
	b, err := block.New(domain.Hash{}, 999, randomHash(t), rec)
	require.NoError(t, err)
	return b
}

func TestSignSerializeUnserialize(t *testing.T) {
	priv, pub := signingKey(t)
	signed := block.Sign(keyPublishBlock(t), priv)

	decoded, err := block.Unserialize(block.Serialize(signed))
	require.NoError(t, err)
	assert.Equal(t, signed, decoded)
	assert.NoError(t, block.Verify(decoded, pub))

	rec, err := decoded.DecodePayload()
	require.NoError(t, err)
	kp, ok := rec.(payload.KeyPublish)
	require.True(t, ok)
	assert.Len(t, kp.Key, 72)
}

func TestSignatureIsNotSigned(t *testing.T) {
	priv, _ := signingKey(t)
	signed := block.Sign(keyPublishBlock(t), priv)

	canonical := signed.CanonicalForm()
	encoded := block.Serialize(signed)
	assert.Equal(t, canonical, encoded[:len(encoded)-domain.SignatureSize])
	assert.Equal(t, signed.Signature[:], encoded[len(encoded)-domain.SignatureSize:])
}

func TestCanonicalFormLayout(t *testing.T) {
	b := block.Block{
		TrustchainID: domain.MustHash(bytes.Repeat([]byte{0xaa}, domain.HashSize)),
		Index:        300,
		Nature:       nature.KeyPublishToUser,
		Author:       domain.MustHash(bytes.Repeat([]byte{0xbb}, domain.HashSize)),
		Payload:      []byte{1, 2, 3},
	}
	want := bytes.Join([][]byte{
		bytes.Repeat([]byte{0xaa}, domain.HashSize),
		{0xac, 0x02},
		{0x08},
		bytes.Repeat([]byte{0xbb}, domain.HashSize),
		{0x03, 1, 2, 3},
	}, nil)
	assert.Equal(t, want, b.CanonicalForm())
}

func TestTamperingInvalidatesSignature(t *testing.T) {
	priv, pub := signingKey(t)
	signed := block.Sign(keyPublishBlock(t), priv)
	require.NoError(t, block.Verify(signed, pub))

	cases := map[string]func(b *block.Block){
		"trustchain id": func(b *block.Block) { b.TrustchainID[0] ^= 1 },
		"index":         func(b *block.Block) { b.Index++ },
		"nature":        func(b *block.Block) { b.Nature = nature.KeyPublishToUser },
		"author":        func(b *block.Block) { b.Author[31] ^= 1 },
		"payload":       func(b *block.Block) { b.Payload[0] ^= 1 },
		"signature":     func(b *block.Block) { b.Signature[0] ^= 1 },
	}
	for name, tamper := range cases {
		t.Run(name, func(t *testing.T) {
			b := signed
			b.Payload = bytes.Clone(signed.Payload)
			tamper(&b)
			assert.ErrorIs(t, block.Verify(b, pub), block.ErrInvalidSignature)
		})
	}

	_, other := signingKey(t)
	assert.ErrorIs(t, block.Verify(signed, other), block.ErrInvalidSignature)
}

func TestSignDoesNotModifyInput(t *testing.T) {
	priv, _ := signingKey(t)
	b := keyPublishBlock(t)
	before := bytes.Clone(b.Payload)

	signed := block.Sign(b, priv)
	signed.Payload[0] ^= 0xff

	assert.Equal(t, domain.Signature{}, b.Signature)
	assert.Equal(t, before, b.Payload)
}

func TestNewUsesPreferredNature(t *testing.T) {
	dev := payload.UserDevice{
		EphemeralPublicSignatureKey: domain.PublicSignatureKey{1},
		UserID:                      domain.Hash{2},
		PublicSignatureKey:          domain.PublicSignatureKey{3},
		PublicEncryptionKey:         domain.PublicEncryptionKey{4},
		LastReset:                   domain.Hash{},
		UserKeyPair: &payload.UserKeyPair{
			PublicEncryptionKey: domain.PublicEncryptionKey{5},
		},
		Revoked: payload.NotRevoked,
	}
	b, err := block.New(domain.Hash{}, 2, domain.Hash{}, dev)
	require.NoError(t, err)
	assert.Equal(t, nature.DeviceCreationV3, b.Nature)

	rev, err := block.New(domain.Hash{}, 3, domain.Hash{}, payload.DeviceRevocationV2{
		DeviceID: domain.Hash{6},
	})
	require.NoError(t, err)
	assert.Equal(t, nature.DeviceRevocationV2, rev.Nature)
}

func TestHashExcludesPosition(t *testing.T) {
	b := keyPublishBlock(t)
	moved := b
	moved.TrustchainID = randomHash(t)
	moved.Index = 1
	assert.Equal(t, b.Hash(), moved.Hash())

	prefix := append([]byte{byte(b.Nature)}, b.Author[:]...)
	assert.Equal(t, crypto.Hash(prefix, b.Payload), b.Hash())

	moved.Author[0] ^= 1
	assert.NotEqual(t, b.Hash(), moved.Hash())
}

func TestUnserializeRejectsUnknownNature(t *testing.T) {
	priv, _ := signingKey(t)
	signed := block.Sign(keyPublishBlock(t), priv)
	buf := block.Serialize(signed)

	// trustchain id (32) then index 999 as a two-byte uvarint.
	natureAt := domain.HashSize + 2
	require.Equal(t, byte(nature.KeyPublishToDevice), buf[natureAt])
	buf[natureAt] = 5

	_, err := block.Unserialize(buf)
	assert.ErrorIs(t, err, nature.ErrUnknownNature)
	assert.ErrorIs(t, err, wire.ErrDecode)
	var de *wire.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, natureAt, de.Offset)
}

func TestUnserializeRejectsTruncation(t *testing.T) {
	priv, _ := signingKey(t)
	buf := block.Serialize(block.Sign(keyPublishBlock(t), priv))

	for n := range len(buf) {
		_, err := block.Unserialize(buf[:n])
		require.ErrorIs(t, err, wire.ErrDecode, "length %d", n)
	}
}

func TestUnserializeRejectsTrailingBytes(t *testing.T) {
	priv, _ := signingKey(t)
	buf := block.Serialize(block.Sign(keyPublishBlock(t), priv))

	_, err := block.Unserialize(append(buf, 0))
	assert.ErrorIs(t, err, wire.ErrTrailingBytes)
}

func TestUnserializeRejectsMalformedPayload(t *testing.T) {
	b := block.Block{
		Nature:  nature.TrustchainCreation,
		Payload: []byte{1, 2, 3},
	}
	_, err := block.Unserialize(block.Serialize(b))
	assert.ErrorIs(t, err, wire.ErrDecode)
	assert.ErrorIs(t, err, wire.ErrTruncated)
}

func TestRoot(t *testing.T) {
	priv, pub := signingKey(t)
	root, err := block.NewRoot(priv)
	require.NoError(t, err)

	assert.Equal(t, uint64(block.RootIndex), root.Index)
	assert.Equal(t, nature.TrustchainCreation, root.Nature)
	assert.True(t, root.Author.IsZero())
	assert.Equal(t, root.Hash(), root.TrustchainID)

	got, err := block.VerifyRoot(root)
	require.NoError(t, err)
	assert.Equal(t, pub, got)

	decoded, err := block.Unserialize(block.Serialize(root))
	require.NoError(t, err)
	_, err = block.VerifyRoot(decoded)
	assert.NoError(t, err)
}

func TestVerifyRootRejects(t *testing.T) {
	priv, _ := signingKey(t)
	root, err := block.NewRoot(priv)
	require.NoError(t, err)

	t.Run("wrong index", func(t *testing.T) {
		b := root
		b.Index = 2
		_, err := block.VerifyRoot(b)
		assert.ErrorIs(t, err, block.ErrNotRoot)
	})
	t.Run("has author", func(t *testing.T) {
		b := root
		b.Author[0] = 1
		_, err := block.VerifyRoot(b)
		assert.ErrorIs(t, err, block.ErrNotRoot)
	})
	t.Run("foreign trustchain id", func(t *testing.T) {
		b := root
		b.TrustchainID[0] ^= 1
		_, err := block.VerifyRoot(b)
		assert.ErrorIs(t, err, block.ErrNotRoot)
	})
	t.Run("not a creation", func(t *testing.T) {
		_, err := block.VerifyRoot(keyPublishBlock(t))
		assert.ErrorIs(t, err, block.ErrNotRoot)
	})
	t.Run("bad signature", func(t *testing.T) {
		b := root
		b.Signature[5] ^= 1
		_, err := block.VerifyRoot(b)
		assert.ErrorIs(t, err, block.ErrInvalidSignature)
	})
}

func TestBlockRoundTripProperty(t *testing.T) {
	priv, pub := signingKey(t)
	rapid.Check(t, func(rt *rapid.T) {
		var id, author, recipient domain.Hash
		copy(id[:], rapid.SliceOfN(rapid.Byte(), domain.HashSize, domain.HashSize).Draw(rt, "trustchain_id"))
		copy(author[:], rapid.SliceOfN(rapid.Byte(), domain.HashSize, domain.HashSize).Draw(rt, "author"))
		copy(recipient[:], rapid.SliceOfN(rapid.Byte(), domain.HashSize, domain.HashSize).Draw(rt, "recipient"))
		key := rapid.SliceOfN(rapid.Byte(), 0, 300).Draw(rt, "key")
		if key == nil {
			key = []byte{}
		}

		b, err := block.New(id, rapid.Uint64().Draw(rt, "index"), author, payload.KeyPublish{Recipient: recipient, Key: key})
		if err != nil {
			rt.Fatalf("new: %v", err)
		}
		signed := block.Sign(b, priv)
		decoded, err := block.Unserialize(block.Serialize(signed))
		if err != nil {
			rt.Fatalf("unserialize: %v", err)
		}
		if !bytes.Equal(block.Serialize(decoded), block.Serialize(signed)) {
			rt.Fatalf("round trip changed the encoding")
		}
		if err := block.Verify(decoded, pub); err != nil {
			rt.Fatalf("verify: %v", err)
		}
	})
}

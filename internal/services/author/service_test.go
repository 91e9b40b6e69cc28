package author_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustchain/internal/block"
	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/logging"
	"trustchain/internal/nature"
	"trustchain/internal/payload"
	"trustchain/internal/services/author"
)

// fixedKeys serves one set of device keys regardless of passphrase.
type fixedKeys struct{ keys domain.DeviceKeys }

func (f fixedKeys) GenerateDeviceKeys(string) (domain.DeviceKeys, domain.Fingerprint, error) {
	return f.keys, crypto.Fingerprint(f.keys.SignaturePublic.Slice()), nil
}

func (f fixedKeys) LoadDeviceKeys(string) (domain.DeviceKeys, error) { return f.keys, nil }

func (f fixedKeys) FingerprintDevice(string) (domain.Fingerprint, error) {
	return crypto.Fingerprint(f.keys.SignaturePublic.Slice()), nil
}

func newService(t *testing.T) (*author.Service, domain.DeviceKeys) {
	t.Helper()
	sigPriv, sigPub, err := crypto.GenerateSignatureKeyPair()
	require.NoError(t, err)
	encPriv, encPub, err := crypto.GenerateEncryptionKeyPair()
	require.NoError(t, err)
	keys := domain.DeviceKeys{
		SignaturePublic:   sigPub,
		SignaturePrivate:  sigPriv,
		EncryptionPublic:  encPub,
		EncryptionPrivate: encPriv,
	}
	return author.New(fixedKeys{keys}, logging.Discard()), keys
}

func TestCreateTrustchain(t *testing.T) {
	svc, keys := newService(t)

	root, err := svc.CreateTrustchain("pass")
	require.NoError(t, err)

	pub, err := block.VerifyRoot(root)
	require.NoError(t, err)
	assert.Equal(t, keys.SignaturePublic, pub)
}

func TestPublishKeyToUser(t *testing.T) {
	svc, keys := newService(t)
	userPriv, userPub, err := crypto.GenerateEncryptionKeyPair()
	require.NoError(t, err)
	resourceKey, err := crypto.RandomSymmetricKey()
	require.NoError(t, err)

	p := author.Publication{
		TrustchainID:  domain.Hash{1},
		Index:         42,
		Author:        domain.Hash{2},
		RecipientUser: domain.Hash{3},
		RecipientKey:  userPub,
		ResourceID:    domain.Mac{4},
		ResourceKey:   resourceKey,
	}
	b, err := svc.PublishKeyToUser("pass", p)
	require.NoError(t, err)

	assert.Equal(t, nature.KeyPublishToUser, b.Nature)
	assert.Equal(t, p.Index, b.Index)
	require.NoError(t, block.Verify(b, keys.SignaturePublic))

	rec, err := b.DecodePayload()
	require.NoError(t, err)
	kp, ok := rec.(payload.KeyPublishToUser)
	require.True(t, ok)
	assert.Equal(t, p.RecipientUser, kp.Recipient)
	assert.Equal(t, p.ResourceID, kp.ResourceID)

	opened, err := crypto.OpenKey(kp.Key, userPub, userPriv)
	require.NoError(t, err)
	assert.Equal(t, resourceKey, opened)
}

package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/payload"
)

func TestDelegation(t *testing.T) {
	authorPriv, authorPub, err := crypto.GenerateSignatureKeyPair()
	require.NoError(t, err)
	_, ephemeral, err := crypto.GenerateSignatureKeyPair()
	require.NoError(t, err)

	d := payload.UserDevice{EphemeralPublicSignatureKey: ephemeral, UserID: domain.Hash{7}, Revoked: payload.NotRevoked}
	signed := payload.SignDelegation(d, authorPriv)
	assert.Equal(t, domain.Signature{}, d.DelegationSignature, "input must not be mutated")
	require.NoError(t, payload.VerifyDelegation(signed, authorPub))

	signed.UserID[0] ^= 1
	assert.ErrorIs(t, payload.VerifyDelegation(signed, authorPub), payload.ErrInvalidDelegation)

	assert.Equal(t, ephemeral[:], payload.DelegationSignData(ephemeral, domain.Hash{})[:domain.PublicSignatureKeySize])
}

func memberKeys(t *testing.T, n int) ([]domain.PublicEncryptionKey, []domain.PrivateEncryptionKey) {
	pubs := make([]domain.PublicEncryptionKey, n)
	privs := make([]domain.PrivateEncryptionKey, n)
	for i := range n {
		var err error
		privs[i], pubs[i], err = crypto.GenerateEncryptionKeyPair()
		require.NoError(t, err)
	}
	return pubs, privs
}

func TestUserGroupCreationSelfSignature(t *testing.T) {
	g, err := payload.NewGroupKeys()
	require.NoError(t, err)
	pubs, privs := memberKeys(t, 3)

	r, err := payload.NewUserGroupCreation(g, pubs)
	require.NoError(t, err)
	require.NoError(t, payload.VerifyUserGroupCreation(r))

	// Every member can open the group key; the group signature key opens
	// with the group encryption key.
	for i, k := range r.EncryptedGroupPrivateEncryptionKeysForUsers {
		assert.Equal(t, pubs[i], k.PublicUserEncryptionKey)
		got, err := crypto.OpenEncryptionPrivateKey(k.EncryptedGroupPrivateEncryptionKey, pubs[i], privs[i])
		require.NoError(t, err)
		assert.Equal(t, g.EncryptionPrivate, got)
	}
	sigKey, err := crypto.OpenSignaturePrivateKey(r.EncryptedGroupPrivateSignatureKey, g.EncryptionPublic, g.EncryptionPrivate)
	require.NoError(t, err)
	assert.Equal(t, g.SignaturePrivate, sigKey)

	// The signature survives the wire.
	b, err := payload.SerializeUserGroupCreation(r)
	require.NoError(t, err)
	decoded, err := payload.UnserializeUserGroupCreation(b)
	require.NoError(t, err)
	require.NoError(t, payload.VerifyUserGroupCreation(decoded))

	decoded.EncryptedGroupPrivateEncryptionKeysForUsers = decoded.EncryptedGroupPrivateEncryptionKeysForUsers[:2]
	assert.ErrorIs(t, payload.VerifyUserGroupCreation(decoded), payload.ErrInvalidSelfSignature)
}

func TestUserGroupAdditionSignature(t *testing.T) {
	g, err := payload.NewGroupKeys()
	require.NoError(t, err)
	pubs, _ := memberKeys(t, 1)

	r, err := payload.NewUserGroupAddition(g, domain.Hash{1}, domain.Hash{2}, pubs)
	require.NoError(t, err)
	require.NoError(t, payload.VerifyUserGroupAddition(r, g.SignaturePublic))

	other, err := payload.NewGroupKeys()
	require.NoError(t, err)
	assert.ErrorIs(t, payload.VerifyUserGroupAddition(r, other.SignaturePublic), payload.ErrInvalidSelfSignature)

	r.PreviousGroupBlock[0] ^= 1
	assert.ErrorIs(t, payload.VerifyUserGroupAddition(r, g.SignaturePublic), payload.ErrInvalidSelfSignature)
}

func TestSignDataExcludesSignature(t *testing.T) {
	r := payload.UserGroupAddition{GroupID: domain.Hash{1}}
	before := r.SignData()
	r.SelfSignatureWithCurrentKey = domain.Signature{9}
	assert.Equal(t, before, r.SignData())
	assert.Len(t, before, 2*domain.HashSize)
}

func TestKeyPublishBuilders(t *testing.T) {
	userPriv, userPub, err := crypto.GenerateEncryptionKeyPair()
	require.NoError(t, err)
	resourceKey, err := crypto.RandomSymmetricKey()
	require.NoError(t, err)
	resourceID, err := crypto.RandomMac()
	require.NoError(t, err)

	kp, err := payload.NewKeyPublishToUser(domain.Hash{4}, userPub, resourceID, resourceKey)
	require.NoError(t, err)
	got, err := crypto.OpenKey(kp.Key, userPub, userPriv)
	require.NoError(t, err)
	assert.Equal(t, resourceKey, got)

	kg, err := payload.NewKeyPublishToUserGroup(userPub, resourceID, resourceKey)
	require.NoError(t, err)
	assert.Equal(t, userPub, kg.Recipient)

	shared, err := crypto.RandomSymmetricKey()
	require.NoError(t, err)
	kd, err := payload.NewKeyPublish(domain.Hash{5}, shared, resourceID, resourceKey)
	require.NoError(t, err)
	assert.Len(t, kd.Key, domain.SymmetricKeySize+domain.MacSize+domain.XChaChaIVSize)
	pt, err := crypto.DecryptAEAD(shared, kd.Key, resourceID[:])
	require.NoError(t, err)
	assert.Equal(t, resourceKey[:], pt)
}

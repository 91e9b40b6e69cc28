package payload

import (
	"fmt"

	"trustchain/internal/crypto"
	"trustchain/internal/domain"
)

// GroupKeys are the private keys of a freshly created group. They never
// appear on the wire unsealed.
type GroupKeys struct {
	SignaturePublic   domain.PublicSignatureKey
	SignaturePrivate  domain.PrivateSignatureKey
	EncryptionPublic  domain.PublicEncryptionKey
	EncryptionPrivate domain.PrivateEncryptionKey
}

// NewGroupKeys generates the signature and encryption key pairs of a group.
func NewGroupKeys() (GroupKeys, error) {
	var g GroupKeys
	var err error
	if g.SignaturePrivate, g.SignaturePublic, err = crypto.GenerateSignatureKeyPair(); err != nil {
		return GroupKeys{}, err
	}
	if g.EncryptionPrivate, g.EncryptionPublic, err = crypto.GenerateEncryptionKeyPair(); err != nil {
		return GroupKeys{}, err
	}
	return g, nil
}

func sealGroupKeyForMembers(groupKey domain.PrivateEncryptionKey, members []domain.PublicEncryptionKey) ([]GroupEncryptedKey, error) {
	out := make([]GroupEncryptedKey, 0, len(members))
	for i, member := range members {
		sealed, err := crypto.SealEncryptionPrivateKey(groupKey, member)
		if err != nil {
			return nil, fmt.Errorf("seal group key for member %d: %w", i, err)
		}
		out = append(out, GroupEncryptedKey{PublicUserEncryptionKey: member, EncryptedGroupPrivateEncryptionKey: sealed})
	}
	return out, nil
}

// NewUserGroupCreation builds a self-signed creation for g. The group
// private signature key is sealed to the group's own encryption key, and
// the group private encryption key to each member's user key.
func NewUserGroupCreation(g GroupKeys, members []domain.PublicEncryptionKey) (UserGroupCreation, error) {
	sealedSig, err := crypto.SealSignaturePrivateKey(g.SignaturePrivate, g.EncryptionPublic)
	if err != nil {
		return UserGroupCreation{}, fmt.Errorf("seal group signature key: %w", err)
	}
	keys, err := sealGroupKeyForMembers(g.EncryptionPrivate, members)
	if err != nil {
		return UserGroupCreation{}, err
	}
	r := UserGroupCreation{
		PublicSignatureKey:                          g.SignaturePublic,
		PublicEncryptionKey:                         g.EncryptionPublic,
		EncryptedGroupPrivateSignatureKey:           sealedSig,
		EncryptedGroupPrivateEncryptionKeysForUsers: keys,
	}
	return SignUserGroupCreation(r, g.SignaturePrivate), nil
}

// NewUserGroupAddition builds a signed addition of members to the group
// identified by groupID, whose last block is previous.
func NewUserGroupAddition(g GroupKeys, groupID, previous domain.Hash, members []domain.PublicEncryptionKey) (UserGroupAddition, error) {
	keys, err := sealGroupKeyForMembers(g.EncryptionPrivate, members)
	if err != nil {
		return UserGroupAddition{}, err
	}
	r := UserGroupAddition{
		GroupID:                                     groupID,
		PreviousGroupBlock:                          previous,
		EncryptedGroupPrivateEncryptionKeysForUsers: keys,
	}
	return SignUserGroupAddition(r, g.SignaturePrivate), nil
}

// NewKeyPublishToUser seals resourceKey to the user's public encryption key.
func NewKeyPublishToUser(userID domain.Hash, userKey domain.PublicEncryptionKey, resourceID domain.Mac, resourceKey domain.SymmetricKey) (KeyPublishToUser, error) {
	sealed, err := crypto.SealKey(resourceKey, userKey)
	if err != nil {
		return KeyPublishToUser{}, fmt.Errorf("seal resource key: %w", err)
	}
	return KeyPublishToUser{Recipient: userID, ResourceID: resourceID, Key: sealed}, nil
}

// NewKeyPublishToUserGroup seals resourceKey to the group's public encryption key.
func NewKeyPublishToUserGroup(groupKey domain.PublicEncryptionKey, resourceID domain.Mac, resourceKey domain.SymmetricKey) (KeyPublishToUserGroup, error) {
	sealed, err := crypto.SealKey(resourceKey, groupKey)
	if err != nil {
		return KeyPublishToUserGroup{}, fmt.Errorf("seal resource key: %w", err)
	}
	return KeyPublishToUserGroup{Recipient: groupKey, ResourceID: resourceID, Key: sealed}, nil
}

// NewKeyPublish encrypts resourceKey for a device with a key shared with it.
func NewKeyPublish(deviceID domain.Hash, shared domain.SymmetricKey, resourceID domain.Mac, resourceKey domain.SymmetricKey) (KeyPublish, error) {
	ct, err := crypto.EncryptAEAD(shared, resourceKey[:], resourceID[:])
	if err != nil {
		return KeyPublish{}, fmt.Errorf("encrypt resource key: %w", err)
	}
	return KeyPublish{Recipient: deviceID, ResourceID: resourceID, Key: ct}, nil
}

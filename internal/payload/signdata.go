package payload

import (
	"errors"

	"trustchain/internal/crypto"
	"trustchain/internal/domain"
)

var (
	// ErrInvalidDelegation is returned when a device's delegation signature
	// does not verify with the delegating key.
	ErrInvalidDelegation = errors.New("payload: invalid delegation signature")
	// ErrInvalidSelfSignature is returned when a group block is not signed
	// by the group's signature key.
	ErrInvalidSelfSignature = errors.New("payload: invalid group self signature")
)

// DelegationSignData is what the author of a device creation signs to
// delegate to the device's ephemeral key.
func DelegationSignData(ephemeralKey domain.PublicSignatureKey, userID domain.Hash) []byte {
	out := make([]byte, 0, domain.PublicSignatureKeySize+domain.HashSize)
	out = append(out, ephemeralKey[:]...)
	return append(out, userID[:]...)
}

// SignDelegation returns d with DelegationSignature made by delegator.
func SignDelegation(d UserDevice, delegator domain.PrivateSignatureKey) UserDevice {
	d.DelegationSignature = crypto.Sign(delegator, DelegationSignData(d.EphemeralPublicSignatureKey, d.UserID))
	return d
}

// VerifyDelegation checks d's delegation signature against delegator.
func VerifyDelegation(d UserDevice, delegator domain.PublicSignatureKey) error {
	if !crypto.Verify(delegator, DelegationSignData(d.EphemeralPublicSignatureKey, d.UserID), d.DelegationSignature) {
		return ErrInvalidDelegation
	}
	return nil
}

func appendGroupKeysSignData(out []byte, keys []GroupEncryptedKey) []byte {
	for _, k := range keys {
		out = append(out, k.PublicUserEncryptionKey[:]...)
		out = append(out, k.EncryptedGroupPrivateEncryptionKey[:]...)
	}
	return out
}

// SignData is every field of the creation except the self signature.
func (r UserGroupCreation) SignData() []byte {
	out := make([]byte, 0, domain.PublicSignatureKeySize+domain.PublicEncryptionKeySize+
		domain.SealedSignaturePrivateKeySize+len(r.EncryptedGroupPrivateEncryptionKeysForUsers)*groupEncryptedKeySize)
	out = append(out, r.PublicSignatureKey[:]...)
	out = append(out, r.PublicEncryptionKey[:]...)
	out = append(out, r.EncryptedGroupPrivateSignatureKey[:]...)
	return appendGroupKeysSignData(out, r.EncryptedGroupPrivateEncryptionKeysForUsers)
}

// SignData is every field of the addition except the self signature.
func (r UserGroupAddition) SignData() []byte {
	out := make([]byte, 0, 2*domain.HashSize+len(r.EncryptedGroupPrivateEncryptionKeysForUsers)*groupEncryptedKeySize)
	out = append(out, r.GroupID[:]...)
	out = append(out, r.PreviousGroupBlock[:]...)
	return appendGroupKeysSignData(out, r.EncryptedGroupPrivateEncryptionKeysForUsers)
}

// SignUserGroupCreation returns r self-signed with the group private
// signature key.
func SignUserGroupCreation(r UserGroupCreation, groupKey domain.PrivateSignatureKey) UserGroupCreation {
	r.SelfSignature = crypto.Sign(groupKey, r.SignData())
	return r
}

// VerifyUserGroupCreation checks the self signature against the public
// signature key the creation itself carries.
func VerifyUserGroupCreation(r UserGroupCreation) error {
	if !crypto.Verify(r.PublicSignatureKey, r.SignData(), r.SelfSignature) {
		return ErrInvalidSelfSignature
	}
	return nil
}

// SignUserGroupAddition returns r signed with the group's current private
// signature key.
func SignUserGroupAddition(r UserGroupAddition, groupKey domain.PrivateSignatureKey) UserGroupAddition {
	r.SelfSignatureWithCurrentKey = crypto.Sign(groupKey, r.SignData())
	return r
}

// VerifyUserGroupAddition checks the signature against the group's current
// public signature key, which the caller resolves from GroupID.
func VerifyUserGroupAddition(r UserGroupAddition, groupKey domain.PublicSignatureKey) error {
	if !crypto.Verify(groupKey, r.SignData(), r.SelfSignatureWithCurrentKey) {
		return ErrInvalidSelfSignature
	}
	return nil
}

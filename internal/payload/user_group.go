package payload

import (
	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/wire"
)

// GroupEncryptedKey is the group private encryption key sealed to one
// member's user public encryption key.
type GroupEncryptedKey struct {
	PublicUserEncryptionKey            domain.PublicEncryptionKey        `json:"public_user_encryption_key"`
	EncryptedGroupPrivateEncryptionKey domain.SealedEncryptionPrivateKey `json:"encrypted_group_private_encryption_key"`
}

// UserGroupCreation creates a group. SelfSignature is made with the group's
// own private signature key, proving the author holds it.
type UserGroupCreation struct {
	PublicSignatureKey                          domain.PublicSignatureKey        `json:"public_signature_key"`
	PublicEncryptionKey                         domain.PublicEncryptionKey       `json:"public_encryption_key"`
	EncryptedGroupPrivateSignatureKey           domain.SealedSignaturePrivateKey `json:"encrypted_group_private_signature_key"`
	EncryptedGroupPrivateEncryptionKeysForUsers []GroupEncryptedKey              `json:"encrypted_group_private_encryption_keys_for_users"`
	SelfSignature                               domain.Signature                 `json:"self_signature"`
}

func (UserGroupCreation) Kind() nature.Kind { return nature.KindUserGroupCreation }
func (UserGroupCreation) isRecord()         {}

// UserGroupAddition adds members to an existing group, chaining to the
// previous block that touched the group.
type UserGroupAddition struct {
	GroupID                                     domain.Hash         `json:"group_id"`
	PreviousGroupBlock                          domain.Hash         `json:"previous_group_block"`
	EncryptedGroupPrivateEncryptionKeysForUsers []GroupEncryptedKey `json:"encrypted_group_private_encryption_keys_for_users"`
	SelfSignatureWithCurrentKey                 domain.Signature    `json:"self_signature_with_current_key"`
}

func (UserGroupAddition) Kind() nature.Kind { return nature.KindUserGroupAddition }
func (UserGroupAddition) isRecord()         {}

const groupEncryptedKeySize = domain.PublicEncryptionKeySize + domain.SealedEncryptionPrivateKeySize

func (k *GroupEncryptedKey) fields() []field {
	return []field{
		fixed("public_user_encryption_key", k.PublicUserEncryptionKey[:], domain.PublicEncryptionKeySize),
		fixed("encrypted_group_private_encryption_key", k.EncryptedGroupPrivateEncryptionKey[:], domain.SealedEncryptionPrivateKeySize),
	}
}

func appendGroupKeys(e *wire.Encoder, keys []GroupEncryptedKey) {
	wire.AppendList(e, keys, func(e *wire.Encoder, k GroupEncryptedKey) {
		writeFields(e, k.fields()...)
	})
}

func readGroupKeys(buf []byte, off int) ([]GroupEncryptedKey, int, error) {
	return wire.ReadList(buf, off, "encrypted_group_private_encryption_keys_for_users", groupEncryptedKeySize,
		func(buf []byte, off int) (GroupEncryptedKey, int, error) {
			var k GroupEncryptedKey
			next, err := readFields(buf, off, k.fields()...)
			return k, next, err
		})
}

func (r *UserGroupCreation) headFields() []field {
	return []field{
		fixed("public_signature_key", r.PublicSignatureKey[:], domain.PublicSignatureKeySize),
		fixed("public_encryption_key", r.PublicEncryptionKey[:], domain.PublicEncryptionKeySize),
		fixed("encrypted_group_private_signature_key", r.EncryptedGroupPrivateSignatureKey[:], domain.SealedSignaturePrivateKeySize),
	}
}

func SerializeUserGroupCreation(r UserGroupCreation) ([]byte, error) {
	e := wire.NewEncoder(domain.PublicSignatureKeySize + domain.PublicEncryptionKeySize + domain.SealedSignaturePrivateKeySize +
		wire.MaxUvarintLen + len(r.EncryptedGroupPrivateEncryptionKeysForUsers)*groupEncryptedKeySize + domain.SignatureSize)
	writeFields(e, r.headFields()...)
	appendGroupKeys(e, r.EncryptedGroupPrivateEncryptionKeysForUsers)
	writeFields(e, fixed("self_signature", r.SelfSignature[:], domain.SignatureSize))
	return e.Bytes()
}

func UnserializeUserGroupCreation(buf []byte) (UserGroupCreation, error) {
	var r UserGroupCreation
	off, err := readFields(buf, 0, r.headFields()...)
	if err != nil {
		return UserGroupCreation{}, err
	}
	if r.EncryptedGroupPrivateEncryptionKeysForUsers, off, err = readGroupKeys(buf, off); err != nil {
		return UserGroupCreation{}, err
	}
	if off, err = readFields(buf, off, fixed("self_signature", r.SelfSignature[:], domain.SignatureSize)); err != nil {
		return UserGroupCreation{}, err
	}
	if err := wire.ExpectEnd(buf, off, "user_group_creation"); err != nil {
		return UserGroupCreation{}, err
	}
	return r, nil
}

func SerializeUserGroupAddition(r UserGroupAddition) ([]byte, error) {
	e := wire.NewEncoder(2*domain.HashSize + wire.MaxUvarintLen +
		len(r.EncryptedGroupPrivateEncryptionKeysForUsers)*groupEncryptedKeySize + domain.SignatureSize)
	writeFields(e,
		fixed("group_id", r.GroupID[:], domain.HashSize),
		fixed("previous_group_block", r.PreviousGroupBlock[:], domain.HashSize),
	)
	appendGroupKeys(e, r.EncryptedGroupPrivateEncryptionKeysForUsers)
	writeFields(e, fixed("self_signature_with_current_key", r.SelfSignatureWithCurrentKey[:], domain.SignatureSize))
	return e.Bytes()
}

func UnserializeUserGroupAddition(buf []byte) (UserGroupAddition, error) {
	var r UserGroupAddition
	off, err := readFields(buf, 0,
		fixed("group_id", r.GroupID[:], domain.HashSize),
		fixed("previous_group_block", r.PreviousGroupBlock[:], domain.HashSize),
	)
	if err != nil {
		return UserGroupAddition{}, err
	}
	if r.EncryptedGroupPrivateEncryptionKeysForUsers, off, err = readGroupKeys(buf, off); err != nil {
		return UserGroupAddition{}, err
	}
	if off, err = readFields(buf, off, fixed("self_signature_with_current_key", r.SelfSignatureWithCurrentKey[:], domain.SignatureSize)); err != nil {
		return UserGroupAddition{}, err
	}
	if err := wire.ExpectEnd(buf, off, "user_group_addition"); err != nil {
		return UserGroupAddition{}, err
	}
	return r, nil
}

package payload

import (
	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/wire"
)

// KeyPublish shares a resource key with a single device. Key is the
// resource key encrypted for the device and is length-prefixed on the wire;
// it decodes as a non-nil slice even when empty.
type KeyPublish struct {
	Recipient  domain.Hash `json:"recipient"`
	ResourceID domain.Mac  `json:"resource_id"`
	Key        []byte      `json:"key"`
}

func (KeyPublish) Kind() nature.Kind { return nature.KindKeyPublishToDevice }
func (KeyPublish) isRecord()         {}

// KeyPublishToUser shares a resource key with a user: Recipient is the user
// id and Key is sealed to the user's public encryption key.
type KeyPublishToUser struct {
	Recipient  domain.Hash      `json:"recipient"`
	ResourceID domain.Mac       `json:"resource_id"`
	Key        domain.SealedKey `json:"key"`
}

func (KeyPublishToUser) Kind() nature.Kind { return nature.KindKeyPublishToUser }
func (KeyPublishToUser) isRecord()         {}

// KeyPublishToUserGroup has the wire shape of KeyPublishToUser, but the
// recipient is the group's public encryption key.
type KeyPublishToUserGroup struct {
	Recipient  domain.PublicEncryptionKey `json:"recipient"`
	ResourceID domain.Mac                 `json:"resource_id"`
	Key        domain.SealedKey           `json:"key"`
}

func (KeyPublishToUserGroup) Kind() nature.Kind { return nature.KindKeyPublishToUserGroup }
func (KeyPublishToUserGroup) isRecord()         {}

func SerializeKeyPublish(r KeyPublish) ([]byte, error) {
	e := wire.NewEncoder(domain.HashSize + domain.MacSize + wire.UvarintLen(uint64(len(r.Key))) + len(r.Key))
	writeFields(e,
		fixed("recipient", r.Recipient[:], domain.HashSize),
		fixed("resource_id", r.ResourceID[:], domain.MacSize),
	)
	e.Variable(r.Key)
	return e.Bytes()
}

func UnserializeKeyPublish(buf []byte) (KeyPublish, error) {
	var r KeyPublish
	off, err := readFields(buf, 0,
		fixed("recipient", r.Recipient[:], domain.HashSize),
		fixed("resource_id", r.ResourceID[:], domain.MacSize),
	)
	if err != nil {
		return KeyPublish{}, err
	}
	if r.Key, off, err = wire.ReadVariable(buf, off, "key"); err != nil {
		return KeyPublish{}, err
	}
	if err := wire.ExpectEnd(buf, off, "key_publish"); err != nil {
		return KeyPublish{}, err
	}
	return r, nil
}

const sealedKeyPublishSize = domain.HashSize + domain.MacSize + domain.SealedKeySize

func SerializeKeyPublishToUser(r KeyPublishToUser) ([]byte, error) {
	e := wire.NewEncoder(sealedKeyPublishSize)
	writeFields(e,
		fixed("recipient", r.Recipient[:], domain.HashSize),
		fixed("resource_id", r.ResourceID[:], domain.MacSize),
		fixed("key", r.Key[:], domain.SealedKeySize),
	)
	return e.Bytes()
}

func UnserializeKeyPublishToUser(buf []byte) (KeyPublishToUser, error) {
	var r KeyPublishToUser
	off, err := readFields(buf, 0,
		fixed("recipient", r.Recipient[:], domain.HashSize),
		fixed("resource_id", r.ResourceID[:], domain.MacSize),
		fixed("key", r.Key[:], domain.SealedKeySize),
	)
	if err != nil {
		return KeyPublishToUser{}, err
	}
	if err := wire.ExpectEnd(buf, off, "key_publish_to_user"); err != nil {
		return KeyPublishToUser{}, err
	}
	return r, nil
}

func SerializeKeyPublishToUserGroup(r KeyPublishToUserGroup) ([]byte, error) {
	e := wire.NewEncoder(sealedKeyPublishSize)
	writeFields(e,
		fixed("recipient", r.Recipient[:], domain.PublicEncryptionKeySize),
		fixed("resource_id", r.ResourceID[:], domain.MacSize),
		fixed("key", r.Key[:], domain.SealedKeySize),
	)
	return e.Bytes()
}

func UnserializeKeyPublishToUserGroup(buf []byte) (KeyPublishToUserGroup, error) {
	var r KeyPublishToUserGroup
	off, err := readFields(buf, 0,
		fixed("recipient", r.Recipient[:], domain.PublicEncryptionKeySize),
		fixed("resource_id", r.ResourceID[:], domain.MacSize),
		fixed("key", r.Key[:], domain.SealedKeySize),
	)
	if err != nil {
		return KeyPublishToUserGroup{}, err
	}
	if err := wire.ExpectEnd(buf, off, "key_publish_to_user_group"); err != nil {
		return KeyPublishToUserGroup{}, err
	}
	return r, nil
}

package payload

import (
	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/wire"
)

// DeviceRevocationV1 revokes a device without rotating the user key.
type DeviceRevocationV1 struct {
	DeviceID domain.Hash `json:"device_id"`
}

func (DeviceRevocationV1) Kind() nature.Kind { return nature.KindDeviceRevocation }
func (DeviceRevocationV1) isRecord()         {}

// EncryptedPrivateUserKey is the new user private key sealed to one of the
// remaining devices.
type EncryptedPrivateUserKey struct {
	Recipient domain.Hash                       `json:"recipient"`
	Key       domain.SealedEncryptionPrivateKey `json:"key"`
}

// UserKeys is the user key rotation carried by a V2 revocation. The previous
// private key is sealed to the new public key so that older resources stay
// readable.
type UserKeys struct {
	PublicEncryptionKey            domain.PublicEncryptionKey        `json:"public_encryption_key"`
	PreviousPublicEncryptionKey    domain.PublicEncryptionKey        `json:"previous_public_encryption_key"`
	EncryptedPreviousEncryptionKey domain.SealedEncryptionPrivateKey `json:"encrypted_previous_encryption_key"`
	PrivateKeys                    []EncryptedPrivateUserKey         `json:"private_keys"`
}

// DeviceRevocationV2 revokes a device and rotates the user key.
type DeviceRevocationV2 struct {
	DeviceID domain.Hash `json:"device_id"`
	UserKeys UserKeys    `json:"user_keys"`
}

func (DeviceRevocationV2) Kind() nature.Kind { return nature.KindDeviceRevocation }
func (DeviceRevocationV2) isRecord()         {}

func SerializeDeviceRevocationV1(r DeviceRevocationV1) ([]byte, error) {
	e := wire.NewEncoder(domain.HashSize)
	writeFields(e, fixed("device_id", r.DeviceID[:], domain.HashSize))
	return e.Bytes()
}

func UnserializeDeviceRevocationV1(buf []byte) (DeviceRevocationV1, error) {
	var r DeviceRevocationV1
	off, err := readFields(buf, 0, fixed("device_id", r.DeviceID[:], domain.HashSize))
	if err != nil {
		return DeviceRevocationV1{}, err
	}
	if err := wire.ExpectEnd(buf, off, "device_revocation_v1"); err != nil {
		return DeviceRevocationV1{}, err
	}
	return r, nil
}

const encryptedPrivateUserKeySize = domain.HashSize + domain.SealedEncryptionPrivateKeySize

func (k *EncryptedPrivateUserKey) fields() []field {
	return []field{
		fixed("private_keys.recipient", k.Recipient[:], domain.HashSize),
		fixed("private_keys.key", k.Key[:], domain.SealedEncryptionPrivateKeySize),
	}
}

func (r *DeviceRevocationV2) headFields() []field {
	return []field{
		fixed("device_id", r.DeviceID[:], domain.HashSize),
		fixed("public_encryption_key", r.UserKeys.PublicEncryptionKey[:], domain.PublicEncryptionKeySize),
		fixed("previous_public_encryption_key", r.UserKeys.PreviousPublicEncryptionKey[:], domain.PublicEncryptionKeySize),
		fixed("encrypted_previous_encryption_key", r.UserKeys.EncryptedPreviousEncryptionKey[:], domain.SealedEncryptionPrivateKeySize),
	}
}

func SerializeDeviceRevocationV2(r DeviceRevocationV2) ([]byte, error) {
	e := wire.NewEncoder(domain.HashSize + 2*domain.PublicEncryptionKeySize + domain.SealedEncryptionPrivateKeySize +
		wire.MaxUvarintLen + len(r.UserKeys.PrivateKeys)*encryptedPrivateUserKeySize)
	writeFields(e, r.headFields()...)
	wire.AppendList(e, r.UserKeys.PrivateKeys, func(e *wire.Encoder, k EncryptedPrivateUserKey) {
		writeFields(e, k.fields()...)
	})
	return e.Bytes()
}

func UnserializeDeviceRevocationV2(buf []byte) (DeviceRevocationV2, error) {
	var r DeviceRevocationV2
	off, err := readFields(buf, 0, r.headFields()...)
	if err != nil {
		return DeviceRevocationV2{}, err
	}
	if r.UserKeys.PrivateKeys, off, err = wire.ReadList(buf, off, "private_keys", encryptedPrivateUserKeySize, readEncryptedPrivateUserKey); err != nil {
		return DeviceRevocationV2{}, err
	}
	if err := wire.ExpectEnd(buf, off, "device_revocation_v2"); err != nil {
		return DeviceRevocationV2{}, err
	}
	return r, nil
}

func readEncryptedPrivateUserKey(buf []byte, off int) (EncryptedPrivateUserKey, int, error) {
	var k EncryptedPrivateUserKey
	next, err := readFields(buf, off, k.fields()...)
	return k, next, err
}

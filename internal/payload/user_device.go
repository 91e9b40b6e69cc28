package payload

import (
	"math"

	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/wire"
)

// NotRevoked is the Revoked value of a device that has not been revoked.
// Otherwise Revoked holds the index of the revoking block.
const NotRevoked uint64 = math.MaxUint64

// UserKeyPair is the user-level encryption key pair carried by a V3 device:
// the public key and the private key sealed to the new device.
type UserKeyPair struct {
	PublicEncryptionKey           domain.PublicEncryptionKey        `json:"public_encryption_key"`
	EncryptedPrivateEncryptionKey domain.SealedEncryptionPrivateKey `json:"encrypted_private_encryption_key"`
}

// UserDevice is the canonical device record every wire version upgrades to.
type UserDevice struct {
	LastReset                   domain.Hash                `json:"last_reset"`
	EphemeralPublicSignatureKey domain.PublicSignatureKey  `json:"ephemeral_public_signature_key"`
	UserID                      domain.Hash                `json:"user_id"`
	DelegationSignature         domain.Signature           `json:"delegation_signature"`
	PublicSignatureKey          domain.PublicSignatureKey  `json:"public_signature_key"`
	PublicEncryptionKey         domain.PublicEncryptionKey `json:"public_encryption_key"`
	UserKeyPair                 *UserKeyPair               `json:"user_key_pair"`
	IsGhostDevice               bool                       `json:"is_ghost_device"`
	IsServerDevice              bool                       `json:"is_server_device"`
	Revoked                     uint64                     `json:"revoked"`
}

func (UserDevice) Kind() nature.Kind { return nature.KindDeviceCreation }
func (UserDevice) isRecord()         {}

// UserDeviceV1 is the first device creation layout.
type UserDeviceV1 struct {
	EphemeralPublicSignatureKey domain.PublicSignatureKey
	UserID                      domain.Hash
	DelegationSignature         domain.Signature
	PublicSignatureKey          domain.PublicSignatureKey
	PublicEncryptionKey         domain.PublicEncryptionKey
}

// UserDeviceV2 prefixes the V1 fields with the hash of the last user reset.
type UserDeviceV2 struct {
	LastReset domain.Hash
	UserDeviceV1
}

// UserDeviceV3 appends an optional user key pair and the ghost flag to the
// V1 fields.
type UserDeviceV3 struct {
	UserDeviceV1
	UserKeyPair   *UserKeyPair
	IsGhostDevice bool
}

// Upgrade fills in the fields V1 cannot carry.
func (d UserDeviceV1) Upgrade() UserDevice {
	return UserDevice{
		EphemeralPublicSignatureKey: d.EphemeralPublicSignatureKey,
		UserID:                      d.UserID,
		DelegationSignature:         d.DelegationSignature,
		PublicSignatureKey:          d.PublicSignatureKey,
		PublicEncryptionKey:         d.PublicEncryptionKey,
		Revoked:                     NotRevoked,
	}
}

func (d UserDeviceV2) Upgrade() UserDevice {
	u := d.UserDeviceV1.Upgrade()
	u.LastReset = d.LastReset
	return u
}

func (d UserDeviceV3) Upgrade() UserDevice {
	u := d.UserDeviceV1.Upgrade()
	if d.UserKeyPair != nil {
		kp := *d.UserKeyPair
		u.UserKeyPair = &kp
	}
	u.IsGhostDevice = d.IsGhostDevice
	return u
}

func (d UserDevice) v1Fields() UserDeviceV1 {
	return UserDeviceV1{
		EphemeralPublicSignatureKey: d.EphemeralPublicSignatureKey,
		UserID:                      d.UserID,
		DelegationSignature:         d.DelegationSignature,
		PublicSignatureKey:          d.PublicSignatureKey,
		PublicEncryptionKey:         d.PublicEncryptionKey,
	}
}

// V1 narrows d to the V1 layout. Devices created after a user reset, or
// carrying a user key pair or ghost flag, have no V1 representation.
func (d UserDevice) V1() (UserDeviceV1, error) {
	if !d.LastReset.IsZero() {
		return UserDeviceV1{}, wire.Assertf("user device last reset must be null")
	}
	if d.UserKeyPair != nil || d.IsGhostDevice {
		return UserDeviceV1{}, wire.Assertf("user device v1 cannot carry a user key pair or ghost flag")
	}
	return d.v1Fields(), nil
}

// V2 narrows d to the V2 layout.
func (d UserDevice) V2() (UserDeviceV2, error) {
	if d.UserKeyPair != nil || d.IsGhostDevice {
		return UserDeviceV2{}, wire.Assertf("user device v2 cannot carry a user key pair or ghost flag")
	}
	return UserDeviceV2{LastReset: d.LastReset, UserDeviceV1: d.v1Fields()}, nil
}

// V3 narrows d to the V3 layout.
func (d UserDevice) V3() (UserDeviceV3, error) {
	if !d.LastReset.IsZero() {
		return UserDeviceV3{}, wire.Assertf("user device last reset must be null")
	}
	return UserDeviceV3{UserDeviceV1: d.v1Fields(), UserKeyPair: d.UserKeyPair, IsGhostDevice: d.IsGhostDevice}, nil
}

const userDeviceV1Size = domain.PublicSignatureKeySize + domain.HashSize + domain.SignatureSize +
	domain.PublicSignatureKeySize + domain.PublicEncryptionKeySize

const userKeyPairSize = domain.PublicEncryptionKeySize + domain.SealedEncryptionPrivateKeySize

func (d *UserDeviceV1) fields() []field {
	return []field{
		fixed("ephemeral_public_signature_key", d.EphemeralPublicSignatureKey[:], domain.PublicSignatureKeySize),
		fixed("user_id", d.UserID[:], domain.HashSize),
		fixed("delegation_signature", d.DelegationSignature[:], domain.SignatureSize),
		fixed("public_signature_key", d.PublicSignatureKey[:], domain.PublicSignatureKeySize),
		fixed("public_encryption_key", d.PublicEncryptionKey[:], domain.PublicEncryptionKeySize),
	}
}

func (kp *UserKeyPair) fields() []field {
	return []field{
		fixed("user_key_pair.public_encryption_key", kp.PublicEncryptionKey[:], domain.PublicEncryptionKeySize),
		fixed("user_key_pair.encrypted_private_encryption_key", kp.EncryptedPrivateEncryptionKey[:], domain.SealedEncryptionPrivateKeySize),
	}
}

// SerializeUserDeviceV1 encodes d in the V1 layout.
func SerializeUserDeviceV1(d UserDevice) ([]byte, error) {
	v1, err := d.V1()
	if err != nil {
		return nil, err
	}
	e := wire.NewEncoder(userDeviceV1Size)
	writeFields(e, v1.fields()...)
	return e.Bytes()
}

// SerializeUserDeviceV2 encodes d in the V2 layout. Unlike V1 and V3, the
// last reset is carried as is.
func SerializeUserDeviceV2(d UserDevice) ([]byte, error) {
	v2, err := d.V2()
	if err != nil {
		return nil, err
	}
	e := wire.NewEncoder(domain.HashSize + userDeviceV1Size)
	writeFields(e, fixed("last_reset", v2.LastReset[:], domain.HashSize))
	writeFields(e, v2.fields()...)
	return e.Bytes()
}

// SerializeUserDeviceV3 encodes d in the V3 layout: the V1 fields, the user
// key pair when present, then the ghost flag.
func SerializeUserDeviceV3(d UserDevice) ([]byte, error) {
	v3, err := d.V3()
	if err != nil {
		return nil, err
	}
	e := wire.NewEncoder(userDeviceV1Size + userKeyPairSize + 1)
	writeFields(e, v3.fields()...)
	if v3.UserKeyPair != nil {
		writeFields(e, v3.UserKeyPair.fields()...)
	}
	e.Bool(v3.IsGhostDevice)
	return e.Bytes()
}

func UnserializeUserDeviceV1(buf []byte) (UserDevice, error) {
	var d UserDeviceV1
	off, err := readFields(buf, 0, d.fields()...)
	if err != nil {
		return UserDevice{}, err
	}
	if err := wire.ExpectEnd(buf, off, "user_device_v1"); err != nil {
		return UserDevice{}, err
	}
	return d.Upgrade(), nil
}

func UnserializeUserDeviceV2(buf []byte) (UserDevice, error) {
	var d UserDeviceV2
	off, err := readFields(buf, 0, fixed("last_reset", d.LastReset[:], domain.HashSize))
	if err != nil {
		return UserDevice{}, err
	}
	if off, err = readFields(buf, off, d.fields()...); err != nil {
		return UserDevice{}, err
	}
	if err := wire.ExpectEnd(buf, off, "user_device_v2"); err != nil {
		return UserDevice{}, err
	}
	return d.Upgrade(), nil
}

// UnserializeUserDeviceV3 decodes the V3 layout. The user key pair has no
// presence marker: after the V1 fields, exactly one byte left means the
// ghost flag alone, and a key pair plus the flag means both are present.
//
// Truncation is therefore not always detected. A keyed payload cut to its
// V1 fields plus one byte decodes without error as a keyless device when
// that byte is 0 or 1. Callers that need the key pair must check that
// UserKeyPair is non-nil.
func UnserializeUserDeviceV3(buf []byte) (UserDevice, error) {
	var d UserDeviceV3
	off, err := readFields(buf, 0, d.fields()...)
	if err != nil {
		return UserDevice{}, err
	}
	switch rest := len(buf) - off; {
	case rest == 1:
	case rest == userKeyPairSize+1:
		d.UserKeyPair = &UserKeyPair{}
		if off, err = readFields(buf, off, d.UserKeyPair.fields()...); err != nil {
			return UserDevice{}, err
		}
	case rest < userKeyPairSize+1:
		return UserDevice{}, wire.NewDecodeError("user_device_v3", off, wire.ErrTruncated)
	default:
		return UserDevice{}, wire.NewDecodeError("user_device_v3", off+userKeyPairSize+1, wire.ErrTrailingBytes)
	}
	if d.IsGhostDevice, off, err = wire.ReadBool(buf, off, "is_ghost_device"); err != nil {
		return UserDevice{}, err
	}
	if err := wire.ExpectEnd(buf, off, "user_device_v3"); err != nil {
		return UserDevice{}, err
	}
	return d.Upgrade(), nil
}

package types

// DeviceKeys holds a device's long-term signature and encryption key pairs.
// The signature key authors blocks; the encryption key receives sealed keys.
type DeviceKeys struct {
	SignaturePublic   PublicSignatureKey   `json:"signature_public"`
	SignaturePrivate  PrivateSignatureKey  `json:"signature_private"`
	EncryptionPublic  PublicEncryptionKey  `json:"encryption_public"`
	EncryptionPrivate PrivateEncryptionKey `json:"encryption_private"`
}

// Fingerprint is the short hex digest of a device's public signature key
// that users compare out of band.
type Fingerprint string

func (f Fingerprint) String() string { return string(f) }

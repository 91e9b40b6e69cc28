package domain

import (
	interfaces "trustchain/internal/domain/interfaces"
	types "trustchain/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint                = types.Fingerprint
	DeviceKeys                 = types.DeviceKeys
	Hash                       = types.Hash
	Signature                  = types.Signature
	PublicSignatureKey         = types.PublicSignatureKey
	PrivateSignatureKey        = types.PrivateSignatureKey
	PublicEncryptionKey        = types.PublicEncryptionKey
	PrivateEncryptionKey       = types.PrivateEncryptionKey
	SymmetricKey               = types.SymmetricKey
	Mac                        = types.Mac
	SealedKey                  = types.SealedKey
	SealedSignaturePrivateKey  = types.SealedSignaturePrivateKey
	SealedEncryptionPrivateKey = types.SealedEncryptionPrivateKey
)

// Field sizes re-exported from the types subpackage.
const (
	HashSize                       = types.HashSize
	SignatureSize                  = types.SignatureSize
	PublicSignatureKeySize         = types.PublicSignatureKeySize
	PrivateSignatureKeySize        = types.PrivateSignatureKeySize
	PublicEncryptionKeySize        = types.PublicEncryptionKeySize
	PrivateEncryptionKeySize       = types.PrivateEncryptionKeySize
	SymmetricKeySize               = types.SymmetricKeySize
	MacSize                        = types.MacSize
	XChaChaIVSize                  = types.XChaChaIVSize
	SealOverhead                   = types.SealOverhead
	SealedKeySize                  = types.SealedKeySize
	SealedSignaturePrivateKeySize  = types.SealedSignaturePrivateKeySize
	SealedEncryptionPrivateKeySize = types.SealedEncryptionPrivateKeySize
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DeviceKeyService = interfaces.DeviceKeyService
	DeviceKeyStore   = interfaces.DeviceKeyStore
)

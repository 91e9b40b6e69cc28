package interfaces

import domaintypes "trustchain/internal/domain/types"

// DeviceKeyService creates, retrieves, and inspects the local device keys.
type DeviceKeyService interface {
	GenerateDeviceKeys(passphrase string) (
		domaintypes.DeviceKeys,
		domaintypes.Fingerprint,
		error,
	)
	LoadDeviceKeys(passphrase string) (domaintypes.DeviceKeys, error)
	FingerprintDevice(passphrase string) (domaintypes.Fingerprint, error)
}

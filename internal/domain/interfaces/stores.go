package interfaces

import domaintypes "trustchain/internal/domain/types"

// DeviceKeyStore persists the local device keys under a passphrase.
type DeviceKeyStore interface {
	SaveDeviceKeys(passphrase string, keys domaintypes.DeviceKeys) error
	LoadDeviceKeys(passphrase string) (domaintypes.DeviceKeys, error)
}

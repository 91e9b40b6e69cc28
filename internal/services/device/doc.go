// Package device manages creation, encryption and loading of the local
// device keys.
//
// It enforces passphrase policy, generates the Ed25519 signature and X25519
// encryption key pairs a device authors and receives blocks with, and
// persists them via the domain.DeviceKeyStore.
package device

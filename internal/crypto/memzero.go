package crypto

import (
	"runtime"

	"trustchain/internal/domain"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}

// WipeDeviceKeys zeroes both private halves of keys.
func WipeDeviceKeys(keys *domain.DeviceKeys) {
	Wipe(keys.SignaturePrivate[:])
	Wipe(keys.EncryptionPrivate[:])
}

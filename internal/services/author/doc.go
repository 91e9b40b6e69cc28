// Package author creates signed blocks with the local device keys.
//
// It loads the device keys through a domain.DeviceKeyService, builds the
// payload record, wraps it in a block under the preferred nature and signs
// the block's canonical form. Private keys are wiped once the block is
// signed.
package author

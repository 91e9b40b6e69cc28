// Package domain defines the fixed-size protocol types and the contracts
// shared across the module.
//
// Every fixed-width wire field (hashes, keys, signatures, sealed keys) is a
// distinct array type, so a record holding the wrong size cannot be built.
// The Must* constructors convert from slices and panic on a size mismatch.
package domain

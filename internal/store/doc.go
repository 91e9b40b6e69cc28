// Package store provides file-based persistence for the local device keys.
//
// Keys are serialised as JSON, encrypted with XChaCha20-Poly1305 under a
// scrypt-derived key, and written atomically with 0600 permissions under the
// configured home directory. Methods are concurrency-safe via internal
// locking.
package store

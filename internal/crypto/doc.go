// Package crypto exposes the primitives the trustchain consumes.
//
// Contents
//
//   - BLAKE2b-256 hashing (Hash)
//   - Ed25519 key generation, signing and verification
//     (GenerateSignatureKeyPair, Sign, Verify)
//   - Curve25519 key generation with clamping (GenerateEncryptionKeyPair)
//   - Anonymous sealed boxes for resource keys and private keys
//     (SealKey, OpenKey, SealEncryptionPrivateKey, SealSignaturePrivateKey, ...)
//   - XChaCha20-Poly1305 for variable-length key publishes
//     (EncryptAEAD, DecryptAEAD)
//   - Best-effort memory wiping (Wipe, WipeDeviceKeys)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// All functions take and return the fixed-size array types defined in
// internal/domain, so the sizes of sealed outputs match the protocol
// constants by construction. Sealed boxes are libsodium crypto_box_seal
// compatible: a fresh ephemeral Curve25519 key, XSalsa20-Poly1305, and a
// nonce derived from both public keys.
package crypto

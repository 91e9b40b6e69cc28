// Package commands defines the trustchain CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate and store the device signature and encryption keys
//   - fingerprint  Print the device fingerprint
//   - init         Sign the root block of a new trustchain
//   - publish-key  Sign a block sharing a resource key with a user
//   - inspect      Decode, verify and print a block
//   - natures      List the block natures this build understands
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the dependency graph (logger, key store, services) before any subcommand
// runs. Blocks, keys and hashes are read and printed in the configured text
// encoding.
package commands

// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML, builds the logger, the device key store and
// the high-level services, and exposes them via App for commands to use.
package app

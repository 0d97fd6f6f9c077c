// Package cli provides the interactive passlist command-line client.
//
// It wires configuration, a storage backend (vault), the in-memory record
// store and a read–eval–print loop. Typical flow: open the backend, ask for
// the passphrase when the backend needs one, load the store, then execute
// user commands until exit. Nothing is written unless the user saves.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

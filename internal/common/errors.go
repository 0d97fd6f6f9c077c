package common

import "errors"

// Callers should use errors.Is to match these values.
var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// ErrUnknownOperation guards against requests for an operation, order key
	// or backend the code does not know about. It signals a programmer error.
	ErrUnknownOperation = errors.New("unknown operation")

	// Vault errors.
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrNoPassphrase    = errors.New("passphrase required")
	ErrCorruptVault    = errors.New("corrupt vault")
)

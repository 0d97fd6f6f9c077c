// Package vault implements the load/save collaborators used by the store:
// a plain text file, a passphrase-sealed file, and a sealed blob kept in a
// local sqlite database.
package vault

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passlist/internal/common"
)

// Backend is a load/save collaborator pair bound to one location.
type Backend interface {
	Load(ctx context.Context, passphrase []byte) (string, error)
	Save(ctx context.Context, text string, passphrase []byte) error

	// NeedsPassphrase reports whether Load and Save require a passphrase.
	NeedsPassphrase() bool

	// Exists reports whether a store was saved at this location before.
	Exists(ctx context.Context) (bool, error)

	// Location describes where the data lives, for messages and logs.
	Location() string

	Close() error
}

// Kind names a backend implementation in configuration.
type Kind string

const (
	KindFile   Kind = "file"
	KindSealed Kind = "sealed"
	KindSQLite Kind = "sqlite"
)

// Open returns the backend of the given kind stored at path.
func Open(ctx context.Context, kind Kind, path string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewPlainFile(path), nil
	case KindSealed:
		return NewSealedFile(path), nil
	case KindSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("backend %q: %w", kind, common.ErrUnknownOperation)
	}
}

package vault

import (
	"context"

	"github.com/dmitrijs2005/passlist/internal/filex"
)

// PlainFile keeps the store as UTF-8 text. Protection at rest is left to
// whatever sits underneath (an encrypted volume, for instance).
type PlainFile struct {
	path string
}

func NewPlainFile(path string) *PlainFile {
	return &PlainFile{path: path}
}

// Load returns the file contents. A missing file reads as an empty store.
func (p *PlainFile) Load(ctx context.Context, _ []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, _, err := filex.ReadIfExists(p.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save atomically replaces the file with text.
func (p *PlainFile) Save(ctx context.Context, text string, _ []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return filex.WriteAtomic(p.path, []byte(text), 0o600)
}

func (p *PlainFile) Exists(ctx context.Context) (bool, error) {
	return filex.Exists(p.path)
}

func (p *PlainFile) NeedsPassphrase() bool { return false }
func (p *PlainFile) Location() string      { return p.path }
func (p *PlainFile) Close() error          { return nil }

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passlist/internal/common"
)

var errPassphraseMismatch = errors.New("passphrases do not match")

// Save writes the store through the backend when it has unsaved changes.
func (a *App) Save(ctx context.Context, args []string) error {
	if !a.store.Dirty() {
		fmt.Fprintln(a.out, "Nothing to save.")
		return nil
	}

	if err := a.store.Save(ctx, a.backend); err != nil {
		a.logger.Error(ctx, "save failed", "location", a.backend.Location(), "error", err)
		return err
	}

	a.logger.Info(ctx, "store saved", "location", a.backend.Location(), "records", a.store.Len())
	fmt.Fprintf(a.out, "Saved %d record(s) to %s.\n", a.store.Len(), a.backend.Location())
	return nil
}

// Passwd sets a new passphrase for the store. It takes effect on the next save.
func (a *App) Passwd(ctx context.Context, args []string) error {
	if !a.backend.NeedsPassphrase() {
		fmt.Fprintf(a.out, "%s is stored as plain text; there is no passphrase to change.\n", a.backend.Location())
		return nil
	}

	pass, err := a.newPassphrase()
	if err != nil {
		return err
	}

	a.store.SetFilePassword(pass)
	a.store.MarkModified()
	fmt.Fprintln(a.out, "Passphrase changed; run 'save' to re-encrypt the store.")
	return nil
}

// newPassphrase reads a new passphrase and its confirmation.
func (a *App) newPassphrase() ([]byte, error) {
	first, err := GetSecret(a.reader, "New passphrase", a.out)
	if err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, common.ErrNoPassphrase
	}

	second, err := GetSecret(a.reader, "Repeat passphrase", a.out)
	if err != nil {
		common.WipeByteArray(first)
		return nil, err
	}
	defer common.WipeByteArray(second)

	if !bytes.Equal(first, second) {
		common.WipeByteArray(first)
		return nil, errPassphraseMismatch
	}
	return first, nil
}

// Reload discards the in-memory store and loads it again from the backend.
func (a *App) Reload(ctx context.Context, args []string) error {
	if a.store.Dirty() {
		ok, err := Confirm(a.reader, "Discard unsaved changes?", a.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}

	if err := a.open(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reloaded %d record(s).\n", a.store.Len())
	return nil
}

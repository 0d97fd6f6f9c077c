package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passlist/internal/client/models"
	"github.com/dmitrijs2005/passlist/internal/client/store"
	"github.com/dmitrijs2005/passlist/internal/common"
)

var (
	errNameRequired = errors.New("name is required")
	errNoSeparators = errors.New("fields cannot contain tabs or newlines")
)

// nameArg takes the record name from the arguments or asks for it. Names
// are used exactly as typed, spaces included.
func (a *App) nameArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	name, err := GetRawText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errNameRequired
	}
	return name, nil
}

func (a *App) lookup(name string) (*models.Record, error) {
	r, ok := a.store.Get(name)
	if !ok {
		return nil, fmt.Errorf("record %q: %w", name, common.ErrNotFound)
	}
	return r, nil
}

// checkField rejects values that would break the line format.
func checkField(v string) error {
	if strings.ContainsAny(v, "\t\r\n") {
		return errNoSeparators
	}
	return nil
}

// List prints every record, ordered by the key in args or the current default.
// A key given here becomes the new default.
func (a *App) List(ctx context.Context, args []string) error {
	if arg := strings.TrimSpace(strings.Join(args, " ")); arg != "" {
		key, err := store.ParseOrderKey(arg)
		if err != nil {
			return err
		}
		a.order = key
	}

	records := store.Order(a.store.All(), a.order)
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No records.")
		return nil
	}
	return renderList(a.out, records, a.showPasswords)
}

// Show prints one record.
func (a *App) Show(ctx context.Context, args []string) error {
	name, err := a.nameArg(args, "Enter record name to show")
	if err != nil {
		return err
	}
	r, err := a.lookup(name)
	if err != nil {
		return err
	}
	return renderRecord(a.out, r, a.showPasswords)
}

// Add prompts for a new record and adds it to the store. An empty password
// is replaced by a generated one; an empty memo means no memo.
func (a *App) Add(ctx context.Context, args []string) error {
	name, err := a.nameArg(args, "Enter name")
	if err != nil {
		return err
	}
	if err := checkField(name); err != nil {
		return err
	}
	if _, exists := a.store.Get(name); exists {
		fmt.Fprintf(a.out, "Note: a record named %q already exists; adding another one.\n", name)
	}

	account, err := GetSimpleText(a.reader, "Enter account id", a.out)
	if err != nil {
		return err
	}
	if err := checkField(account); err != nil {
		return err
	}

	password, err := a.readNewPassword("Enter password (empty to generate)")
	if err != nil {
		return err
	}

	memo, err := GetSimpleText(a.reader, "Enter memo (optional)", a.out)
	if err != nil {
		return err
	}
	if err := checkField(memo); err != nil {
		return err
	}

	r := models.NewRecord(name, account, password, a.now())
	if memo != "" {
		r.SetMemo(memo)
	}
	a.store.Add(r)

	a.logger.Debug(ctx, "record added", "name", name)
	fmt.Fprintf(a.out, "Added %q.\n", name)
	return nil
}

// readNewPassword reads a password without echo; empty input generates one.
func (a *App) readNewPassword(prompt string) (string, error) {
	pw, err := GetSecret(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)

	if len(pw) == 0 {
		generated, err := a.generate()
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		fmt.Fprintln(a.out, "Generated a new password.")
		return generated, nil
	}

	password := string(pw)
	if err := checkField(password); err != nil {
		return "", err
	}
	return password, nil
}

// Edit walks through the fields of a record. Empty input keeps a value.
// For the password "?" generates a new one; for the memo "-" removes it.
// Any change refreshes the update date and marks the store modified.
func (a *App) Edit(ctx context.Context, args []string) error {
	name, err := a.nameArg(args, "Enter record name to edit")
	if err != nil {
		return err
	}
	r, err := a.lookup(name)
	if err != nil {
		return err
	}

	changed := false

	newName, err := GetSimpleText(a.reader, fmt.Sprintf("Name [%s]", r.Name), a.out)
	if err != nil {
		return err
	}
	if err := checkField(newName); err != nil {
		return err
	}

	account, err := GetSimpleText(a.reader, fmt.Sprintf("Account id [%s]", r.AccountID), a.out)
	if err != nil {
		return err
	}
	if err := checkField(account); err != nil {
		return err
	}

	pw, err := GetSecret(a.reader, "New password (empty keeps, ? generates)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	password := ""
	switch string(pw) {
	case "":
	case "?":
		password, err = a.generate()
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
	default:
		password = string(pw)
		if err := checkField(password); err != nil {
			return err
		}
	}

	current, _ := r.MemoText()
	memo, err := GetSimpleText(a.reader, fmt.Sprintf("Memo [%s] (- removes)", current), a.out)
	if err != nil {
		return err
	}
	if err := checkField(memo); err != nil {
		return err
	}

	if newName != "" && newName != r.Name {
		r.Name = newName
		changed = true
	}
	if account != "" && account != r.AccountID {
		r.AccountID = account
		changed = true
	}
	if password != "" && password != r.Password {
		r.Password = password
		changed = true
	}
	switch {
	case memo == "-":
		if _, ok := r.MemoText(); ok {
			r.ClearMemo()
			changed = true
		}
	case memo != "":
		if old, ok := r.MemoText(); !ok || old != memo {
			r.SetMemo(memo)
			changed = true
		}
	}

	if !changed {
		fmt.Fprintln(a.out, "No changes.")
		return nil
	}

	r.Touch(a.now())
	a.store.MarkModified()
	a.logger.Debug(ctx, "record edited", "name", r.Name)
	fmt.Fprintf(a.out, "Updated %q.\n", r.Name)
	return nil
}

// Delete removes every record with the given name after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	name, err := a.nameArg(args, "Enter record name to delete")
	if err != nil {
		return err
	}

	matches := 0
	for _, r := range a.store.All() {
		if r.Name == name {
			matches++
		}
	}
	if matches == 0 {
		return fmt.Errorf("record %q: %w", name, common.ErrNotFound)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %d record(s) named %q?", matches, name), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	n := a.store.DeleteByName(name)
	a.logger.Debug(ctx, "records deleted", "name", name, "count", n)
	fmt.Fprintf(a.out, "Deleted %d record(s).\n", n)
	return nil
}

// Copy puts a record's password (default) or account id on the clipboard.
func (a *App) Copy(ctx context.Context, args []string) error {
	field := "password"
	if len(args) > 1 {
		switch last := args[len(args)-1]; last {
		case "password", "id":
			field = last
			args = args[:len(args)-1]
		}
	}

	name, err := a.nameArg(args, "Enter record name to copy")
	if err != nil {
		return err
	}
	r, err := a.lookup(name)
	if err != nil {
		return err
	}

	value := r.Password
	if field == "id" {
		value = r.AccountID
	}
	if err := a.clipboard.copy(value); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	if a.clipboard.clearAfter > 0 && field == "password" {
		fmt.Fprintf(a.out, "Copied %s of %q; clearing in %s.\n", field, name, a.clipboard.clearAfter)
	} else {
		fmt.Fprintf(a.out, "Copied %s of %q.\n", field, name)
	}
	return nil
}

// Generate prints a freshly generated password.
func (a *App) Generate(ctx context.Context, args []string) error {
	pw, err := a.generate()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, pw)
	return nil
}

// Toggle flips password visibility in list and show.
func (a *App) Toggle(ctx context.Context, args []string) error {
	a.showPasswords = !a.showPasswords
	if a.showPasswords {
		fmt.Fprintln(a.out, "Passwords are shown.")
	} else {
		fmt.Fprintln(a.out, "Passwords are hidden.")
	}
	return nil
}

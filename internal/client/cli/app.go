package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/passlist/internal/client/config"
	"github.com/dmitrijs2005/passlist/internal/client/passgen"
	"github.com/dmitrijs2005/passlist/internal/client/store"
	"github.com/dmitrijs2005/passlist/internal/client/vault"
	"github.com/dmitrijs2005/passlist/internal/common"
	"github.com/dmitrijs2005/passlist/internal/logging"
)

// maxPassphraseAttempts bounds the prompts for a wrong store passphrase.
const maxPassphraseAttempts = 3

type App struct {
	config        *config.Config
	backend       vault.Backend
	store         *store.Store
	order         store.OrderKey
	showPasswords bool
	generate      passgen.Func
	clipboard     *clipboardGuard
	logger        logging.Logger
	reader        *bufio.Reader
	out           io.Writer
	now           func() time.Time
}

// NewApp opens the configured backend and prepares an App reading from
// stdin. The store itself is loaded by Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel).With("backend", c.Backend)

	backend, err := vault.Open(ctx, vault.Kind(c.Backend), c.StorePath)
	if err != nil {
		logger.Error(ctx, "error opening backend", "path", c.StorePath, "error", err)
		return nil, err
	}

	return newApp(c, backend, bufio.NewReader(os.Stdin), os.Stdout, logger)
}

func newApp(c *config.Config, backend vault.Backend, reader *bufio.Reader, out io.Writer, logger logging.Logger) (*App, error) {
	order, err := store.ParseOrderKey(c.OrderKey)
	if err != nil {
		return nil, err
	}

	gen := passgen.Generator{Length: c.PasswordLength, Symbols: c.PasswordSymbols}

	return &App{
		config:        c,
		backend:       backend,
		order:         order,
		showPasswords: c.ShowPasswords,
		generate:      gen.Func(),
		clipboard:     &clipboardGuard{clearAfter: c.ClipboardClearAfter},
		logger:        logger,
		reader:        reader,
		out:           out,
		now:           time.Now,
	}, nil
}

// Run loads the store and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	if err := a.open(ctx); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "passlist: %d record(s) from %s (type 'help' for commands)\n",
		a.store.Len(), a.backend.Location())

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) close(ctx context.Context) {
	a.clipboard.stop()
	if err := a.backend.Close(); err != nil {
		a.logger.Warn(ctx, "error closing backend", "error", err)
	}
}

func (a *App) status() string {
	if a.Dirty() {
		return "*"
	}
	return ""
}

// Dirty reports whether the loaded store has unsaved changes.
func (a *App) Dirty() bool {
	return a.store != nil && a.store.Dirty()
}

// passphrase returns the configured passphrase or prompts for one.
func (a *App) passphrase() ([]byte, error) {
	if a.config.FilePassword != "" {
		return []byte(a.config.FilePassword), nil
	}
	return GetSecret(a.reader, "Store passphrase", a.out)
}

// open builds a fresh Store from the backend, asking for the passphrase
// when the backend needs one and none is bound yet. A store that was never
// saved gets its passphrase entered twice.
func (a *App) open(ctx context.Context) error {
	var bound []byte
	if a.store != nil {
		bound = a.store.FilePassword()
	}

	if !a.backend.NeedsPassphrase() {
		return a.load(ctx, nil)
	}

	// a passphrase changed with passwd but never saved no longer opens the
	// backend, so fall back to asking
	if len(bound) > 0 {
		err := a.load(ctx, bound)
		if !errors.Is(err, common.ErrWrongPassphrase) {
			return err
		}
	}

	if a.config.FilePassword == "" {
		exists, err := a.backend.Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return a.create(ctx)
		}
	}

	var err error
	for attempt := 1; attempt <= maxPassphraseAttempts; attempt++ {
		var pass []byte
		pass, err = a.passphrase()
		if err != nil {
			return err
		}

		err = a.load(ctx, pass)
		if !errors.Is(err, common.ErrWrongPassphrase) {
			return err
		}
		common.WipeByteArray(pass)
		a.logger.Warn(ctx, "wrong passphrase", "attempt", attempt)
		if a.config.FilePassword != "" {
			break
		}
	}
	return err
}

// create starts an empty store at a location that holds none yet.
func (a *App) create(ctx context.Context) error {
	fmt.Fprintf(a.out, "No store at %s yet; choose a passphrase for it.\n", a.backend.Location())

	var err error
	for attempt := 1; attempt <= maxPassphraseAttempts; attempt++ {
		var pass []byte
		pass, err = a.newPassphrase()
		if err == nil {
			return a.load(ctx, pass)
		}
		if !errors.Is(err, errPassphraseMismatch) {
			return err
		}
		fmt.Fprintln(a.out, "Passphrases do not match, try again.")
		a.logger.Warn(ctx, "passphrase mismatch", "attempt", attempt)
	}
	return err
}

func (a *App) load(ctx context.Context, pass []byte) error {
	s, err := store.Open(ctx, a.backend, pass)
	if err != nil {
		return err
	}
	a.store = s
	a.logger.Info(ctx, "store loaded", "location", a.backend.Location(), "records", s.Len())
	return nil
}

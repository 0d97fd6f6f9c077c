package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/passlist/internal/common"
)

// Config holds runtime settings for the passlist CLI.
type Config struct {
	// StorePath is the backing file (or sqlite database) location.
	StorePath string
	// Backend is one of "file", "sealed", "sqlite".
	Backend string

	ShowPasswords bool
	// OrderKey is the default listing order: name, id, time or memo.
	OrderKey string

	PasswordLength  int
	PasswordSymbols bool

	// ClipboardClearAfter wipes a copied secret from the clipboard after
	// this long, if it is still there. Zero disables clearing.
	ClipboardClearAfter time.Duration

	// FilePassword, when set, is used instead of prompting for the store
	// passphrase. Only the JSON config can set it.
	FilePassword string

	LogLevel string
}

// DefaultStorePath returns ~/.passlist/passlist.txt, or the bare file name
// when the home directory is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return common.DefaultStoreFile
	}
	return filepath.Join(home, ".passlist", common.DefaultStoreFile)
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = DefaultStorePath()
	c.Backend = "file"
	c.ShowPasswords = false
	c.OrderKey = "name"
	c.PasswordLength = 20
	c.PasswordSymbols = true
	c.ClipboardClearAfter = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then command-line flags. Later sources win.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

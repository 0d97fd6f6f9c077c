package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/passlist/internal/flagx"
)

// ownFlags lists the flags parsed here and whether each takes a value.
var ownFlags = map[string]bool{
	"-f": true,
	"-b": true,
	"-o": true,
	"-l": true,
	"-v": true,
	"-s": false,
}

// parseFlags populates selected Config fields from command-line flags:
//
//	-f string   store file path
//	-b string   backend: file, sealed or sqlite
//	-o string   default order key
//	-l int      generated password length
//	-v string   log level
//	-s          show passwords in listings
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, ownFlags)

	fs := flag.NewFlagSet("passlist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "store file path")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (file, sealed, sqlite)")
	fs.StringVar(&cfg.OrderKey, "o", cfg.OrderKey, "default order (name, id, time, memo)")
	fs.IntVar(&cfg.PasswordLength, "l", cfg.PasswordLength, "generated password length")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.ShowPasswords, "s", cfg.ShowPasswords, "show passwords in listings")

	return fs.Parse(filtered)
}

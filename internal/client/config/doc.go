// Package config loads runtime configuration for the passlist CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-f string   store file path
//	-b string   backend: file, sealed or sqlite
//	-o string   default order key: name, id, time or memo
//	-l int      generated password length
//	-s          show passwords in listings
//	-v string   log level
//
// # JSON schema
//
// Every key is optional. Durations may be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "store_path": "/home/me/.passlist/passlist.plst",
//	  "backend": "sealed",
//	  "show_passwords": false,
//	  "order_key": "time",
//	  "password_length": 24,
//	  "password_symbols": true,
//	  "clipboard_clear_after": "45s",
//	  "file_password": "",
//	  "log_level": "info"
//	}
//
// file_password is the only way to bind the store passphrase without a
// prompt; no flag accepts it so it never shows up in process listings.
package config

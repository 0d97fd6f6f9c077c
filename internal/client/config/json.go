package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/passlist/internal/flagx"
	"github.com/dmitrijs2005/passlist/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type JsonConfig struct {
	StorePath           *string         `json:"store_path"`
	Backend             *string         `json:"backend"`
	ShowPasswords       *bool           `json:"show_passwords"`
	OrderKey            *string         `json:"order_key"`
	PasswordLength      *int            `json:"password_length"`
	PasswordSymbols     *bool           `json:"password_symbols"`
	ClipboardClearAfter *timex.Duration `json:"clipboard_clear_after"`
	FilePassword        *string         `json:"file_password"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file given by -c or -config. Without
// such a flag nothing changes.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.Backend != nil {
		cfg.Backend = *jc.Backend
	}
	if jc.ShowPasswords != nil {
		cfg.ShowPasswords = *jc.ShowPasswords
	}
	if jc.OrderKey != nil {
		cfg.OrderKey = *jc.OrderKey
	}
	if jc.PasswordLength != nil {
		cfg.PasswordLength = *jc.PasswordLength
	}
	if jc.PasswordSymbols != nil {
		cfg.PasswordSymbols = *jc.PasswordSymbols
	}
	if jc.ClipboardClearAfter != nil {
		cfg.ClipboardClearAfter = jc.ClipboardClearAfter.Duration
	}
	if jc.FilePassword != nil {
		cfg.FilePassword = *jc.FilePassword
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}

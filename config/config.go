package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

const DEFAULT_FILE = "aidynedit.ini"

// Config is what aidynedit.ini can set. Command-line flags override it.
type Config struct {
	ROM      string
	Backup   bool
	LogLevel string
}

func Default() Config {
	return Config{Backup: true}
}

// Load reads the default section of an ini file over the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DEFAULT_FILE
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("reading %v: %w", path, err)
	}

	// default section can be represented as empty string
	sec := file.Section("")
	cfg.ROM = sec.Key("rom").String()
	cfg.LogLevel = sec.Key("log_level").String()
	if sec.HasKey("backup") {
		cfg.Backup, err = sec.Key("backup").Bool()
		if err != nil {
			return cfg, fmt.Errorf("%v: backup: %w", path, err)
		}
	}
	return cfg, nil
}

// Pick returns the first non-empty value: flag, then ini, then fallback.
func Pick(flag, ini, fallback string) string {
	if flag != "" {
		return flag
	}
	if ini != "" {
		return ini
	}
	return fallback
}

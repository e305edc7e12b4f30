package config

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateHistogram(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.InputFile == "" {
		return errors.New("paths.input_file must be set")
	}
	if c.Paths.BackupFile == "" {
		return errors.New("paths.backup_file must be set")
	}
	if c.Paths.InputFile == c.Paths.BackupFile {
		return fmt.Errorf("paths.backup_file must differ from paths.input_file (%s)", c.Paths.InputFile)
	}
	return nil
}

func (c *Config) validateHistogram() error {
	symbol := c.Histogram.Symbol
	if utf8.RuneCountInString(symbol) != 1 {
		return fmt.Errorf("histogram.symbol must be a single character, got %q", symbol)
	}
	r, _ := utf8.DecodeRuneInString(symbol)
	if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return fmt.Errorf("histogram.symbol must be a visible character, got %q", symbol)
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Limit < 0 {
		return errors.New("history.limit must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

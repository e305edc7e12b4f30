package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"grocer/internal/config"
	"grocer/internal/logging"
)

type globalFlags struct {
	config    string
	input     string
	backup    string
	symbol    string
	noHistory bool
}

type commandContext struct {
	flags  *globalFlags
	stderr io.Writer

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
	// dirErr records a state or log directory that could not be created.
	// Commands still run; logging, history and locking degrade.
	dirErr error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags, stderr: os.Stderr}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.dirErr = cfg.EnsureDirectories()
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// applyOverrides layers command-line flags over the loaded configuration.
func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if value := strings.TrimSpace(c.flags.input); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return fmt.Errorf("--input: %w", err)
		}
		cfg.Paths.InputFile = expanded
	}
	if value := strings.TrimSpace(c.flags.backup); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return fmt.Errorf("--backup: %w", err)
		}
		cfg.Paths.BackupFile = expanded
	}
	if c.flags.symbol != "" {
		cfg.Histogram.Symbol = c.flags.symbol
	}
	if c.flags.noHistory {
		cfg.History.Enabled = false
	}
	return cfg.Validate()
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, err = c.fallbackLogger(cfg, err)
			if err != nil {
				c.loggerErr = fmt.Errorf("init logger: %w", err)
				return
			}
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// fallbackLogger writes warnings and errors to stderr when the log file is
// unavailable.
func (c *commandContext) fallbackLogger(cfg *config.Config, cause error) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{Format: cfg.Logging.Format, Level: "warn", Writer: c.stderr})
	if err != nil {
		return nil, err
	}
	logger.Warn("log file unavailable; logging warnings to stderr",
		logging.String(logging.FieldEventType, "log_file_unavailable"),
		logging.String(logging.FieldPath, cfg.LogFilePath()),
		logging.Error(cause),
	)
	return logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

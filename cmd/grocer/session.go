package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"grocer/internal/config"
	"grocer/internal/frequency"
	"grocer/internal/history"
	"grocer/internal/logging"
)

// session is one loaded and persisted frequency table plus the wiring around it.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	logger  *slog.Logger
	tracker *frequency.Tracker
	run     history.Run
}

// openSession performs the startup cycle: load the input file, rewrite the
// backup file, and record the run. Load and persist failures are fatal;
// history failures are only logged.
func (c *commandContext) openSession(ctx context.Context) (*session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	baseLogger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	run := history.Run{
		ID:         history.NewRunID(),
		StartedAt:  time.Now().UTC(),
		InputPath:  cfg.Paths.InputFile,
		BackupPath: cfg.Paths.BackupFile,
	}
	ctx = logging.WithRunID(ctx, run.ID)
	logger := logging.WithContext(ctx, baseLogger)

	if c.dirErr != nil {
		logger.Warn("state directories unavailable",
			logging.String(logging.FieldEventType, "state_dir_unavailable"),
			logging.Error(c.dirErr),
		)
	}

	opts := []frequency.Option{frequency.WithLogger(logger)}
	if lockPath := cfg.Paths.LockFile; lockPath != "" {
		if isDir(filepath.Dir(lockPath)) {
			opts = append(opts, frequency.WithLockPath(lockPath))
		} else {
			logger.Warn("lock directory unavailable; writing backup without lock",
				logging.String(logging.FieldEventType, "lock_unavailable"),
				logging.String(logging.FieldPath, lockPath),
			)
		}
	}
	tracker := frequency.New(
		frequency.Paths{Input: cfg.Paths.InputFile, Backup: cfg.Paths.BackupFile},
		opts...,
	)
	if err := tracker.Initialize(); err != nil {
		return nil, startupError(cfg, err)
	}
	run.Tokens = tracker.Total()
	run.Items = tracker.Len()

	sess := &session{ctx: ctx, cfg: cfg, logger: logger, tracker: tracker, run: run}
	sess.recordHistory()
	return sess, nil
}

func (s *session) recordHistory() {
	if !s.cfg.History.Enabled {
		return
	}
	if !isDir(filepath.Dir(s.cfg.History.Path)) {
		s.logger.Warn("history directory unavailable; run not recorded",
			logging.String(logging.FieldEventType, "history_unavailable"),
			logging.String(logging.FieldPath, s.cfg.History.Path),
		)
		return
	}
	store, err := history.Open(s.ctx, s.cfg.History.Path)
	if err != nil {
		s.logger.Warn("history unavailable; run not recorded",
			logging.String(logging.FieldEventType, "history_open_failed"),
			logging.String(logging.FieldPath, s.cfg.History.Path),
			logging.Error(err),
		)
		return
	}
	defer store.Close()

	if _, err := store.Record(s.ctx, s.run, s.tracker.ListAll()); err != nil {
		s.logger.Warn("history record failed; run not recorded",
			logging.String(logging.FieldEventType, "history_record_failed"),
			logging.Error(err),
		)
		return
	}
	s.logger.Debug("run recorded", logging.String(logging.FieldEventType, "history_recorded"))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func startupError(cfg *config.Config, err error) error {
	switch {
	case errors.Is(err, frequency.ErrSourceUnavailable):
		return fmt.Errorf("could not open input file '%s'; please ensure it exists and is readable: %w", cfg.Paths.InputFile, err)
	case errors.Is(err, frequency.ErrSinkUnavailable):
		return fmt.Errorf("could not create backup file '%s': %w", cfg.Paths.BackupFile, err)
	default:
		return err
	}
}

package frequency

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gofrs/flock"

	"grocer/internal/fileutil"
	"grocer/internal/logging"
)

const backupFileMode = 0o644

// Persist rewrites the backup file with one "<key> <count>" line per entry.
// Symlinks are followed and an existing file keeps its mode; errors wrap
// ErrSinkUnavailable.
func (t *Tracker) Persist() error {
	if !t.loaded {
		return ErrNotLoaded
	}
	path := t.paths.Backup

	if t.lockPath != "" {
		lock := flock.New(t.lockPath)
		if err := lock.Lock(); err != nil {
			return fmt.Errorf("%w: acquire lock %s: %w", ErrSinkUnavailable, t.lockPath, err)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	err := fileutil.ReplaceFile(path, backupFileMode, func(w io.Writer) error {
		_, err := t.WriteTo(w)
		return err
	})
	if err != nil {
		t.logger.Error("backup write failed",
			logging.String(logging.FieldEventType, "backup_write_failed"),
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}

	t.logger.Info("backup written",
		logging.String(logging.FieldEventType, "backup_written"),
		logging.String(logging.FieldPath, path),
		logging.Int("items", t.Len()),
	)
	return nil
}

// WriteTo writes the backup representation of the table to w. It implements
// io.WriterTo.
func (t *Tracker) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	line := make([]byte, 0, 64)
	for key, count := range t.All() {
		line = append(line[:0], key...)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(count), 10)
		line = append(line, '\n')
		n, err := bw.Write(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

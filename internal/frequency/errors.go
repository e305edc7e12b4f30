package frequency

import "errors"

var (
	// ErrSourceUnavailable reports that the input file could not be opened or read.
	ErrSourceUnavailable = errors.New("input source unavailable")
	// ErrSinkUnavailable reports that the backup file could not be created or written.
	ErrSinkUnavailable = errors.New("backup sink unavailable")
	// ErrNotLoaded reports an operation that needs a loaded table.
	ErrNotLoaded = errors.New("frequency table not loaded")
)

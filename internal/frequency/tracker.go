package frequency

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"grocer/internal/logging"
	"grocer/internal/textutil"
)

// DefaultSymbol is the histogram bar symbol used when none is given.
const DefaultSymbol = '*'

// Entry is one row of the frequency table.
type Entry struct {
	Key   string
	Count int
}

// HistogramRow pairs a key with its bar, the symbol repeated Count times.
type HistogramRow struct {
	Key string
	Bar string
}

// Paths names the tracker's input source and backup sink.
type Paths struct {
	Input  string
	Backup string
}

// Tracker holds the frequency table built from a single load pass.
type Tracker struct {
	paths    Paths
	lockPath string
	logger   *slog.Logger

	counts map[string]int
	keys   []string
	total  int
	loaded bool
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithLogger attaches a logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// WithLockPath serializes Persist across processes through an advisory lock
// on path.
func WithLockPath(path string) Option {
	return func(t *Tracker) {
		t.lockPath = strings.TrimSpace(path)
	}
}

// New creates an unloaded tracker for the given paths.
func New(paths Paths, opts ...Option) *Tracker {
	t := &Tracker{paths: paths}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = logging.NewComponentLogger(t.logger, "tracker")
	return t
}

// Paths returns the configured input and backup paths.
func (t *Tracker) Paths() Paths {
	return t.paths
}

// Initialize runs the startup cycle: load the input file, then write the backup.
func (t *Tracker) Initialize() error {
	if err := t.Load(); err != nil {
		return err
	}
	return t.Persist()
}

// Loaded reports whether a load has succeeded.
func (t *Tracker) Loaded() bool {
	return t.loaded
}

// Len returns the number of distinct keys.
func (t *Tracker) Len() int {
	return len(t.keys)
}

// Total returns the number of tokens counted, the sum of all counts.
func (t *Tracker) Total() int {
	return t.total
}

// Query returns the count for the first token of raw, folded to lowercase.
// Missing keys, blank input, and an unloaded table all yield 0.
func (t *Tracker) Query(raw string) int {
	key := textutil.NormalizeKey(textutil.FirstToken(raw))
	if key == "" {
		return 0
	}
	return t.counts[key]
}

// All yields every key and count in ascending key order.
func (t *Tracker) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, key := range t.keys {
			if !yield(key, t.counts[key]) {
				return
			}
		}
	}
}

// ListAll returns the table in ascending key order.
func (t *Tracker) ListAll() []Entry {
	entries := make([]Entry, 0, len(t.keys))
	for key, count := range t.All() {
		entries = append(entries, Entry{Key: key, Count: count})
	}
	return entries
}

// HistogramRows returns one row per key with symbol repeated count times.
// A zero symbol selects DefaultSymbol.
func (t *Tracker) HistogramRows(symbol rune) []HistogramRow {
	if symbol == 0 {
		symbol = DefaultSymbol
	}
	unit := string(symbol)
	rows := make([]HistogramRow, 0, len(t.keys))
	for key, count := range t.All() {
		rows = append(rows, HistogramRow{Key: key, Bar: strings.Repeat(unit, count)})
	}
	return rows
}

// replace swaps in a freshly built table.
func (t *Tracker) replace(counts map[string]int, total int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	t.counts = counts
	t.keys = keys
	t.total = total
	t.loaded = true
}

package frequency

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"grocer/internal/logging"
	"grocer/internal/textutil"
)

// Tokens have no length limit: the scanner buffer grows to fit the longest
// run of non-whitespace.
const maxTokenSize = math.MaxInt

// Load reads the configured input file and replaces the table. On failure the
// previous table is kept and the error wraps ErrSourceUnavailable.
func (t *Tracker) Load() error {
	path := t.paths.Input
	file, err := os.Open(path)
	if err != nil {
		t.logger.Error("input open failed",
			logging.String(logging.FieldEventType, "input_open_failed"),
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	tokens, err := t.LoadFrom(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	t.logger.Info("input loaded",
		logging.String(logging.FieldEventType, "input_loaded"),
		logging.String(logging.FieldPath, path),
		logging.Int("tokens", tokens),
		logging.Int("items", t.Len()),
	)
	return nil
}

// LoadFrom builds the table from r and returns the number of tokens read.
// A leading byte order mark selects UTF-8 or UTF-16 decoding; input without
// one is taken byte for byte.
func (t *Tracker) LoadFrom(r io.Reader) (int, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(textutil.ScanTokens)

	counts := make(map[string]int)
	total := 0
	for scanner.Scan() {
		counts[textutil.NormalizeKey(scanner.Text())]++
		total++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	t.replace(counts, total)
	return total, nil
}

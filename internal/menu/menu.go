package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"grocer/internal/frequency"
	"grocer/internal/logging"
	"grocer/internal/textutil"
)

// Tracker is the read-only view of the frequency table the menu needs.
type Tracker interface {
	Query(raw string) int
	ListAll() []frequency.Entry
	HistogramRows(symbol rune) []frequency.HistogramRow
}

const (
	noDataMessage  = "(No data loaded)"
	invalidMessage = "Invalid input. Please enter a number 1-4."
	emptyMessage   = "No input detected. Try again."
	ruleLine       = "=============================="
)

// Menu drives the interactive loop.
type Menu struct {
	tracker  Tracker
	in       *bufio.Reader
	out      io.Writer
	symbol   rune
	colorize bool
	logger   *slog.Logger
	pending  chan lineResult
}

// Option customizes a Menu.
type Option func(*Menu)

// WithSymbol sets the histogram bar symbol.
func WithSymbol(symbol rune) Option {
	return func(m *Menu) {
		if symbol != 0 {
			m.symbol = symbol
		}
	}
}

// WithColor enables ANSI colour in headers and warnings.
func WithColor(enabled bool) Option {
	return func(m *Menu) {
		m.colorize = enabled
	}
}

// WithLogger attaches a logger for selection and search events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// New creates a menu reading from in and writing to out.
func New(tracker Tracker, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		tracker: tracker,
		in:      bufio.NewReader(in),
		out:     out,
		symbol:  frequency.DefaultSymbol,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = logging.NewComponentLogger(m.logger, "menu")
	return m
}

// Run loops until the user exits, input ends, or ctx is cancelled. Invalid
// selections and blank searches are reported and the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printMenu()

		line, err := m.readLine(ctx)
		if err != nil {
			return m.endOfInput(err)
		}
		choice, err := ParseSelection(line)
		if err != nil {
			m.logger.Debug("menu selection rejected", logging.String("input", line))
			m.printf("\n%s\n\n", m.warn(invalidMessage))
			continue
		}

		switch choice {
		case ChoiceSearch:
			if err := m.Search(ctx); err != nil && !errors.Is(err, ErrEmptySearchInput) {
				return m.endOfInput(err)
			}
		case ChoiceList:
			m.List()
		case ChoiceHistogram:
			m.Histogram()
		case ChoiceExit:
			m.printf("Goodbye!\n")
			return nil
		}
	}
}

// Search prompts for an item and prints its frequency. Blank input returns
// ErrEmptySearchInput after telling the user; no lookup is made.
func (m *Menu) Search(ctx context.Context) error {
	m.printf("Enter the item to search: ")
	line, err := m.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			m.printf("\n%s\n\n", m.warn(emptyMessage))
		}
		return err
	}
	item := textutil.TrimSpace(line)
	if item == "" {
		m.printf("%s\n\n", m.warn(emptyMessage))
		return ErrEmptySearchInput
	}
	count := m.tracker.Query(item)
	m.logger.Debug("item searched", logging.String("item", item), logging.Int("count", count))
	m.printf("Frequency of '%s': %d\n\n", item, count)
	return nil
}

// List prints every item with its count.
func (m *Menu) List() {
	m.printf("\n%s\n", m.header("Item Frequencies (item count):"))
	entries := m.tracker.ListAll()
	if len(entries) == 0 {
		m.printf("%s\n\n", noDataMessage)
		return
	}
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s %d\n", entry.Key, entry.Count)
	}
	b.WriteByte('\n')
	m.printf("%s", b.String())
}

// Histogram prints one bar per item.
func (m *Menu) Histogram() {
	m.printf("\n%s\n", m.header(fmt.Sprintf("Histogram (each %c = 1):", m.symbol)))
	rows := m.tracker.HistogramRows(m.symbol)
	if len(rows) == 0 {
		m.printf("%s\n\n", noDataMessage)
		return
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.Key)
		b.WriteByte(' ')
		b.WriteString(row.Bar)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	m.printf("%s", b.String())
}

func (m *Menu) printMenu() {
	m.printf("%s\n", m.header(ruleLine))
	for c := ChoiceSearch; c <= ChoiceExit; c++ {
		m.printf("%d. %s\n", int(c), c)
	}
	m.printf("Select an option (1-4): ")
}

type lineResult struct {
	line string
	err  error
}

// readLine returns the next line without its terminator, or ctx.Err() if ctx
// ends first. A final line with no newline is still returned; the error
// surfaces on the following call. A read abandoned by cancellation stays
// pending and is picked up by the next call.
func (m *Menu) readLine(ctx context.Context) (string, error) {
	if m.pending == nil {
		pending := make(chan lineResult, 1)
		go func() {
			line, err := m.in.ReadString('\n')
			pending <- lineResult{line: line, err: err}
		}()
		m.pending = pending
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-m.pending:
		m.pending = nil
		if res.err != nil && res.line == "" {
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

func (m *Menu) endOfInput(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, io.EOF) {
		m.printf("\n")
		m.logger.Info("menu input closed")
		return nil
	}
	return fmt.Errorf("read menu input: %w", err)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

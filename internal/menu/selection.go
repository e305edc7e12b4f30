package menu

import (
	"errors"
	"strconv"

	"grocer/internal/textutil"
)

// Choice is a validated menu selection.
type Choice int

const (
	ChoiceSearch Choice = iota + 1
	ChoiceList
	ChoiceHistogram
	ChoiceExit
)

var (
	// ErrInvalidSelection reports menu input that is empty, non-numeric, or out of range.
	ErrInvalidSelection = errors.New("invalid menu selection")
	// ErrEmptySearchInput reports a blank search entry.
	ErrEmptySearchInput = errors.New("empty search input")
)

// String returns the menu label for c.
func (c Choice) String() string {
	switch c {
	case ChoiceSearch:
		return "Search item frequency"
	case ChoiceList:
		return "Print all item frequencies"
	case ChoiceHistogram:
		return "Print histogram"
	case ChoiceExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// ParseSelection validates one line of menu input. The trimmed line must be
// an optionally signed decimal integer between 1 and 4.
func ParseSelection(line string) (Choice, error) {
	line = textutil.TrimSpace(line)
	if line == "" {
		return 0, ErrInvalidSelection
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if i == 0 && (c == '+' || c == '-') {
			continue
		}
		return 0, ErrInvalidSelection
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, ErrInvalidSelection
	}
	if value < int(ChoiceSearch) || value > int(ChoiceExit) {
		return 0, ErrInvalidSelection
	}
	return Choice(value), nil
}

package textutil

// IsSpace reports whether b is an ASCII whitespace byte.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ScanTokens is a bufio.SplitFunc that returns each run of non-whitespace
// bytes as a token. Unlike bufio.ScanWords it never decodes runes, so Unicode
// spaces stay inside tokens.
func ScanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && IsSpace(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if IsSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// Request more data, keeping any leading whitespace already consumed.
	return start, nil, nil
}

// FirstToken returns the first whitespace-delimited token of line, or "" when
// line holds no token.
func FirstToken(line string) string {
	line = TrimSpace(line)
	for i := 0; i < len(line); i++ {
		if IsSpace(line[i]) {
			return line[:i]
		}
	}
	return line
}

// TrimSpace removes leading and trailing ASCII whitespace.
func TrimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && IsSpace(s[start]) {
		start++
	}
	for end > start && IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

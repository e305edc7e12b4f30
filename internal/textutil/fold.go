package textutil

import "strings"

// FoldASCII lowercases the ASCII letters in s and leaves every other byte
// untouched. It returns s itself when nothing needs folding.
func FoldASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// NormalizeKey converts a raw token into its table key.
func NormalizeKey(token string) string {
	return FoldASCII(token)
}

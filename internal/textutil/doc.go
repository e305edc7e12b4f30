// Package textutil provides the token and normalization helpers shared by the
// frequency tracker and the interactive menu.
//
// The primary use cases are:
//   - Splitting raw input into whitespace-separated tokens
//   - Case-folding tokens into table keys
//   - Extracting the first token from a line of user input
//
// Whitespace and case rules are deliberately ASCII-only: space, tab, newline,
// vertical tab, form feed and carriage return separate tokens, and only 'A'-'Z'
// are folded. Every other byte, including non-ASCII UTF-8 sequences, is kept
// verbatim so that keys round-trip through the backup file unchanged.
package textutil

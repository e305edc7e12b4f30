// Package logs reads the grocer log file for the `grocer logs` command.
//
// Last reads the final N lines with bounded memory. Follow polls from a byte
// offset and emits new lines until its context is cancelled. RunFilter keeps
// only the lines written by a single run, in either log format.
package logs

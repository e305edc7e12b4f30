// Package frequency owns the item frequency table: it loads whitespace
// separated tokens from the input file, persists the counts to the backup
// file, and answers read-only queries.
//
// Keys are tokens folded to ASCII lowercase; every listing is ordered by key.
// The tracker performs no console I/O. Presentation lives in the menu package
// and the CLI, which reach the tracker only through its query methods.
package frequency

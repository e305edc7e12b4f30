// Package main hosts the grocer CLI entrypoint and command graph.
//
// Running grocer with no subcommand loads the input file, rewrites the backup
// file, and opens the interactive menu. Subcommands expose the same queries
// non-interactively (query, list, histogram), browse the run history, check
// filesystem readiness, and scaffold configuration.
//
// Keep this package lean: counting and persistence live in
// internal/frequency, console interaction in internal/menu. Commands here
// resolve configuration, wire loggers, and format output.
package main

// Package config loads, normalizes, and validates grocer configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GROCER_INPUT_FILE. The Config type centralizes every knob the CLI needs so
// the input file, backup file, and state locations are resolved in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, a canonical log format, and clear validation errors.
package config

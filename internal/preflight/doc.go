// Package preflight provides readiness checks for the filesystem paths grocer
// depends on.
//
// The CLI "grocer check" command runs them before a real session to explain
// why a load or persist would fail: a missing or unreadable input file, a
// backup directory that is absent or read-only, or an unusable state
// directory.
package preflight

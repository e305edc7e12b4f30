// Package history records each successful load and persist cycle in a local
// SQLite database so earlier runs can be listed and compared.
//
// A run stores where the counts came from, where the backup went, the token
// and item totals, and a snapshot of the table itself. The schema is created
// from embedded SQL migrations when the store is opened. Recording is
// best-effort from the CLI's point of view: a history failure is logged and
// never stops the tracker.
package history

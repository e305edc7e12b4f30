// Package menu implements the interactive console front end for the
// frequency tracker.
//
// The menu reads selections and search text line by line from any io.Reader
// and writes prompts and results to any io.Writer, so the whole loop can be
// driven from tests. It depends on the tracker only through the Tracker
// interface.
package menu

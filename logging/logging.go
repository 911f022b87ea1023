// Package logging builds the logr.Logger shared by the game components.
package logging

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing standard log lines to w.
// Debug mode enables V(1) messages and adds file:line to every line.
func New(w io.Writer, debug bool) logr.Logger {
	flags := log.LstdFlags
	verbosity := 0
	if debug {
		flags |= log.Lshortfile
		verbosity = 1
	}
	stdr.SetVerbosity(verbosity)

	return stdr.New(log.New(w, "", flags)).WithName("mazegame")
}

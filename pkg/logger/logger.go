package logger

import (
	"io"
	"log"
	"os"
)

// InitLogger returns the application logger. Output goes to stdout, every
// line is prefixed with the component name.
func InitLogger(component string) *log.Logger {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return New(os.Stdout, component)
}

func New(w io.Writer, component string) *log.Logger {
	prefix := ""
	if component != "" {
		prefix = component + ": "
	}
	return log.New(w, prefix, log.LstdFlags|log.Lmsgprefix)
}

// Discard is a logger for tests and callers that passed nil.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

package diag

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Config controls how a Log renders and flushes its entries.
type Config struct {
	// Destination receives flushed entries.
	Destination io.Writer

	// Colour enables ANSI-coloured kind prefixes ("error" red,
	// "warning" yellow) when flushing.
	Colour bool

	// HideWarnings suppresses warning entries at flush time; they are
	// still accumulated and counted, just not printed.
	HideWarnings bool

	// SilentSuccess suppresses all output at flush time if no error was
	// ever reported to the log.
	SilentSuccess bool

	// ContextFrame bounds how many bytes of source surround a span when
	// rendering the source/caret lines. Zero means unbounded (the whole
	// source line is shown).
	ContextFrame int
}

// DefaultConfig returns a configuration that writes to stderr, hides no
// warnings, and enables colour only when stderr is attached to a
// terminal.
func DefaultConfig() Config {
	return Config{
		Destination:   os.Stderr,
		Colour:        isatty.IsTerminal(os.Stderr.Fd()),
		HideWarnings:  false,
		SilentSuccess: false,
		ContextFrame:  0,
	}
}

// renderEntry applies Colour (via fatih/color) to the kind prefix of an
// already-formatted entry message, or returns it unchanged when colour
// is disabled.
func renderEntry(cfg Config, e *Entry) string {
	if !cfg.Colour {
		return e.Message
	}
	c := color.New(color.FgYellow)
	if e.Kind == KindError {
		c = color.New(color.FgRed, color.Bold)
	}
	// Colour only the "<kind>:" token, leaving span and message plain,
	// matching the three-line record's existing layout byte-for-byte
	// except for the inserted escape codes.
	prefix := e.Kind.String() + ":"
	coloured := c.Sprint(prefix)
	return strings.Replace(e.Message, prefix, coloured, 1)
}

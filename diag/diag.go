// Package diag implements the diagnostic log the lexer and parser
// report warnings and errors through. There is no global log: each
// Log is created by NewLog and passed to its users.
//
// The log is an ordered list of formatted entries, flushed in FIFO
// order to a configured sink. It does not itself install any OS hooks;
// a CLI-style collaborator that wants flush-on-exit or flush-on-interrupt
// behaviour calls Install explicitly (see doc comment on Install).
package diag

import (
	"fmt"
	"strings"

	"github.com/gorefa/refa/container"
)

// Kind distinguishes a warning from a fatal error.
type Kind uint8

const (
	// KindWarning is a non-fatal diagnostic.
	KindWarning Kind = iota
	// KindError is a fatal diagnostic.
	KindError
)

// String renders the kind the way it appears in a formatted entry.
func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "warning"
}

// Span is a half-open byte range [Begin, End) into the source text a
// diagnostic refers to.
type Span struct {
	Begin, End int
}

// Entry is one formatted diagnostic record.
type Entry struct {
	Kind    Kind
	Span    Span
	Message string // fully formatted three-line record, caret included
}

// Log accumulates diagnostic entries in an ordered doubly-linked list
// and flushes them in FIFO order on demand.
type Log struct {
	entries      *container.List[*Entry]
	config       Config
	warningCount int
	errorCount   int
}

// NewLog creates an empty log with the given configuration.
func NewLog(config Config) *Log {
	return &Log{
		entries: container.NewList[*Entry](),
		config:  config,
	}
}

// Report formats and pushes a new diagnostic entry onto the log.
//
// source is the full text the span indexes into; message is the
// human-readable complaint. The formatted record is:
//
//	[b:e] <kind>: <message>
//		<source>
//		<caret underline>
func (l *Log) Report(kind Kind, span Span, source, message string) *Entry {
	e := &Entry{
		Kind:    kind,
		Span:    span,
		Message: l.format(kind, span, source, message),
	}
	l.entries.PushBack(e)
	switch kind {
	case KindWarning:
		l.warningCount++
	case KindError:
		l.errorCount++
	}
	return e
}

func (l *Log) format(kind Kind, span Span, source, message string) string {
	line := fmt.Sprintf("[%d:%d] %s: %s", span.Begin, span.End, kind, message)
	frame := l.contextFrame(source, span)
	caret := caretUnderline(source, span, l.config.ContextFrame)
	return fmt.Sprintf("%s\n\t%s\n\t%s\n", line, frame, caret)
}

// contextFrame returns the slice of source shown alongside the caret
// line, trimmed to ContextFrame bytes of surrounding context when the
// configuration bounds it (0 means unbounded).
func (l *Log) contextFrame(source string, span Span) string {
	if l.config.ContextFrame <= 0 {
		return source
	}
	lo := span.Begin - l.config.ContextFrame
	if lo < 0 {
		lo = 0
	}
	hi := span.End + l.config.ContextFrame
	if hi > len(source) {
		hi = len(source)
	}
	return source[lo:hi]
}

// caretUnderline draws spaces up to span.Begin followed by '^' repeated
// for the span's width (at least one caret for a zero-width span),
// relative to the same frame contextFrame produced.
func caretUnderline(source string, span Span, contextFrame int) string {
	lo := 0
	if contextFrame > 0 {
		lo = span.Begin - contextFrame
		if lo < 0 {
			lo = 0
		}
	}
	width := span.End - span.Begin
	if width <= 0 {
		width = 1
	}
	return strings.Repeat(" ", span.Begin-lo) + strings.Repeat("^", width)
}

// Flush drains the log in FIFO order to the configured destination,
// skipping warnings if HideWarnings is set, and printing nothing at all
// if SilentSuccess is set and no errors were ever reported.
func (l *Log) Flush() error {
	if l.config.SilentSuccess && l.errorCount == 0 {
		l.entries = container.NewList[*Entry]()
		return nil
	}
	for {
		e, ok := l.entries.PopFront()
		if !ok {
			break
		}
		if e.Kind == KindWarning && l.config.HideWarnings {
			continue
		}
		if _, err := fmt.Fprint(l.config.Destination, renderEntry(l.config, e)); err != nil {
			return err
		}
	}
	return nil
}

// WarningCount returns the number of warnings reported since the log
// was created. Flush does not reset it.
func (l *Log) WarningCount() int { return l.warningCount }

// ErrorCount returns the number of errors reported since the log was
// created. Flush does not reset it.
func (l *Log) ErrorCount() int { return l.errorCount }

// Len returns the number of entries currently queued, unflushed.
func (l *Log) Len() int { return l.entries.Len() }

// Package symbol defines the alphabet shared by the lexer, parser, and
// both automaton simulators.
//
// The alphabet is a finite set of integer-valued symbols. One
// distinguished negative value, Epsilon, denotes the empty-string
// transition and is never accepted as ordinary input by a matcher.
package symbol

import "fmt"

// Symbol is an integer drawn from the automaton alphabet.
type Symbol int32

// Epsilon denotes the empty-string transition. It is a reserved value
// and is never a valid input symbol to a matcher.
const Epsilon Symbol = -1

// String renders a symbol for debug output, special-casing Epsilon and
// printable ASCII.
func (s Symbol) String() string {
	switch {
	case s == Epsilon:
		return "ε"
	case s >= 0x20 && s < 0x7f:
		return fmt.Sprintf("%q", byte(s))
	default:
		return fmt.Sprintf("0x%02x", int32(s))
	}
}

// Class identifies one of the named character classes a regex may
// reference (\s, \d, \w). Class symbols appear only in the AST; they
// are expanded to sets of ordinary Symbol values at emit time and never
// reach the automaton layer directly.
type Class uint8

const (
	// Whitespace is \s: space, tab, newline, carriage return, form feed,
	// vertical tab.
	Whitespace Class = iota
	// Digit is \d: '0'-'9'.
	Digit
	// Word is \w: 'A'-'Z', 'a'-'z', '0'-'9', '_'.
	Word
)

// String returns the canonical escape spelling of the class.
func (c Class) String() string {
	switch c {
	case Whitespace:
		return `\s`
	case Digit:
		return `\d`
	case Word:
		return `\w`
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Expand returns the ordinary alphabet symbols a class denotes. The
// returned slice is freshly allocated and safe for the caller to keep.
func Expand(c Class) []Symbol {
	switch c {
	case Whitespace:
		return bytesToSymbols(' ', '\t', '\n', '\r', '\f', '\v')
	case Digit:
		return rangeSymbols('0', '9')
	case Word:
		syms := rangeSymbols('0', '9')
		syms = append(syms, rangeSymbols('A', 'Z')...)
		syms = append(syms, rangeSymbols('a', 'z')...)
		syms = append(syms, Symbol('_'))
		return syms
	default:
		return nil
	}
}

func bytesToSymbols(bs ...byte) []Symbol {
	syms := make([]Symbol, len(bs))
	for i, b := range bs {
		syms[i] = Symbol(b)
	}
	return syms
}

func rangeSymbols(lo, hi byte) []Symbol {
	syms := make([]Symbol, 0, int(hi)-int(lo)+1)
	for b := int(lo); b <= int(hi); b++ {
		syms = append(syms, Symbol(b))
	}
	return syms
}

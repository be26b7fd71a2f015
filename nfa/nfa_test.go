package nfa

import (
	"testing"

	"github.com/gorefa/refa/symbol"
)

func sym(b byte) symbol.Symbol { return symbol.Symbol(b) }

func mapByte(b byte) symbol.Symbol { return symbol.Symbol(b) }

func mustConstruct(t *testing.T, c Component) *NFA {
	t.Helper()
	n, err := Construct(c)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	return n
}

func TestConcatOfSymbols(t *testing.T) {
	b := NewBuilder()
	c := b.Concat(b.Sym(sym('a')), b.Sym(sym('b')))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	if !sim.AcceptBytes([]byte("ab"), mapByte) {
		t.Error("expected \"ab\" to be accepted")
	}
	if sim.AcceptBytes([]byte("a"), mapByte) {
		t.Error("expected \"a\" to be rejected")
	}
	if sim.AcceptBytes([]byte("abc"), mapByte) {
		t.Error("expected \"abc\" to be rejected")
	}
}

func TestUnionOfSymbols(t *testing.T) {
	b := NewBuilder()
	c := b.Union(b.Sym(sym('a')), b.Sym(sym('b')))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	for _, in := range []string{"a", "b"} {
		if !sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	if sim.AcceptBytes([]byte("c"), mapByte) {
		t.Error("expected \"c\" to be rejected")
	}
}

func TestStarMatchesZeroOrMore(t *testing.T) {
	b := NewBuilder()
	c := b.Star(b.Sym(sym('a')))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	for _, in := range []string{"", "a", "aaaa"} {
		if !sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	if sim.AcceptBytes([]byte("aab"), mapByte) {
		t.Error("expected \"aab\" to be rejected")
	}
}

func TestAOrBStarAbb(t *testing.T) {
	// (a|b)*abb
	b := NewBuilder()
	ab := b.Union(b.Sym(sym('a')), b.Sym(sym('b')))
	c := b.Concat(b.Star(ab), b.Sym(sym('a')), b.Sym(sym('b')), b.Sym(sym('b')))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	accept := []string{"abb", "aabb", "babb", "ababb", "bbbabb"}
	for _, in := range accept {
		if !sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	reject := []string{"ab", "abab", "abbb", ""}
	for _, in := range reject {
		if sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestRepeatExactZero(t *testing.T) {
	b := NewBuilder()
	c := b.RepeatExact(0, b.Sym(sym('a')))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	if !sim.AcceptBytes([]byte(""), mapByte) {
		t.Error("RepeatExact(0, ...) should accept empty string")
	}
	if sim.AcceptBytes([]byte("a"), mapByte) {
		t.Error("RepeatExact(0, ...) should reject \"a\"")
	}
}

func TestRepeatExactN(t *testing.T) {
	b := NewBuilder()
	c := b.RepeatExact(3, b.Sym(sym('a')))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	if !sim.AcceptBytes([]byte("aaa"), mapByte) {
		t.Error("expected \"aaa\" to be accepted")
	}
	for _, in := range []string{"aa", "aaaa", ""} {
		if sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestRepeatMin(t *testing.T) {
	b := NewBuilder()
	c := b.RepeatMin(2, b.Sym(sym('a')))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	for _, in := range []string{"aa", "aaa", "aaaaaa"} {
		if !sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	for _, in := range []string{"a", ""} {
		if sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestRepeatMinMax(t *testing.T) {
	// (ab|cd){2,4}
	b := NewBuilder()
	abOrCd := b.Union(b.Concat(b.Sym(sym('a')), b.Sym(sym('b'))), b.Concat(b.Sym(sym('c')), b.Sym(sym('d'))))
	c := b.RepeatMinMax(2, 4, abOrCd)
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	accept := []string{"abab", "abcd", "ababab", "abababab", "cdcd"}
	for _, in := range accept {
		if !sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	reject := []string{"ab", "ababababab", ""}
	for _, in := range reject {
		if sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestRepeatMinUnbounded(t *testing.T) {
	// (ab|cd){2,}dcb
	b := NewBuilder()
	abOrCd := b.Union(b.Concat(b.Sym(sym('a')), b.Sym(sym('b'))), b.Concat(b.Sym(sym('c')), b.Sym(sym('d'))))
	rep := b.RepeatMin(2, abOrCd)
	tail := b.Concat(b.Sym(sym('d')), b.Sym(sym('c')), b.Sym(sym('b')))
	c := b.Concat(rep, tail)
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	accept := []string{"ababdcb", "cdcddcb", "ababababdcb"}
	for _, in := range accept {
		if !sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	reject := []string{"abdcb", "dcb", ""}
	for _, in := range reject {
		if sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestQuestion(t *testing.T) {
	// (hi)? J(ill|ohn)
	b := NewBuilder()
	hi := b.Question(b.Concat(b.Sym(sym('h')), b.Sym(sym('i'))))
	name := b.Union(
		b.Concat(b.Sym(sym('i')), b.Sym(sym('l')), b.Sym(sym('l'))),
		b.Concat(b.Sym(sym('o')), b.Sym(sym('h')), b.Sym(sym('n'))),
	)
	c := b.Concat(hi, b.Sym(sym(' ')), b.Sym(sym('J')), name)
	n := mustConstruct(t, c)
	sim := NewSimulator(n)

	accept := []string{" Jill", " John", "hi Jill", "hi John"}
	for _, in := range accept {
		if !sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	reject := []string{"Jill", "hiJill", " Jack"}
	for _, in := range reject {
		if sim.AcceptBytes([]byte(in), mapByte) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestLockedStateRejectsMutation(t *testing.T) {
	b := NewBuilder()
	c := b.Sym(sym('a'))
	n := mustConstruct(t, c)

	entry := n.Start()
	if !entry.Locked() {
		t.Fatal("expected start state to be locked after Construct")
	}
	if err := entry.AddTransition(sym('b'), entry); err == nil {
		t.Error("expected AddTransition on a locked state to fail")
	}
}

func TestConstructRejectsUnreachableExit(t *testing.T) {
	b := NewBuilder()
	entry := b.newState()
	exit := b.newState() // never linked to entry
	_, err := Construct(Component{Entry: entry, Exit: exit})
	if err == nil {
		t.Error("expected Construct to reject an unreachable exit state")
	}
}

func TestSimulatorDeadStopsEarly(t *testing.T) {
	b := NewBuilder()
	c := b.Sym(sym('a'))
	n := mustConstruct(t, c)
	sim := NewSimulator(n)
	sim.Init()
	sim.Step(sym('z'))
	if !sim.Dead() {
		t.Error("expected simulator to be dead after a non-matching symbol")
	}
}

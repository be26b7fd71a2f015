package refa

import (
	"strings"
	"testing"

	"github.com/gorefa/refa/diag"
)

func TestCompileAndMatchBothEngines(t *testing.T) {
	p, err := Compile("(a|b)*abb", nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	accept := []string{"abb", "aabb", "babb", "ababb"}
	reject := []string{"ab", "abbb", ""}
	for _, in := range accept {
		if !p.AcceptNFA([]byte(in)) {
			t.Errorf("AcceptNFA(%q) = false, want true", in)
		}
		if !p.AcceptDFA([]byte(in)) {
			t.Errorf("AcceptDFA(%q) = false, want true", in)
		}
	}
	for _, in := range reject {
		if p.AcceptNFA([]byte(in)) {
			t.Errorf("AcceptNFA(%q) = true, want false", in)
		}
		if p.AcceptDFA([]byte(in)) {
			t.Errorf("AcceptDFA(%q) = true, want false", in)
		}
	}
}

func TestCompileToNFAOnlySkipsSubsetConstruction(t *testing.T) {
	n, err := CompileToNFA("a{1,4}", nil)
	if err != nil {
		t.Fatalf("CompileToNFA: %v", err)
	}
	if n.NumStates() == 0 {
		t.Fatal("expected a non-trivial NFA")
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile("(a")
}

func TestCompileReportsDiagnosticsThroughLog(t *testing.T) {
	var sb strings.Builder
	log := diag.NewLog(diag.Config{Destination: &sb, Colour: false})
	_, err := Compile(`\q`, log)
	if err == nil {
		t.Fatal("expected an error for an unrecognized escape sequence")
	}
	if err := log.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !strings.Contains(sb.String(), "escape") {
		t.Errorf("expected the diagnostic log to mention the bad escape, got %q", sb.String())
	}
}

func TestSourceIsPreserved(t *testing.T) {
	p, err := Compile("abc", nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.Source() != "abc" {
		t.Errorf("Source() = %q, want %q", p.Source(), "abc")
	}
}

package diag

import (
	"strings"
	"testing"
)

func testConfig(sb *strings.Builder) Config {
	return Config{
		Destination:   sb,
		Colour:        false,
		HideWarnings:  false,
		SilentSuccess: false,
		ContextFrame:  0,
	}
}

func TestReportFormatsThreeLines(t *testing.T) {
	var sb strings.Builder
	log := NewLog(testConfig(&sb))
	log.Report(KindError, Span{2, 4}, "a[b-c", "unterminated character class")
	if err := log.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := sb.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("formatted entry has %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "[2:4]") || !strings.Contains(lines[0], "error") {
		t.Errorf("line 0 = %q, want span and kind", lines[0])
	}
	if lines[1] != "\ta[b-c" {
		t.Errorf("line 1 = %q, want source line", lines[1])
	}
	if strings.TrimLeft(lines[2], "\t") != "  ^^" {
		t.Errorf("line 2 caret = %q, want underline at offset 2 width 2", lines[2])
	}
}

func TestFlushHidesWarningsWhenConfigured(t *testing.T) {
	var sb strings.Builder
	cfg := testConfig(&sb)
	cfg.HideWarnings = true
	log := NewLog(cfg)
	log.Report(KindWarning, Span{0, 1}, "x", "ignored")
	log.Report(KindError, Span{1, 2}, "x", "kept")
	if err := log.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "ignored") {
		t.Errorf("warning text leaked through HideWarnings: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("error text missing: %q", out)
	}
}

func TestFlushSilentSuccessSuppressesWarningsOnly(t *testing.T) {
	var sb strings.Builder
	cfg := testConfig(&sb)
	cfg.SilentSuccess = true
	log := NewLog(cfg)
	log.Report(KindWarning, Span{0, 1}, "x", "just a warning")
	if err := log.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if sb.String() != "" {
		t.Errorf("SilentSuccess with no errors produced output: %q", sb.String())
	}
}

func TestCountsAccumulateAcrossReports(t *testing.T) {
	var sb strings.Builder
	log := NewLog(testConfig(&sb))
	log.Report(KindWarning, Span{0, 1}, "x", "w1")
	log.Report(KindWarning, Span{0, 1}, "x", "w2")
	log.Report(KindError, Span{0, 1}, "x", "e1")
	if log.WarningCount() != 2 {
		t.Errorf("WarningCount() = %d, want 2", log.WarningCount())
	}
	if log.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", log.ErrorCount())
	}
}

func TestFlushDrainsFIFO(t *testing.T) {
	var sb strings.Builder
	log := NewLog(testConfig(&sb))
	log.Report(KindError, Span{0, 1}, "x", "first")
	log.Report(KindError, Span{0, 1}, "x", "second")
	if err := log.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := sb.String()
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Errorf("entries not flushed in FIFO order: %q", out)
	}
	if log.Len() != 0 {
		t.Errorf("Len() after Flush = %d, want 0", log.Len())
	}
}

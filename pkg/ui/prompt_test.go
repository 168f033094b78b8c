package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPromptMessages(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader(""), &out)

	p.Warningf("order %s looks off", "1001")
	p.Errorf("cannot open %s", "export.csv")

	got := out.String()
	if !strings.Contains(got, "WARNING: order 1001 looks off") {
		t.Errorf("warning not formatted: %q", got)
	}
	if !strings.Contains(got, "ERROR: cannot open export.csv") {
		t.Errorf("error not formatted: %q", got)
	}
}

func TestPromptFatalPausesAndExits(t *testing.T) {
	var out bytes.Buffer
	code := -1
	p := NewPrompt(strings.NewReader("\n"), &out)
	p.exit = func(c int) { code = c }

	p.Fatalf("bad input")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "Press Enter to exit.") {
		t.Errorf("missing pause prompt: %q", out.String())
	}
}

func TestChooseFile(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.xls", "a.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("2\n"), &out)
	path, err := p.ChooseFile(tmpDir, ".csv", ".xls")
	if err != nil {
		t.Fatalf("ChooseFile failed: %v", err)
	}
	if path != filepath.Join(tmpDir, "b.xls") {
		t.Errorf("selected %s, want b.xls", path)
	}
	if strings.Contains(out.String(), "notes.txt") {
		t.Error("listed a file with an unmatched extension")
	}
}

func TestChooseFileRepromptsOnInvalidSelection(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "a.csv"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("9\nx\n1\n"), &out)
	path, err := p.ChooseFile(tmpDir, ".csv")
	if err != nil {
		t.Fatalf("ChooseFile failed: %v", err)
	}
	if path != filepath.Join(tmpDir, "a.csv") {
		t.Errorf("selected %s, want a.csv", path)
	}
	if got := strings.Count(out.String(), "Invalid selection."); got != 2 {
		t.Errorf("expected 2 invalid selection notices, got %d", got)
	}
}

func TestChooseFileEmptyDirectory(t *testing.T) {
	p := NewPrompt(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.ChooseFile(t.TempDir(), ".csv"); err == nil {
		t.Error("expected error for directory with no matching files")
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestSectionFlag(t *testing.T) {
	out, _, code := runCLI(t, "--section", "5")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(out, "## 5. Legal and Ethical Policy on Sources and Content") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSectionNotFoundIsNotFatal(t *testing.T) {
	out, _, code := runCLI(t, "-s", "99")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if out != "Error: Section 99 not found.\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestListSections(t *testing.T) {
	out, _, code := runCLI(t, "--list-sections")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 sections, got %q", lines)
	}
	if lines[4] != "5. Legal and Ethical Policy on Sources and Content" {
		t.Fatalf("unexpected last section %q", lines[4])
	}
}

func TestDOCXFlagWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.docx")
	_, _, code := runCLI(t, "--docx", path)
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read docx: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("expected a zip container")
	}
}

func TestStyledBoring(t *testing.T) {
	out, _, code := runCLI(t, "--styled", "--theme", "boring")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("boring theme emitted ANSI sequences")
	}
	if !strings.HasPrefix(out, "ByteRead Official Article Submission Guide\n") {
		t.Fatalf("unexpected first line %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestUnknownTheme(t *testing.T) {
	_, errOut, code := runCLI(t, "--styled", "-t", "neon")
	if code != exitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(errOut, `unknown theme "neon"`) {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestBadFlag(t *testing.T) {
	if _, _, code := runCLI(t, "--nope"); code != exitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}

func TestBinaryInputRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	if err := os.WriteFile(path, []byte{'#', ' ', 0x00}, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	_, errOut, code := runCLI(t, "--print", "-i", path)
	if code != exitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(errOut, "binary input") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestCustomInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	doc := "# Custom\n---\n## 7. Seven\nbody\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out, _, code := runCLI(t, "-i", path, "-s", "7")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if out != "## 7. Seven\nbody\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInputFrontMatterIsStripped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	doc := "---\ntitle: Custom Guide\n---\n# Custom\n---\n## 1. One\nbody\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out, _, code := runCLI(t, "-i", path, "--list-sections")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if out != "1. One\n" {
		t.Fatalf("unexpected sections %q", out)
	}
}

func TestListThemes(t *testing.T) {
	out, _, code := runCLI(t, "--list-themes")
	if code != exitOK || out != "boring\ndefault\n" {
		t.Fatalf("unexpected themes %q (%d)", out, code)
	}
}

func TestResolveWidth(t *testing.T) {
	if got := resolveWidth(false, 0); got != 0 {
		t.Fatalf("expected no wrapping, got %d", got)
	}
	if got := resolveWidth(false, 72); got != 72 {
		t.Fatalf("expected explicit width, got %d", got)
	}
	if got := resolveWidth(true, 0); got <= 0 {
		t.Fatalf("expected a positive width, got %d", got)
	}
}

func TestNormalizePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := normalizePath("~/guide.pdf"); got != filepath.Join(home, "guide.pdf") {
		t.Fatalf("unexpected path %q", got)
	}
	if got := normalizePath("guide.pdf"); !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %q", got)
	}
}

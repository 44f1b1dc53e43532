package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsfmt/jsfmt/internal/options"
)

func TestRunFileDiffToStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.js")
	if err := os.WriteFile(path, []byte("let x=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Diff:   true,
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}
	if stdout.Len() == 0 {
		t.Error("expected diff output on stdout")
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()

	unformatted := filepath.Join(dir, "bad.js")
	if err := os.WriteFile(unformatted, []byte("let x=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{unformatted},
		Check:  true,
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("check unformatted: got %d, want %d", code, ExitFormatDiff)
	}

	formatted := filepath.Join(dir, "good.js")
	if err := os.WriteFile(formatted, []byte("let x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout.Reset()
	stderr.Reset()
	code = Run(&Options{
		Files:  []string{formatted},
		Check:  true,
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("check formatted: got %d, want %d", code, ExitOK)
	}
}

func TestRunDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.js")
	if err := os.WriteFile(path, []byte("let x=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Diff:   true,
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}

	output := stdout.String()
	if output == "" {
		t.Error("expected non-empty diff")
	}
	if !bytes.Contains(stdout.Bytes(), []byte("-let x=1")) {
		t.Error("diff missing old line")
	}
	if !bytes.Contains(stdout.Bytes(), []byte("+let x = 1;")) {
		t.Error("diff missing new line")
	}
}

func TestRunWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.js")
	if err := os.WriteFile(path, []byte("let x=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Write:  true,
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "let x = 1;\n" {
		t.Errorf("file content: got %q, want %q", string(data), "let x = 1;\n")
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{"/nonexistent/path/test.js"},
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
}

func TestRunAlreadyFormatted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.js")
	content := "let x = 1;\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Diff:   true,
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no diff output, got: %s", stdout.String())
	}
}

func TestRunMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.js")
	bad := filepath.Join(dir, "bad.js")

	if err := os.WriteFile(good, []byte("let x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("let x=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{good, bad},
		Check:  true,
		Style:  options.Default(),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	// One file needs formatting, so exit code should be 1.
	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}
}

func TestRunVerbose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.js")
	if err := os.WriteFile(path, []byte("let x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	_ = Run(&Options{
		Files:   []string{path},
		Verbose: true,
		Style:   options.Default(),
		Stdout:  &stdout,
		Stderr:  &stderr,
	})

	if !bytes.Contains(stderr.Bytes(), []byte("test.js")) {
		t.Errorf("verbose mode should print filename to stderr, got: %s", stderr.String())
	}
}

func TestRunDebugCheckPasses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.js")
	if err := os.WriteFile(path, []byte("let x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{path},
		DebugCheck: true,
		Style:      options.Default(),
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d, stderr: %s", code, ExitOK, stderr.String())
	}
}

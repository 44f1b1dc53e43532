package jsfmt

import (
	"strings"
	"testing"

	"github.com/jsfmt/jsfmt/internal/options"
)

func TestFormatSemicolonPolicy(t *testing.T) {
	out, err := Format("let x = 1", options.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "let x = 1;\n" {
		t.Errorf("Format() = %q, want %q", out, "let x = 1;\n")
	}
}

func TestFormatLeadingSemiHazard(t *testing.T) {
	opts := options.Default()
	opts.Semi = false
	out, err := Format("let x = 1\n[1,2].map(f)", opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "let x = 1\n;[1, 2].map(f)\n"
	if out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	src := "function f(a,b){return a+b}"
	out1, err := Format(src, options.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	out2, err := Format(out1, options.Default())
	if err != nil {
		t.Fatalf("Format (second pass): %v", err)
	}
	if out1 != out2 {
		t.Errorf("Format is not idempotent:\nfirst:\n%s\nsecond:\n%s", out1, out2)
	}
}

func TestCheckConsistency(t *testing.T) {
	opts := options.Default()
	formatted := "let x = 1;\n"
	ok, err := Check(formatted, opts)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Errorf("Check(%q) = false, want true", formatted)
	}

	ok, err = Check("let   x=1;", opts)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ok {
		t.Errorf("Check(unformatted) = true, want false")
	}
}

func TestFormatPreservesShebang(t *testing.T) {
	src := "#!/usr/bin/env node\nlet x=1;\n"
	out, err := Format(src, options.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.HasPrefix(out, "#!/usr/bin/env node\n") {
		t.Errorf("Format() = %q, want shebang preserved", out)
	}
	if !strings.Contains(out, "let x = 1;") {
		t.Errorf("Format() = %q, want reformatted body", out)
	}
}

func TestFormatPreservesCRLF(t *testing.T) {
	src := "let x = 1;\r\nlet y = 2;\r\n"
	out, err := Format(src, options.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "\r\n") {
		t.Errorf("Format() = %q, want CRLF line endings preserved", out)
	}
	if strings.Count(out, "\r\n") != strings.Count(out, "\n") {
		t.Errorf("Format() = %q, want every newline preceded by \\r", out)
	}
}

func TestFormatRangeLocality(t *testing.T) {
	src := "let   a=1;\nlet   b=2;\n"
	opts := options.Default()
	opts.RangeStart = strings.Index(src, "let   b")
	opts.RangeEnd = len(src)
	out, err := Format(src, opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.HasPrefix(out, "let   a=1;\n") {
		t.Errorf("Format() = %q, want bytes before range untouched", out)
	}
}

func TestDebugCheckPassesOnCleanInput(t *testing.T) {
	if err := DebugCheck("let x = 1;\n", options.Default()); err != nil {
		t.Errorf("DebugCheck: %v", err)
	}
}

func TestFormatPrecedenceParens(t *testing.T) {
	out, err := Format("a || b && c", options.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "a || (b && c);\n"
	if out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormatNumericLiteralMemberObject(t *testing.T) {
	out, err := Format("1..toString()", options.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "1..toString();\n"; out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}

	out, err = Format("(1).toString()", options.Default())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "(1).toString();\n"; out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormatTrailingCommaES5(t *testing.T) {
	opts := options.Default()
	opts.TrailingComma = options.TrailingCommaES5

	out, err := Format("[1,2,3,]", opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "[1, 2, 3];\n"; out != want {
		t.Errorf("Format() at default width = %q, want %q", out, want)
	}

	opts.PrintWidth = 1
	out, err = Format("[1,2,3,]", opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "[\n  1,\n  2,\n  3,\n];\n"
	if out != want {
		t.Errorf("Format() at narrow width = %q, want %q", out, want)
	}
}

func TestFormatRangeScenario(t *testing.T) {
	src := "function f(){\n  x=1 ;y =2;\n}"
	opts := options.Default()
	opts.RangeStart = strings.Index(src, "y =2;")
	opts.RangeEnd = opts.RangeStart + len("y =2;")

	out, err := Format(src, opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "x=1 ;") {
		t.Errorf("Format() = %q, want unformatted prefix x=1 ; preserved", out)
	}
	if !strings.Contains(out, "y = 2;") {
		t.Errorf("Format() = %q, want y=2 reformatted", out)
	}
}

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Errorf("Version() = empty string")
	}
}

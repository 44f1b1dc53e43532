package rangefmt

import (
	"strings"
	"testing"

	"github.com/jsfmt/jsfmt/internal/jsparser"
	"github.com/jsfmt/jsfmt/internal/options"
)

func TestFormatOnlyTouchesRangeStatements(t *testing.T) {
	src := "let   a=1;\nlet   b=2;\nlet   c=3;\n"
	root, _, err := jsparser.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	start := strings.Index(src, "let   b")
	end := start + len("let   b=2;")

	opts := options.Default()
	opts.RangeStart = start
	opts.RangeEnd = end

	out, err := Format(src, root, opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if !strings.Contains(out, "let   a=1;") {
		t.Errorf("first statement was touched:\n%s", out)
	}
	if !strings.Contains(out, "let   c=3;") {
		t.Errorf("third statement was touched:\n%s", out)
	}
	if !strings.Contains(out, "let b = 2;") {
		t.Errorf("middle statement was not reformatted:\n%s", out)
	}
	if strings.Contains(out, "let   b=2;") {
		t.Errorf("middle statement still unformatted:\n%s", out)
	}
}

func TestFormatFullRangeIsNoOpWhenEmpty(t *testing.T) {
	src := "let a = 1;"
	opts := options.Default()
	opts.RangeStart = 0
	opts.RangeEnd = 0
	root, _, err := jsparser.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Format(src, root, opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != src {
		t.Errorf("Format() = %q, want unchanged %q", out, src)
	}
}

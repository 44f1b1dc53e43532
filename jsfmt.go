// Package jsfmt is the programmatic surface of spec.md §6: Format,
// Check, Version, and the debug hooks (Parse, FormatAST, FormatDoc,
// PrintToDoc, PrintDocToString) that let callers step through the
// parse → translate → layout pipeline one stage at a time.
package jsfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/comments"
	"github.com/jsfmt/jsfmt/internal/doc"
	"github.com/jsfmt/jsfmt/internal/jsparser"
	"github.com/jsfmt/jsfmt/internal/massage"
	"github.com/jsfmt/jsfmt/internal/options"
	"github.com/jsfmt/jsfmt/internal/printer"
	"github.com/jsfmt/jsfmt/internal/rangefmt"
	"github.com/jsfmt/jsfmt/internal/translate"
	"github.com/jsfmt/jsfmt/pkg/diff"
)

// version is the library's own release identifier, returned by Version
// and reported by the CLI's --version flag.
const version = "0.1.0"

// Version returns the library's release identifier (spec.md §6).
func Version() string { return version }

// ErrIdempotence is returned by DebugCheck when format(format(t)) != format(t).
var ErrIdempotence = errors.New("jsfmt: idempotence check failed")

// ErrSemanticDrift is returned by DebugCheck when the massaged AST of the
// formatted output differs from the massaged AST of the input.
var ErrSemanticDrift = errors.New("jsfmt: semantic-preservation check failed")

// Parse is the first pipeline stage exposed as a debug hook: it invokes
// the reference parser selected by opts.Parser and returns the raw
// AST/comments pair before attachment.
func Parse(text string, opts options.Options) (*ast.Node, []*ast.Comment, error) {
	if opts.Parser != "" && opts.Parser != options.DefaultParser {
		return nil, nil, fmt.Errorf("jsfmt: unknown parser %q", opts.Parser)
	}
	root, raw, err := jsparser.Parse(text)
	if err != nil {
		return nil, nil, fmt.Errorf("jsfmt: parse error: %w", err)
	}
	return root, raw, nil
}

// PrintToDoc attaches comments and runs the AST→Doc translator, the
// debug hook that stops just short of layout.
func PrintToDoc(root *ast.Node, raw []*ast.Comment, text string, opts options.Options) (doc.Doc, error) {
	comments.Attach(root, raw)
	return translate.Print(root, text, opts)
}

// PrintDocToString runs the layout engine over an already-built Doc,
// the final pipeline stage exposed standalone for debugging.
func PrintDocToString(d doc.Doc, opts options.Options) string {
	return printer.PrintDocToString(d, printer.Options{
		PrintWidth: opts.PrintWidth,
		TabWidth:   opts.TabWidth,
		UseTabs:    opts.UseTabs,
	})
}

// FormatDoc is an alias for PrintDocToString kept distinct because
// spec.md §6 lists formatDoc and printDocToString as separate debug
// hooks (mirroring the two-name split in this tool family's own
// reference implementation).
func FormatDoc(d doc.Doc, opts options.Options) string {
	return PrintDocToString(d, opts)
}

// FormatAST runs translate+layout over an already-parsed,
// already-attached tree, skipping shebang/line-ending handling — the
// debug hook for callers that already have an AST in hand.
func FormatAST(root *ast.Node, text string, opts options.Options) (string, error) {
	d, err := translate.Print(root, text, opts)
	if err != nil {
		return "", err
	}
	out := PrintDocToString(d, opts)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// Format parses text, runs it through the translator and layout
// engine, and returns the formatted result, honoring shebang
// passthrough (§4.6), line-ending preservation (§4.7), and range
// formatting (§4.5) when opts selects a sub-range.
func Format(text string, opts options.Options) (string, error) {
	opts, err := options.Normalize(opts, len(text))
	if err != nil {
		return "", fmt.Errorf("jsfmt: %w", err)
	}

	shebang, body := splitShebang(text)
	crlf := detectCRLF(body)
	lfBody := toLF(body)

	var formatted string
	if opts.IsFullRange(len(text)) {
		formatted, err = formatFull(lfBody, opts)
	} else {
		// Range offsets are against the original text (including the
		// shebang line, if any); adjust them to the body-relative
		// offsets formatFull/rangefmt operate on.
		adjusted := opts
		adjusted.RangeStart -= len(shebang)
		adjusted.RangeEnd -= len(shebang)
		formatted, err = formatRange(lfBody, adjusted)
	}
	if err != nil {
		return "", err
	}

	if crlf {
		formatted = toCRLF(formatted)
	}
	return shebang + formatted, nil
}

func formatFull(body string, opts options.Options) (string, error) {
	root, raw, err := Parse(body, opts)
	if err != nil {
		return "", err
	}
	if ignoreWholeFile(root, raw) {
		out := body
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out, nil
	}
	comments.Attach(root, raw)
	return FormatAST(root, body, opts)
}

// ignoreWholeFile generalizes the single-node prettier-ignore rule
// (spec.md §4.4) to the whole file: when the very first comment in the
// source is a "prettier-ignore" sentinel and nothing else precedes it,
// the file opts out of formatting entirely and is returned verbatim.
func ignoreWholeFile(root *ast.Node, raw []*ast.Comment) bool {
	if len(raw) == 0 || !raw[0].IsPrettierIgnore() {
		return false
	}
	if len(root.Body) == 0 {
		return true
	}
	return raw[0].Start < root.Body[0].Start
}

func formatRange(body string, opts options.Options) (string, error) {
	root, raw, err := Parse(body, opts)
	if err != nil {
		return "", err
	}
	comments.Attach(root, raw)
	return rangefmt.Format(body, root, opts)
}

// splitShebang splits a leading "#!...\n" line off text verbatim,
// spec.md §4.6. It returns ("", text) when there is none.
func splitShebang(text string) (shebang, rest string) {
	if !strings.HasPrefix(text, "#!") {
		return "", text
	}
	idx := strings.IndexByte(text, '\n')
	if idx == -1 {
		return text, ""
	}
	return text[:idx+1], text[idx+1:]
}

// detectCRLF reports whether the first newline in text is preceded by
// a carriage return, spec.md §4.7's line-ending detection rule.
func detectCRLF(text string) bool {
	idx := strings.IndexByte(text, '\n')
	return idx > 0 && text[idx-1] == '\r'
}

func toLF(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func toCRLF(text string) string {
	return strings.ReplaceAll(text, "\n", "\r\n")
}

// Check reports whether text is already formatted under opts
// (spec.md §6, §8 property 3: check(t,o) iff format(t,o) == t).
func Check(text string, opts options.Options) (bool, error) {
	out, err := Format(text, opts)
	if err != nil {
		return false, err
	}
	return out == text, nil
}

// DebugCheck runs the format-check mode of spec.md §4.8: it formats
// text twice and fails loudly on non-idempotence, then re-parses both
// the input and the once-formatted output and fails on semantic drift
// between their massaged trees. On failure the returned error wraps
// ErrIdempotence or ErrSemanticDrift and carries a unified diff.
func DebugCheck(text string, opts options.Options) error {
	f0, err := Format(text, opts)
	if err != nil {
		return err
	}
	f1, err := Format(f0, opts)
	if err != nil {
		return err
	}
	if f0 != f1 {
		d := diff.Unified("idempotence", f0, f1)
		return fmt.Errorf("%w:\n%s", ErrIdempotence, d)
	}

	origRoot, origComments, err := Parse(text, opts)
	if err != nil {
		return err
	}
	comments.Attach(origRoot, origComments)

	outRoot, outComments, err := Parse(f0, opts)
	if err != nil {
		return err
	}
	comments.Attach(outRoot, outComments)

	if !massage.Equal(origRoot, outRoot) {
		return fmt.Errorf("%w:\n%s", ErrSemanticDrift, massage.Diff(origRoot, outRoot))
	}
	return nil
}

// Package runner orchestrates the parse -> format -> output pipeline
// shared by the CLI across stdin and multi-file invocations.
package runner

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jsfmt/jsfmt"
	"github.com/jsfmt/jsfmt/internal/options"
	"github.com/jsfmt/jsfmt/pkg/diff"
)

// Exit codes (spec.md §7).
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// Options configures the runner behavior. Style is the fully resolved
// option bag — defaults, config file, and CLI flags already merged by
// the caller in that precedence order (spec.md §2); the runner applies
// it verbatim and has no config-file awareness of its own.
type Options struct {
	Files      []string
	Check      bool
	Diff       bool
	Write      bool
	DebugCheck bool
	Style      options.Options
	Quiet      bool
	Verbose    bool
	Stdout     io.Writer
	Stderr     io.Writer

	// Colorize, if set, post-processes a unified diff before it is
	// written to Stdout. cmd/jsfmt supplies a lipgloss-backed one when
	// color output is enabled; left nil, diffs print as plain text.
	Colorize func(string) string
}

// result is one file's outcome, buffered so concurrent workers never
// interleave partial writes to the shared stdout/stderr streams.
type result struct {
	code   int
	stdout string
	stderr string
}

// Run executes the format pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if len(opts.Files) == 0 {
		return runStdin(opts, opts.Style)
	}

	return runFiles(opts, opts.Style)
}

// runFiles formats every file concurrently with golang.org/x/sync/errgroup,
// each file pure and independent of the others (spec.md §5's "multiple
// files are formatted... a work-stealing pool is permitted"), then
// flushes the buffered per-file output to stdout/stderr in file order
// and folds the exit codes into the worst one observed.
func runFiles(opts *Options, style options.Options) int {
	results := make([]result, len(opts.Files))

	var g errgroup.Group
	for i, path := range opts.Files {
		i, path := i, path
		g.Go(func() error {
			results[i] = runFile(opts, style, path)
			return nil
		})
	}
	_ = g.Wait()

	exitCode := ExitOK
	for _, r := range results {
		if r.stdout != "" {
			writeOut(opts.Stdout, r.stdout)
		}
		if r.stderr != "" {
			writeOut(opts.Stderr, r.stderr)
		}
		if r.code > exitCode {
			exitCode = r.code
		}
	}
	return exitCode
}

func runStdin(opts *Options, style options.Options) int {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "jsfmt: reading stdin: %v\n", err)
		return ExitError
	}
	r := reportResult(opts, style, "<stdin>", string(src), nil)
	writeOut(opts.Stdout, r.stdout)
	writeOut(opts.Stderr, r.stderr)
	return r.code
}

func runFile(opts *Options, style options.Options, path string) result {
	src, err := os.ReadFile(path)
	if err != nil {
		return result{code: ExitError, stderr: fmt.Sprintf("jsfmt: %v\n", err)}
	}
	r := reportResult(opts, style, path, string(src), func(out string) error {
		return os.WriteFile(path, []byte(out), 0o644)
	})
	if opts.Verbose {
		r.stderr = path + "\n" + r.stderr
	}
	return r
}

// reportResult runs the selected mode (debug-check, check, diff, or
// write) against a single input and buffers the corresponding output,
// shared between the stdin and per-file paths.
func reportResult(opts *Options, style options.Options, label, input string, write func(string) error) result {
	if opts.DebugCheck {
		if err := jsfmt.DebugCheck(input, style); err != nil {
			return result{code: ExitError, stderr: fmt.Sprintf("%s: %v\n", label, err)}
		}
		return result{code: ExitOK}
	}

	output, err := jsfmt.Format(input, style)
	if err != nil {
		return result{code: ExitError, stderr: fmt.Sprintf("%s: %v\n", label, err)}
	}

	if opts.Check {
		if input != output {
			if opts.Quiet {
				return result{code: ExitFormatDiff}
			}
			return result{code: ExitFormatDiff, stderr: label + "\n"}
		}
		return result{code: ExitOK}
	}

	if opts.Diff {
		d := diff.Unified(label, input, output)
		if d != "" {
			if opts.Colorize != nil {
				d = opts.Colorize(d)
			}
			return result{code: ExitFormatDiff, stdout: d}
		}
		return result{code: ExitOK}
	}

	if write == nil {
		return result{code: ExitOK, stdout: output}
	}

	if input == output {
		return result{code: ExitOK}
	}
	if err := write(output); err != nil {
		return result{code: ExitError, stderr: fmt.Sprintf("jsfmt: writing %s: %v\n", label, err)}
	}
	return result{code: ExitOK}
}

func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

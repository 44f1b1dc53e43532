// Command jsfmt is the CLI entry point described informatively in
// spec.md §6: flag parsing, glob expansion, and color rendering, all
// delegating the actual parse/translate/layout work to the jsfmt
// package and internal/runner.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsfmt/jsfmt"
	"github.com/jsfmt/jsfmt/internal/config"
	"github.com/jsfmt/jsfmt/internal/doc"
	"github.com/jsfmt/jsfmt/internal/options"
	"github.com/jsfmt/jsfmt/internal/runner"
)

// Build-time variables set via ldflags.
var (
	commit = "none"
	date   = "unknown"
)

var (
	flagWrite              bool
	flagListDifferent      bool
	flagStdin              bool
	flagDiff               bool
	flagPrintWidth         int
	flagTabWidth           int
	flagUseTabs            bool
	flagNoSemi             bool
	flagSingleQuote        bool
	flagNoBracketSpacing   bool
	flagJSXBracketSameLine bool
	flagTrailingComma      string
	flagParser             string
	flagRangeStart         int
	flagRangeEnd           int
	flagNoColor            bool
	flagWithNodeModules    bool
	flagConfig             string
	flagQuiet              bool
	flagVerbose            bool
	flagDebugCheck         bool
	flagDebugPrintDoc      bool
)

func main() {
	root := &cobra.Command{
		Use:     "jsfmt [flags] [files...]",
		Short:   "Format JavaScript, JSX, and TypeScript source",
		Version: fmt.Sprintf("%s (%s) %s", jsfmt.Version(), commit, date),
		Long: `jsfmt formats JavaScript, JSX, and TypeScript source files.

With no files, reads from stdin and writes the formatted result to stdout.
With files or glob patterns, formats each match and writes it back in
place, with or without --write; --list-different, --diff and
--debug-check report instead of writing.

Examples:
  jsfmt file.js                 Format file.js in place
  jsfmt -w src/**/*.js           Format matching files in place
  jsfmt --list-different 'src/**/*.js'    List files that would change
  jsfmt --diff file.ts           Show what would change
  cat file.jsx | jsfmt            Format from stdin`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate("jsfmt {{.Version}}\n")

	flags := root.Flags()
	flags.BoolVarP(&flagWrite, "write", "w", false, "write result back to each file (file arguments are written in place with or without this flag)")
	flags.BoolVarP(&flagListDifferent, "list-different", "l", false, "print filenames that would change, exit 1 if any would")
	flags.BoolVar(&flagStdin, "stdin", false, "force reading from stdin even if positional args are given")
	flags.BoolVar(&flagDiff, "diff", false, "print a unified diff of changes instead of writing them")
	flags.IntVar(&flagPrintWidth, "print-width", 0, "wrap lines that exceed this width (default 80)")
	flags.IntVar(&flagTabWidth, "tab-width", 0, "number of spaces per indentation level (default 2)")
	flags.BoolVar(&flagUseTabs, "use-tabs", false, "indent with tabs instead of spaces")
	flags.BoolVar(&flagNoSemi, "no-semi", false, "omit semicolons except where required to avoid ambiguity")
	flags.BoolVar(&flagSingleQuote, "single-quote", false, "prefer single quotes over double quotes")
	flags.BoolVar(&flagNoBracketSpacing, "no-bracket-spacing", false, "omit spaces inside object literal braces")
	flags.BoolVar(&flagJSXBracketSameLine, "jsx-bracket-same-line", false, "put the closing bracket of multi-line JSX on the last line of the element")
	flags.StringVar(&flagTrailingComma, "trailing-comma", "", "trailing comma style: none, es5, or all (default none)")
	flags.StringVar(&flagParser, "parser", "", "parser identifier to use (default jsfmt)")
	flags.IntVar(&flagRangeStart, "range-start", 0, "byte offset to start formatting at")
	flags.IntVar(&flagRangeEnd, "range-end", -1, "byte offset to stop formatting at")
	flags.BoolVar(&flagNoColor, "no-color", false, "disable colorized diff/diagnostic output")
	flags.BoolVar(&flagWithNodeModules, "with-node-modules", false, "include node_modules/ directories when expanding glob patterns")
	flags.StringVar(&flagConfig, "config", "", "path to config file")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "print files as they are processed")
	flags.BoolVar(&flagDebugCheck, "debug-check", false, "format twice and verify idempotence and semantic preservation")
	flags.BoolVar(&flagDebugPrintDoc, "debug-print-doc", false, "print the intermediate document tree instead of formatted text")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jsfmt:", err)
		os.Exit(runner.ExitError)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagWrite && flagDebugCheck {
		return fmt.Errorf("--write and --debug-check are mutually exclusive")
	}

	style, err := resolveStyle(cmd)
	if err != nil {
		return err
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}

	if flagDebugPrintDoc {
		os.Exit(runDebugPrintDoc(files, style))
	}

	opts := &runner.Options{
		Files:      files,
		Check:      flagListDifferent,
		Diff:       flagDiff,
		Write:      flagWrite,
		DebugCheck: flagDebugCheck,
		Style:      style,
		Quiet:      flagQuiet,
		Verbose:    flagVerbose,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
	if !flagNoColor {
		opts.Colorize = colorizeDiff
	}
	if flagStdin {
		opts.Files = nil
	}

	os.Exit(runner.Run(opts))
	return nil
}

// resolveStyle applies spec.md §2's "defaults < config file < flags"
// precedence: it loads the discovered or explicit config file, then
// overlays only the flags the user actually set on the command line
// (via cmd.Flags().Changed), so an unset flag never shadows a value
// the config file provided.
func resolveStyle(cmd *cobra.Command) (options.Options, error) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return options.Options{}, err
	}
	base := fileCfg.Merge(options.Default())
	style := cliOverrides(cmd).Merge(base)
	style.RangeStart = flagRangeStart
	style.RangeEnd = flagRangeEnd
	return style, nil
}

func cliOverrides(cmd *cobra.Command) *config.Config {
	cfg := config.DefaultConfig()
	changed := cmd.Flags().Changed

	if changed("print-width") {
		cfg.PrintWidth = &flagPrintWidth
	}
	if changed("tab-width") {
		cfg.TabWidth = &flagTabWidth
	}
	if changed("use-tabs") {
		cfg.UseTabs = &flagUseTabs
	}
	if changed("no-semi") {
		semi := !flagNoSemi
		cfg.Semi = &semi
	}
	if changed("single-quote") {
		cfg.SingleQuote = &flagSingleQuote
	}
	if changed("no-bracket-spacing") {
		spacing := !flagNoBracketSpacing
		cfg.BracketSpacing = &spacing
	}
	if changed("jsx-bracket-same-line") {
		cfg.JSXBracketSameLine = &flagJSXBracketSameLine
	}
	if changed("trailing-comma") {
		cfg.TrailingComma = &flagTrailingComma
	}
	if changed("parser") {
		cfg.Parser = &flagParser
	}
	return cfg
}

// expandArgs expands glob patterns in args with doublestar, preserving
// plain file paths untouched, and — unless --with-node-modules was
// given — drops any match that falls inside a node_modules directory.
func expandArgs(args []string) ([]string, error) {
	var out []string
	for _, pattern := range args {
		if !doublestar.ValidatePattern(pattern) {
			out = append(out, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			out = append(out, pattern)
			continue
		}
		for _, m := range matches {
			if !flagWithNodeModules && insideNodeModules(m) {
				continue
			}
			out = append(out, m)
		}
	}
	return out, nil
}

func insideNodeModules(path string) bool {
	return doublestarMatch("**/node_modules/**", path)
}

func doublestarMatch(pattern, path string) bool {
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}

var (
	diffHeaderStyle = lipgloss.NewStyle().Bold(true)
	diffAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	diffDelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	diffHunkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

// colorizeDiff applies lipgloss styling to a unified diff's lines,
// gated behind --no-color by the caller in run.
func colorizeDiff(d string) string {
	lines := strings.SplitAfter(d, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			lines[i] = diffHeaderStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = diffHunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = diffAddStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = diffDelStyle.Render(line)
		}
	}
	return strings.Join(lines, "")
}

// runDebugPrintDoc implements --debug-print-doc: parse, attach comments,
// translate to the Doc IR, and print its S-expression form instead of
// laid-out text (spec.md §6's printToDoc debug hook, surfaced at the CLI).
func runDebugPrintDoc(files []string, style options.Options) int {
	if len(files) == 0 {
		src, err := readStdin()
		if err != nil {
			fmt.Fprintln(os.Stderr, "jsfmt:", err)
			return runner.ExitError
		}
		return printDocFor("<stdin>", src, style)
	}
	code := runner.ExitOK
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "jsfmt:", err)
			code = runner.ExitError
			continue
		}
		if c := printDocFor(path, string(src), style); c > code {
			code = c
		}
	}
	return code
}

func printDocFor(label, src string, style options.Options) int {
	root, raw, err := jsfmt.Parse(src, style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
		return runner.ExitError
	}
	d, err := jsfmt.PrintToDoc(root, raw, src, style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
		return runner.ExitError
	}
	fmt.Println(doc.Sprint(d))
	return runner.ExitOK
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

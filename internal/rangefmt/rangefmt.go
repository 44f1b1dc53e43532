// Package rangefmt implements the range-format driver of spec.md §4.5:
// reformat only the statements overlapping [rangeStart, rangeEnd) and
// splice the result back into the surrounding, untouched source text.
package rangefmt

import (
	"fmt"

	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
	"github.com/jsfmt/jsfmt/internal/options"
	"github.com/jsfmt/jsfmt/internal/printer"
	"github.com/jsfmt/jsfmt/internal/translate"
)

// Format implements the algorithm of spec.md §4.5 for a source/root
// pair already produced by a parser, with comments already attached
// via comments.Attach. root is the Program node.
func Format(source string, root *ast.Node, opts options.Options) (string, error) {
	start, end := contractEndpoints(source, opts.RangeStart, opts.RangeEnd)
	if start >= end {
		return source, nil
	}

	container := deepestStatementListContaining(root, start, end)
	if container == nil {
		return "", fmt.Errorf("rangefmt: range [%d,%d) falls outside the parsed tree", start, end)
	}
	stmts := siblingsOverlapping(container, start, end)
	if len(stmts) == 0 {
		return "", fmt.Errorf("rangefmt: no statement overlaps [%d,%d)", start, end)
	}

	spanStart, spanEnd := stmts[0].Start, stmts[len(stmts)-1].End

	lineStart := beginningOfLine(source, spanStart)
	alignmentSize := columnsOf(source[lineStart:spanStart], opts.TabWidth)

	sub, err := formatStatements(stmts, source, opts, alignmentSize)
	if err != nil {
		return "", err
	}

	prefix := source[:spanStart]
	suffix := source[spanEnd:]
	return prefix + trimTrailingSpace(sub) + suffix, nil
}

// contractEndpoints moves start forward and end backward past
// whitespace, spec.md §4.5 step 1.
func contractEndpoints(source string, start, end int) (int, int) {
	for start < end && start < len(source) && isSpace(source[start]) {
		start++
	}
	for end > start && end <= len(source) && isSpace(source[end-1]) {
		end--
	}
	return start, end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// deepestStatementListContaining finds the innermost Program or
// BlockStatement whose span covers [start, end) — the sibling-ancestor
// container spec.md §4.5 step 2 walks up to.
func deepestStatementListContaining(n *ast.Node, start, end int) *ast.Node {
	if n == nil || !n.Covers(start, end) {
		return nil
	}
	var best *ast.Node
	switch n.Kind {
	case ast.Program, ast.BlockStatement:
		best = n
	}
	for _, child := range directChildren(n) {
		if deeper := deepestStatementListContaining(child, start, end); deeper != nil {
			best = deeper
		}
	}
	return best
}

// siblingsOverlapping returns container's direct statements whose
// spans overlap [start, end), the set step 2's two widened sibling
// nodes bracket between them.
func siblingsOverlapping(container *ast.Node, start, end int) []*ast.Node {
	var out []*ast.Node
	for _, stmt := range container.Body {
		if stmt.Start < end && stmt.End > start {
			out = append(out, stmt)
		}
	}
	return out
}

// directChildren enumerates every direct child slot worth descending
// into when looking for the statement-list container; it only needs
// to be conservative, not exhaustive over every scalar field.
func directChildren(n *ast.Node) []*ast.Node {
	var out []*ast.Node
	out = append(out, n.Body...)
	out = append(out, n.Cases...)
	out = append(out, n.Left, n.Right, n.Test, n.Consequent, n.Alternate,
		n.Object, n.Callee, n.Argument, n.Init, n.Update, n.Handler,
		n.Finalizer, n.Declaration, n.Expr)

	filtered := out[:0]
	for _, c := range out {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func beginningOfLine(source string, pos int) int {
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}
	return pos
}

func columnsOf(prefix string, tabWidth int) int {
	col := 0
	for i := 0; i < len(prefix); i++ {
		if prefix[i] == '\t' {
			col += tabWidth
		} else {
			col++
		}
	}
	return col
}

// formatStatements reformats each covered statement through the normal
// translator, joining them the way a statement list normally would,
// then lays out the result with printWidth reduced by alignmentSize
// and wrapped in doc.Align so continuation lines land at the original
// indent (spec.md §4.5 step 4).
func formatStatements(stmts []*ast.Node, source string, opts options.Options, alignmentSize int) (string, error) {
	parts := make([]doc.Doc, 0, len(stmts))
	for _, stmt := range stmts {
		d, err := translate.Print(stmt, source, opts)
		if err != nil {
			return "", err
		}
		parts = append(parts, d)
	}

	var body doc.Doc
	if len(parts) == 1 {
		body = parts[0]
	} else {
		var joined []doc.Doc
		for i, p := range parts {
			if i > 0 {
				joined = append(joined, doc.HardLine)
				if stmts[i].BlankLineBefore {
					joined = append(joined, doc.HardLine)
				}
			}
			joined = append(joined, p)
		}
		body = doc.Concat(joined...)
	}

	top := doc.Align(alignmentSize, body)
	printOpts := printer.Options{
		PrintWidth: opts.PrintWidth - alignmentSize,
		TabWidth:   opts.TabWidth,
		UseTabs:    opts.UseTabs,
	}
	if printOpts.PrintWidth < 1 {
		printOpts.PrintWidth = 1
	}
	return printer.PrintDocToString(top, printOpts), nil
}

func trimTrailingSpace(s string) string {
	end := len(s)
	for end > 0 {
		switch s[end-1] {
		case ' ', '\t', '\n', '\r':
			end--
		default:
			return s[:end]
		}
	}
	return s[:end]
}

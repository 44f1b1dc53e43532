// Package printer implements the Doc→String layout engine: a
// width-aware, Wadler/Leijen-shaped printer that decides, for every
// doc.Group, whether to render flat or broken (spec.md §4.1).
//
// Column width is measured with github.com/rivo/uniseg so wide/combining
// runes in string and template literals are counted the way a terminal
// or editor would, not by naive rune count.
package printer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/jsfmt/jsfmt/internal/doc"
)

// Options configures layout.
type Options struct {
	PrintWidth int
	TabWidth   int
	UseTabs    bool
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

// command is a unit of pending work: a doc to render under a given
// indent and mode.
type command struct {
	indent indentState
	mode   mode
	doc    doc.Doc
}

// indentState tracks both the "column" indent (spaces) used by Align and
// the tab-stop based indent used by Indent, matching the split the
// printer needs between hard tab stops and arbitrary column alignment.
type indentState struct {
	value  string
	length int
}

func rootIndent() indentState { return indentState{} }

func (o Options) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	width := o.TabWidth
	if width <= 0 {
		width = 2
	}
	return strings.Repeat(" ", width)
}

func (ind indentState) indent(opts Options) indentState {
	unit := opts.indentUnit()
	return indentState{value: ind.value + unit, length: ind.length + unitWidth(unit, opts)}
}

func (ind indentState) align(n int) indentState {
	if n <= 0 {
		return ind
	}
	return indentState{value: ind.value + strings.Repeat(" ", n), length: ind.length + n}
}

func unitWidth(unit string, opts Options) int {
	if opts.UseTabs {
		return opts.TabWidth
	}
	return len(unit)
}

// lineSuffixEntry defers content (typically a trailing comment) to the
// end of the current physical line.
type lineSuffixEntry struct {
	indent indentState
	mode   mode
	doc    doc.Doc
}

// propagateBreaks marks every Group that transitively contains a
// HardLine or LiteralLine as ShouldBreak, run once before printing so
// fits' short lookahead can treat a hard line as "the line ends here"
// rather than a line that slipped past an enclosing group's flat/break
// decision (spec.md §3: "HardLine transitively forces all enclosing
// groups to break"). Breaks don't propagate out of a LineSuffix (its
// content prints later, off the current line) or out of either side of
// an IfBreak (only the selected side ever renders).
func propagateBreaks(d *doc.Doc) bool {
	switch d.Kind {
	case doc.KindHardLine, doc.KindLiteralLine:
		return true
	case doc.KindConcat:
		forced := false
		for i := range d.Parts {
			if propagateBreaks(&d.Parts[i]) {
				forced = true
			}
		}
		return forced
	case doc.KindIndent, doc.KindAlign:
		if d.Child == nil {
			return false
		}
		return propagateBreaks(d.Child)
	case doc.KindGroup:
		if d.Child != nil && propagateBreaks(d.Child) {
			d.ShouldBreak = true
		}
		return d.ShouldBreak
	case doc.KindLineSuffix:
		if d.Child != nil {
			propagateBreaks(d.Child)
		}
		return false
	case doc.KindIfBreak:
		if d.BreakContents != nil {
			propagateBreaks(d.BreakContents)
		}
		if d.FlatContents != nil {
			propagateBreaks(d.FlatContents)
		}
		return false
	default:
		return false
	}
}

// PrintDocToString renders d to a string, choosing flat/break per group
// so that no line exceeds opts.PrintWidth where feasible.
func PrintDocToString(d doc.Doc, opts Options) string {
	if opts.PrintWidth <= 0 {
		opts.PrintWidth = 80
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = 2
	}

	propagateBreaks(&d)

	pos := 0
	var out strings.Builder
	var lineSuffixes []lineSuffixEntry
	groupModeMap := map[int]mode{}
	shouldRemeasure := true

	stack := []command{{indent: rootIndent(), mode: modeBreak, doc: d}}

	for len(stack) > 0 {
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch cmd.doc.Kind {
		case doc.KindText:
			if cmd.doc.Text != "" {
				out.WriteString(cmd.doc.Text)
				pos += stringWidth(cmd.doc.Text)
			}

		case doc.KindConcat:
			for i := len(cmd.doc.Parts) - 1; i >= 0; i-- {
				stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: cmd.doc.Parts[i]})
			}

		case doc.KindIndent:
			stack = append(stack, command{indent: cmd.indent.indent(opts), mode: cmd.mode, doc: *cmd.doc.Child})

		case doc.KindAlign:
			stack = append(stack, command{indent: cmd.indent.align(cmd.doc.N), mode: cmd.mode, doc: *cmd.doc.Child})

		case doc.KindGroup:
			switch cmd.mode {
			case modeFlat:
				if !shouldRemeasure {
					m := modeFlat
					if cmd.doc.ShouldBreak {
						m = modeBreak
					}
					stack = append(stack, command{indent: cmd.indent, mode: m, doc: *cmd.doc.Child})
					break
				}
				fallthrough
			default:
				shouldRemeasure = false
				flatCmd := command{indent: cmd.indent, mode: modeFlat, doc: *cmd.doc.Child}
				if !cmd.doc.ShouldBreak && fits(flatCmd, stack, opts.PrintWidth-pos, len(lineSuffixes) > 0, groupModeMap) {
					stack = append(stack, flatCmd)
				} else {
					stack = append(stack, command{indent: cmd.indent, mode: modeBreak, doc: *cmd.doc.Child})
				}
			}
			if cmd.doc.GroupID != 0 {
				if cmd.mode == modeFlat && !cmd.doc.ShouldBreak {
					groupModeMap[cmd.doc.GroupID] = modeFlat
				} else {
					groupModeMap[cmd.doc.GroupID] = stack[len(stack)-1].mode
				}
			}

		case doc.KindLine, doc.KindSoftLine:
			if cmd.mode == modeFlat && cmd.doc.Kind == doc.KindLine {
				out.WriteByte(' ')
				pos++
				break
			}
			if cmd.mode == modeFlat && cmd.doc.Kind == doc.KindSoftLine {
				break
			}
			fallthrough

		case doc.KindHardLine, doc.KindLiteralLine:
			if len(lineSuffixes) > 0 {
				stack = append(stack, cmd)
				for i := len(lineSuffixes) - 1; i >= 0; i-- {
					stack = append(stack, command{indent: lineSuffixes[i].indent, mode: lineSuffixes[i].mode, doc: lineSuffixes[i].doc})
				}
				lineSuffixes = nil
				break
			}

			if cmd.doc.Kind == doc.KindLiteralLine {
				trimTrailingSpace(&out)
				out.WriteByte('\n')
				pos = 0
			} else {
				trimTrailingSpace(&out)
				out.WriteByte('\n')
				out.WriteString(cmd.indent.value)
				pos = cmd.indent.length
			}
			shouldRemeasure = true

		case doc.KindLineSuffix:
			lineSuffixes = append(lineSuffixes, lineSuffixEntry{indent: cmd.indent, mode: cmd.mode, doc: *cmd.doc.Child})

		case doc.KindLineSuffixBoundary:
			if len(lineSuffixes) > 0 {
				stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: doc.HardLine})
			}

		case doc.KindIfBreak:
			groupMode := cmd.mode
			if cmd.doc.IfBreakGroupID != 0 {
				if m, ok := groupModeMap[cmd.doc.IfBreakGroupID]; ok {
					groupMode = m
				} else {
					groupMode = modeFlat
				}
			}
			if groupMode == modeBreak {
				stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: *cmd.doc.BreakContents})
			} else {
				stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: *cmd.doc.FlatContents})
			}

		case doc.KindCursor:
			// No output; reserved for callers that splice a cursor marker
			// back into the result (not exercised by the core pipeline).
		}
	}

	// Flush any line suffixes still pending at end of document.
	if len(lineSuffixes) > 0 {
		for _, ls := range lineSuffixes {
			printCommand(&out, &pos, ls.indent, ls.mode, ls.doc, opts)
		}
	}

	return out.String()
}

// printCommand is a minimal non-recursive-stack helper used only to
// flush trailing line-suffix content once the main stack is drained.
func printCommand(out *strings.Builder, pos *int, ind indentState, m mode, d doc.Doc, opts Options) {
	switch d.Kind {
	case doc.KindText:
		out.WriteString(d.Text)
		*pos += stringWidth(d.Text)
	case doc.KindConcat:
		for _, p := range d.Parts {
			printCommand(out, pos, ind, m, p, opts)
		}
	default:
		// Trailing line suffixes are always simple Text/Concat in practice
		// (comment bodies); anything else is printed verbatim as flat.
	}
}

func trimTrailingSpace(out *strings.Builder) {
	s := out.String()
	trimmed := strings.TrimRight(s, " \t")
	if len(trimmed) == len(s) {
		return
	}
	out.Reset()
	out.WriteString(trimmed)
}

// stringWidth returns the display column width of s, counting grapheme
// clusters rather than runes so combining marks and wide CJK characters
// don't throw off the print-width budget.
func stringWidth(s string) int {
	return uniseg.StringWidth(s)
}

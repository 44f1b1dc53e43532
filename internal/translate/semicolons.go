package translate

import (
	"fmt"
	"strings"

	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

// semi returns the statement terminator governed by the semi option
// (spec.md §3): ";" when enabled, empty otherwise. ASI hazards are
// handled separately by leadingSemiIfASIHazard rather than by refusing
// to honor semi=false, matching this tool family's documented policy.
func (p *printer) semi() doc.Doc {
	if p.opts.Semi {
		return doc.Text(";")
	}
	return doc.Text("")
}

// leadingSemiIfASIHazard prepends a defensive ";" when semi is disabled
// and the statement about to be printed starts with a token that would
// otherwise merge with whatever precedes it under automatic semicolon
// insertion: "(", "[", "`", "+", "-", "/", or "<" (JSX mode). The hazard
// is judged from the node itself, not from the previous statement, so
// it is conservative by construction — it fires whenever the shape is
// dangerous regardless of what actually precedes it in the final list.
func (p *printer) leadingSemiIfASIHazard(printed doc.Doc) doc.Doc {
	if p.opts.Semi {
		return doc.Text("")
	}
	if startsWithASIHazard(printed) {
		return doc.Text(";")
	}
	return doc.Text("")
}

func startsWithASIHazard(d doc.Doc) bool {
	first := firstChar(d)
	switch first {
	case '(', '[', '`', '+', '-', '/', '<':
		return true
	}
	return false
}

func firstChar(d doc.Doc) byte {
	switch d.Kind {
	case doc.KindText:
		if d.Text == "" {
			return 0
		}
		return d.Text[0]
	case doc.KindConcat:
		for _, part := range d.Parts {
			if c := firstChar(part); c != 0 {
				return c
			}
		}
		return 0
	case doc.KindIndent, doc.KindAlign, doc.KindGroup, doc.KindLineSuffix:
		if d.Child == nil {
			return 0
		}
		return firstChar(*d.Child)
	}
	return 0
}

// trailingComma decides whether a comma follows the last element of a
// broken list, per the trailingComma option (spec.md §3): "all" always
// adds one (everywhere except rest/spread-terminated parameter and
// argument lists); "es5" adds one only where the target grammar
// historically tolerated it — arrays, objects, and parameter lists, but
// not call-argument lists; "none" never does.
func (p *printer) trailingComma(isRestTerminated, isCallArgs bool) doc.Doc {
	switch p.opts.TrailingComma {
	case "all":
		if isRestTerminated {
			return doc.Text("")
		}
		return doc.IfBreak(doc.Text(","), doc.Text(""))
	case "es5":
		if isRestTerminated || isCallArgs {
			return doc.Text("")
		}
		return doc.IfBreak(doc.Text(","), doc.Text(""))
	default:
		return doc.Text("")
	}
}

func lastIsRestOrSpread(nodes []*ast.Node) bool {
	if len(nodes) == 0 {
		return false
	}
	last := nodes[len(nodes)-1]
	return last.Kind == ast.RestElement || last.Kind == ast.SpreadElement
}

// quote normalizes a string literal's delimiter per the singleQuote
// option, preferring whichever quote character requires fewer escapes
// when the opposite of the preferred one would need more backslashes —
// the same "choose the quote that escapes less" rule this tool family
// documents.
func (p *printer) quote(raw string, value string) string {
	preferred := byte('"')
	if p.opts.SingleQuote {
		preferred = '\''
	}
	alternate := byte('\'')
	if preferred == '\'' {
		alternate = '"'
	}

	preferredCount := strings.Count(value, string(preferred))
	alternateCount := strings.Count(value, string(alternate))

	use := preferred
	if preferredCount > alternateCount {
		use = alternate
	}

	var b strings.Builder
	b.WriteByte(use)
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == use || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\v':
			b.WriteString(`\v`)
		case c == 0:
			b.WriteString(`\0`)
		case c < 0x20:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(use)
	return b.String()
}

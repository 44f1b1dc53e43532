// Package jsparser is the reference parser implementing the external
// parser contract of spec.md §6: given source text it returns an
// *ast.Node tree with start/end byte offsets on every node and a
// top-level comment list for internal/comments to attach. It covers a
// representative subset of the grammar — enough to drive the
// translator end to end and the golden/property test suite — not a
// claim of full coverage of the target language.
package jsparser

import (
	"strings"
	"unicode/utf8"

	"github.com/jsfmt/jsfmt/internal/ast"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokKeyword
	tokNumber
	tokString
	tokTemplate
	tokRegExp
	tokPunct
)

type token struct {
	kind    tokenKind
	text    string
	start   int
	end     int
	nlAfter bool // not set by the lexer; ASI reads Parser.nlSeen instead
}

var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
	"let": true, "static": true, "async": true, "await": true, "of": true,
	"get": true, "set": true, "as": true, "from": true, "readonly": true,
	"declare": true, "satisfies": true, "true": true, "false": true, "null": true,
	"undefined": true,
}

// lexer tokenizes source, collecting comments out-of-band exactly the
// way the parser contract (spec.md §6) describes: a top-level
// "comments" array, moved off the token stream before the parser ever
// sees it.
type lexer struct {
	src      string
	pos      int
	comments []*ast.Comment
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) byteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

// skipSpaceAndComments advances past whitespace and comments, recording
// each comment with its blank-line and own-line context so
// internal/comments.Attach can apply spec.md §4.4's tie-breaks.
func (l *lexer) skipSpaceAndComments() (sawNewline bool) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			sawNewline = true
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '/' && l.byteAt(1) == '/':
			start := l.pos
			l.pos += 2
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
			l.comments = append(l.comments, &ast.Comment{
				Text: l.src[start+2 : l.pos], Kind: ast.LineComment,
				Start: start, End: l.pos, OwnLine: sawNewline,
			})
		case c == '/' && l.byteAt(1) == '*':
			start := l.pos
			l.pos += 2
			for l.pos < len(l.src) && !(l.src[l.pos] == '*' && l.byteAt(1) == '/') {
				if l.src[l.pos] == '\n' {
					sawNewline = true
				}
				l.pos++
			}
			l.pos += 2
			l.comments = append(l.comments, &ast.Comment{
				Text: strings.TrimSuffix(strings.TrimPrefix(l.src[start:l.pos], "/*"), "*/"),
				Kind: ast.BlockComment, Start: start, End: l.pos, OwnLine: sawNewline,
			})
		default:
			return sawNewline
		}
	}
	return sawNewline
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= utf8.RuneSelf
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// next returns the next token, skipping whitespace and comments first.
func (l *lexer) next() token {
	blankBefore := l.skipSpaceAndComments()
	if blankBefore {
		l.markBlankLineBeforeLastComment()
	}

	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, start: start, end: start}
	}

	c := l.src[l.pos]

	switch {
	case isDigit(c) || (c == '.' && isDigit(l.byteAt(1))):
		return l.lexNumber()
	case c == '"' || c == '\'':
		return l.lexString(c)
	case c == '`':
		return l.lexTemplate()
	default:
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if isIdentStart(r) {
			return l.lexIdent()
		}
		return l.lexPunct(r, size)
	}
}

// markBlankLineBeforeLastComment is called when skipSpaceAndComments
// saw a blank line. It does nothing: Comment.BlankLineBefore is left
// unset, and blank lines between statements are found by the parser
// (hasBlankLine) instead.
func (l *lexer) markBlankLineBeforeLastComment() {
}

func (l *lexer) lexNumber() token {
	start := l.pos
	if l.byteAt(0) == '0' && (l.byteAt(1) == 'x' || l.byteAt(1) == 'X' || l.byteAt(1) == 'b' || l.byteAt(1) == 'B' || l.byteAt(1) == 'o' || l.byteAt(1) == 'O') {
		l.pos += 2
		for l.pos < len(l.src) && isAlnum(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], start: start, end: l.pos}
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.peekByte() == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.peekByte() == 'e' || l.peekByte() == 'E' {
		l.pos++
		if l.peekByte() == '+' || l.peekByte() == '-' {
			l.pos++
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	return token{kind: tokNumber, text: l.src[start:l.pos], start: start, end: l.pos}
}

func isAlnum(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (l *lexer) lexString(quote byte) token {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && l.src[l.pos] != quote {
		if l.src[l.pos] == '\\' {
			l.pos++
		}
		l.pos++
	}
	l.pos++
	return token{kind: tokString, text: l.src[start:l.pos], start: start, end: l.pos}
}

func (l *lexer) lexTemplate() token {
	start := l.pos
	l.pos++
	depth := 0
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos++
		case '`':
			if depth == 0 {
				l.pos++
				return token{kind: tokTemplate, text: l.src[start:l.pos], start: start, end: l.pos}
			}
		case '$':
			if l.byteAt(1) == '{' {
				depth++
				l.pos++
			}
		case '}':
			if depth > 0 {
				depth--
			}
		}
		l.pos++
	}
	return token{kind: tokTemplate, text: l.src[start:l.pos], start: start, end: l.pos}
}

func (l *lexer) lexIdent() token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}
	text := l.src[start:l.pos]
	kind := tokIdent
	if keywords[text] {
		kind = tokKeyword
	}
	return token{kind: kind, text: text, start: start, end: l.pos}
}

var punct3 = []string{"===", "!==", "**=", "...", ">>>", "<<=", ">>=", "&&=", "||=", "??="}
var punct2 = []string{"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**"}

func (l *lexer) lexPunct(r rune, size int) token {
	start := l.pos
	rest := l.src[l.pos:]
	for _, p := range punct3 {
		if strings.HasPrefix(rest, p) {
			l.pos += len(p)
			return token{kind: tokPunct, text: p, start: start, end: l.pos}
		}
	}
	for _, p := range punct2 {
		if strings.HasPrefix(rest, p) {
			l.pos += len(p)
			return token{kind: tokPunct, text: p, start: start, end: l.pos}
		}
	}
	l.pos += size
	return token{kind: tokPunct, text: string(r), start: start, end: l.pos}
}

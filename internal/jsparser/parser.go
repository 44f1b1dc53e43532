package jsparser

import (
	"fmt"
	"strings"

	"github.com/jsfmt/jsfmt/internal/ast"
)

// ParseError carries a source location the way spec.md §7's "parse
// error" taxonomy entry requires: "<filename>: <message>", with the
// filename left to the caller (the CLI prefixes it).
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Pos, e.Message)
}

// Parser is the reference recursive-descent parser. It is not
// reentrant and not safe for concurrent use, mirroring the
// single-threaded core contract in spec.md §5.
type Parser struct {
	src    string
	toks   []token
	pos    int
	nlSeen []bool // nlSeen[i] true if a newline preceded toks[i]
}

// Parse implements the parser contract of spec.md §6: it returns a
// Program node plus the flat top-level comment list for attachment.
func Parse(src string) (*ast.Node, []*ast.Comment, error) {
	lx := newLexer(src)
	var toks []token
	var nlSeen []bool
	lastEnd := 0
	for {
		t := lx.next()
		nlSeen = append(nlSeen, detectNewlineBefore(lx, lastEnd, t))
		toks = append(toks, t)
		lastEnd = t.end
		if t.kind == tokEOF {
			break
		}
	}
	p := &Parser{src: src, toks: toks, nlSeen: nlSeen}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, nil, err
	}
	return prog, lx.comments, nil
}

// detectNewlineBefore reports whether source between the previous
// token's end (prevEnd) and t's start contains a newline, used for ASI
// and for the blank-line check before each statement.
func detectNewlineBefore(lx *lexer, prevEnd int, t token) bool {
	return strings.ContainsRune(lx.src[prevEnd:t.start], '\n')
}

func (p *Parser) cur() token  { return p.toks[p.pos] }
func (p *Parser) peek(n int) token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}
func (p *Parser) nlBefore() bool {
	if p.pos >= len(p.nlSeen) {
		return false
	}
	return p.nlSeen[p.pos]
}
func (p *Parser) advance() token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) is(text string) bool {
	t := p.cur()
	return (t.kind == tokPunct || t.kind == tokKeyword) && t.text == text
}

func (p *Parser) isEOF() bool { return p.cur().kind == tokEOF }

func (p *Parser) expect(text string) (token, error) {
	if !p.is(text) {
		return token{}, &ParseError{Pos: p.cur().start, Message: fmt.Sprintf("expected %q, got %q", text, p.cur().text)}
	}
	return p.advance(), nil
}

func (p *Parser) node(kind ast.Kind, start int) *ast.Node {
	return &ast.Node{Kind: kind, Start: start}
}

func (p *Parser) end(n *ast.Node) *ast.Node {
	if p.pos == 0 {
		n.End = 0
		return n
	}
	n.End = p.toks[p.pos-1].end
	return n
}

// parseProgram parses the whole source as a sequence of statements.
func (p *Parser) parseProgram() (*ast.Node, error) {
	prog := p.node(ast.Program, 0)
	var blankBefore bool
	for !p.isEOF() {
		blankBefore = p.nlBefore() && hasBlankLine(p.src, prevEnd(p), p.cur().start)
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.BlankLineBefore = blankBefore
		prog.Body = append(prog.Body, stmt)
	}
	prog.End = len(p.src)
	return prog, nil
}

func prevEnd(p *Parser) int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].end
}

func hasBlankLine(src string, from, to int) bool {
	if from < 0 {
		from = 0
	}
	if to > len(src) {
		to = len(src)
	}
	if from >= to {
		return false
	}
	return strings.Count(src[from:to], "\n") >= 2
}

// parseStatement dispatches on the current token to one of the
// statement-level productions; declarations fall through to
// parseDeclaration.
func (p *Parser) parseStatement() (*ast.Node, error) {
	t := p.cur()
	switch {
	case p.is("{"):
		return p.parseBlock()
	case p.is(";"):
		start := p.advance().start
		n := p.node(ast.EmptyStatement, start)
		return p.end(n), nil
	case p.is("if"):
		return p.parseIf()
	case p.is("for"):
		return p.parseFor()
	case p.is("while"):
		return p.parseWhile()
	case p.is("do"):
		return p.parseDoWhile()
	case p.is("switch"):
		return p.parseSwitch()
	case p.is("try"):
		return p.parseTry()
	case p.is("return"):
		return p.parseReturn()
	case p.is("throw"):
		return p.parseThrow()
	case p.is("break"):
		return p.parseBreakContinue(ast.BreakStatement, "break")
	case p.is("continue"):
		return p.parseBreakContinue(ast.ContinueStatement, "continue")
	case p.is("var"), p.is("let"), p.is("const"):
		decl, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		p.consumeSemi()
		return decl, nil
	case p.is("function"):
		return p.parseFunction(true, false)
	case p.is("async") && p.peek(1).text == "function":
		p.advance()
		return p.parseFunction(true, true)
	case p.is("class"):
		return p.parseClass(true)
	case p.is("import"):
		return p.parseImport()
	case p.is("export"):
		return p.parseExport()
	case t.kind == tokIdent && p.peek(1).text == ":":
		return p.parseLabeled()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() (*ast.Node, error) {
	start := p.cur().start
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	n := p.node(ast.BlockStatement, start)
	for !p.is("}") && !p.isEOF() {
		blankBefore := p.nlBefore() && hasBlankLine(p.src, prevEnd(p), p.cur().start)
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.BlankLineBefore = blankBefore
		n.Body = append(n.Body, stmt)
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return p.end(n), nil
}

func (p *Parser) consumeSemi() {
	if p.is(";") {
		p.advance()
	}
}

func (p *Parser) parseExpressionStatement() (*ast.Node, error) {
	start := p.cur().start
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeSemi()
	n := p.node(ast.ExpressionStatement, start)
	n.Expr = expr
	return p.end(n), nil
}

func (p *Parser) parseIf() (*ast.Node, error) {
	start := p.advance().start // "if"
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	cons, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.IfStatement, start)
	n.Test = test
	n.Consequent = cons
	if p.is("else") {
		p.advance()
		alt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		n.Alternate = alt
	}
	return p.end(n), nil
}

func (p *Parser) parseWhile() (*ast.Node, error) {
	start := p.advance().start
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.WhileStatement, start)
	n.Test = test
	n.Consequent = body
	return p.end(n), nil
}

func (p *Parser) parseDoWhile() (*ast.Node, error) {
	start := p.advance().start
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("while"); err != nil {
		return nil, err
	}
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	p.consumeSemi()
	n := p.node(ast.DoWhileStatement, start)
	n.Consequent = body
	n.Test = test
	return p.end(n), nil
}

func (p *Parser) parseFor() (*ast.Node, error) {
	start := p.advance().start
	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	var init *ast.Node
	var err error
	if !p.is(";") {
		if p.is("var") || p.is("let") || p.is("const") {
			init, err = p.parseVariableDeclaration()
		} else {
			init, err = p.parseExpression()
		}
		if err != nil {
			return nil, err
		}
	}

	if p.is("in") || p.is("of") {
		kw := p.advance().text
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		kind := ast.ForInStatement
		if kw == "of" {
			kind = ast.ForOfStatement
		}
		n := p.node(kind, start)
		n.Left = init
		n.Right = right
		n.Consequent = body
		return p.end(n), nil
	}

	if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	var test *ast.Node
	if !p.is(";") {
		test, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	var update *ast.Node
	if !p.is(")") {
		update, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.ForStatement, start)
	n.Init = init
	n.Test = test
	n.Update = update
	n.Consequent = body
	return p.end(n), nil
}

func (p *Parser) parseSwitch() (*ast.Node, error) {
	start := p.advance().start
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	disc, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	n := p.node(ast.SwitchStatement, start)
	n.Discriminant = disc
	for !p.is("}") && !p.isEOF() {
		caseStart := p.cur().start
		c := p.node(ast.SwitchCase, caseStart)
		if p.is("case") {
			p.advance()
			test, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			c.Test = test
		} else if _, err := p.expect("default"); err != nil {
			return nil, err
		}
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
		for !p.is("case") && !p.is("default") && !p.is("}") && !p.isEOF() {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			c.Body = append(c.Body, stmt)
		}
		n.Cases = append(n.Cases, p.end(c))
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return p.end(n), nil
}

func (p *Parser) parseTry() (*ast.Node, error) {
	start := p.advance().start
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.TryStatement, start)
	n.Test = block
	if p.is("catch") {
		catchStart := p.advance().start
		cc := p.node(ast.CatchClause, catchStart)
		if p.is("(") {
			p.advance()
			param, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}
			cc.Left = param
			if _, err := p.expect(")"); err != nil {
				return nil, err
			}
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cc.Test = body
		n.Handler = p.end(cc)
	}
	if p.is("finally") {
		p.advance()
		fin, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		n.Finalizer = fin
	}
	return p.end(n), nil
}

func (p *Parser) parseReturn() (*ast.Node, error) {
	start := p.advance().start
	n := p.node(ast.ReturnStatement, start)
	if !p.is(";") && !p.is("}") && !p.isEOF() && !p.nlBefore() {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		n.Argument = arg
	}
	p.consumeSemi()
	return p.end(n), nil
}

func (p *Parser) parseThrow() (*ast.Node, error) {
	start := p.advance().start
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeSemi()
	n := p.node(ast.ThrowStatement, start)
	n.Argument = arg
	return p.end(n), nil
}

func (p *Parser) parseBreakContinue(kind ast.Kind, _ string) (*ast.Node, error) {
	start := p.advance().start
	n := p.node(kind, start)
	if p.cur().kind == tokIdent && !p.nlBefore() {
		id := p.node(ast.Identifier, p.cur().start)
		id.Name_ = p.advance().text
		n.Label = p.end(id)
	}
	p.consumeSemi()
	return p.end(n), nil
}

func (p *Parser) parseLabeled() (*ast.Node, error) {
	start := p.cur().start
	label := p.node(ast.Identifier, start)
	label.Name_ = p.advance().text
	p.advance() // ":"
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.LabeledStatement, start)
	n.Label = p.end(label)
	n.Consequent = body
	return p.end(n), nil
}

// parseVariableDeclaration parses "var|let|const <declarators>" without
// consuming a trailing semicolon, so callers in for-loop position can
// omit it.
func (p *Parser) parseVariableDeclaration() (*ast.Node, error) {
	start := p.cur().start
	kw := p.advance().text
	n := p.node(ast.VariableDeclaration, start)
	n.Kind_ = kw
	for {
		decl, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		n.Declarations = append(n.Declarations, decl)
		if !p.is(",") {
			break
		}
		p.advance()
	}
	return p.end(n), nil
}

func (p *Parser) parseVariableDeclarator() (*ast.Node, error) {
	start := p.cur().start
	id, err := p.parseBindingTarget()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.VariableDeclarator, start)
	n.Id = id
	if p.is(":") {
		p.advance()
		typ, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		n.TypeAnn = typ
	}
	if p.is("=") {
		p.advance()
		init, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		n.Init = init
	}
	return p.end(n), nil
}

// parseBindingTarget parses an identifier or a destructuring pattern,
// used by variable declarators, parameters, and catch clauses.
func (p *Parser) parseBindingTarget() (*ast.Node, error) {
	switch {
	case p.is("["):
		return p.parseArrayPattern()
	case p.is("{"):
		return p.parseObjectPattern()
	default:
		if p.cur().kind != tokIdent && p.cur().kind != tokKeyword {
			return nil, &ParseError{Pos: p.cur().start, Message: "expected binding identifier"}
		}
		start := p.cur().start
		n := p.node(ast.Identifier, start)
		n.Name_ = p.advance().text
		return p.end(n), nil
	}
}

func (p *Parser) parseArrayPattern() (*ast.Node, error) {
	start := p.advance().start // "["
	n := p.node(ast.ArrayPattern, start)
	for !p.is("]") && !p.isEOF() {
		if p.is(",") {
			p.advance()
			n.Elements = append(n.Elements, nil)
			continue
		}
		if p.is("...") {
			restStart := p.advance().start
			arg, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}
			rest := p.node(ast.RestElement, restStart)
			rest.Argument = arg
			n.Elements = append(n.Elements, p.end(rest))
		} else {
			el, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}
			if p.is("=") {
				p.advance()
				def, err := p.parseAssignExpr()
				if err != nil {
					return nil, err
				}
				ap := p.node(ast.AssignmentPattern, el.Start)
				ap.Left = el
				ap.Right = def
				el = p.end(ap)
			}
			n.Elements = append(n.Elements, el)
		}
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect("]"); err != nil {
		return nil, err
	}
	return p.end(n), nil
}

func (p *Parser) parseObjectPattern() (*ast.Node, error) {
	start := p.advance().start // "{"
	n := p.node(ast.ObjectPattern, start)
	for !p.is("}") && !p.isEOF() {
		if p.is("...") {
			restStart := p.advance().start
			arg, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}
			rest := p.node(ast.RestElement, restStart)
			rest.Argument = arg
			n.Properties = append(n.Properties, p.end(rest))
		} else {
			propStart := p.cur().start
			key, err := p.parsePropertyKey()
			if err != nil {
				return nil, err
			}
			prop := p.node(ast.Property, propStart)
			prop.Key = key
			if p.is(":") {
				p.advance()
				val, err := p.parseBindingTarget()
				if err != nil {
					return nil, err
				}
				prop.Value = val
			} else {
				prop.Value = key
				prop.Shorthand = true
			}
			if p.is("=") {
				p.advance()
				def, err := p.parseAssignExpr()
				if err != nil {
					return nil, err
				}
				ap := p.node(ast.AssignmentPattern, prop.Value.Start)
				ap.Left = prop.Value
				ap.Right = def
				prop.Value = p.end(ap)
			}
			n.Properties = append(n.Properties, p.end(prop))
		}
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return p.end(n), nil
}

func (p *Parser) parsePropertyKey() (*ast.Node, error) {
	if p.is("[") {
		p.advance()
		expr, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("]"); err != nil {
			return nil, err
		}
		return expr, nil
	}
	start := p.cur().start
	if p.cur().kind == tokString {
		n := p.node(ast.StringLiteral, start)
		n.Raw = p.advance().text
		n.Value_ = unquote(n.Raw)
		return p.end(n), nil
	}
	if p.cur().kind == tokNumber {
		n := p.node(ast.NumericLiteral, start)
		n.Raw = p.advance().text
		return p.end(n), nil
	}
	n := p.node(ast.Identifier, start)
	n.Name_ = p.advance().text
	return p.end(n), nil
}

func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	return raw[1 : len(raw)-1]
}

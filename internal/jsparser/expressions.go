package jsparser

import (
	"strconv"
	"unicode/utf8"

	"github.com/jsfmt/jsfmt/internal/ast"
)

// parseExpression parses a (possibly comma-joined) SequenceExpression.
func (p *Parser) parseExpression() (*ast.Node, error) {
	start := p.cur().start
	first, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}
	if !p.is(",") {
		return first, nil
	}
	n := p.node(ast.SequenceExpression, start)
	n.Expressions = append(n.Expressions, first)
	for p.is(",") {
		p.advance()
		next, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		n.Expressions = append(n.Expressions, next)
	}
	return p.end(n), nil
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true,
	"^=": true, "&&=": true, "||=": true, "??=": true,
}

func (p *Parser) parseAssignExpr() (*ast.Node, error) {
	if arrow, ok, err := p.tryParseArrow(); ok {
		return arrow, err
	}

	start := p.cur().start
	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if p.cur().kind == tokPunct && assignOps[p.cur().text] {
		op := p.advance().text
		right, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.AssignmentExpression, start)
		n.Left = left
		n.Operator = op
		n.Right = right
		return p.end(n), nil
	}
	return left, nil
}

func (p *Parser) parseConditional() (*ast.Node, error) {
	start := p.cur().start
	test, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.is("?") {
		return test, nil
	}
	p.advance()
	cons, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(":"); err != nil {
		return nil, err
	}
	alt, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.ConditionalExpression, start)
	n.Test = test
	n.Consequent = cons
	n.Alternate = alt
	return p.end(n), nil
}

// binOpPrec orders binary/logical operators from loosest (0) to
// tightest, in the same order as the precedence table internal/parens
// consults independently for the oracle's own decisions, except that
// "??" shares a level with "||" here while internal/parens ranks it
// looser than "||".
var binOpPrec = map[string]int{
	"??": 1, "||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "!=": 6, "===": 6, "!==": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7, "instanceof": 7, "in": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
	"**": 11,
}

func isLogicalOp(op string) bool { return op == "&&" || op == "||" || op == "??" }

func (p *Parser) parseBinary(minPrec int) (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.cur().text
		prec, ok := binOpPrec[op]
		if !ok || prec < minPrec {
			break
		}
		p.advance()
		nextMin := prec + 1
		if op == "**" {
			nextMin = prec // right-associative
		}
		right, err := p.parseBinary(nextMin)
		if err != nil {
			return nil, err
		}
		kind := ast.BinaryExpression
		if isLogicalOp(op) {
			kind = ast.LogicalExpression
		}
		n := &ast.Node{Kind: kind, Start: left.Start, End: right.End}
		n.Left = left
		n.Operator = op
		n.Right = right
		left = n
	}
	return left, nil
}

var unaryOps = map[string]bool{"+": true, "-": true, "!": true, "~": true, "typeof": true, "void": true, "delete": true}

func (p *Parser) parseUnary() (*ast.Node, error) {
	start := p.cur().start
	if p.is("await") {
		p.advance()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.AwaitExpression, start)
		n.Argument = arg
		return p.end(n), nil
	}
	if p.is("yield") {
		return p.parseYield()
	}
	if (p.cur().kind == tokPunct || p.cur().kind == tokKeyword) && unaryOps[p.cur().text] {
		op := p.advance().text
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.UnaryExpression, start)
		n.Operator = op
		n.Argument = arg
		return p.end(n), nil
	}
	if p.is("++") || p.is("--") {
		op := p.advance().text
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.UpdateExpression, start)
		n.Operator = op
		n.Argument = arg
		n.Prefix = true
		return p.end(n), nil
	}
	return p.parsePostfix()
}

func (p *Parser) parseYield() (*ast.Node, error) {
	start := p.advance().start
	n := p.node(ast.YieldExpression, start)
	if p.is("*") {
		p.advance()
		n.Delegate = true
	}
	if !p.is(";") && !p.is(")") && !p.is("}") && !p.is(",") && !p.isEOF() && !p.nlBefore() {
		arg, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		n.Argument = arg
	}
	return p.end(n), nil
}

func (p *Parser) parsePostfix() (*ast.Node, error) {
	expr, err := p.parseCallOrMember(true)
	if err != nil {
		return nil, err
	}
	if (p.is("++") || p.is("--")) && !p.nlBefore() {
		op := p.advance().text
		n := p.node(ast.UpdateExpression, expr.Start)
		n.Operator = op
		n.Argument = expr
		n.Prefix = false
		return p.end(n), nil
	}
	return expr, nil
}

// parseCallOrMember parses a primary expression followed by any chain
// of `.prop`, `[expr]`, `(args)`, `!`, `as T`, and tagged-template
// suffixes, left-associatively — the flat structure
// internal/translate's member-chain printer expects to walk.
func (p *Parser) parseCallOrMember(allowCall bool) (*ast.Node, error) {
	var expr *ast.Node
	var err error
	if p.is("new") {
		expr, err = p.parseNew()
	} else {
		expr, err = p.parsePrimary()
	}
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.is(".") || p.is("?."):
			optional := p.is("?.")
			p.advance()
			propStart := p.cur().start
			prop := p.node(ast.Identifier, propStart)
			prop.Name_ = p.advance().text
			n := p.node(ast.MemberExpression, expr.Start)
			n.Object = expr
			n.PropertyN = p.end(prop)
			n.Optional = optional
			expr = p.end(n)
		case p.is("[") && !p.nlBefore():
			// A "[" at the start of a line begins a new statement rather
			// than a computed member access, so a semicolon-less line such
			// as "[1, 2].map(f)" is not folded into the line before it.
			p.advance()
			propExpr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("]"); err != nil {
				return nil, err
			}
			n := p.node(ast.MemberExpression, expr.Start)
			n.Object = expr
			n.PropertyN = propExpr
			n.Computed = true
			expr = p.end(n)
		case p.is("(") && allowCall:
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			n := p.node(ast.CallExpression, expr.Start)
			n.Callee = expr
			n.Arguments = args
			expr = p.end(n)
		case p.cur().kind == tokTemplate:
			tmpl, err := p.parseTemplateLiteral()
			if err != nil {
				return nil, err
			}
			n := p.node(ast.TaggedTemplateExpression, expr.Start)
			n.Tag = expr
			n.Value = tmpl
			expr = p.end(n)
		case p.is("!"):
			p.advance()
			n := p.node(ast.NonNullExpression, expr.Start)
			n.Expr = expr
			expr = p.end(n)
		case p.is("as"):
			p.advance()
			typ, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			n := p.node(ast.AsExpression, expr.Start)
			n.Expr = expr
			n.TypeAnn = typ
			expr = p.end(n)
		case p.is("satisfies"):
			p.advance()
			typ, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			n := p.node(ast.SatisfiesExpression, expr.Start)
			n.Expr = expr
			n.TypeAnn = typ
			expr = p.end(n)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseNew() (*ast.Node, error) {
	start := p.advance().start // "new"
	callee, err := p.parseCallOrMember(false)
	if err != nil {
		return nil, err
	}
	n := p.node(ast.NewExpression, start)
	n.Callee = callee
	if p.is("(") {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		n.Arguments = args
	}
	return p.end(n), nil
}

func (p *Parser) parseArguments() ([]*ast.Node, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var args []*ast.Node
	for !p.is(")") && !p.isEOF() {
		if p.is("...") {
			start := p.advance().start
			arg, err := p.parseAssignExpr()
			if err != nil {
				return nil, err
			}
			spread := p.node(ast.SpreadElement, start)
			spread.Argument = arg
			args = append(args, p.end(spread))
		} else {
			arg, err := p.parseAssignExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	t := p.cur()
	start := t.start

	switch {
	case t.kind == tokNumber:
		p.advance()
		n := p.node(ast.NumericLiteral, start)
		n.Raw = t.text
		if v, err := strconv.ParseFloat(t.text, 64); err == nil {
			n.Value_ = v
		} else if v, err := strconv.ParseInt(t.text, 0, 64); err == nil {
			n.Value_ = float64(v)
		}
		return p.end(n), nil
	case t.kind == tokString:
		p.advance()
		n := p.node(ast.StringLiteral, start)
		n.Raw = t.text
		n.Value_ = unescapeString(unquote(t.text))
		return p.end(n), nil
	case t.kind == tokTemplate:
		return p.parseTemplateLiteral()
	case t.text == "true" || t.text == "false":
		p.advance()
		n := p.node(ast.BooleanLiteral, start)
		n.Value_ = t.text == "true"
		return p.end(n), nil
	case t.text == "null":
		p.advance()
		return p.end(p.node(ast.NullLiteral, start)), nil
	case t.text == "this":
		p.advance()
		n := p.node(ast.Identifier, start)
		n.Name_ = "this"
		return p.end(n), nil
	case t.text == "super":
		p.advance()
		n := p.node(ast.Identifier, start)
		n.Name_ = "super"
		return p.end(n), nil
	case t.text == "function":
		return p.parseFunction(false, false)
	case t.text == "async" && p.peek(1).text == "function":
		p.advance()
		return p.parseFunction(false, true)
	case t.text == "class":
		return p.parseClass(false)
	case t.text == "(":
		return p.parseParenOrArrowLookalike()
	case t.text == "[":
		return p.parseArrayExpression()
	case t.text == "{":
		return p.parseObjectExpression()
	case t.text == "#":
		p.advance()
		n := p.node(ast.PrivateIdentifier, start)
		n.Name_ = p.advance().text
		return p.end(n), nil
	case t.kind == tokIdent || t.kind == tokKeyword:
		p.advance()
		n := p.node(ast.Identifier, start)
		n.Name_ = t.text
		return p.end(n), nil
	}
	return nil, &ParseError{Pos: start, Message: "unexpected token " + t.text}
}

// parseParenOrArrowLookalike handles "(" that could open either a
// parenthesized expression or an arrow function's parameter list; the
// arrow case is caught earlier by tryParseArrow's lookahead, so by the
// time we're here it's a plain grouping.
func (p *Parser) parseParenOrArrowLookalike() (*ast.Node, error) {
	start := p.advance().start
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	n := p.node(ast.ParenthesizedExpression, start)
	n.Expr = expr
	return p.end(n), nil
}

func (p *Parser) parseArrayExpression() (*ast.Node, error) {
	start := p.advance().start
	n := p.node(ast.ArrayExpression, start)
	n.BrokenInSource = p.nlBefore()
	for !p.is("]") && !p.isEOF() {
		if p.is(",") {
			p.advance()
			n.Elements = append(n.Elements, nil)
			continue
		}
		if p.is("...") {
			restStart := p.advance().start
			arg, err := p.parseAssignExpr()
			if err != nil {
				return nil, err
			}
			spread := p.node(ast.SpreadElement, restStart)
			spread.Argument = arg
			n.Elements = append(n.Elements, p.end(spread))
		} else {
			el, err := p.parseAssignExpr()
			if err != nil {
				return nil, err
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

func (p *Parser) parseObjectExpression() (*ast.Node, error) {
	start := p.advance().start
	n := p.node(ast.ObjectExpression, start)
	n.BrokenInSource = p.nlBefore()
	for !p.is("}") && !p.isEOF() {
		prop, err := p.parseObjectProperty()
		if err != nil {
			return nil, err
		}
		n.Properties = append(n.Properties, prop)
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return p.end(n), nil
}

func (p *Parser) parseObjectProperty() (*ast.Node, error) {
	start := p.cur().start
	if p.is("...") {
		p.advance()
		arg, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.SpreadElement, start)
		n.Argument = arg
		return p.end(n), nil
	}

	async := false
	generator := false
	accessor := ""
	if p.is("async") && p.peek(1).text != ":" && p.peek(1).text != "," && p.peek(1).text != "(" {
		async = true
		p.advance()
	}
	if p.is("*") {
		generator = true
		p.advance()
	}
	if (p.is("get") || p.is("set")) && p.peek(1).text != ":" && p.peek(1).text != "," && p.peek(1).text != "(" {
		accessor = p.advance().text
	}

	computed := p.is("[")
	key, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	n := p.node(ast.Property, start)
	n.Key = key
	n.Computed = computed

	switch {
	case p.is("("):
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		body, retType, err := p.parseFunctionTail()
		if err != nil {
			return nil, err
		}
		fn := p.node(ast.FunctionExpression, start)
		fn.Params = params
		fn.Body = []*ast.Node{body}
		fn.Async = async
		fn.Generator = generator
		fn.ReturnType = retType
		n.Value = p.end(fn)
		if accessor != "" {
			n.Kind_ = accessor
			n.Params = params
			n.Body = []*ast.Node{body}
		}
	case p.is(":"):
		p.advance()
		val, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		n.Value = val
	case p.is("="):
		// Shorthand with default, valid only inside a destructuring context
		// reached via parseAssignExpr's call sites on an already-parsed
		// object expression; treated leniently here.
		p.advance()
		def, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		ap := p.node(ast.AssignmentPattern, key.Start)
		ap.Left = key
		ap.Right = def
		n.Value = p.end(ap)
		n.Shorthand = true
	default:
		n.Value = key
		n.Shorthand = true
	}
	return p.end(n), nil
}

func (p *Parser) parseTemplateLiteral() (*ast.Node, error) {
	t := p.advance()
	n := p.node(ast.TemplateLiteral, t.start)
	raw := t.text
	inner := raw
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	}
	parts, exprSrcs := splitTemplate(inner)
	for _, part := range parts {
		q := p.node(ast.TemplateElement, 0)
		q.Raw = part
		n.Quasis = append(n.Quasis, q)
	}
	for _, exprSrc := range exprSrcs {
		sub, _, err := Parse(exprSrc)
		if err != nil {
			continue
		}
		if len(sub.Body) == 1 && sub.Body[0].Kind == ast.ExpressionStatement {
			n.Expressions = append(n.Expressions, sub.Body[0].Expr)
		}
	}
	return p.end(n), nil
}

// splitTemplate splits a template literal's inner text (without
// backticks) into literal quasis and "${...}" expression sources.
func splitTemplate(s string) (quasis []string, exprs []string) {
	var cur []byte
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			cur = append(cur, s[i], s[i+1])
			i += 2
			continue
		}
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			quasis = append(quasis, string(cur))
			cur = nil
			depth := 1
			i += 2
			exprStart := i
			for i < len(s) && depth > 0 {
				switch s[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth > 0 {
					i++
				}
			}
			exprs = append(exprs, s[exprStart:i])
			i++ // skip closing "}"
			continue
		}
		cur = append(cur, s[i])
		i++
	}
	quasis = append(quasis, string(cur))
	return quasis, exprs
}

// unescapeString decodes a string literal's source text (quotes already
// stripped) into its runtime value, covering the escape sequences the
// target grammar defines: single-letter escapes, \xXX and \uXXXX /
// \u{X...} code point escapes, octal-zero \0, and line continuations. An
// escape of any other character drops the backslash and keeps the
// character, matching NonEscapeCharacter semantics.
func unescapeString(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b = append(b, s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b = append(b, '\n')
		case 't':
			b = append(b, '\t')
		case 'r':
			b = append(b, '\r')
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'v':
			b = append(b, '\v')
		case '0':
			b = append(b, 0)
		case '\n':
			// line continuation: the escaped newline contributes nothing.
		case 'x':
			if v, n, ok := parseHexEscape(s[i+1:], 2); ok {
				b = utf8.AppendRune(b, rune(v))
				i += n
			} else {
				b = append(b, 'x')
			}
		case 'u':
			if i+1 < len(s) && s[i+1] == '{' {
				end := -1
				for j := i + 2; j < len(s); j++ {
					if s[j] == '}' {
						end = j
						break
					}
				}
				if end >= 0 {
					if v, err := strconv.ParseInt(s[i+2:end], 16, 32); err == nil {
						b = utf8.AppendRune(b, rune(v))
						i = end
						continue
					}
				}
				b = append(b, 'u')
			} else if v, n, ok := parseHexEscape(s[i+1:], 4); ok {
				b = utf8.AppendRune(b, rune(v))
				i += n
			} else {
				b = append(b, 'u')
			}
		default:
			b = append(b, s[i])
		}
	}
	return string(b)
}

// parseHexEscape reads exactly width hex digits from s and returns the
// decoded value and how many bytes of s were consumed.
func parseHexEscape(s string, width int) (value int64, consumed int, ok bool) {
	if len(s) < width {
		return 0, 0, false
	}
	v, err := strconv.ParseInt(s[:width], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return v, width, true
}

package jsparser

import "github.com/jsfmt/jsfmt/internal/ast"

var keywordTypes = map[string]bool{
	"string": true, "number": true, "boolean": true, "object": true,
	"symbol": true, "bigint": true, "unknown": true, "never": true, "undefined": true, "null": true,
}

// parseTypeAnnotation parses the type-annotation subset spec.md §4.2
// lists: union/intersection/nullable/function/array/tuple/generic.
func (p *Parser) parseTypeAnnotation() (*ast.Node, error) {
	return p.parseUnionType()
}

func (p *Parser) parseUnionType() (*ast.Node, error) {
	start := p.cur().start
	if p.is("|") {
		p.advance()
	}
	first, err := p.parseIntersectionType()
	if err != nil {
		return nil, err
	}
	if !p.is("|") {
		return first, nil
	}
	n := p.node(ast.UnionTypeAnnotation, start)
	n.Types = append(n.Types, first)
	for p.is("|") {
		p.advance()
		next, err := p.parseIntersectionType()
		if err != nil {
			return nil, err
		}
		n.Types = append(n.Types, next)
	}
	return p.end(n), nil
}

func (p *Parser) parseIntersectionType() (*ast.Node, error) {
	start := p.cur().start
	first, err := p.parseNullableType()
	if err != nil {
		return nil, err
	}
	if !p.is("&") {
		return first, nil
	}
	n := p.node(ast.IntersectionTypeAnnotation, start)
	n.Types = append(n.Types, first)
	for p.is("&") {
		p.advance()
		next, err := p.parseNullableType()
		if err != nil {
			return nil, err
		}
		n.Types = append(n.Types, next)
	}
	return p.end(n), nil
}

func (p *Parser) parseNullableType() (*ast.Node, error) {
	start := p.cur().start
	if p.is("?") {
		p.advance()
		inner, err := p.parseArrayType()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.NullableTypeAnnotation, start)
		n.TypeAnn = inner
		return p.end(n), nil
	}
	return p.parseArrayType()
}

func (p *Parser) parseArrayType() (*ast.Node, error) {
	base, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	for p.is("[") && p.peek(1).text == "]" {
		p.advance()
		p.advance()
		n := p.node(ast.ArrayTypeAnnotation, base.Start)
		n.ElementType = base
		base = p.end(n)
	}
	return base, nil
}

func (p *Parser) parsePrimaryType() (*ast.Node, error) {
	start := p.cur().start
	switch {
	case p.is("("):
		return p.parseFunctionOrParenType()
	case p.is("["):
		return p.parseTupleType()
	case p.is("any"):
		p.advance()
		return p.end(p.node(ast.AnyTypeAnnotation, start)), nil
	case p.is("void"):
		p.advance()
		return p.end(p.node(ast.VoidTypeAnnotation, start)), nil
	case p.cur().kind == tokString:
		n := p.node(ast.LiteralTypeAnnotation, start)
		lit := p.node(ast.StringLiteral, start)
		lit.Raw = p.advance().text
		lit.Value_ = unquote(lit.Raw)
		n.Value = p.end(lit)
		return p.end(n), nil
	case p.cur().kind == tokNumber:
		n := p.node(ast.LiteralTypeAnnotation, start)
		lit := p.node(ast.NumericLiteral, start)
		lit.Raw = p.advance().text
		n.Value = p.end(lit)
		return p.end(n), nil
	case keywordTypes[p.cur().text]:
		n := p.node(ast.KeywordTypeAnnotation, start)
		n.Name_ = p.advance().text
		return p.end(n), nil
	default:
		return p.parseTypeReference()
	}
}

// parseFunctionOrParenType disambiguates "(a: T) => R" function types
// from a parenthesized type by checking for "=>" after the matching
// close paren.
func (p *Parser) parseFunctionOrParenType() (*ast.Node, error) {
	save := p.pos
	start := p.cur().start
	params, err := p.parseParams()
	if err == nil && p.is("=>") {
		p.advance()
		ret, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.FunctionTypeAnnotation, start)
		n.Params = params
		n.ReturnType = ret
		return p.end(n), nil
	}
	p.pos = save
	p.advance() // "("
	inner, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return inner, nil
}

func (p *Parser) parseTupleType() (*ast.Node, error) {
	start := p.advance().start
	n := p.node(ast.TupleTypeAnnotation, start)
	for !p.is("]") && !p.isEOF() {
		el, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		n.Elements = append(n.Elements, el)
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect("]"); err != nil {
		return nil, err
	}
	return p.end(n), nil
}

func (p *Parser) parseTypeReference() (*ast.Node, error) {
	start := p.cur().start
	n := p.node(ast.TypeReference, start)
	n.Name_ = p.advance().text
	if p.is("<") {
		p.advance()
		for !p.is(">") && !p.isEOF() {
			arg, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			n.TypeParams = append(n.TypeParams, arg)
			if p.is(",") {
				p.advance()
			}
		}
		if _, err := p.expect(">"); err != nil {
			return nil, err
		}
	}
	return p.end(n), nil
}

// parseTypeParams parses a declaration's "<T, U extends V = D>" clause.
func (p *Parser) parseTypeParams() ([]*ast.Node, error) {
	if !p.is("<") {
		return nil, nil
	}
	p.advance()
	var params []*ast.Node
	for !p.is(">") && !p.isEOF() {
		start := p.cur().start
		n := p.node(ast.TypeParameter, start)
		n.Name_ = p.advance().text
		if p.is("extends") {
			p.advance()
			typ, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			n.TypeAnn = typ
		}
		if p.is("=") {
			p.advance()
			def, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			n.Value = def
		}
		params = append(params, p.end(n))
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect(">"); err != nil {
		return nil, err
	}
	return params, nil
}

package jsparser

import "github.com/jsfmt/jsfmt/internal/ast"

// tryParseArrow speculatively parses an arrow function starting at the
// current position, restoring the cursor and reporting ok=false if the
// lookahead doesn't confirm "=>" follows a parameter list or bare
// identifier — the standard backtracking approach to the
// arrow-vs-parenthesized-expression ambiguity.
func (p *Parser) tryParseArrow() (*ast.Node, bool, error) {
	save := p.pos
	async := false
	if p.is("async") && (p.peek(1).text == "(" || p.peek(1).kind == tokIdent) && !p.nlAfterIndex(p.pos) {
		async = true
		p.advance()
	}

	start := p.cur().start
	var params []*ast.Node
	var ok bool

	if p.cur().kind == tokIdent {
		id := p.node(ast.Identifier, p.cur().start)
		id.Name_ = p.advance().text
		params = []*ast.Node{p.end(id)}
		ok = true
	} else if p.is("(") {
		ps, err := p.parseParams()
		if err == nil {
			params = ps
			ok = true
		}
	}

	if !ok {
		p.pos = save
		return nil, false, nil
	}

	var retType *ast.Node
	if p.is(":") {
		save2 := p.pos
		p.advance()
		typ, err := p.parseTypeAnnotation()
		if err != nil || !p.is("=>") {
			p.pos = save2
		} else {
			retType = typ
		}
	}

	if !p.is("=>") {
		p.pos = save
		return nil, false, nil
	}
	p.advance()

	n := p.node(ast.ArrowFunctionExpression, start)
	n.Params = params
	n.Async = async
	n.ReturnType = retType
	if p.is("{") {
		body, err := p.parseBlock()
		if err != nil {
			return nil, true, err
		}
		n.Body = []*ast.Node{body}
	} else {
		body, err := p.parseAssignExpr()
		if err != nil {
			return nil, true, err
		}
		n.Expr = body
	}
	return p.end(n), true, nil
}

func (p *Parser) nlAfterIndex(i int) bool {
	if i+1 >= len(p.nlSeen) {
		return false
	}
	return p.nlSeen[i+1]
}

func (p *Parser) parseParams() ([]*ast.Node, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var params []*ast.Node
	for !p.is(")") && !p.isEOF() {
		if p.is("...") {
			start := p.advance().start
			target, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}
			rest := p.node(ast.RestElement, start)
			rest.Argument = target
			params = append(params, p.end(rest))
		} else {
			target, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}
			if p.is(":") {
				p.advance()
				typ, err := p.parseTypeAnnotation()
				if err != nil {
					return nil, err
				}
				target.TypeAnn = typ
			}
			if p.is("=") {
				p.advance()
				def, err := p.parseAssignExpr()
				if err != nil {
					return nil, err
				}
				ap := p.node(ast.AssignmentPattern, target.Start)
				ap.Left = target
				ap.Right = def
				target = p.end(ap)
			}
			params = append(params, target)
		}
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFunctionTail parses the return-type annotation (if any) and the
// block body shared by function declarations, expressions, and method
// definitions.
func (p *Parser) parseFunctionTail() (*ast.Node, *ast.Node, error) {
	var retType *ast.Node
	if p.is(":") {
		p.advance()
		typ, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, nil, err
		}
		retType = typ
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return body, retType, nil
}

func (p *Parser) parseFunction(declaration, async bool) (*ast.Node, error) {
	start := p.cur().start
	if async {
		// "async" already consumed by caller; start should be its position,
		// but callers pass the post-advance cursor, so recompute from the
		// "function" keyword token instead for a tighter span.
		start = p.cur().start
	}
	p.advance() // "function"
	n := p.node(ast.FunctionDeclaration, start)
	if !declaration {
		n.Kind = ast.FunctionExpression
	}
	n.Async = async
	if p.is("*") {
		p.advance()
		n.Generator = true
	}
	if p.cur().kind == tokIdent {
		id := p.node(ast.Identifier, p.cur().start)
		id.Name_ = p.advance().text
		n.Id = p.end(id)
	}
	typeParams, err := p.parseTypeParams()
	if err != nil {
		return nil, err
	}
	n.TypeParams = typeParams
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	n.Params = params
	body, retType, err := p.parseFunctionTail()
	if err != nil {
		return nil, err
	}
	n.Body = []*ast.Node{body}
	n.ReturnType = retType
	return p.end(n), nil
}

func (p *Parser) parseClass(declaration bool) (*ast.Node, error) {
	start := p.advance().start // "class"
	n := p.node(ast.ClassDeclaration, start)
	if !declaration {
		n.Kind = ast.ClassExpression
	}
	if p.cur().kind == tokIdent {
		id := p.node(ast.Identifier, p.cur().start)
		id.Name_ = p.advance().text
		n.Id = p.end(id)
	}
	typeParams, err := p.parseTypeParams()
	if err != nil {
		return nil, err
	}
	n.TypeParams = typeParams
	if p.is("extends") {
		p.advance()
		sc, err := p.parseCallOrMember(true)
		if err != nil {
			return nil, err
		}
		n.SuperClass = sc
	}
	body, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	n.Body = []*ast.Node{body}
	return p.end(n), nil
}

func (p *Parser) parseClassBody() (*ast.Node, error) {
	start := p.cur().start
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	n := p.node(ast.ClassBody, start)
	for !p.is("}") && !p.isEOF() {
		if p.is(";") {
			p.advance()
			continue
		}
		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		n.Body = append(n.Body, member)
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return p.end(n), nil
}

func (p *Parser) parseClassMember() (*ast.Node, error) {
	start := p.cur().start
	static := false
	async := false
	generator := false
	readonly := false
	accessor := ""

	for {
		switch {
		case p.is("static") && p.peek(1).text != "(" && p.peek(1).text != "=":
			static = true
			p.advance()
		case p.is("async") && p.peek(1).text != "(" && p.peek(1).text != "=":
			async = true
			p.advance()
		case p.is("readonly") && p.peek(1).text != "(" && p.peek(1).text != "=":
			readonly = true
			p.advance()
		case p.is("*"):
			generator = true
			p.advance()
		case (p.is("get") || p.is("set")) && p.peek(1).text != "(" && p.peek(1).text != "=" && p.peek(1).text != ";":
			accessor = p.advance().text
		default:
			goto key
		}
	}
key:
	computed := p.is("[")
	key, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	if p.is("(") {
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		body, retType, err := p.parseFunctionTail()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.MethodDefinition, start)
		n.Key = key
		n.Computed = computed
		n.Static = static
		n.Async = async
		n.Generator = generator
		n.Params = params
		n.Body = []*ast.Node{body}
		n.ReturnType = retType
		if accessor != "" {
			n.Kind_ = accessor
		} else if key.Kind == ast.Identifier && key.Name_ == "constructor" {
			n.Kind_ = "constructor"
		} else {
			n.Kind_ = "method"
		}
		return p.end(n), nil
	}

	n := p.node(ast.PropertyDefinition, start)
	n.Key = key
	n.Computed = computed
	n.Static = static
	n.Readonly = readonly
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
		val, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		n.Value = val
	}
	p.consumeSemi()
	return p.end(n), nil
}

package jsparser

import "github.com/jsfmt/jsfmt/internal/ast"

func (p *Parser) parseImport() (*ast.Node, error) {
	start := p.advance().start // "import"
	n := p.node(ast.ImportDeclaration, start)

	if p.cur().kind == tokString {
		src := p.node(ast.StringLiteral, p.cur().start)
		src.Raw = p.advance().text
		src.Value_ = unquote(src.Raw)
		n.Source = p.end(src)
		p.consumeSemi()
		return p.end(n), nil
	}

	if p.cur().kind == tokIdent {
		idStart := p.cur().start
		id := p.node(ast.Identifier, idStart)
		id.Name_ = p.advance().text
		spec := p.node(ast.ImportDefaultSpecifier, idStart)
		spec.Local = p.end(id)
		n.Specifiers = append(n.Specifiers, p.end(spec))
		if p.is(",") {
			p.advance()
		}
	}

	if p.is("*") {
		star := p.cur().start
		p.advance()
		if _, err := p.expect("as"); err != nil {
			return nil, err
		}
		idStart := p.cur().start
		id := p.node(ast.Identifier, idStart)
		id.Name_ = p.advance().text
		spec := p.node(ast.ImportNamespaceSpecifier, star)
		spec.Local = p.end(id)
		n.Specifiers = append(n.Specifiers, p.end(spec))
	} else if p.is("{") {
		specs, err := p.parseNamedImportSpecifiers()
		if err != nil {
			return nil, err
		}
		n.Specifiers = append(n.Specifiers, specs...)
	}

	if _, err := p.expect("from"); err != nil {
		return nil, err
	}
	srcStart := p.cur().start
	src := p.node(ast.StringLiteral, srcStart)
	src.Raw = p.advance().text
	src.Value_ = unquote(src.Raw)
	n.Source = p.end(src)
	p.consumeSemi()
	return p.end(n), nil
}

func (p *Parser) parseNamedImportSpecifiers() ([]*ast.Node, error) {
	p.advance() // "{"
	var specs []*ast.Node
	for !p.is("}") && !p.isEOF() {
		start := p.cur().start
		importedStart := p.cur().start
		imported := p.node(ast.Identifier, importedStart)
		imported.Name_ = p.advance().text
		local := imported
		if p.is("as") {
			p.advance()
			localStart := p.cur().start
			l := p.node(ast.Identifier, localStart)
			l.Name_ = p.advance().text
			local = p.end(l)
		}
		spec := p.node(ast.ImportSpecifier, start)
		spec.Imported = p.end(imported)
		spec.Local = local
		specs = append(specs, p.end(spec))
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return specs, nil
}

func (p *Parser) parseExport() (*ast.Node, error) {
	start := p.advance().start // "export"

	if p.is("default") {
		p.advance()
		var decl *ast.Node
		var err error
		switch {
		case p.is("function"):
			decl, err = p.parseFunction(true, false)
		case p.is("async") && p.peek(1).text == "function":
			p.advance()
			decl, err = p.parseFunction(true, true)
		case p.is("class"):
			decl, err = p.parseClass(true)
		default:
			decl, err = p.parseAssignExpr()
			if err == nil {
				p.consumeSemi()
			}
		}
		if err != nil {
			return nil, err
		}
		n := p.node(ast.ExportDefaultDeclaration, start)
		n.Declaration = decl
		return p.end(n), nil
	}

	if p.is("*") {
		p.advance()
		n := p.node(ast.ExportAllDeclaration, start)
		if p.is("as") {
			p.advance()
			idStart := p.cur().start
			id := p.node(ast.Identifier, idStart)
			id.Name_ = p.advance().text
			n.Exported = p.end(id)
		}
		if _, err := p.expect("from"); err != nil {
			return nil, err
		}
		srcStart := p.cur().start
		src := p.node(ast.StringLiteral, srcStart)
		src.Raw = p.advance().text
		src.Value_ = unquote(src.Raw)
		n.Source = p.end(src)
		p.consumeSemi()
		return p.end(n), nil
	}

	if p.is("{") {
		specs, err := p.parseNamedExportSpecifiers()
		if err != nil {
			return nil, err
		}
		n := p.node(ast.ExportNamedDeclaration, start)
		n.Specifiers = specs
		if p.is("from") {
			p.advance()
			srcStart := p.cur().start
			src := p.node(ast.StringLiteral, srcStart)
			src.Raw = p.advance().text
			src.Value_ = unquote(src.Raw)
			n.Source = p.end(src)
		}
		p.consumeSemi()
		return p.end(n), nil
	}

	decl, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := p.node(ast.ExportNamedDeclaration, start)
	n.Declaration = decl
	return p.end(n), nil
}

func (p *Parser) parseNamedExportSpecifiers() ([]*ast.Node, error) {
	p.advance() // "{"
	var specs []*ast.Node
	for !p.is("}") && !p.isEOF() {
		start := p.cur().start
		localStart := p.cur().start
		local := p.node(ast.Identifier, localStart)
		local.Name_ = p.advance().text
		exported := local
		if p.is("as") {
			p.advance()
			exStart := p.cur().start
			e := p.node(ast.Identifier, exStart)
			e.Name_ = p.advance().text
			exported = p.end(e)
		}
		spec := p.node(ast.ExportSpecifier, start)
		spec.Local = p.end(local)
		spec.Exported = exported
		specs = append(specs, p.end(spec))
		if p.is(",") {
			p.advance()
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return specs, nil
}

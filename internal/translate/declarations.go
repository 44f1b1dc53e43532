package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

func (p *printer) printFunction(n *ast.Node, declaration bool) doc.Doc {
	var parts []doc.Doc
	if n.Async {
		parts = append(parts, doc.Text("async "))
	}
	parts = append(parts, doc.Text("function"))
	if n.Generator {
		parts = append(parts, doc.Text("*"))
	}
	if n.Id != nil {
		parts = append(parts, doc.Text(" "), p.print(n.Id, "id"))
	} else {
		parts = append(parts, doc.Text(" "))
	}
	parts = append(parts, p.printTypeParams(n.TypeParams))
	parts = append(parts, p.printParamList(n.Params, false))
	if n.ReturnType != nil {
		parts = append(parts, doc.Text(": "), p.print(n.ReturnType, "returnType"))
	}
	parts = append(parts, doc.Text(" "))
	if len(n.Body) == 1 && n.Body[0].Kind == ast.BlockStatement {
		parts = append(parts, p.print(n.Body[0], "body[0]"))
	}
	return doc.Concat(parts...)
}

// printParamList renders a parenthesized, comma-separated parameter or
// argument list that breaks one-per-line when it can't fit flat, per
// spec.md §4.2's list-printing convention shared by call arguments,
// function parameters, and array/object literals. isCallArgs
// distinguishes a call's argument list from a parameter list, since the
// trailingComma option treats them differently.
func (p *printer) printParamList(params []*ast.Node, isCallArgs bool) doc.Doc {
	if len(params) == 0 {
		return doc.Text("()")
	}
	printed := p.printEach(params, "params")
	return doc.Group(doc.Concat(
		doc.Text("("),
		doc.Indent(doc.Concat(doc.SoftLine, doc.Join(doc.Concat(doc.Text(","), doc.Line), printed), p.trailingComma(lastIsRestOrSpread(params), isCallArgs))),
		doc.SoftLine,
		doc.Text(")"),
	))
}

func (p *printer) printTypeParams(params []*ast.Node) doc.Doc {
	if len(params) == 0 {
		return doc.Text("")
	}
	printed := p.printEach(params, "typeParams")
	return doc.Concat(doc.Text("<"), doc.Join(doc.Text(", "), printed), doc.Text(">"))
}

func (p *printer) printClass(n *ast.Node) doc.Doc {
	var parts []doc.Doc
	if n.Declare {
		parts = append(parts, doc.Text("declare "))
	}
	parts = append(parts, doc.Text("class"))
	if n.Id != nil {
		parts = append(parts, doc.Text(" "), p.print(n.Id, "id"))
	}
	parts = append(parts, p.printTypeParams(n.TypeParams))
	if n.SuperClass != nil {
		parts = append(parts, doc.Text(" extends "), p.print(n.SuperClass, "superClass"))
	}
	parts = append(parts, doc.Text(" "))
	if len(n.Body) == 1 {
		parts = append(parts, p.print(n.Body[0], "body[0]"))
	}
	return doc.Concat(parts...)
}

func (p *printer) printClassBody(n *ast.Node) doc.Doc {
	if len(n.Body) == 0 {
		return doc.Text("{}")
	}
	return doc.Concat(
		doc.Text("{"),
		doc.Indent(doc.Concat(doc.HardLine, p.printStatementList(n.Body, "body"))),
		doc.HardLine,
		doc.Text("}"),
	)
}

func (p *printer) printMethodDefinition(n *ast.Node) doc.Doc {
	var parts []doc.Doc
	if n.Static {
		parts = append(parts, doc.Text("static "))
	}
	if n.Async {
		parts = append(parts, doc.Text("async "))
	}
	switch n.Kind_ {
	case "get", "set":
		parts = append(parts, doc.Text(n.Kind_+" "))
	}
	if n.Generator {
		parts = append(parts, doc.Text("*"))
	}
	parts = append(parts, p.print(n.Key, "key"))
	parts = append(parts, p.printTypeParams(n.TypeParams))
	parts = append(parts, p.printParamList(n.Params, false))
	if n.ReturnType != nil {
		parts = append(parts, doc.Text(": "), p.print(n.ReturnType, "returnType"))
	}
	parts = append(parts, doc.Text(" "))
	if len(n.Body) == 1 && n.Body[0].Kind == ast.BlockStatement {
		parts = append(parts, p.print(n.Body[0], "body[0]"))
	}
	return doc.Concat(parts...)
}

func (p *printer) printPropertyDefinition(n *ast.Node) doc.Doc {
	var parts []doc.Doc
	if n.Static {
		parts = append(parts, doc.Text("static "))
	}
	if n.Readonly {
		parts = append(parts, doc.Text("readonly "))
	}
	parts = append(parts, p.print(n.Key, "key"))
	if n.TypeAnn != nil {
		parts = append(parts, doc.Text(": "), p.print(n.TypeAnn, "typeAnnotation"))
	}
	if n.Value != nil {
		parts = append(parts, doc.Text(" = "), p.print(n.Value, "value"))
	}
	return doc.Concat(parts...)
}

func (p *printer) printVariableDeclaration(n *ast.Node, withSemi bool) doc.Doc {
	printed := p.printEach(n.Declarations, "declarations")
	body := doc.Join(doc.Concat(doc.Text(","), doc.Line), printed)
	group := doc.Concat(doc.Text(n.Kind_+" "), doc.Indent(body))
	if !withSemi {
		return group
	}
	return doc.Concat(group, p.semi())
}

func (p *printer) printVariableDeclarator(n *ast.Node) doc.Doc {
	left := p.print(n.Id, "id")
	if n.TypeAnn != nil {
		left = doc.Concat(left, doc.Text(": "), p.print(n.TypeAnn, "typeAnnotation"))
	}
	if n.Init == nil {
		return left
	}
	return doc.Group(doc.Concat(left, doc.Text(" ="), doc.Indent(doc.Concat(doc.Line, p.print(n.Init, "init")))))
}

func (p *printer) printImportDeclaration(n *ast.Node) doc.Doc {
	if len(n.Specifiers) == 0 {
		return doc.Concat(doc.Text("import "), p.print(n.Source, "source"), p.semi())
	}

	var defaultSpec, namespaceSpec *ast.Node
	var named []*ast.Node
	for _, s := range n.Specifiers {
		switch s.Kind {
		case ast.ImportDefaultSpecifier:
			defaultSpec = s
		case ast.ImportNamespaceSpecifier:
			namespaceSpec = s
		default:
			named = append(named, s)
		}
	}

	var clauses []doc.Doc
	if defaultSpec != nil {
		clauses = append(clauses, p.print(defaultSpec, "specifiers"))
	}
	if namespaceSpec != nil {
		clauses = append(clauses, p.print(namespaceSpec, "specifiers"))
	}
	if len(named) > 0 || (defaultSpec == nil && namespaceSpec == nil) {
		clauses = append(clauses, p.printNamedSpecifierBlock(named))
	}

	return doc.Concat(
		doc.Text("import "),
		doc.Join(doc.Text(", "), clauses),
		doc.Text(" from "),
		p.print(n.Source, "source"),
		p.semi(),
	)
}

func (p *printer) printNamedSpecifierBlock(named []*ast.Node) doc.Doc {
	if len(named) == 0 {
		return doc.Text("{}")
	}
	printed := p.printEach(named, "specifiers")
	return doc.Group(doc.Concat(
		doc.Text("{"),
		doc.Indent(doc.Concat(doc.Line, doc.Join(doc.Concat(doc.Text(","), doc.Line), printed), p.trailingComma(false, false))),
		doc.Line,
		doc.Text("}"),
	))
}

func (p *printer) printImportSpecifier(n *ast.Node) doc.Doc {
	if n.Imported == nil || n.Local == nil || n.Imported == n.Local {
		return p.print(n.Local, "local")
	}
	return doc.Concat(p.print(n.Imported, "imported"), doc.Text(" as "), p.print(n.Local, "local"))
}

func (p *printer) printImportNamespaceSpecifier(n *ast.Node) doc.Doc {
	return doc.Concat(doc.Text("* as "), p.print(n.Local, "local"))
}

func (p *printer) printExportNamedDeclaration(n *ast.Node) doc.Doc {
	if n.Declaration != nil {
		return doc.Concat(doc.Text("export "), p.print(n.Declaration, "declaration"))
	}
	var tail []doc.Doc
	tail = append(tail, doc.Text("export "), p.printNamedSpecifierBlock(n.Specifiers))
	if n.Source != nil {
		tail = append(tail, doc.Text(" from "), p.print(n.Source, "source"))
	}
	tail = append(tail, p.semi())
	return doc.Concat(tail...)
}

func (p *printer) printExportDefaultDeclaration(n *ast.Node) doc.Doc {
	decl := p.print(n.Declaration, "declaration")
	switch n.Declaration.Kind {
	case ast.FunctionDeclaration, ast.ClassDeclaration:
		return doc.Concat(doc.Text("export default "), decl)
	}
	return doc.Concat(doc.Text("export default "), decl, p.semi())
}

func (p *printer) printExportAllDeclaration(n *ast.Node) doc.Doc {
	if n.Exported != nil {
		return doc.Concat(doc.Text("export * as "), p.print(n.Exported, "exported"), doc.Text(" from "), p.print(n.Source, "source"), p.semi())
	}
	return doc.Concat(doc.Text("export * from "), p.print(n.Source, "source"), p.semi())
}

func (p *printer) printExportSpecifier(n *ast.Node) doc.Doc {
	if n.Exported == nil || n.Local == n.Exported {
		return p.print(n.Local, "local")
	}
	return doc.Concat(p.print(n.Local, "local"), doc.Text(" as "), p.print(n.Exported, "exported"))
}

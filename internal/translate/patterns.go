package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

func (p *printer) printArrayPattern(n *ast.Node) doc.Doc {
	if len(n.Elements) == 0 {
		return doc.Text("[]")
	}
	printed := p.printEach(n.Elements, "elements")
	return doc.Group(doc.Concat(
		doc.Text("["),
		doc.Indent(doc.Concat(doc.SoftLine, doc.Join(doc.Concat(doc.Text(","), doc.Line), printed))),
		doc.SoftLine,
		doc.Text("]"),
	))
}

func (p *printer) printObjectPattern(n *ast.Node) doc.Doc {
	if len(n.Properties) == 0 {
		return doc.Text("{}")
	}
	printed := p.printEach(n.Properties, "properties")
	spacing := doc.Line
	if !p.opts.BracketSpacing {
		spacing = doc.SoftLine
	}
	return doc.Group(doc.Concat(
		doc.Text("{"),
		doc.Indent(doc.Concat(spacing, doc.Join(doc.Concat(doc.Text(","), doc.Line), printed))),
		spacing,
		doc.Text("}"),
	))
}

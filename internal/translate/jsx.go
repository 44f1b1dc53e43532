package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

func (p *printer) printJSXElement(n *ast.Node) doc.Doc {
	opening := p.print(n.OpeningElem, "openingElement")
	if n.OpeningElem != nil && n.OpeningElem.SelfClose {
		return opening
	}
	if len(n.Children) == 0 {
		return doc.Concat(opening, p.print(n.ClosingElem, "closingElement"))
	}
	children := p.printEach(n.Children, "children")
	return doc.Group(doc.Concat(
		opening,
		doc.Indent(doc.Concat(doc.SoftLine, doc.Join(doc.HardLine, children))),
		doc.SoftLine,
		p.print(n.ClosingElem, "closingElement"),
	))
}

func (p *printer) printJSXFragment(n *ast.Node) doc.Doc {
	if len(n.Children) == 0 {
		return doc.Text("<></>")
	}
	children := p.printEach(n.Children, "children")
	return doc.Group(doc.Concat(
		doc.Text("<>"),
		doc.Indent(doc.Concat(doc.SoftLine, doc.Join(doc.HardLine, children))),
		doc.SoftLine,
		doc.Text("</>"),
	))
}

func (p *printer) printJSXOpeningElement(n *ast.Node) doc.Doc {
	name := p.print(n.Name, "name")
	if len(n.Attributes) == 0 {
		if n.SelfClose {
			return doc.Concat(doc.Text("<"), name, doc.Text(" />"))
		}
		return doc.Concat(doc.Text("<"), name, doc.Text(">"))
	}

	attrs := p.printEach(n.Attributes, "attributes")
	closer := doc.Text(">")
	if n.SelfClose {
		closer = doc.Text(" />")
	}
	if p.opts.JSXBracketSameLine {
		return doc.Group(doc.Concat(
			doc.Text("<"), name,
			doc.Indent(doc.Concat(doc.Line, doc.Join(doc.Line, attrs))),
			closer,
		))
	}
	return doc.Group(doc.Concat(
		doc.Text("<"), name,
		doc.Indent(doc.Concat(doc.Line, doc.Join(doc.Line, attrs))),
		doc.SoftLine,
		closer,
	))
}

func (p *printer) printJSXClosingElement(n *ast.Node) doc.Doc {
	return doc.Concat(doc.Text("</"), p.print(n.Name, "name"), doc.Text(">"))
}

func (p *printer) printJSXAttribute(n *ast.Node) doc.Doc {
	if n.Value == nil {
		return p.print(n.Name, "name")
	}
	return doc.Concat(p.print(n.Name, "name"), doc.Text("="), p.print(n.Value, "value"))
}

func (p *printer) printJSXSpreadAttribute(n *ast.Node) doc.Doc {
	return doc.Concat(doc.Text("{..."), p.print(n.Argument, "argument"), doc.Text("}"))
}

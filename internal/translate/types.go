package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

func (p *printer) printUnionIntersection(n *ast.Node, sep string) doc.Doc {
	printed := p.printEach(n.Types, "types")
	return doc.Group(doc.Join(doc.Text(sep), printed))
}

func (p *printer) printFunctionType(n *ast.Node) doc.Doc {
	return doc.Concat(p.printTypeParams(n.TypeParams), p.printParamList(n.Params, false), doc.Text(" => "), p.print(n.ReturnType, "returnType"))
}

func (p *printer) printTupleType(n *ast.Node) doc.Doc {
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

func (p *printer) printTypeReference(n *ast.Node) doc.Doc {
	name := doc.Text(n.Name_)
	if n.Id != nil {
		name = p.print(n.Id, "id")
	}
	if len(n.TypeParams) == 0 {
		return name
	}
	printed := p.printEach(n.TypeParams, "typeParams")
	return doc.Concat(name, doc.Text("<"), doc.Join(doc.Text(", "), printed), doc.Text(">"))
}

func (p *printer) printTypeParameter(n *ast.Node) doc.Doc {
	d := doc.Text(n.Name_)
	if n.TypeAnn != nil {
		d = doc.Concat(d, doc.Text(" extends "), p.print(n.TypeAnn, "typeAnnotation"))
	}
	if n.Value != nil {
		d = doc.Concat(d, doc.Text(" = "), p.print(n.Value, "value"))
	}
	return d
}

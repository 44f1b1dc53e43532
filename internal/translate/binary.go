package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

// printBinaryish flattens a chain of same-precedence binary/logical
// operators into a single group with one operator per line when broken,
// instead of letting each nested node introduce its own indent — the
// same chain-flattening spec.md §4.3 implies is needed for the
// mixed-bitwise-operator readability rule to read naturally.
func (p *printer) printBinaryish(n *ast.Node) doc.Doc {
	parts := p.flattenBinaryChain(n, n.Operator)
	if len(parts) == 1 {
		return parts[0]
	}
	rest := parts[1:]
	return doc.Group(doc.Concat(parts[0], doc.Indent(doc.Concat(rest...))))
}

func (p *printer) flattenBinaryChain(n *ast.Node, chainOp string) []doc.Doc {
	if n.Left != nil && n.Left.Operator == chainOp && n.Left.Kind == n.Kind {
		left := p.flattenBinaryChain(n.Left, chainOp)
		right := doc.Concat(doc.Line, doc.Text(n.Operator+" "), p.print(n.Right, "right"))
		return append(left, right)
	}
	left := p.print(n.Left, "left")
	right := doc.Concat(doc.Line, doc.Text(n.Operator+" "), p.print(n.Right, "right"))
	return []doc.Doc{left, right}
}

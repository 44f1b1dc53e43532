package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

func (p *printer) printStringLiteral(n *ast.Node) doc.Doc {
	value, _ := n.Value_.(string)
	return doc.Text(p.quote(n.Raw, value))
}

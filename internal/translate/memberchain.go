package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

// memberChainLink is one step of a flattened member/call chain: either
// a ".prop" / "[expr]" access or a "(...)" call.
type memberChainLink struct {
	isCall bool
	node   *ast.Node
	name   string
}

// printMemberChain flattens a run of MemberExpression/CallExpression
// nodes into a flat list of links and decides, as one group, whether
// the whole chain fits on one line or must break with one link per
// line — the structural shape spec.md §4.2 calls out as the reason
// member-chain printing can't be handled by each node printing itself
// independently.
func (p *printer) printMemberChain(n *ast.Node) doc.Doc {
	links := p.flattenMemberChain(n)

	base := p.printMemberChainBase(links)
	breakable := len(links)-1 > 2

	var rest []doc.Doc
	for _, link := range links[1:] {
		l := link
		var printed doc.Doc
		p.cursor.Call(l.node, "object", func() {
			printed = p.printMemberChainLink(l)
		})
		// A call attaches directly to the property access before it,
		// and a computed "[...]" access stays on its object's line
		// (internal/jsparser reads a "[" that starts a line as a new
		// statement); the break point belongs on each dotted access.
		if breakable && !l.isCall && !l.node.Computed {
			printed = doc.Concat(doc.SoftLine, printed)
		}
		rest = append(rest, printed)
	}

	if !breakable {
		return doc.Concat(append([]doc.Doc{base}, rest...)...)
	}

	return doc.Group(doc.Concat(base, doc.Indent(doc.Concat(rest...))))
}

// printMemberChainBase prints the chain's innermost node through its
// true ancestry — the "object" slot of the MemberExpression above it,
// or the "callee" slot of the CallExpression above it — rather than
// under a synthetic "base" name parented to the chain's outermost node.
// Printing it with the wrong parent hides the real context from
// internal/parens' oracle: a numeric literal like "1" in "(1).toString()"
// only knows to keep its grouping parens when its parent really is the
// MemberExpression it's the object of.
func (p *printer) printMemberChainBase(links []memberChainLink) doc.Doc {
	if len(links) < 2 {
		return p.print(links[0].node, "base")
	}
	name := "object"
	if links[1].isCall {
		name = "callee"
	}
	var base doc.Doc
	p.cursor.Call(links[1].node, "", func() {
		base = p.print(links[0].node, name)
	})
	return base
}

// flattenMemberChain walks down the object/callee spine of n, collecting
// links base-first.
func (p *printer) flattenMemberChain(n *ast.Node) []memberChainLink {
	var links []memberChainLink
	cur := n
	for {
		switch cur.Kind {
		case ast.CallExpression:
			links = append(links, memberChainLink{isCall: true, node: cur})
			cur = cur.Callee
		case ast.MemberExpression:
			links = append(links, memberChainLink{node: cur})
			cur = cur.Object
		default:
			links = append(links, memberChainLink{node: cur, name: "base"})
			reverse(links)
			return links
		}
	}
}

func reverse(links []memberChainLink) {
	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}
}

func (p *printer) printMemberChainLink(link memberChainLink) doc.Doc {
	n := link.node
	if n.Kind == ast.CallExpression {
		return p.printCallLinkArguments(n)
	}
	if n.Computed {
		return doc.Concat(doc.Text("["), p.print(n.PropertyN, "property"), doc.Text("]"))
	}
	dot := doc.Text(".")
	if n.Optional {
		dot = doc.Text("?.")
	}
	return doc.Concat(dot, p.print(n.PropertyN, "property"))
}

func (p *printer) printCallLinkArguments(n *ast.Node) doc.Doc {
	prefix := doc.Text("")
	if n.Optional {
		prefix = doc.Text("?.")
	}
	return doc.Concat(prefix, p.printArgumentList(n.Arguments))
}

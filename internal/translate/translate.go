// Package translate implements the AST→Doc translator of spec.md §4.2:
// printAstToDoc dispatches on node.Kind, delegates child printing
// through the path cursor so internal/parens and internal/comments
// observe correct ancestry, and wraps each node's own output in
// parentheses when the oracle says to.
package translate

import (
	"fmt"

	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/comments"
	"github.com/jsfmt/jsfmt/internal/doc"
	"github.com/jsfmt/jsfmt/internal/options"
	"github.com/jsfmt/jsfmt/internal/parens"
	"github.com/jsfmt/jsfmt/internal/path"
)

// ErrUnknownNodeKind is returned when the dispatcher encounters a Kind
// it has no printer for, the translator-side half of spec.md §7's
// "always a bug in the translator" taxonomy entry.
type ErrUnknownNodeKind struct {
	Kind ast.Kind
}

func (e *ErrUnknownNodeKind) Error() string {
	return fmt.Sprintf("translate: no printer registered for node kind %d", e.Kind)
}

// printer carries the state a single Print call threads through every
// per-kind function: the path cursor (for ancestry/oracle queries), the
// normalised options, and the original source text (needed verbatim by
// prettier-ignore and by literal/raw-text passthrough).
type printer struct {
	cursor  *path.Cursor
	opts    options.Options
	source  string
	err     error
	groupID *doc.GroupIDAllocator
}

// Print converts root into a Doc, per spec.md §4.2's printAstToDoc
// contract. The returned error is non-nil only for ErrUnknownNodeKind or
// a wrapped comments.ErrUnprintedComment discovered after printing.
func Print(root *ast.Node, source string, opts options.Options) (doc.Doc, error) {
	p := &printer{cursor: path.New(root), opts: opts, source: source, groupID: doc.NewGroupIDAllocator()}
	d := p.current()
	if p.err != nil {
		return doc.Doc{}, p.err
	}
	if err := comments.CheckAllPrinted(root); err != nil {
		return doc.Doc{}, err
	}
	return d, nil
}

// current dispatches on whatever node the cursor currently points to,
// applying the ignore/parens/comment wrapping every node goes through.
//
// A ParenthesizedExpression in the source is transparent here: its own
// comments print where they fell, but the node itself is peeled off via
// cursor.Replace before the oracle or dispatch ever sees it, so the
// real expression underneath is judged against its true parent/name
// slot rather than against a "expression"-named frame of its own. That
// is what lets the oracle re-add the grouping parens a case like
// "(1).toString()" needs, instead of silently losing them.
func (p *printer) current() doc.Doc {
	node := p.cursor.GetValue()
	if node == nil {
		return doc.Text("")
	}

	if ignored := p.printIfIgnored(node); ignored != nil {
		return *ignored
	}

	var wrapLeading, wrapTrailing []doc.Doc
	for node.Kind == ast.ParenthesizedExpression {
		wrapLeading = append(wrapLeading, commentsLeading(node))
		wrapTrailing = append([]doc.Doc{commentsTrailing(node)}, wrapTrailing...)
		node = node.Expr
		p.cursor.Replace(node)
	}

	bare := p.dispatch(node)
	if p.err != nil {
		return doc.Text("")
	}

	wrapped := bare
	if parens.NeedsParens(p.cursor) {
		wrapped = doc.Concat(doc.Text("("), bare, doc.Text(")"))
	}

	parts := append([]doc.Doc{}, wrapLeading...)
	parts = append(parts, commentsLeading(node), wrapped, commentsTrailing(node))
	parts = append(parts, wrapTrailing...)
	return doc.Concat(parts...)
}

// print positions the cursor on child under the given property name and
// returns its printed Doc, the translator-side equivalent of spec.md
// §4.2's "delegate child printing via the path cursor".
func (p *printer) print(child *ast.Node, name string) doc.Doc {
	if child == nil {
		return doc.Text("")
	}
	var result doc.Doc
	p.cursor.Call(child, name, func() {
		result = p.current()
	})
	return result
}

func (p *printer) printEach(children []*ast.Node, name string) []doc.Doc {
	return path.Map(p.cursor, children, name, func(i int) doc.Doc {
		return p.current()
	})
}

func commentsLeading(n *ast.Node) doc.Doc  { return comments.PrintLeading(n) }
func commentsTrailing(n *ast.Node) doc.Doc { return comments.PrintTrailing(n) }
func commentsDangling(n *ast.Node) doc.Doc { return comments.PrintDangling(n) }

// printIfIgnored implements the prettier-ignore sentinel (spec.md
// §4.4): if node carries a leading comment whose text is exactly
// "prettier-ignore", its raw source slice is copied verbatim and none
// of its comments (including its own subtree's) are checked for
// printed-ness.
func (p *printer) printIfIgnored(n *ast.Node) *doc.Doc {
	for _, c := range n.LeadingComments {
		if c.IsPrettierIgnore() {
			markSubtreePrinted(n)
			out := doc.Concat(
				commentsLeading(n),
				doc.Text(sliceSource(p.source, n.Start, n.End)),
			)
			return &out
		}
	}
	return nil
}

func markSubtreePrinted(n *ast.Node) {
	if n == nil {
		return
	}
	for _, c := range n.LeadingComments {
		c.Printed = true
	}
	for _, c := range n.TrailingComments {
		c.Printed = true
	}
	for _, c := range n.DanglingComments {
		c.Printed = true
	}
	for _, list := range [][]*ast.Node{
		n.Body, n.Elements, n.Properties, n.Params, n.Arguments, n.Declarations,
		n.Cases, n.Specifiers, n.Children, n.Quasis, n.Expressions, n.Types,
		n.TypeParams, n.Attributes,
	} {
		for _, child := range list {
			markSubtreePrinted(child)
		}
	}
	for _, single := range []*ast.Node{
		n.Left, n.Right, n.Test, n.Consequent, n.Alternate, n.Object, n.PropertyN,
		n.Callee, n.Argument, n.Init, n.Update, n.Key, n.Value, n.Id, n.Tag,
		n.Handler, n.Finalizer, n.SuperClass, n.Discriminant, n.Label, n.Source,
		n.Imported, n.Local, n.Exported, n.Declaration, n.ReturnType, n.TypeAnn,
		n.ElementType, n.Name, n.OpeningElem, n.ClosingElem, n.Expr,
	} {
		markSubtreePrinted(single)
	}
}

func sliceSource(source string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	if start > end {
		return ""
	}
	return source[start:end]
}

func (p *printer) fail(n *ast.Node) doc.Doc {
	if p.err == nil {
		p.err = &ErrUnknownNodeKind{Kind: n.Kind}
	}
	return doc.Text("")
}

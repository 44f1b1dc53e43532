package comments

import (
	"errors"
	"fmt"

	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

// ErrUnprintedComment is returned by CheckAllPrinted when the translator
// finished without emitting some comment — per spec.md §7, this is
// always a translator bug, not a recoverable condition, and callers
// should treat it as a crash-worthy signal rather than swallow it.
var ErrUnprintedComment = errors.New("comment not printed")

// PrintLeading renders n's leading comments as Doc fragments that
// precede the node's own content: each block or line comment followed
// by a HardLine.
func PrintLeading(n *ast.Node) doc.Doc {
	if len(n.LeadingComments) == 0 {
		return doc.Text("")
	}

	var parts []doc.Doc
	for _, c := range n.LeadingComments {
		parts = append(parts, printCommentText(c))
		c.Printed = true
		if c.BlankLineBefore {
			// BlankLineBefore does not change the separator: every
			// leading comment is followed by a single HardLine.
		}
		parts = append(parts, doc.HardLine)
	}
	return doc.Concat(parts...)
}

// PrintTrailing renders n's trailing comments. Line comments must stay
// on the originating source line, so they go through doc.LineSuffix;
// block comments on the same line print inline.
func PrintTrailing(n *ast.Node) doc.Doc {
	if len(n.TrailingComments) == 0 {
		return doc.Text("")
	}

	var parts []doc.Doc
	for _, c := range n.TrailingComments {
		c.Printed = true
		if c.Kind == ast.LineComment {
			parts = append(parts, doc.LineSuffix(doc.Concat(doc.Text(" "), printCommentText(c))))
		} else {
			parts = append(parts, doc.Text(" "), printCommentText(c))
		}
	}
	return doc.Concat(parts...)
}

// PrintDangling renders n's dangling comments, used by printers of
// containers that can be empty (blocks, object/array literals) to show
// a comment that has no surrounding token to attach to.
func PrintDangling(n *ast.Node) doc.Doc {
	if len(n.DanglingComments) == 0 {
		return doc.Text("")
	}

	var parts []doc.Doc
	for i, c := range n.DanglingComments {
		c.Printed = true
		if i > 0 {
			parts = append(parts, doc.HardLine)
		}
		parts = append(parts, printCommentText(c))
	}
	return doc.Concat(parts...)
}

func printCommentText(c *ast.Comment) doc.Doc {
	return doc.Text(c.Text)
}

// CheckAllPrinted walks the tree and returns ErrUnprintedComment
// wrapping the offending comment's text for the first comment found
// whose Printed flag was never set, implementing the invariant in
// spec.md §3: "unprinted comments are a bug".
func CheckAllPrinted(root *ast.Node) error {
	var found error
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n == nil || found != nil {
			return
		}
		for _, c := range n.LeadingComments {
			if !c.Printed {
				found = fmt.Errorf("%w: %q", ErrUnprintedComment, c.Text)
				return
			}
		}
		for _, c := range n.TrailingComments {
			if !c.Printed {
				found = fmt.Errorf("%w: %q", ErrUnprintedComment, c.Text)
				return
			}
		}
		for _, c := range n.DanglingComments {
			if !c.Printed {
				found = fmt.Errorf("%w: %q", ErrUnprintedComment, c.Text)
				return
			}
		}
		for _, list := range [][]*ast.Node{
			n.Body, n.Elements, n.Properties, n.Params, n.Arguments, n.Declarations,
			n.Cases, n.Specifiers, n.Children, n.Quasis, n.Expressions, n.Types,
			n.TypeParams, n.Attributes,
		} {
			for _, child := range list {
				walk(child)
			}
		}
		for _, single := range []*ast.Node{
			n.Left, n.Right, n.Test, n.Consequent, n.Alternate, n.Object, n.PropertyN,
			n.Callee, n.Argument, n.Init, n.Update, n.Key, n.Value, n.Id, n.Tag,
			n.Handler, n.Finalizer, n.SuperClass, n.Discriminant, n.Label, n.Source,
			n.Imported, n.Local, n.Exported, n.Declaration, n.ReturnType, n.TypeAnn,
			n.ElementType, n.Name, n.OpeningElem, n.ClosingElem, n.Expr,
		} {
			walk(single)
		}
	}
	walk(root)
	return found
}

// Package massage strips the non-semantic fields from a parsed tree —
// byte positions, raw literal spelling, attached comments — so two trees
// can be compared for semantic equality regardless of formatting. It
// backs the debug-check idempotence/semantic-preservation properties:
// format(format(t)) must equal format(t), and massage(parse(t)) must
// equal massage(parse(format(t))).
package massage

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jsfmt/jsfmt/internal/ast"
)

// Strip returns a copy of n with positions, raw text, comments, and the
// printer's Printed bookkeeping flag zeroed out, leaving only the fields
// that determine program semantics (Kind and the child/value slots).
func Strip(n *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}
	s := n.Clone()
	stripInPlace(s)
	return s
}

func stripInPlace(n *ast.Node) {
	if n == nil {
		return
	}
	n.Start = 0
	n.End = 0
	n.Raw = ""
	n.LeadingComments = nil
	n.TrailingComments = nil
	n.DanglingComments = nil
	n.Printed = false

	for _, child := range children(n) {
		stripInPlace(child)
	}
}

// children enumerates every *ast.Node field Clone() also walks, so Strip
// never misses a subtree Clone knows about.
func children(n *ast.Node) []*ast.Node {
	var out []*ast.Node
	out = append(out, n.Body...)
	out = append(out, n.Arguments...)
	out = append(out, n.Params...)
	out = append(out, n.Declarations...)
	out = append(out, n.Elements...)
	out = append(out, n.Properties...)
	out = append(out, n.Quasis...)
	out = append(out, n.Expressions...)
	out = append(out, n.Cases...)
	out = append(out, n.Specifiers...)
	out = append(out, n.Types...)
	out = append(out, n.TypeParams...)
	out = append(out, n.Attributes...)
	out = append(out, n.Children...)
	out = append(out, n.Left, n.Right, n.Test, n.Consequent, n.Alternate,
		n.Object, n.PropertyN, n.Callee, n.Argument, n.Init, n.Update,
		n.Key, n.Value, n.Id, n.Tag, n.SuperClass, n.Discriminant,
		n.Handler, n.Finalizer, n.Label, n.Source, n.Imported, n.Local,
		n.Exported, n.Declaration, n.ReturnType, n.TypeAnn, n.ElementType,
		n.Name, n.OpeningElem, n.ClosingElem, n.Expr)

	filtered := out[:0]
	for _, c := range out {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// ignoredFields lists the *ast.Node fields Strip already zeroes, so a
// comparison against an un-stripped tree (e.g. in a test that forgot to
// call Strip) still ignores them rather than failing on noise.
var ignoredFields = cmpopts.IgnoreFields(ast.Node{},
	"Start", "End", "Raw", "LeadingComments", "TrailingComments",
	"DanglingComments", "Printed",
)

// Equal reports whether a and b are semantically identical: same tree
// shape and same Kind/operator/name/value fields, ignoring position,
// raw spelling, comments, and the Printed flag.
func Equal(a, b *ast.Node) bool {
	return cmp.Equal(a, b, ignoredFields)
}

// Diff returns a human-readable diff of a and b's semantic content, or
// the empty string if they are equal. Used to render a debug-check
// semantic-drift failure.
func Diff(a, b *ast.Node) string {
	return cmp.Diff(a, b, ignoredFields)
}

// Package comments implements the pre-pass attachment and per-node
// emission of free-floating comments described in spec.md §4.4: binding
// each parsed Comment to the AST node whose source range brackets it
// most tightly, then letting node printers pull leading/trailing/
// dangling comments back out as Doc fragments so every comment survives
// the round trip exactly once.
package comments

import (
	"sort"

	"github.com/jsfmt/jsfmt/internal/ast"
)

// Attach assigns each comment in raw to the node in root whose span
// brackets it most tightly, applying the tie-break rules in spec.md
// §4.4: before a node on the same/preceding line binds leading, after a
// node on the same line binds trailing, and a comment inside an empty
// container with no surrounding token binds dangling to the container.
func Attach(root *ast.Node, raw []*ast.Comment) {
	if root == nil || len(raw) == 0 {
		return
	}

	nodes := collectNodesByStart(root)

	for _, c := range raw {
		enclosing := deepestEnclosing(root, c)
		precedingLine, followingLine := neighboringLines(nodes, c)

		switch {
		case enclosing != nil && hasNoChildrenInRange(enclosing, c):
			enclosing.DanglingComments = append(enclosing.DanglingComments, c)
			c.Placement = ast.Dangling

		case followingLine != nil && (c.OwnLine || c.Kind == ast.BlockComment || precedingLine == nil):
			followingLine.LeadingComments = append(followingLine.LeadingComments, c)
			c.Placement = ast.Leading

		case precedingLine != nil && !c.OwnLine:
			precedingLine.TrailingComments = append(precedingLine.TrailingComments, c)
			c.Placement = ast.Trailing

		case precedingLine != nil:
			precedingLine.TrailingComments = append(precedingLine.TrailingComments, c)
			c.Placement = ast.Trailing

		case followingLine != nil:
			followingLine.LeadingComments = append(followingLine.LeadingComments, c)
			c.Placement = ast.Leading

		default:
			root.DanglingComments = append(root.DanglingComments, c)
			c.Placement = ast.Dangling
		}
	}
}

// collectNodesByStart returns every node reachable from root through
// the sequence fields (Body, Elements, Properties, Params, Arguments,
// Declarations, Cases, Specifiers, Children) and the single-child slots
// listed below, at any depth, sorted by start offset, used to find the
// nodes immediately before/after a comment's position.
func collectNodesByStart(root *ast.Node) []*ast.Node {
	var out []*ast.Node
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n == nil {
			return
		}
		out = append(out, n)
		for _, list := range [][]*ast.Node{n.Body, n.Elements, n.Properties, n.Params, n.Arguments, n.Declarations, n.Cases, n.Specifiers, n.Children} {
			for _, c := range list {
				walk(c)
			}
		}
		for _, single := range []*ast.Node{n.Left, n.Right, n.Test, n.Consequent, n.Alternate, n.Object, n.Callee, n.Argument, n.Init, n.Update, n.Key, n.Value, n.Id, n.Tag, n.Handler, n.Finalizer} {
			walk(single)
		}
	}
	walk(root)

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// deepestEnclosing returns the smallest node whose span contains the
// comment, used to detect the "dangling inside an empty container" case.
func deepestEnclosing(root *ast.Node, c *ast.Comment) *ast.Node {
	if root == nil || !spanContains(root, c) {
		return nil
	}
	best := root
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n == nil {
			return
		}
		if spanContains(n, c) && n.Start <= best.Start && n.End >= best.End && n != root {
			if n.End-n.Start < best.End-best.Start {
				best = n
			}
		}
		for _, list := range [][]*ast.Node{n.Body, n.Elements, n.Properties, n.Params, n.Arguments, n.Declarations, n.Cases} {
			for _, child := range list {
				if spanContains(child, c) {
					walk(child)
				}
			}
		}
		for _, single := range []*ast.Node{n.Left, n.Right, n.Test, n.Consequent, n.Alternate, n.Object, n.Callee, n.Argument} {
			if spanContains(single, c) {
				walk(single)
			}
		}
	}
	walk(root)
	return best
}

func spanContains(n *ast.Node, c *ast.Comment) bool {
	return n != nil && n.Start <= c.Start && c.End <= n.End
}

// hasNoChildrenInRange reports whether enclosing has no child node
// overlapping the comment's span, which is the definition of "inside an
// empty brace/bracket container with no surrounding token" (spec.md
// §4.4) for the container kinds that can be empty.
func hasNoChildrenInRange(n *ast.Node, c *ast.Comment) bool {
	switch n.Kind {
	case ast.BlockStatement, ast.ObjectExpression, ast.ObjectPattern, ast.ArrayExpression,
		ast.ArrayPattern, ast.ClassBody, ast.Program:
	default:
		return false
	}
	for _, list := range [][]*ast.Node{n.Body, n.Elements, n.Properties} {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// neighboringLines returns the node immediately before and after the
// comment among the sorted candidate list.
func neighboringLines(sorted []*ast.Node, c *ast.Comment) (before, after *ast.Node) {
	for _, n := range sorted {
		if n.Start >= c.End {
			if after == nil || n.Start < after.Start {
				after = n
			}
			continue
		}
		if n.End <= c.Start {
			if before == nil || n.End > before.End {
				before = n
			}
		}
	}
	return before, after
}

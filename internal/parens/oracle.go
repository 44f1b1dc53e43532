// Package parens implements the parenthesization oracle of spec.md §4.3:
// given a node and its ancestor chain (as observed through a
// internal/path.Cursor), decide whether omitting parentheses would
// change parse meaning or violate the formatter's disambiguation
// policy.
//
// The entry point is named NeedsParens rather than a Cursor method to
// avoid an import cycle between internal/path and internal/parens (the
// oracle needs the ast package's node shape, and path needs no
// knowledge of parenthesization); spec.md's "path.needsParens()" call
// shape becomes NeedsParens(path) at the call site in internal/translate.
package parens

import "github.com/jsfmt/jsfmt/internal/ast"

// Path is the subset of internal/path.Cursor the oracle depends on. It
// is expressed as an interface here so this package never imports
// internal/path, keeping the dependency one-directional
// (translate -> parens, translate -> path).
type Path interface {
	GetValue() *ast.Node
	GetName() string
	GetParentNode(k int) *ast.Node
}

// NeedsParens reports whether the node path is currently positioned on
// must be wrapped in parentheses to print without changing its parsed
// meaning, given the disambiguation policy in spec.md §4.3.
func NeedsParens(p Path) bool {
	node := p.GetValue()
	parent := p.GetParentNode(0)
	if node == nil || parent == nil {
		return false
	}
	name := p.GetName()

	switch node.Kind {
	case ast.BinaryExpression, ast.LogicalExpression:
		return binaryNeedsParens(node, parent, name)
	case ast.UnaryExpression:
		return unaryNeedsParens(node, parent, name)
	case ast.UpdateExpression:
		return updateNeedsParens(parent, name)
	case ast.YieldExpression, ast.AwaitExpression:
		return yieldAwaitNeedsParens(parent, name)
	case ast.AssignmentExpression:
		return assignmentNeedsParens(node, parent, name)
	case ast.SequenceExpression:
		return sequenceNeedsParens(parent, name)
	case ast.ConditionalExpression:
		return conditionalNeedsParens(parent, name)
	case ast.ArrowFunctionExpression:
		return arrowNeedsParens(node, parent, name)
	case ast.FunctionExpression, ast.ClassExpression:
		return functionOrClassExprNeedsParens(parent, name)
	case ast.ObjectExpression:
		return objectExprNeedsParens(parent, name)
	case ast.CallExpression:
		return callNeedsParens(node, parent, name)
	case ast.NewExpression:
		return newNeedsParens(parent, name)
	case ast.NumericLiteral:
		return numericLiteralNeedsParens(node, parent, name)
	case ast.SpreadElement, ast.RestElement:
		return false
	case ast.TaggedTemplateExpression, ast.TemplateLiteral:
		return false

	case ast.UnionTypeAnnotation, ast.IntersectionTypeAnnotation:
		return unionIntersectionNeedsParens(parent)
	case ast.FunctionTypeAnnotation:
		return functionTypeNeedsParens(parent)
	case ast.NullableTypeAnnotation:
		return false
	}

	return false
}

func binaryNeedsParens(node, parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.UnaryExpression, ast.SpreadElement, ast.AwaitExpression:
		return true
	case ast.CallExpression, ast.NewExpression:
		return name == "callee"
	case ast.MemberExpression:
		return name == "object"
	case ast.TaggedTemplateExpression:
		return name == "tag"
	case ast.ClassDeclaration, ast.ClassExpression:
		return name == "superClass"
	}

	if parent.Kind != ast.BinaryExpression && parent.Kind != ast.LogicalExpression {
		return false
	}

	parentOp := operatorOf(parent)
	nodeOp := operatorOf(node)
	parentPrec := precedence(parentOp)
	nodePrec := precedence(nodeOp)

	if isBitwise(parentOp) && isBitwise(nodeOp) && parentOp != nodeOp {
		return true
	}

	// Mixing "&&" and "||" always gets parens around the nested operator,
	// in either direction, even on the side where precedence alone would
	// already disambiguate it — a readability policy, not a syntactic
	// necessity (spec.md §4.3's mixed-logical-operator rule, seed S3).
	if (parentOp == "&&" && nodeOp == "||") || (parentOp == "||" && nodeOp == "&&") {
		return true
	}

	if nodePrec > parentPrec {
		return false
	}
	if nodePrec < parentPrec {
		return true
	}

	// Equal precedence: parenthesize the right operand to enforce
	// left-associativity explicitly, except "**" which is right
	// associative and instead forces parens on the left operand.
	if isRightAssociative(nodeOp) {
		return name == "left"
	}
	return name == "right"
}

func unaryNeedsParens(node, parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.MemberExpression:
		return name == "object"
	case ast.CallExpression, ast.NewExpression:
		return name == "callee"
	case ast.TaggedTemplateExpression:
		return name == "tag"
	case ast.BinaryExpression:
		return operatorOf(parent) == "**" && name == "left"
	case ast.UnaryExpression:
		// "- -x" / "+ +x" / "!!x" chains still parse without parens in
		// this grammar; keep bare.
		return false
	case ast.AwaitExpression, ast.SpreadElement:
		return false
	}
	return false
}

func updateNeedsParens(parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.MemberExpression:
		return name == "object"
	case ast.CallExpression, ast.NewExpression:
		return name == "callee"
	case ast.BinaryExpression:
		return false
	}
	return false
}

func yieldAwaitNeedsParens(parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.UnaryExpression, ast.BinaryExpression, ast.LogicalExpression,
		ast.SpreadElement, ast.AwaitExpression:
		return true
	case ast.MemberExpression:
		return name == "object"
	case ast.CallExpression, ast.NewExpression:
		return name == "callee"
	case ast.ConditionalExpression:
		return name == "test"
	case ast.TaggedTemplateExpression:
		return name == "tag"
	}
	return false
}

func assignmentNeedsParens(node, parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.ArrowFunctionExpression:
		return name == "body"
	case ast.ExpressionStatement:
		return node.Left != nil && (node.Left.Kind == ast.ObjectPattern)
	case ast.BinaryExpression, ast.LogicalExpression, ast.UnaryExpression,
		ast.CallExpression, ast.NewExpression, ast.SpreadElement,
		ast.ConditionalExpression:
		return name != "body"
	}
	return false
}

func sequenceNeedsParens(parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.ReturnStatement, ast.ThrowStatement, ast.ExpressionStatement:
		return false
	case ast.ForStatement:
		return name != "init" && name != "update" && name != "test"
	}
	return true
}

func conditionalNeedsParens(parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.UnaryExpression, ast.AwaitExpression, ast.SpreadElement:
		return true
	case ast.BinaryExpression, ast.LogicalExpression:
		return true
	case ast.MemberExpression:
		return name == "object"
	case ast.CallExpression, ast.NewExpression:
		return name == "callee"
	case ast.ConditionalExpression:
		return name == "test"
	case ast.TaggedTemplateExpression:
		return name == "tag"
	}
	return false
}

func arrowNeedsParens(node *ast.Node, parent *ast.Node, name string) bool {
	if parent.Kind == ast.ExpressionStatement {
		return true
	}
	switch parent.Kind {
	case ast.BinaryExpression, ast.LogicalExpression, ast.UnaryExpression,
		ast.MemberExpression, ast.CallExpression, ast.NewExpression,
		ast.TaggedTemplateExpression, ast.ConditionalExpression, ast.AwaitExpression,
		ast.SpreadElement:
		if parent.Kind == ast.ConditionalExpression && name != "test" {
			return false
		}
		if (parent.Kind == ast.CallExpression || parent.Kind == ast.NewExpression) && name == "arguments" {
			return false
		}
		return true
	}
	return false
}

func functionOrClassExprNeedsParens(parent *ast.Node, name string) bool {
	if parent.Kind == ast.ExpressionStatement {
		return true
	}
	switch parent.Kind {
	case ast.MemberExpression:
		return name == "object"
	case ast.CallExpression, ast.NewExpression:
		return name == "callee"
	case ast.TaggedTemplateExpression:
		return name == "tag"
	}
	return false
}

func objectExprNeedsParens(parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.ExpressionStatement, ast.ArrowFunctionExpression:
		return true
	}
	return false
}

func callNeedsParens(node, parent *ast.Node, name string) bool {
	if parent.Kind == ast.NewExpression && name == "callee" {
		return true
	}
	if parent.Kind == ast.TaggedTemplateExpression && name == "tag" {
		return true
	}
	return false
}

func newNeedsParens(parent *ast.Node, name string) bool {
	switch parent.Kind {
	case ast.MemberExpression:
		return name == "object"
	case ast.CallExpression, ast.NewExpression:
		return name == "callee"
	case ast.TaggedTemplateExpression:
		return name == "tag"
	}
	return false
}

// newCalleeHasCall reports whether a NewExpression's callee subtree
// transitively contains a CallExpression, the case spec.md §4.3 calls
// out explicitly: "new (f())()" must stay distinguishable from
// "new f()()".
func newCalleeHasCall(n *ast.Node) bool {
	switch {
	case n == nil:
		return false
	case n.Kind == ast.CallExpression:
		return true
	case n.Kind == ast.MemberExpression:
		return newCalleeHasCall(n.Object)
	case n.Kind == ast.NonNullExpression || n.Kind == ast.ParenthesizedExpression:
		return newCalleeHasCall(n.Expr)
	default:
		return false
	}
}

// NewCalleeNeedsParens is invoked by the translator specifically for a
// NewExpression's callee slot, since that decision depends on the
// callee's own subtree rather than on ancestry alone (spec.md §4.3).
func NewCalleeNeedsParens(callee *ast.Node) bool {
	if callee == nil {
		return false
	}
	switch callee.Kind {
	case ast.CallExpression:
		return true
	case ast.BinaryExpression, ast.LogicalExpression, ast.ConditionalExpression,
		ast.AssignmentExpression, ast.ArrowFunctionExpression, ast.FunctionExpression,
		ast.UnaryExpression, ast.AwaitExpression, ast.YieldExpression:
		return true
	case ast.MemberExpression:
		return newCalleeHasCall(callee)
	}
	return false
}

func numericLiteralNeedsParens(node, parent *ast.Node, name string) bool {
	if parent.Kind == ast.MemberExpression && name == "object" {
		// "1..toString()" needs nothing: the literal's Raw "1." carries
		// the trailing dot. The literal of "(1).toString()" reaches here
		// as a bare "1" (the translator drops the source parens), so it
		// gets them back, like every integer literal without a decimal
		// point or exponent.
		return !literalHasDecimalMarker(node.Raw)
	}
	return false
}

func literalHasDecimalMarker(raw string) bool {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '.', 'e', 'E', 'x', 'X', 'b', 'B', 'o', 'O':
			return true
		}
	}
	return false
}

func unionIntersectionNeedsParens(parent *ast.Node) bool {
	switch parent.Kind {
	case ast.ArrayTypeAnnotation, ast.NullableTypeAnnotation,
		ast.UnionTypeAnnotation, ast.IntersectionTypeAnnotation:
		return true
	}
	return false
}

func functionTypeNeedsParens(parent *ast.Node) bool {
	switch parent.Kind {
	case ast.UnionTypeAnnotation, ast.IntersectionTypeAnnotation, ast.ArrayTypeAnnotation, ast.NullableTypeAnnotation:
		return true
	}
	return false
}

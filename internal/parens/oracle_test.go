package parens

import (
	"testing"

	"github.com/jsfmt/jsfmt/internal/ast"
)

// fakePath is a minimal Path implementation for table-driven oracle
// tests; it needs nothing beyond the current node, its name, and its
// immediate parent since every rule in spec.md §4.3 only looks at one
// level of ancestry.
type fakePath struct {
	node   *ast.Node
	name   string
	parent *ast.Node
}

func (p fakePath) GetValue() *ast.Node         { return p.node }
func (p fakePath) GetName() string             { return p.name }
func (p fakePath) GetParentNode(k int) *ast.Node {
	if k == 0 {
		return p.parent
	}
	return nil
}

func TestNeedsParens_BinaryPrecedence(t *testing.T) {
	// S3: a || b && c -> "&&" gets parens under "||" despite binding
	// tighter, per the mixed-logical-operator readability rule.
	and := &ast.Node{Kind: ast.LogicalExpression, Operator: "&&"}
	or := &ast.Node{Kind: ast.LogicalExpression, Operator: "||", Right: and}

	if got := NeedsParens(fakePath{node: and, name: "right", parent: or}); !got {
		t.Errorf("&& under || needs parens = %v, want true", got)
	}

	// Mixing in the other direction: "||" under "&&" also needs parens.
	orChild := &ast.Node{Kind: ast.LogicalExpression, Operator: "||"}
	andParent := &ast.Node{Kind: ast.LogicalExpression, Operator: "&&", Right: orChild}
	if got := NeedsParens(fakePath{node: orChild, name: "right", parent: andParent}); !got {
		t.Errorf("|| under && needs parens = %v, want true", got)
	}
}

func TestNeedsParens_EqualPrecedenceAssociativity(t *testing.T) {
	inner := &ast.Node{Kind: ast.BinaryExpression, Operator: "+"}
	outer := &ast.Node{Kind: ast.BinaryExpression, Operator: "+", Right: inner}

	if !NeedsParens(fakePath{node: inner, name: "right", parent: outer}) {
		t.Error("equal-precedence right operand should need parens to enforce left-associativity")
	}

	leftSide := &ast.Node{Kind: ast.BinaryExpression, Operator: "+"}
	outer2 := &ast.Node{Kind: ast.BinaryExpression, Operator: "+", Left: leftSide}
	if NeedsParens(fakePath{node: leftSide, name: "left", parent: outer2}) {
		t.Error("equal-precedence left operand should not need parens")
	}
}

func TestNeedsParens_ExponentiationRightAssociative(t *testing.T) {
	left := &ast.Node{Kind: ast.BinaryExpression, Operator: "**"}
	outer := &ast.Node{Kind: ast.BinaryExpression, Operator: "**", Left: left}
	if !NeedsParens(fakePath{node: left, name: "left", parent: outer}) {
		t.Error("** nested as left of ** should need parens")
	}

	right := &ast.Node{Kind: ast.BinaryExpression, Operator: "**"}
	outer2 := &ast.Node{Kind: ast.BinaryExpression, Operator: "**", Right: right}
	if NeedsParens(fakePath{node: right, name: "right", parent: outer2}) {
		t.Error("** nested as right of ** should not need parens")
	}
}

func TestNeedsParens_BitwiseMixed(t *testing.T) {
	and := &ast.Node{Kind: ast.BinaryExpression, Operator: "&"}
	or := &ast.Node{Kind: ast.BinaryExpression, Operator: "|", Right: and}
	if !NeedsParens(fakePath{node: and, name: "right", parent: or}) {
		t.Error("mixed bitwise operators should always need parens")
	}
}

func TestNeedsParens_NewExpressionCallee(t *testing.T) {
	call := &ast.Node{Kind: ast.CallExpression}
	newExpr := &ast.Node{Kind: ast.NewExpression, Callee: call}
	if !NeedsParens(fakePath{node: call, name: "callee", parent: newExpr}) {
		t.Error("CallExpression as callee of NewExpression should need parens")
	}
}

func TestNewCalleeNeedsParens_MemberWithCallInside(t *testing.T) {
	call := &ast.Node{Kind: ast.CallExpression}
	member := &ast.Node{Kind: ast.MemberExpression, Object: call, PropertyN: &ast.Node{Kind: ast.Identifier, Name_: "x"}}
	if !NewCalleeNeedsParens(member) {
		t.Error("new callee containing a call through member access should need parens")
	}

	plainMember := &ast.Node{Kind: ast.MemberExpression, Object: &ast.Node{Kind: ast.Identifier, Name_: "a"}}
	if NewCalleeNeedsParens(plainMember) {
		t.Error("new callee without a nested call should not need parens")
	}
}

func TestNeedsParens_UnaryInMemberObject(t *testing.T) {
	unary := &ast.Node{Kind: ast.UnaryExpression, Operator: "!"}
	member := &ast.Node{Kind: ast.MemberExpression, Object: unary}
	if !NeedsParens(fakePath{node: unary, name: "object", parent: member}) {
		t.Error("unary expression as member object should need parens")
	}
}

func TestNeedsParens_NumericLiteralMemberObject(t *testing.T) {
	// S4: 1..toString() keeps its existing dot; the literal of
	// (1).toString() arrives without its source parens as a bare integer
	// literal ("1"), and that is the case that triggers the oracle.
	bareInt := &ast.Node{Kind: ast.NumericLiteral, Raw: "1"}
	member := &ast.Node{Kind: ast.MemberExpression, Object: bareInt}
	if !NeedsParens(fakePath{node: bareInt, name: "object", parent: member}) {
		t.Error("bare integer literal as member object should need parens")
	}

	dotted := &ast.Node{Kind: ast.NumericLiteral, Raw: "1."}
	member2 := &ast.Node{Kind: ast.MemberExpression, Object: dotted}
	if NeedsParens(fakePath{node: dotted, name: "object", parent: member2}) {
		t.Error("numeric literal with a decimal marker should not need parens")
	}
}

func TestNeedsParens_SequenceExpression(t *testing.T) {
	seq := &ast.Node{Kind: ast.SequenceExpression}

	if NeedsParens(fakePath{node: seq, name: "argument", parent: &ast.Node{Kind: ast.ReturnStatement}}) {
		t.Error("sequence expression in return statement should not need parens")
	}
	if !NeedsParens(fakePath{node: seq, name: "argument", parent: &ast.Node{Kind: ast.CallExpression}}) {
		t.Error("sequence expression as call argument should need parens")
	}
}

func TestNeedsParens_StatementStartHazard(t *testing.T) {
	arrow := &ast.Node{Kind: ast.ArrowFunctionExpression}
	stmt := &ast.Node{Kind: ast.ExpressionStatement}
	if !NeedsParens(fakePath{node: arrow, name: "expression", parent: stmt}) {
		t.Error("arrow function at statement start should need parens")
	}

	obj := &ast.Node{Kind: ast.ObjectExpression}
	if !NeedsParens(fakePath{node: obj, name: "expression", parent: stmt}) {
		t.Error("object literal at statement start should need parens")
	}
}

func TestNeedsParens_YieldAwaitInBinary(t *testing.T) {
	await := &ast.Node{Kind: ast.AwaitExpression}
	bin := &ast.Node{Kind: ast.BinaryExpression, Operator: "+"}
	if !NeedsParens(fakePath{node: await, name: "left", parent: bin}) {
		t.Error("await expression inside binary expression should need parens")
	}
}

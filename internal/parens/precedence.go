package parens

import "github.com/jsfmt/jsfmt/internal/ast"

// precedence returns the operator-precedence level for a binary or
// logical operator, higher binds tighter. Levels follow the standard
// table for the language family named in spec.md §1.
func precedence(op string) int {
	switch op {
	case "??":
		return 1
	case "||":
		return 2
	case "&&":
		return 3
	case "|":
		return 4
	case "^":
		return 5
	case "&":
		return 6
	case "==", "!=", "===", "!==":
		return 7
	case "<", ">", "<=", ">=", "in", "instanceof":
		return 8
	case "<<", ">>", ">>>":
		return 9
	case "+", "-":
		return 10
	case "*", "/", "%":
		return 11
	case "**":
		return 12
	default:
		return 0
	}
}

// bitwiseOps forces parens when two different bitwise operators nest,
// as a readability policy rather than a syntactic necessity — spec.md
// §4.3's illustrative rule list and §9's open question. SPEC_FULL.md
// resolves the open question: always on, no hidden option.
var bitwiseOps = map[string]bool{
	"|": true, "^": true, "&": true, "<<": true, ">>": true, ">>>": true,
}

func isBitwise(op string) bool { return bitwiseOps[op] }

// isRightAssociative reports whether op associates right-to-left. Only
// exponentiation does in this grammar; assignment operators are handled
// separately by the translator, not through this table.
func isRightAssociative(op string) bool { return op == "**" }

// operatorOf returns the operator string of a Binary/Logical node,
// independent of which Kind it is.
func operatorOf(n *ast.Node) string {
	if n == nil {
		return ""
	}
	return n.Operator
}

func isBinaryOrLogical(n *ast.Node) bool {
	return n != nil && (n.Kind == ast.BinaryExpression || n.Kind == ast.LogicalExpression)
}

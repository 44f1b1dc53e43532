package jsparser

import (
	"testing"

	"github.com/jsfmt/jsfmt/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	n, _, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return n
}

func TestParseVariableDeclaration(t *testing.T) {
	prog := mustParse(t, "let x = 1;")
	if len(prog.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(prog.Body))
	}
	decl := prog.Body[0]
	if decl.Kind != ast.VariableDeclaration {
		t.Fatalf("Kind = %v, want VariableDeclaration", decl.Kind)
	}
	if decl.Kind_ != "let" {
		t.Errorf("Kind_ = %q, want %q", decl.Kind_, "let")
	}
	if len(decl.Declarations) != 1 || decl.Declarations[0].Id.Name_ != "x" {
		t.Errorf("unexpected declarator shape: %+v", decl.Declarations)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog := mustParse(t, "a || b && c;")
	expr := prog.Body[0].Expr
	if expr.Kind != ast.LogicalExpression || expr.Operator != "||" {
		t.Fatalf("top operator = %v %q, want LogicalExpression ||", expr.Kind, expr.Operator)
	}
	if expr.Right.Operator != "&&" {
		t.Errorf("right operand operator = %q, want &&", expr.Right.Operator)
	}
}

func TestParseIfElse(t *testing.T) {
	prog := mustParse(t, "if (a) { b(); } else { c(); }")
	stmt := prog.Body[0]
	if stmt.Kind != ast.IfStatement {
		t.Fatalf("Kind = %v, want IfStatement", stmt.Kind)
	}
	if stmt.Alternate == nil || stmt.Alternate.Kind != ast.BlockStatement {
		t.Errorf("Alternate = %+v, want a BlockStatement", stmt.Alternate)
	}
}

func TestParseArrowFunction(t *testing.T) {
	prog := mustParse(t, "const f = (x, y) => x + y;")
	init := prog.Body[0].Declarations[0].Init
	if init.Kind != ast.ArrowFunctionExpression {
		t.Fatalf("Kind = %v, want ArrowFunctionExpression", init.Kind)
	}
	if len(init.Params) != 2 {
		t.Errorf("len(Params) = %d, want 2", len(init.Params))
	}
	if init.Expr == nil || init.Expr.Kind != ast.BinaryExpression {
		t.Errorf("Expr = %+v, want a bare BinaryExpression body", init.Expr)
	}
}

func TestParseCallMemberChain(t *testing.T) {
	prog := mustParse(t, "a.b.c(1, 2).d;")
	expr := prog.Body[0].Expr
	if expr.Kind != ast.MemberExpression {
		t.Fatalf("Kind = %v, want MemberExpression", expr.Kind)
	}
	if expr.Object.Kind != ast.CallExpression {
		t.Errorf("Object.Kind = %v, want CallExpression", expr.Object.Kind)
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog := mustParse(t, "function add(a, b) { return a + b; }")
	fn := prog.Body[0]
	if fn.Kind != ast.FunctionDeclaration {
		t.Fatalf("Kind = %v, want FunctionDeclaration", fn.Kind)
	}
	if fn.Id.Name_ != "add" {
		t.Errorf("Id.Name_ = %q, want %q", fn.Id.Name_, "add")
	}
	if len(fn.Params) != 2 {
		t.Errorf("len(Params) = %d, want 2", len(fn.Params))
	}
}

func TestParseClassWithMethod(t *testing.T) {
	prog := mustParse(t, "class Point { constructor(x) { this.x = x; } get x() { return this.x; } }")
	cls := prog.Body[0]
	if cls.Kind != ast.ClassDeclaration {
		t.Fatalf("Kind = %v, want ClassDeclaration", cls.Kind)
	}
	body := cls.Body[0]
	if len(body.Body) != 2 {
		t.Fatalf("len(ClassBody.Body) = %d, want 2", len(body.Body))
	}
	if body.Body[0].Kind_ != "constructor" {
		t.Errorf("first member Kind_ = %q, want constructor", body.Body[0].Kind_)
	}
	if body.Body[1].Kind_ != "get" {
		t.Errorf("second member Kind_ = %q, want get", body.Body[1].Kind_)
	}
}

func TestParseObjectAndArrayLiterals(t *testing.T) {
	prog := mustParse(t, "const o = { a: 1, b, ...c };")
	obj := prog.Body[0].Declarations[0].Init
	if obj.Kind != ast.ObjectExpression {
		t.Fatalf("Kind = %v, want ObjectExpression", obj.Kind)
	}
	if len(obj.Properties) != 3 {
		t.Fatalf("len(Properties) = %d, want 3", len(obj.Properties))
	}
	if !obj.Properties[1].Shorthand {
		t.Errorf("second property should be shorthand")
	}
	if obj.Properties[2].Kind != ast.SpreadElement {
		t.Errorf("third property Kind = %v, want SpreadElement", obj.Properties[2].Kind)
	}
}

func TestParseImportExport(t *testing.T) {
	prog := mustParse(t, `import { a, b as c } from "mod";
export { a };
export default function () {}`)
	if len(prog.Body) != 3 {
		t.Fatalf("len(Body) = %d, want 3", len(prog.Body))
	}
	imp := prog.Body[0]
	if imp.Kind != ast.ImportDeclaration || len(imp.Specifiers) != 2 {
		t.Fatalf("unexpected import shape: %+v", imp)
	}
	exp := prog.Body[2]
	if exp.Kind != ast.ExportDefaultDeclaration {
		t.Fatalf("Kind = %v, want ExportDefaultDeclaration", exp.Kind)
	}
}

func TestParseTemplateLiteral(t *testing.T) {
	prog := mustParse(t, "const s = `hi ${name}!`;")
	tmpl := prog.Body[0].Declarations[0].Init
	if tmpl.Kind != ast.TemplateLiteral {
		t.Fatalf("Kind = %v, want TemplateLiteral", tmpl.Kind)
	}
	if len(tmpl.Quasis) != 2 || len(tmpl.Expressions) != 1 {
		t.Fatalf("quasis/expressions = %d/%d, want 2/1", len(tmpl.Quasis), len(tmpl.Expressions))
	}
}

func TestParseCommentsCollected(t *testing.T) {
	_, comments, err := Parse("// hello\nlet x = 1;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("len(comments) = %d, want 1", len(comments))
	}
	if comments[0].Kind != ast.LineComment {
		t.Errorf("Kind = %v, want LineComment", comments[0].Kind)
	}
}

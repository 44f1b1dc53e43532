package comments

import (
	"testing"

	"github.com/jsfmt/jsfmt/internal/ast"
)

func TestAttachLeadingComment(t *testing.T) {
	stmt := &ast.Node{Kind: ast.ExpressionStatement, Start: 20, End: 30}
	root := &ast.Node{Kind: ast.Program, Start: 0, End: 30, Body: []*ast.Node{stmt}}

	c := &ast.Comment{Text: "// leading", Kind: ast.LineComment, Start: 0, End: 10, OwnLine: true}
	Attach(root, []*ast.Comment{c})

	if len(stmt.LeadingComments) != 1 || stmt.LeadingComments[0] != c {
		t.Fatalf("comment not attached as leading to stmt: %+v", stmt.LeadingComments)
	}
	if c.Placement != ast.Leading {
		t.Errorf("Placement = %v, want Leading", c.Placement)
	}
}

func TestAttachTrailingComment(t *testing.T) {
	stmt := &ast.Node{Kind: ast.ExpressionStatement, Start: 0, End: 10}
	root := &ast.Node{Kind: ast.Program, Start: 0, End: 30, Body: []*ast.Node{stmt}}

	c := &ast.Comment{Text: "// trailing", Kind: ast.LineComment, Start: 11, End: 22, OwnLine: false}
	Attach(root, []*ast.Comment{c})

	if len(stmt.TrailingComments) != 1 {
		t.Fatalf("comment not attached as trailing to stmt: leading=%v trailing=%v", stmt.LeadingComments, stmt.TrailingComments)
	}
	if c.Placement != ast.Trailing {
		t.Errorf("Placement = %v, want Trailing", c.Placement)
	}
}

func TestAttachDanglingInEmptyBlock(t *testing.T) {
	block := &ast.Node{Kind: ast.BlockStatement, Start: 0, End: 10}
	root := &ast.Node{Kind: ast.Program, Start: 0, End: 10, Body: []*ast.Node{block}}

	c := &ast.Comment{Text: "// dangling", Kind: ast.LineComment, Start: 1, End: 9}
	Attach(root, []*ast.Comment{c})

	if len(block.DanglingComments) != 1 {
		t.Fatalf("comment not attached as dangling to empty block: %+v", block.DanglingComments)
	}
	if c.Placement != ast.Dangling {
		t.Errorf("Placement = %v, want Dangling", c.Placement)
	}
}

func TestCheckAllPrintedCatchesUnprinted(t *testing.T) {
	stmt := &ast.Node{Kind: ast.ExpressionStatement}
	stmt.LeadingComments = []*ast.Comment{{Text: "// oops", Printed: false}}
	root := &ast.Node{Kind: ast.Program, Body: []*ast.Node{stmt}}

	err := CheckAllPrinted(root)
	if err == nil {
		t.Fatal("CheckAllPrinted() = nil, want ErrUnprintedComment")
	}
}

func TestCheckAllPrintedPassesWhenPrinted(t *testing.T) {
	stmt := &ast.Node{Kind: ast.ExpressionStatement}
	stmt.LeadingComments = []*ast.Comment{{Text: "// ok", Printed: true}}
	root := &ast.Node{Kind: ast.Program, Body: []*ast.Node{stmt}}

	if err := CheckAllPrinted(root); err != nil {
		t.Fatalf("CheckAllPrinted() = %v, want nil", err)
	}
}

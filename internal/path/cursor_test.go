package path

import (
	"testing"

	"github.com/jsfmt/jsfmt/internal/ast"
)

func TestCursorCallRestoresStack(t *testing.T) {
	root := &ast.Node{Kind: ast.BinaryExpression}
	left := &ast.Node{Kind: ast.Identifier, Name_: "a"}
	root.Left = left

	c := New(root)
	if got := c.GetValue(); got != root {
		t.Fatalf("GetValue() at root = %v, want root", got)
	}

	c.Call(left, "left", func() {
		if got := c.GetValue(); got != left {
			t.Fatalf("GetValue() inside Call = %v, want left", got)
		}
		if got := c.GetName(); got != "left" {
			t.Fatalf("GetName() inside Call = %q, want %q", got, "left")
		}
		if got := c.GetParentNode(0); got != root {
			t.Fatalf("GetParentNode(0) inside Call = %v, want root", got)
		}
	})

	if got := c.GetValue(); got != root {
		t.Fatalf("GetValue() after Call = %v, want root (stack not restored)", got)
	}
	if c.Depth() != 1 {
		t.Fatalf("Depth() after Call = %d, want 1", c.Depth())
	}
}

func TestCursorCallRestoresStackOnPanic(t *testing.T) {
	root := &ast.Node{Kind: ast.BinaryExpression}
	child := &ast.Node{Kind: ast.Identifier}

	c := New(root)

	func() {
		defer func() { recover() }()
		c.Call(child, "left", func() {
			panic("boom")
		})
	}()

	if c.Depth() != 1 {
		t.Fatalf("Depth() after panicking Call = %d, want 1", c.Depth())
	}
	if c.GetValue() != root {
		t.Fatalf("GetValue() after panicking Call = %v, want root", c.GetValue())
	}
}

func TestCursorEachAndMap(t *testing.T) {
	root := &ast.Node{Kind: ast.ArrayExpression}
	root.Elements = []*ast.Node{
		{Kind: ast.NumericLiteral, Raw: "1"},
		{Kind: ast.NumericLiteral, Raw: "2"},
		{Kind: ast.NumericLiteral, Raw: "3"},
	}

	c := New(root)
	c.Call(root, "", func() {
		var seen []string
		c.Each(root.Elements, "elements", func(i int) {
			seen = append(seen, c.GetValue().Raw)
		})
		if len(seen) != 3 || seen[0] != "1" || seen[2] != "3" {
			t.Fatalf("Each visited %v, want [1 2 3]", seen)
		}

		mapped := Map(c, root.Elements, "elements", func(i int) string {
			return c.GetValue().Raw
		})
		if len(mapped) != 3 || mapped[1] != "2" {
			t.Fatalf("Map() = %v", mapped)
		}
	})

	if c.Depth() != 1 {
		t.Fatalf("Depth() after nested traversal = %d, want 1", c.Depth())
	}
}

// Package path implements the traversal cursor described in spec.md §3
// and §4.2: a stack of alternating (propertyName, value) frames rooted
// at the AST, single-threaded and confined to one format call. It
// borrows the tree for the call's duration and never retains state
// across Call/Each/Map boundaries: never mutate the input, restore on
// all exit paths.
package path

import "github.com/jsfmt/jsfmt/internal/ast"

// frame is one (propertyName, node) pair on the cursor's stack.
type frame struct {
	name string
	node *ast.Node
}

// Cursor maintains the current node and its ancestor chain during a
// single traversal.
type Cursor struct {
	stack []frame
}

// New returns a cursor rooted at root, with no property name (the root
// has no parent slot it was reached through).
func New(root *ast.Node) *Cursor {
	return &Cursor{stack: []frame{{name: "", node: root}}}
}

// GetValue returns the current node.
func (c *Cursor) GetValue() *ast.Node {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1].node
}

// GetName returns the property name the current node was reached
// through (e.g. "callee", "left"), or "" at the root.
func (c *Cursor) GetName() string {
	if len(c.stack) == 0 {
		return ""
	}
	return c.stack[len(c.stack)-1].name
}

// GetNode returns the k-th nearest ancestor that is a node (k=0 is the
// current node itself, k=1 its parent, and so on).
func (c *Cursor) GetNode(k int) *ast.Node {
	idx := len(c.stack) - 1 - k
	if idx < 0 || idx >= len(c.stack) {
		return nil
	}
	return c.stack[idx].node
}

// GetParentNode returns the k-th ancestor above the current node
// (k=0 is the immediate parent).
func (c *Cursor) GetParentNode(k int) *ast.Node {
	return c.GetNode(k + 1)
}

// Depth returns the number of frames on the stack (1 at the root).
func (c *Cursor) Depth() int {
	return len(c.stack)
}

// Replace swaps the node occupying the current frame without touching
// its name or parent, letting a caller make a wrapper node (e.g. a
// redundant grouping paren) transparent to ancestry: whoever reads
// GetParentNode/GetName afterward sees the real surrounding context
// the wrapper stood in, not a frame of its own.
func (c *Cursor) Replace(node *ast.Node) {
	if len(c.stack) == 0 {
		return
	}
	c.stack[len(c.stack)-1].node = node
}

// Call pushes (name, value) and invokes cb with the cursor positioned on
// value; the frame is popped afterward on every exit path, including a
// panic unwind triggered by a buggy translator arm, so a caller further
// up the stack never observes a cursor left mid-traversal.
func (c *Cursor) Call(value *ast.Node, name string, cb func()) {
	c.stack = append(c.stack, frame{name: name, node: value})
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
	}()
	cb()
}

// Each iterates values, positioning the cursor on each element in turn
// under the plain property name name (no index is appended), restoring
// the stack after every iteration.
func (c *Cursor) Each(values []*ast.Node, name string, cb func(i int)) {
	for i, v := range values {
		c.Call(v, name, func() { cb(i) })
	}
}

// Map is Each with a collected per-element result.
func Map[T any](c *Cursor, values []*ast.Node, name string, cb func(i int) T) []T {
	out := make([]T, len(values))
	c.Each(values, name, func(i int) {
		out[i] = cb(i)
	})
	return out
}

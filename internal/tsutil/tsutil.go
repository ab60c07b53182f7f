// Package tsutil collects small tree-sitter node helpers shared by the
// Kotlin and Java extraction pipelines: text extraction, 1-based
// line/column conversion, and the recursive child-finding helpers both
// pipelines need when walking a parse tree by node kind.
package tsutil

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kjnav/kjnav/internal/symbols"
)

// Text returns the raw source text spanned by node.
func Text(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return node.Content(source)
}

// Position converts node's start point to the 1-based (line, column) the
// symbol model requires; tree-sitter points are 0-based.
func Position(node *sitter.Node) (line, column int) {
	p := node.StartPoint()
	return int(p.Row) + 1, int(p.Column) + 1
}

// Range returns node's byte span as a symbols.ByteRange.
func Range(node *sitter.Node) symbols.ByteRange {
	return symbols.ByteRange{Start: node.StartByte(), End: node.EndByte()}
}

// NamedChildren returns node's named children in order.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	n := int(node.NamedChildCount())
	out := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, node.NamedChild(i))
	}
	return out
}

// Children returns node's children (named and anonymous) in order.
func Children(node *sitter.Node) []*sitter.Node {
	n := int(node.ChildCount())
	out := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, node.Child(i))
	}
	return out
}

// FirstNamedChild returns node's first named child, or nil.
func FirstNamedChild(node *sitter.Node) *sitter.Node {
	if node.NamedChildCount() == 0 {
		return nil
	}
	return node.NamedChild(0)
}

// LastNamedChild returns node's last named child, or nil.
func LastNamedChild(node *sitter.Node) *sitter.Node {
	n := node.NamedChildCount()
	if n == 0 {
		return nil
	}
	return node.NamedChild(int(n) - 1)
}

// FindChildOfType returns the first direct child of node with the given
// type, or nil.
func FindChildOfType(node *sitter.Node, typ string) *sitter.Node {
	for _, c := range Children(node) {
		if c.Type() == typ {
			return c
		}
	}
	return nil
}

// HasChildOfType reports whether node has a direct child of the given
// type.
func HasChildOfType(node *sitter.Node, typ string) bool {
	return FindChildOfType(node, typ) != nil
}

// FindDescendant walks node's subtree depth-first and returns the first
// node for which match returns true. node itself is not tested.
func FindDescendant(node *sitter.Node, match func(*sitter.Node) bool) *sitter.Node {
	for _, c := range Children(node) {
		if match(c) {
			return c
		}
		if found := FindDescendant(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FieldChild returns node's child bound to the given grammar field name,
// or nil if the field is absent.
func FieldChild(node *sitter.Node, field string) *sitter.Node {
	return node.ChildByFieldName(field)
}

// IndexOfChild returns the position of child among node's direct
// children, or -1 if child is not a direct child of node.
func IndexOfChild(node, child *sitter.Node) int {
	for i, c := range Children(node) {
		if c.StartByte() == child.StartByte() && c.EndByte() == child.EndByte() && c.Type() == child.Type() {
			return i
		}
	}
	return -1
}

package odf

import (
	"iter"
)

// Node is an element of an Objects tree.
//
// A Node owns its children; trees carry no parent pointers, so a subtree
// can be handed across package boundaries without dragging its context.
type Node struct {
	Kind        Kind
	ID          string
	Description string
	Value       *Value
	Children    []*Node
}

// Objects returns a new root node holding children.
func Objects(children ...*Node) *Node {
	return &Node{Kind: ObjectsKind, ID: RootID, Children: children}
}

// Object returns a new Object node.
func Object(id string, children ...*Node) *Node {
	return &Node{Kind: ObjectKind, ID: id, Children: children}
}

// InfoItem returns a new InfoItem node. v may be nil.
func InfoItem(name string, v *Value, metadata ...*Node) *Node {
	return &Node{Kind: InfoItemKind, ID: name, Value: v, Children: metadata}
}

func (n *Node) WithDescription(d string) *Node {
	n.Description = d
	return n
}

// Child returns the direct child with the given id.
func (n *Node) Child(id string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Kind:        n.Kind,
		ID:          n.ID,
		Description: n.Description,
		Value:       n.Value.Clone(),
	}
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Equal reports whether a and b are structurally equal. Child order is
// significant.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.ID != b.ID || a.Description != b.Description {
		return false
	}
	if !a.Value.Equal(b.Value) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// HasValue reports whether n or any of its descendants carries a value.
func (n *Node) HasValue() bool {
	if n == nil {
		return false
	}
	if n.Value != nil {
		return true
	}
	for _, c := range n.Children {
		if c.HasValue() {
			return true
		}
	}
	return false
}

// Leaves iterates the childless nodes under root in document order,
// together with their paths.
func Leaves(root *Node) iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if root == nil {
			return
		}
		leaves(root, JoinPath(root.ID), yield)
	}
}

func leaves(n *Node, path string, yield func(string, *Node) bool) bool {
	if len(n.Children) == 0 {
		return yield(path, n)
	}
	for _, c := range n.Children {
		if !leaves(c, path+"/"+EscapeID(c.ID), yield) {
			return false
		}
	}
	return true
}

// Values iterates the value-bearing nodes under root with their paths.
func Values(root *Node) iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if root == nil {
			return
		}
		values(root, JoinPath(root.ID), yield)
	}
}

func values(n *Node, path string, yield func(string, *Node) bool) bool {
	if n.Value != nil && !yield(path, n) {
		return false
	}
	for _, c := range n.Children {
		if !values(c, path+"/"+EscapeID(c.ID), yield) {
			return false
		}
	}
	return true
}

// Resolver resolves path references against a node store.
type Resolver interface {
	Resolve(path string) (*Node, error)
}

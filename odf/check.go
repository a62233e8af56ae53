package odf

import (
	"strconv"
	"time"
	"unicode/utf8"
)

// Check verifies the tree constraints of the tree rooted at root and
// returns the first violation as a StructuralError. A nil root is valid.
func Check(root *Node) error {
	if root == nil {
		return nil
	}
	if root.Kind != ObjectsKind || root.ID != RootID {
		return &StructuralError{Path: EscapeID(root.ID), Reason: "root must be " + RootID}
	}
	if root.Description != "" {
		return &StructuralError{Path: RootID, Reason: RootID + " cannot carry a description"}
	}
	c := &checker{
		ancestors: map[*Node]bool{},
		seen:      map[*Node]bool{},
	}
	return c.check(root, RootID)
}

type checker struct {
	ancestors map[*Node]bool
	seen      map[*Node]bool
}

func (c *checker) check(n *Node, path string) error {
	if c.ancestors[n] {
		return &StructuralError{Path: path, Reason: "node is its own ancestor"}
	}
	if c.seen[n] {
		return &StructuralError{Path: path, Reason: "node appears more than once"}
	}
	c.seen[n] = true
	c.ancestors[n] = true
	defer delete(c.ancestors, n)

	if err := c.checkSelf(n, path); err != nil {
		return err
	}
	ids := make(map[string]bool, len(n.Children))
	for i, k := range n.Children {
		if k == nil {
			return &StructuralError{Path: path, Reason: "nil child"}
		}
		if k.ID == "" {
			return &StructuralError{Path: path, Reason: "child " + strconv.Itoa(i) + " has an empty id"}
		}
		kp := path + "/" + EscapeID(k.ID)
		if ids[k.ID] {
			return &StructuralError{Path: kp, Reason: "duplicate id among siblings"}
		}
		ids[k.ID] = true
		if err := checkChildKind(n, k, kp); err != nil {
			return err
		}
		if err := c.check(k, kp); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) checkSelf(n *Node, path string) error {
	if !ValidText(n.ID) || !ValidText(n.Description) {
		return &StructuralError{Path: path, Reason: "invalid character"}
	}
	if n.Value == nil {
		return nil
	}
	if n.Kind != InfoItemKind {
		return &StructuralError{Path: path, Reason: n.Kind.String() + " cannot carry a value"}
	}
	if !ValidText(n.Value.Type) || !ValidText(n.Value.Text) {
		return &StructuralError{Path: path, Reason: "invalid character in value"}
	}
	if !n.Value.Time.IsZero() && !ValidTime(n.Value.Time) {
		return &StructuralError{Path: path, Reason: "timestamp not representable in RFC 3339"}
	}
	if err := n.Value.Check(); err != nil {
		return &StructuralError{Path: path, Reason: "malformed value", Err: err}
	}
	return nil
}

func checkChildKind(p, k *Node, path string) error {
	switch {
	case k.Kind == ObjectsKind:
		return &StructuralError{Path: path, Reason: RootID + " below the root"}
	case p.Kind == ObjectsKind && k.Kind != ObjectKind:
		return &StructuralError{Path: path, Reason: "root children must be Objects"}
	case p.Kind == InfoItemKind && k.Kind != InfoItemKind:
		return &StructuralError{Path: path, Reason: "InfoItem metadata must be InfoItems"}
	}
	return nil
}

// ValidText reports whether s can be carried in XML character data.
func ValidText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// ValidTime reports whether t survives an RFC 3339 round trip: a four digit
// year and a zone offset in whole minutes below 24 hours.
func ValidTime(t time.Time) bool {
	if y := t.Year(); y < 0 || y > 9999 {
		return false
	}
	_, off := t.Zone()
	return off%60 == 0 && off > -24*3600 && off < 24*3600
}

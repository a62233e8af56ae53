package odf

import "github.com/signadot/go-omi/debug"

// Merge merges two trees rooted at nodes with the same identifier and kind.
//
// Children are unioned by identifier: a's children keep their order and b's
// new children are appended. Children with the same identifier are merged
// recursively. Two different values for the same node are a MergeConflict;
// so are differing kinds and differing non-empty descriptions. The result
// shares no nodes with a or b.
func Merge(a, b *Node) (*Node, error) {
	switch {
	case a == nil:
		return b.Clone(), nil
	case b == nil:
		return a.Clone(), nil
	}
	res, err := merge(a, b, EscapeID(a.ID))
	if err != nil && debug.Merge() {
		debug.Logf("odf.Merge: %v\n", err)
	}
	return res, err
}

func merge(a, b *Node, path string) (*Node, error) {
	if a.ID != b.ID {
		return nil, &MergeConflict{Path: path, Reason: "identifiers differ: " + a.ID + " != " + b.ID}
	}
	if a.Kind != b.Kind {
		return nil, &MergeConflict{Path: path, Reason: "kinds differ: " + a.Kind.String() + " != " + b.Kind.String()}
	}
	res := &Node{Kind: a.Kind, ID: a.ID, Description: a.Description}
	if b.Description != "" {
		if a.Description != "" && a.Description != b.Description {
			return nil, &MergeConflict{Path: path, Reason: "descriptions differ"}
		}
		res.Description = b.Description
	}
	switch {
	case a.Value == nil:
		res.Value = b.Value.Clone()
	case b.Value != nil && !a.Value.Equal(b.Value):
		return nil, &MergeConflict{Path: path, Reason: "values differ"}
	default:
		res.Value = a.Value.Clone()
	}
	n := len(a.Children) + len(b.Children)
	if n == 0 {
		return res, nil
	}
	res.Children = make([]*Node, 0, n)
	at := make(map[string]int, n)
	for _, kids := range [][]*Node{a.Children, b.Children} {
		for _, c := range kids {
			i, ok := at[c.ID]
			if !ok {
				at[c.ID] = len(res.Children)
				res.Children = append(res.Children, c.Clone())
				continue
			}
			m, err := merge(res.Children[i], c, path+"/"+EscapeID(c.ID))
			if err != nil {
				return nil, err
			}
			res.Children[i] = m
		}
	}
	return res, nil
}

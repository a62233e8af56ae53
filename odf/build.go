package odf

import "errors"

// BuildNode builds a node from its parts.
//
// It fails with a StructuralError if id is empty, if a root node is not
// named "Objects" or if a child is nil. Direct children sharing an
// identifier are merged; when their values conflict the merge is ambiguous
// and BuildNode fails with a StructuralError wrapping the MergeConflict.
func BuildNode(kind Kind, id, description string, value *Value, children ...*Node) (*Node, error) {
	if id == "" {
		return nil, &StructuralError{Reason: "empty id"}
	}
	if kind == ObjectsKind && id != RootID {
		return nil, &StructuralError{Path: EscapeID(id), Reason: "root must be named " + RootID}
	}
	path := EscapeID(id)
	res := &Node{Kind: kind, ID: id, Description: description, Value: value}
	if len(children) == 0 {
		return res, nil
	}
	res.Children = make([]*Node, 0, len(children))
	at := make(map[string]int, len(children))
	for _, c := range children {
		if c == nil {
			return nil, &StructuralError{Path: path, Reason: "nil child"}
		}
		if c.ID == "" {
			return nil, &StructuralError{Path: path, Reason: "child with empty id"}
		}
		i, ok := at[c.ID]
		if !ok {
			at[c.ID] = len(res.Children)
			res.Children = append(res.Children, c)
			continue
		}
		m, err := merge(res.Children[i], c, path+"/"+EscapeID(c.ID))
		if err != nil {
			reason := "ambiguous merge"
			var mc *MergeConflict
			if errors.As(err, &mc) {
				return nil, &StructuralError{Path: mc.Path, Reason: reason, Err: err}
			}
			return nil, &StructuralError{Path: path, Reason: reason, Err: err}
		}
		res.Children[i] = m
	}
	return res, nil
}

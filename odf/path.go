package odf

import (
	"fmt"
	"strings"
)

// EscapeID escapes an identifier for use as a single path segment.
// Slashes and backslashes are prefixed with a backslash.
func EscapeID(id string) string {
	if !strings.ContainsAny(id, `/\`) {
		return id
	}
	var b strings.Builder
	for _, r := range id {
		if r == '/' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// JoinPath joins identifiers into a path.
func JoinPath(ids ...string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = EscapeID(id)
	}
	return strings.Join(parts, "/")
}

// SplitPath splits a path into unescaped identifiers. Leading and trailing
// slashes are ignored.
func SplitPath(p string) ([]string, error) {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil, nil
	}
	var (
		res []string
		cur strings.Builder
		esc bool
	)
	for _, r := range p {
		switch {
		case esc:
			cur.WriteRune(r)
			esc = false
		case r == '\\':
			esc = true
		case r == '/':
			if cur.Len() == 0 {
				return nil, fmt.Errorf("%w: empty segment in path %q", ErrStructure, p)
			}
			res = append(res, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if esc {
		return nil, fmt.Errorf("%w: dangling escape in path %q", ErrStructure, p)
	}
	if cur.Len() == 0 {
		// trailing slash
		return res, nil
	}
	return append(res, cur.String()), nil
}

// Lookup finds the node at path under root. A leading "Objects" segment is
// accepted when root is an Objects tree.
func Lookup(root *Node, path string) (*Node, error) {
	ids, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, &NotFound{Path: path}
	}
	if root.Kind == ObjectsKind && len(ids) > 0 && ids[0] == RootID {
		ids = ids[1:]
	}
	cur := root
	for _, id := range ids {
		cur = cur.Child(id)
		if cur == nil {
			return nil, &NotFound{Path: path}
		}
	}
	return cur, nil
}

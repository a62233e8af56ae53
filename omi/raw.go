package omi

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Raw is an opaque extension element. XML is the serialized element,
// including the namespace declarations it needs to stand on its own.
//
// XML must be in canonical form: a single element, as etree writes it, with
// nothing before or after it. NewRaw produces that form from any well formed
// element.
type Raw struct {
	Namespace string
	Name      string
	XML       string
}

var ErrRaw = errors.New("bad extension element")

// NewRaw returns the extension element serialized in s. Name and Namespace
// are taken from the root element, whose namespace must be declared on the
// root itself.
func NewRaw(s string) (Raw, error) {
	root, err := rawRoot(s)
	if err != nil {
		return Raw{}, err
	}
	ns := rawNamespace(root)
	if ns == "" {
		return Raw{}, fmt.Errorf("%w: %s declares no namespace", ErrRaw, root.Tag)
	}
	c, err := canonical(root)
	if err != nil {
		return Raw{}, err
	}
	return Raw{Namespace: ns, Name: root.Tag, XML: c}, nil
}

// rawRoot parses s, which must hold exactly one element and no other
// top level content.
func rawRoot(s string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRaw, err)
	}
	if len(doc.Child) != 1 {
		return nil, fmt.Errorf("%w: content outside the element", ErrRaw)
	}
	root, ok := doc.Child[0].(*etree.Element)
	if !ok {
		return nil, fmt.Errorf("%w: not an element", ErrRaw)
	}
	return root, nil
}

func canonical(root *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(root.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRaw, err)
	}
	return s, nil
}

func rawNamespace(root *etree.Element) string {
	for _, a := range root.Attr {
		switch {
		case root.Space == "" && a.Space == "" && a.Key == "xmlns":
			return a.Value
		case root.Space != "" && a.Space == "xmlns" && a.Key == root.Space:
			return a.Value
		}
	}
	return ""
}

func (r Raw) check(path string) error {
	switch {
	case r.Namespace == "":
		return invalid(RuleRequired, path, "extension element without namespace")
	case r.Name == "":
		return invalid(RuleRequired, path, "extension element without name")
	case r.XML == "":
		return invalid(RuleRequired, path, "empty extension element "+r.Name)
	}
	root, err := rawRoot(r.XML)
	if err != nil {
		return &ValidationError{Rule: RuleRequired, Path: path, Reason: "malformed extension element " + r.Name, Err: err}
	}
	if root.Tag != r.Name {
		return invalid(RuleRequired, path, "extension element "+root.Tag+" claims name "+r.Name)
	}
	if ns := rawNamespace(root); ns != r.Namespace {
		return invalid(RuleRequired, path, fmt.Sprintf("extension element %s declares namespace %q, want %q", r.Name, ns, r.Namespace))
	}
	c, err := canonical(root)
	if err != nil {
		return &ValidationError{Rule: RuleRequired, Path: path, Reason: "malformed extension element " + r.Name, Err: err}
	}
	if c != r.XML {
		return invalid(RuleRequired, path, "extension element "+r.Name+" is not in canonical form")
	}
	return nil
}

package omi

import "github.com/signadot/go-omi/odf"

// Msg is the content of a msg element: an optional Objects tree plus
// extension elements from foreign namespaces, kept verbatim.
type Msg struct {
	Objects *odf.Node
	Raw     []Raw
}

// ObjectsMsg returns a Msg carrying root.
func ObjectsMsg(root *odf.Node) *Msg {
	return &Msg{Objects: root}
}

func (m *Msg) objects() *odf.Node {
	if m == nil {
		return nil
	}
	return m.Objects
}

func (m *Msg) check(path string) error {
	if m == nil {
		return nil
	}
	for _, r := range m.Raw {
		if err := r.check(path); err != nil {
			return err
		}
	}
	return nil
}

package parse

import (
	"github.com/beevik/etree"
	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/wire"
)

// msg decodes the extension point of the envelope: an optional Objects
// tree plus elements from foreign namespaces, which are kept as omi.Raw.
func (dec *decoder) msg(el *etree.Element, path string) (*omi.Msg, error) {
	if _, err := dec.attrs(el, path); err != nil {
		return nil, err
	}
	m := &omi.Msg{}
	err := dec.children(el, path, func(c *etree.Element, cp string) error {
		ns, err := namespaceOf(c, cp)
		if err != nil {
			return err
		}
		switch ns {
		case dec.ns.ODF:
			if c.Tag != wire.ElemObjects {
				return unexpected(cp)
			}
			if m.Objects != nil {
				return duplicate(cp)
			}
			m.Objects, err = dec.objects(c, cp)
			return err
		case dec.ns.OMI, "":
			return unexpected(cp)
		}
		r, err := captureRaw(c, ns, cp)
		if err != nil {
			return err
		}
		m.Raw = append(m.Raw, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (dec *decoder) objects(el *etree.Element, path string) (*odf.Node, error) {
	if _, err := dec.attrs(el, path); err != nil {
		return nil, err
	}
	root := odf.Objects()
	err := dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.expect(c, cp, dec.ns.ODF, wire.ElemObject); err != nil {
			return err
		}
		n, err := dec.object(c, cp)
		if err != nil {
			return err
		}
		root.Children = append(root.Children, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (dec *decoder) object(el *etree.Element, path string) (*odf.Node, error) {
	if _, err := dec.attrs(el, path); err != nil {
		return nil, err
	}
	n := &odf.Node{Kind: odf.ObjectKind}
	seenID, seenDesc := false, false
	err := dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.inNS(c, cp, dec.ns.ODF); err != nil {
			return err
		}
		switch c.Tag {
		case wire.ElemID:
			if seenID {
				return duplicate(cp)
			}
			seenID = true
			id, err := dec.text(c, cp)
			n.ID = id
			return err
		case wire.ElemDescription:
			if seenDesc {
				return duplicate(cp)
			}
			seenDesc = true
			d, err := dec.text(c, cp)
			n.Description = d
			return err
		case wire.ElemObject:
			k, err := dec.object(c, cp)
			n.Children = append(n.Children, k)
			return err
		case wire.ElemInfoItem:
			k, err := dec.infoItem(c, cp)
			n.Children = append(n.Children, k)
			return err
		}
		return unexpected(cp)
	})
	if err != nil {
		return nil, err
	}
	if !seenID {
		return nil, wire.Errorf(path, reasonMissing+" "+wire.ElemID, nil)
	}
	return n, nil
}

func (dec *decoder) infoItem(el *etree.Element, path string) (*odf.Node, error) {
	attrs, err := dec.attrs(el, path, wire.AttrName)
	if err != nil {
		return nil, err
	}
	name, ok := attrs[wire.AttrName]
	if !ok {
		return nil, wire.Errorf(path, reasonMissingAttr+" "+wire.AttrName, nil)
	}
	n := &odf.Node{Kind: odf.InfoItemKind, ID: name}
	seenDesc, seenMeta := false, false
	err = dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.inNS(c, cp, dec.ns.ODF); err != nil {
			return err
		}
		switch c.Tag {
		case wire.ElemDescription:
			if seenDesc {
				return duplicate(cp)
			}
			seenDesc = true
			d, err := dec.text(c, cp)
			n.Description = d
			return err
		case wire.ElemMetaData:
			if seenMeta {
				return duplicate(cp)
			}
			seenMeta = true
			md, err := dec.metaData(c, cp)
			n.Children = md
			return err
		case wire.ElemValue:
			if n.Value != nil {
				return wire.Errorf(cp, "more than one value", nil)
			}
			v, err := dec.value(c, cp)
			n.Value = v
			return err
		}
		return unexpected(cp)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (dec *decoder) metaData(el *etree.Element, path string) ([]*odf.Node, error) {
	if _, err := dec.attrs(el, path); err != nil {
		return nil, err
	}
	var res []*odf.Node
	err := dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.expect(c, cp, dec.ns.ODF, wire.ElemInfoItem); err != nil {
			return err
		}
		n, err := dec.infoItem(c, cp)
		res = append(res, n)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (dec *decoder) value(el *etree.Element, path string) (*odf.Value, error) {
	attrs, err := dec.attrs(el, path, wire.AttrType, wire.AttrDateTime, wire.AttrUnixTime)
	if err != nil {
		return nil, err
	}
	v := &odf.Value{Type: attrs[wire.AttrType]}
	if v.Text, err = dec.chars(el, path); err != nil {
		return nil, err
	}
	if s, ok := attrs[wire.AttrDateTime]; ok {
		if v.Time, err = wire.ParseTime(s); err != nil {
			return nil, badAttr(path, wire.AttrDateTime, err)
		}
	}
	if s, ok := attrs[wire.AttrUnixTime]; ok {
		t, err := wire.ParseUnixTime(s)
		if err != nil {
			return nil, badAttr(path, wire.AttrUnixTime, err)
		}
		if !v.Time.IsZero() && !v.Time.Equal(t) {
			return nil, wire.Errorf(path, "conflicting timestamps", nil)
		}
		if v.Time.IsZero() {
			v.Time = t
		}
	}
	if err := v.Check(); err != nil {
		return nil, wire.Errorf(path, reasonBadValue, err)
	}
	return v, nil
}

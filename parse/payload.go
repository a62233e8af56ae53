package parse

import (
	"github.com/beevik/etree"
	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/wire"
)

var baseAttrs = []string{wire.AttrCallback, wire.AttrMsgFormat, wire.AttrTargetType}

func (dec *decoder) read(el *etree.Element, path string) (*omi.ReadRequest, error) {
	attrs, err := dec.attrs(el, path, append(baseAttrs,
		wire.AttrInterval, wire.AttrBegin, wire.AttrEnd, wire.AttrOldest, wire.AttrNewest)...)
	if err != nil {
		return nil, err
	}
	r := &omi.ReadRequest{}
	if err := baseFromAttrs(&r.RequestBase, attrs, path); err != nil {
		return nil, err
	}
	if v, ok := attrs[wire.AttrInterval]; ok {
		if r.Interval, err = omi.ParseInterval(v); err != nil {
			return nil, badAttr(path, wire.AttrInterval, err)
		}
	}
	if v, ok := attrs[wire.AttrBegin]; ok {
		if r.Begin, err = wire.ParseTime(v); err != nil {
			return nil, badAttr(path, wire.AttrBegin, err)
		}
	}
	if v, ok := attrs[wire.AttrEnd]; ok {
		if r.End, err = wire.ParseTime(v); err != nil {
			return nil, badAttr(path, wire.AttrEnd, err)
		}
	}
	if v, ok := attrs[wire.AttrOldest]; ok {
		if r.Oldest, err = wire.ParsePositive(v); err != nil {
			return nil, badAttr(path, wire.AttrOldest, err)
		}
	}
	if v, ok := attrs[wire.AttrNewest]; ok {
		if r.Newest, err = wire.ParsePositive(v); err != nil {
			return nil, badAttr(path, wire.AttrNewest, err)
		}
	}
	ids, err := dec.requestBody(el, path, &r.RequestBase)
	if err != nil {
		return nil, err
	}
	switch len(ids) {
	case 0:
	case 1:
		r.RequestID = ids[0]
	default:
		return nil, duplicate(path + "/" + wire.ElemRequestID + "[2]")
	}
	return r, nil
}

func (dec *decoder) write(el *etree.Element, path string) (*omi.WriteRequest, error) {
	attrs, err := dec.attrs(el, path, baseAttrs...)
	if err != nil {
		return nil, err
	}
	w := &omi.WriteRequest{}
	if err := baseFromAttrs(&w.RequestBase, attrs, path); err != nil {
		return nil, err
	}
	ids, err := dec.requestBody(el, path, &w.RequestBase)
	if err != nil {
		return nil, err
	}
	if len(ids) != 0 {
		return nil, unexpected(path + "/" + wire.ElemRequestID + "[1]")
	}
	return w, nil
}

func (dec *decoder) cancel(el *etree.Element, path string) (*omi.CancelRequest, error) {
	attrs, err := dec.attrs(el, path, baseAttrs...)
	if err != nil {
		return nil, err
	}
	c := &omi.CancelRequest{}
	if err := baseFromAttrs(&c.RequestBase, attrs, path); err != nil {
		return nil, err
	}
	if c.RequestIDs, err = dec.requestBody(el, path, &c.RequestBase); err != nil {
		return nil, err
	}
	return c, nil
}

func baseFromAttrs(b *omi.RequestBase, attrs map[string]string, path string) error {
	b.Callback = attrs[wire.AttrCallback]
	b.MsgFormat = attrs[wire.AttrMsgFormat]
	if v, ok := attrs[wire.AttrTargetType]; ok {
		tt, err := omi.ParseTargetType(v)
		if err != nil {
			return badAttr(path, wire.AttrTargetType, err)
		}
		b.TargetType = tt
	}
	return nil
}

// requestBody decodes the nodeList, requestID and msg children of a
// request and returns the request ids in document order.
func (dec *decoder) requestBody(el *etree.Element, path string, b *omi.RequestBase) ([]string, error) {
	var ids []string
	seenNodes := false
	err := dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.inNS(c, cp, dec.ns.OMI); err != nil {
			return err
		}
		switch c.Tag {
		case wire.ElemNodeList:
			if seenNodes {
				return duplicate(cp)
			}
			seenNodes = true
			nodes, err := dec.nodeList(c, cp)
			b.NodeList = nodes
			return err
		case wire.ElemRequestID:
			id, err := dec.text(c, cp)
			ids = append(ids, id)
			return err
		case wire.ElemMsg:
			if b.Msg != nil {
				return duplicate(cp)
			}
			m, err := dec.msg(c, cp)
			b.Msg = m
			return err
		}
		return unexpected(cp)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (dec *decoder) nodeList(el *etree.Element, path string) ([]string, error) {
	if _, err := dec.attrs(el, path); err != nil {
		return nil, err
	}
	var res []string
	err := dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.expect(c, cp, dec.ns.OMI, wire.ElemNode); err != nil {
			return err
		}
		p, err := dec.text(c, cp)
		res = append(res, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (dec *decoder) response(el *etree.Element, path string) (*omi.ResponseList, error) {
	if _, err := dec.attrs(el, path); err != nil {
		return nil, err
	}
	l := &omi.ResponseList{}
	err := dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.expect(c, cp, dec.ns.OMI, wire.ElemResult); err != nil {
			return err
		}
		r, err := dec.result(c, cp)
		if err != nil {
			return err
		}
		l.Results = append(l.Results, *r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (dec *decoder) result(el *etree.Element, path string) (*omi.Result, error) {
	attrs, err := dec.attrs(el, path, wire.AttrMsgFormat)
	if err != nil {
		return nil, err
	}
	r := &omi.Result{MsgFormat: attrs[wire.AttrMsgFormat]}
	seenReturn, seenID := false, false
	err = dec.children(el, path, func(c *etree.Element, cp string) error {
		if err := dec.inNS(c, cp, dec.ns.OMI); err != nil {
			return err
		}
		switch c.Tag {
		case wire.ElemReturn:
			if seenReturn {
				return duplicate(cp)
			}
			seenReturn = true
			ret, err := dec.ret(c, cp)
			r.Return = ret
			return err
		case wire.ElemRequestID:
			if seenID {
				return duplicate(cp)
			}
			seenID = true
			id, err := dec.text(c, cp)
			r.RequestID = id
			return err
		case wire.ElemMsg:
			if r.Msg != nil {
				return duplicate(cp)
			}
			m, err := dec.msg(c, cp)
			r.Msg = m
			return err
		}
		return unexpected(cp)
	})
	if err != nil {
		return nil, err
	}
	if !seenReturn {
		return nil, wire.Errorf(path, reasonMissing+" "+wire.ElemReturn, nil)
	}
	return r, nil
}

func (dec *decoder) ret(el *etree.Element, path string) (omi.Return, error) {
	attrs, err := dec.attrs(el, path, wire.AttrReturnCode, wire.AttrDescription)
	if err != nil {
		return omi.Return{}, err
	}
	if err := dec.empty(el, path); err != nil {
		return omi.Return{}, err
	}
	v, ok := attrs[wire.AttrReturnCode]
	if !ok {
		return omi.Return{}, wire.Errorf(path, reasonMissingAttr+" "+wire.AttrReturnCode, nil)
	}
	code, err := omi.ParseReturnCode(v)
	if err != nil {
		return omi.Return{}, badAttr(path, wire.AttrReturnCode, err)
	}
	return omi.Return{Code: code, Description: attrs[wire.AttrDescription]}, nil
}

// empty fails when el has element or non whitespace text content.
func (dec *decoder) empty(el *etree.Element, path string) error {
	return dec.children(el, path, func(_ *etree.Element, cp string) error {
		return unexpected(cp)
	})
}

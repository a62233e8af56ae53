package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/signadot/go-omi/debug"
	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/wire"
)

const declaration = `<?xml version="1.0" encoding="UTF-8"?>`

type EncState struct {
	indent      int
	declaration bool
	versions    []string
	namespaces  wire.Namespaces
	log         *slog.Logger

	depth   int
	started bool
	buf     bytes.Buffer

	Color func(ColorAttr, string) string
}

type attr struct {
	name, value string
}

// Encode validates env and writes it to w. Nothing is written when env is
// invalid.
func Encode(env *omi.Envelope, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := omi.Validate(env, omi.Versions(es.versions...), omi.Logger(es.log)); err != nil {
		return err
	}
	if err := es.envelope(env); err != nil {
		if debug.Encode() {
			debug.Logf("encode: %v\n", err)
		}
		es.log.Debug("encode failed", "kind", env.Kind(), "error", err)
		return err
	}
	if es.indent > 0 {
		es.buf.WriteByte('\n')
	}
	if debug.Encode() {
		debug.Logf("encode: %s envelope, %d bytes\n", env.Kind(), es.buf.Len())
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

// Marshal returns the encoding of env.
func Marshal(env *omi.Envelope, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(env, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (es *EncState) envelope(env *omi.Envelope) error {
	if es.declaration {
		es.buf.WriteString(es.color(PunctColor, declaration))
		es.started = true
	}
	es.start(wire.ElemEnvelope, []attr{
		{"xmlns", es.namespaces.OMI},
		{wire.AttrVersion, env.Version},
		{wire.AttrTTL, env.TTL.String()},
	})
	switch p := env.Payload.(type) {
	case *omi.ReadRequest:
		es.read(p)
	case *omi.WriteRequest:
		es.request(wire.ElemWrite, &p.RequestBase, nil, nil)
	case *omi.CancelRequest:
		es.request(wire.ElemCancel, &p.RequestBase, nil, p.RequestIDs)
	case *omi.ResponseList:
		es.response(p)
	default:
		return fmt.Errorf("encode: unknown payload %T", p)
	}
	es.end(wire.ElemEnvelope)
	return nil
}

func (es *EncState) read(r *omi.ReadRequest) {
	var attrs []attr
	if r.Interval.IsSet() {
		attrs = append(attrs, attr{wire.AttrInterval, r.Interval.String()})
	}
	if !r.Begin.IsZero() {
		attrs = append(attrs, attr{wire.AttrBegin, wire.FormatTime(r.Begin)})
	}
	if !r.End.IsZero() {
		attrs = append(attrs, attr{wire.AttrEnd, wire.FormatTime(r.End)})
	}
	if r.Oldest > 0 {
		attrs = append(attrs, attr{wire.AttrOldest, strconv.Itoa(r.Oldest)})
	}
	if r.Newest > 0 {
		attrs = append(attrs, attr{wire.AttrNewest, strconv.Itoa(r.Newest)})
	}
	var ids []string
	if r.RequestID != "" {
		ids = []string{r.RequestID}
	}
	es.request(wire.ElemRead, &r.RequestBase, attrs, ids)
}

func (es *EncState) request(name string, b *omi.RequestBase, extra []attr, ids []string) {
	var attrs []attr
	if b.Callback != "" {
		attrs = append(attrs, attr{wire.AttrCallback, b.Callback})
	}
	if b.MsgFormat != "" {
		attrs = append(attrs, attr{wire.AttrMsgFormat, b.MsgFormat})
	}
	if b.TargetType != omi.TargetUnset {
		attrs = append(attrs, attr{wire.AttrTargetType, string(b.TargetType)})
	}
	attrs = append(attrs, extra...)
	if len(b.NodeList) == 0 && len(ids) == 0 && b.Msg == nil {
		es.leaf(name, attrs, "")
		return
	}
	es.start(name, attrs)
	if len(b.NodeList) != 0 {
		es.start(wire.ElemNodeList, nil)
		for _, p := range b.NodeList {
			es.leaf(wire.ElemNode, nil, p)
		}
		es.end(wire.ElemNodeList)
	}
	for _, id := range ids {
		es.leaf(wire.ElemRequestID, nil, id)
	}
	es.msg(b.Msg)
	es.end(name)
}

func (es *EncState) response(l *omi.ResponseList) {
	es.start(wire.ElemResponse, nil)
	for i := range l.Results {
		r := &l.Results[i]
		var attrs []attr
		if r.MsgFormat != "" {
			attrs = append(attrs, attr{wire.AttrMsgFormat, r.MsgFormat})
		}
		es.start(wire.ElemResult, attrs)
		ret := []attr{{wire.AttrReturnCode, r.Return.Code.String()}}
		if r.Return.Description != "" {
			ret = append(ret, attr{wire.AttrDescription, r.Return.Description})
		}
		es.leaf(wire.ElemReturn, ret, "")
		if r.RequestID != "" {
			es.leaf(wire.ElemRequestID, nil, r.RequestID)
		}
		es.msg(r.Msg)
		es.end(wire.ElemResult)
	}
	es.end(wire.ElemResponse)
}

func (es *EncState) msg(m *omi.Msg) {
	if m == nil {
		return
	}
	if m.Objects == nil && len(m.Raw) == 0 {
		es.leaf(wire.ElemMsg, nil, "")
		return
	}
	es.start(wire.ElemMsg, nil)
	if m.Objects != nil {
		es.objects(m.Objects)
	}
	for _, r := range m.Raw {
		es.newline()
		es.buf.WriteString(es.color(RawColor, r.XML))
	}
	es.end(wire.ElemMsg)
}

func (es *EncState) objects(root *odf.Node) {
	attrs := []attr{{"xmlns", es.namespaces.ODF}}
	if len(root.Children) == 0 {
		es.leaf(wire.ElemObjects, attrs, "")
		return
	}
	es.start(wire.ElemObjects, attrs)
	for _, c := range root.Children {
		es.node(c)
	}
	es.end(wire.ElemObjects)
}

func (es *EncState) node(n *odf.Node) {
	switch n.Kind {
	case odf.ObjectKind:
		es.start(wire.ElemObject, nil)
		es.leaf(wire.ElemID, nil, n.ID)
		if n.Description != "" {
			es.leaf(wire.ElemDescription, nil, n.Description)
		}
		for _, c := range n.Children {
			es.node(c)
		}
		es.end(wire.ElemObject)
	case odf.InfoItemKind:
		attrs := []attr{{wire.AttrName, n.ID}}
		if n.Description == "" && len(n.Children) == 0 && n.Value == nil {
			es.leaf(wire.ElemInfoItem, attrs, "")
			return
		}
		es.start(wire.ElemInfoItem, attrs)
		if n.Description != "" {
			es.leaf(wire.ElemDescription, nil, n.Description)
		}
		if len(n.Children) != 0 {
			es.start(wire.ElemMetaData, nil)
			for _, c := range n.Children {
				es.node(c)
			}
			es.end(wire.ElemMetaData)
		}
		if v := n.Value; v != nil {
			var va []attr
			if v.Type != "" {
				va = append(va, attr{wire.AttrType, v.Type})
			}
			if !v.Time.IsZero() {
				va = append(va, attr{wire.AttrDateTime, wire.FormatTime(v.Time)})
			}
			es.leaf(wire.ElemValue, va, v.Text)
		}
		es.end(wire.ElemInfoItem)
	}
}

func (es *EncState) start(name string, attrs []attr) {
	es.openTag(name, attrs)
	es.buf.WriteString(es.color(PunctColor, ">"))
	es.depth++
}

func (es *EncState) end(name string) {
	es.depth--
	es.newline()
	es.buf.WriteString(es.color(PunctColor, "</") + es.color(ElementColor, name) + es.color(PunctColor, ">"))
}

// leaf writes an element holding only text; empty text gives an empty
// element tag.
func (es *EncState) leaf(name string, attrs []attr, text string) {
	es.openTag(name, attrs)
	if text == "" {
		es.buf.WriteString(es.color(PunctColor, "/>"))
		return
	}
	es.buf.WriteString(es.color(PunctColor, ">"))
	es.buf.WriteString(es.color(TextColor, escape(text)))
	es.buf.WriteString(es.color(PunctColor, "</") + es.color(ElementColor, name) + es.color(PunctColor, ">"))
}

func (es *EncState) openTag(name string, attrs []attr) {
	es.newline()
	es.buf.WriteString(es.color(PunctColor, "<") + es.color(ElementColor, name))
	for _, a := range attrs {
		es.buf.WriteByte(' ')
		es.buf.WriteString(es.color(AttrNameColor, a.name) + es.color(PunctColor, "="))
		es.buf.WriteString(es.color(AttrValueColor, `"`+escape(a.value)+`"`))
	}
}

func (es *EncState) newline() {
	if es.started && es.indent > 0 {
		es.buf.WriteByte('\n')
		es.buf.WriteString(strings.Repeat(" ", es.depth*es.indent))
	}
	es.started = true
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func escape(s string) string {
	var b strings.Builder
	// strings.Builder writes never fail
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

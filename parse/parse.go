package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/signadot/go-omi/debug"
	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/wire"
)

// Parse decodes an O-MI envelope and validates it.
//
// Errors are a *wire.DecodeError for documents that do not map onto the
// model, an *omi.UnsupportedVersionError when the version attribute is not
// in the allow-list and an *omi.ValidationError for well formed envelopes
// that break a model rule.
func Parse(d []byte, opts ...ParseOption) (*omi.Envelope, error) {
	o := newOpts(opts)
	env, err := decode(d, o)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		var de *wire.DecodeError
		if errors.As(err, &de) {
			o.log.Debug("envelope rejected", "path", de.Path, "reason", de.Reason)
		}
		return nil, err
	}
	if err := omi.Validate(env, omi.Versions(o.versions...), omi.Logger(o.log)); err != nil {
		return nil, err
	}
	return env, nil
}

// ParseString is Parse for a string document.
func ParseString(s string, opts ...ParseOption) (*omi.Envelope, error) {
	return Parse([]byte(s), opts...)
}

type decoder struct {
	ns wire.Namespaces
}

func decode(d []byte, o *parseOpts) (*omi.Envelope, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(d); err != nil {
		return nil, wire.Errorf("/", reasonMalformed, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, wire.Errorf("/", reasonMissing+" "+wire.ElemEnvelope, nil)
	}
	for _, t := range doc.Child {
		if cd, ok := t.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return nil, wire.Errorf("/", reasonUnexpText, nil)
		}
	}
	dec := &decoder{ns: o.namespaces}
	path := "/" + root.Tag
	if err := dec.expect(root, path, dec.ns.OMI, wire.ElemEnvelope); err != nil {
		return nil, err
	}
	// a missing version is the empty version, which no allow-list holds
	version, _ := attr(root, wire.AttrVersion)
	if err := omi.CheckVersion(version, o.versions); err != nil {
		return nil, err
	}
	attrs, err := dec.attrs(root, path, wire.AttrVersion, wire.AttrTTL)
	if err != nil {
		return nil, err
	}
	env := &omi.Envelope{Version: version, TTL: omi.Forever}
	if v, ok := attrs[wire.AttrTTL]; ok {
		if env.TTL, err = omi.ParseTTL(v); err != nil {
			return nil, badAttr(path, wire.AttrTTL, err)
		}
	}
	err = dec.children(root, path, func(el *etree.Element, cp string) error {
		if env.Payload != nil {
			return wire.Errorf(cp, "more than one payload", nil)
		}
		p, err := dec.payload(el, cp)
		if err != nil {
			return err
		}
		env.Payload = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return env, nil
}

func (dec *decoder) payload(el *etree.Element, path string) (omi.Payload, error) {
	if err := dec.inNS(el, path, dec.ns.OMI); err != nil {
		return nil, err
	}
	switch el.Tag {
	case wire.ElemRead:
		return dec.read(el, path)
	case wire.ElemWrite:
		return dec.write(el, path)
	case wire.ElemCancel:
		return dec.cancel(el, path)
	case wire.ElemResponse:
		return dec.response(el, path)
	}
	return nil, unexpected(path)
}

// children calls f for every child element of el with its path. Non
// whitespace text between elements is an error; comments and processing
// instructions are skipped.
func (dec *decoder) children(el *etree.Element, path string, f func(*etree.Element, string) error) error {
	counts := map[string]int{}
	for _, t := range el.Child {
		switch t := t.(type) {
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return wire.Errorf(path, reasonUnexpText, nil)
			}
		case *etree.Element:
			counts[t.Tag]++
			if err := f(t, fmt.Sprintf("%s/%s[%d]", path, t.Tag, counts[t.Tag])); err != nil {
				return err
			}
		}
	}
	return nil
}

// text returns the character data of a leaf element without attributes.
func (dec *decoder) text(el *etree.Element, path string) (string, error) {
	if _, err := dec.attrs(el, path); err != nil {
		return "", err
	}
	return dec.chars(el, path)
}

// chars returns the character data of a leaf element. Attributes are left
// to the caller.
func (dec *decoder) chars(el *etree.Element, path string) (string, error) {
	var b strings.Builder
	for _, t := range el.Child {
		switch t := t.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			return "", unexpected(path + "/" + t.Tag)
		}
	}
	return b.String(), nil
}

// attrs returns the unqualified attributes of el, failing on any not in
// allowed. Namespace declarations and qualified attributes are skipped.
func (dec *decoder) attrs(el *etree.Element, path string, allowed ...string) (map[string]string, error) {
	res := map[string]string{}
	for _, a := range el.Attr {
		if a.Space != "" || a.Key == "xmlns" {
			continue
		}
		ok := false
		for _, k := range allowed {
			if k == a.Key {
				ok = true
				break
			}
		}
		if !ok {
			return nil, wire.Errorf(path+"/@"+a.Key, reasonUnexpAttr, nil)
		}
		res[a.Key] = a.Value
	}
	return res, nil
}

func attr(el *etree.Element, key string) (string, bool) {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (dec *decoder) expect(el *etree.Element, path, ns, tag string) error {
	if el.Tag != tag {
		return unexpected(path)
	}
	return dec.inNS(el, path, ns)
}

func (dec *decoder) inNS(el *etree.Element, path, ns string) error {
	uri, err := namespaceOf(el, path)
	if err != nil {
		return err
	}
	if uri != ns {
		return unexpected(path)
	}
	return nil
}

// namespaceOf resolves the namespace URI of el from the declarations in
// scope.
func namespaceOf(el *etree.Element, path string) (string, error) {
	uri, ok := lookupNS(el, el.Space)
	if !ok && el.Space != "" {
		return "", wire.Errorf(path, reasonUnboundNS+" "+el.Space, nil)
	}
	return uri, nil
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

func lookupNS(el *etree.Element, prefix string) (string, bool) {
	if prefix == "xml" {
		return xmlNamespace, true
	}
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if prefix == "" && a.Space == "" && a.Key == "xmlns" {
				return a.Value, true
			}
			if prefix != "" && a.Space == "xmlns" && a.Key == prefix {
				return a.Value, true
			}
		}
	}
	return "", false
}

package parse

import (
	"github.com/beevik/etree"
	"github.com/signadot/go-omi/omi"
	"github.com/signadot/go-omi/wire"
)

// captureRaw serializes el so that it stands on its own: namespace
// prefixes it uses but which are declared on an ancestor are declared on
// the copy.
func captureRaw(el *etree.Element, ns, path string) (omi.Raw, error) {
	cp := el.Copy()
	if err := declareOuter(cp, cp, el, path); err != nil {
		return omi.Raw{}, err
	}
	doc := etree.NewDocument()
	doc.SetRoot(cp)
	s, err := doc.WriteToString()
	if err != nil {
		return omi.Raw{}, wire.Errorf(path, reasonMalformed, err)
	}
	return omi.Raw{Namespace: ns, Name: el.Tag, XML: s}, nil
}

// declareOuter walks orig and its copy in parallel.
func declareOuter(top, cp, orig *etree.Element, path string) error {
	prefixes := []string{cp.Space}
	for _, a := range cp.Attr {
		if a.Space != "" && a.Space != "xmlns" {
			prefixes = append(prefixes, a.Space)
		}
	}
	for _, p := range prefixes {
		if _, ok := lookupNS(cp, p); ok {
			continue
		}
		uri, ok := lookupNS(orig, p)
		switch {
		case ok && p == "":
			top.CreateAttr("xmlns", uri)
		case ok:
			top.CreateAttr("xmlns:"+p, uri)
		case p != "":
			return wire.Errorf(path, reasonUnboundNS+" "+p, nil)
		}
	}
	cs, os := cp.ChildElements(), orig.ChildElements()
	for i := range cs {
		if err := declareOuter(top, cs[i], os[i], path); err != nil {
			return err
		}
	}
	return nil
}

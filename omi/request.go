package omi

import (
	"fmt"
	"net/url"

	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/wire"
)

// TargetType selects whether a request addresses nodes or devices.
type TargetType string

const (
	TargetUnset  TargetType = ""
	TargetNode   TargetType = "node"
	TargetDevice TargetType = "device"
)

func ParseTargetType(v string) (TargetType, error) {
	switch t := TargetType(v); t {
	case TargetNode, TargetDevice:
		return t, nil
	}
	return TargetUnset, fmt.Errorf("bad target type %q", v)
}

// RequestBase holds what all requests share.
//
// NodeList entries are paths into the execution layer's tree; they are
// references and are never resolved by this package. Msg owns the embedded
// Objects tree, if any.
type RequestBase struct {
	Callback   string
	MsgFormat  string
	TargetType TargetType
	NodeList   []string
	Msg        *Msg
}

// Target is a node addressed by a request, either by path only (Node is
// nil) or as a leaf of the embedded Objects tree.
type Target struct {
	Path string
	Node *odf.Node
}

// Objects returns the embedded Objects tree or nil.
func (b *RequestBase) Objects() *odf.Node {
	return b.Msg.objects()
}

// Targets returns the node list paths followed by the leaves of the
// embedded tree.
func (b *RequestBase) Targets() []Target {
	res := make([]Target, 0, len(b.NodeList))
	for _, p := range b.NodeList {
		res = append(res, Target{Path: p})
	}
	for p, n := range odf.Leaves(b.Objects()) {
		if n.Kind == odf.ObjectsKind {
			continue
		}
		res = append(res, Target{Path: p, Node: n})
	}
	return res
}

func (b *RequestBase) trees(path string) []tree {
	if b.Objects() == nil {
		return nil
	}
	return []tree{{path: path + "/" + wire.ElemMsg, root: b.Objects()}}
}

func (b *RequestBase) check(path string) error {
	if b.Callback != "" {
		u, err := url.Parse(b.Callback)
		if err != nil || !u.IsAbs() || !odf.ValidText(b.Callback) {
			return invalid(RuleRequired, path, "invalid callback "+b.Callback)
		}
	}
	if err := checkMsgFormat(path, b.MsgFormat); err != nil {
		return err
	}
	switch b.TargetType {
	case TargetUnset, TargetNode, TargetDevice:
	default:
		return invalid(RuleRequired, path, "invalid target type "+string(b.TargetType))
	}
	for i, p := range b.NodeList {
		np := fmt.Sprintf("%s/%s/%s[%d]", path, wire.ElemNodeList, wire.ElemNode, i+1)
		ids, err := odf.SplitPath(p)
		if err != nil || len(ids) == 0 || !odf.ValidText(p) {
			return invalid(RuleRequired, np, "invalid node path "+p)
		}
	}
	return b.Msg.check(path + "/" + wire.ElemMsg)
}

func checkMsgFormat(path, f string) error {
	if f != "" && f != wire.MsgFormatODF {
		return invalid(RuleRequired, path, "unsupported msgformat "+f)
	}
	return nil
}

func checkRequestID(path, id string) error {
	if id == "" || !odf.ValidText(id) {
		return invalid(RuleRequired, path, "invalid request id")
	}
	return nil
}

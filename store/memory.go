package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/omi"
)

// Ensure Memory implements odf.Resolver
var _ odf.Resolver = (*Memory)(nil)

// Memory is an in-memory node tree that answers reads and applies writes.
// It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	root *odf.Node
	log  *slog.Logger
}

type MemoryOption func(*Memory)

// WithRoot seeds the store with a copy of root.
func WithRoot(root *odf.Node) MemoryOption {
	return func(m *Memory) { m.root = root.Clone() }
}

func WithLogger(l *slog.Logger) MemoryOption {
	return func(m *Memory) { m.log = l }
}

// NewMemory returns a store holding an empty Objects tree unless WithRoot
// is given.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{}
	for _, opt := range opts {
		opt(m)
	}
	if m.root == nil {
		m.root = odf.Objects()
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	return m
}

// Resolve returns a copy of the subtree at path.
func (m *Memory) Resolve(path string) (*odf.Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, err := odf.Lookup(m.root, path)
	if err != nil {
		return nil, err
	}
	return n.Clone(), nil
}

// Snapshot returns a copy of the whole tree.
func (m *Memory) Snapshot() *odf.Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root.Clone()
}

// Apply writes the values carried by w. Missing nodes are created and
// existing values are replaced. The write is applied entirely or not at
// all.
func (m *Memory) Apply(w *omi.WriteRequest) omi.Return {
	src := w.Objects()
	if src == nil {
		return omi.Failure(omi.CodeBadRequest, "write carries no Objects tree")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.root.Clone()
	if err := overlay(next, src, odf.RootID); err != nil {
		m.log.Debug("write rejected", "error", err)
		return omi.ReturnFor(err)
	}
	m.root = next
	n := 0
	for range odf.Values(src) {
		n++
	}
	m.log.Debug("write applied", "values", n)
	return omi.Success("")
}

func overlay(dst, src *odf.Node, path string) error {
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.Value != nil {
		dst.Value = src.Value.Clone()
	}
	for _, sc := range src.Children {
		kp := path + "/" + odf.EscapeID(sc.ID)
		dc := dst.Child(sc.ID)
		if dc == nil {
			dst.Children = append(dst.Children, sc.Clone())
			continue
		}
		if dc.Kind != sc.Kind {
			return &odf.MergeConflict{Path: kp, Reason: fmt.Sprintf("%s written over %s", sc.Kind, dc.Kind)}
		}
		if err := overlay(dc, sc, kp); err != nil {
			return err
		}
	}
	return nil
}

// Read answers a one-shot read: every target is looked up and the
// results are merged into a single Objects tree. A missing target fails
// the read with 404. Subscriptions are not kept by Memory.
func (m *Memory) Read(r *omi.ReadRequest) omi.Result {
	res := omi.Result{RequestID: r.RequestID}
	if _, ok := r.Subscription(); ok {
		res.Return = omi.Failure(omi.CodeNotImplemented, "subscriptions are not supported")
		return res
	}
	if r.RequestID != "" && len(r.Targets()) == 0 {
		res.Return = omi.Failure(omi.CodeNotFound, "no subscription "+r.RequestID)
		return res
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out *odf.Node
	for _, t := range r.Targets() {
		sub, err := m.extract(t.Path)
		if err == nil {
			out, err = odf.Merge(out, sub)
		}
		if err != nil {
			res.Return = omi.ReturnFor(err)
			return res
		}
	}
	res.Return = omi.Success("")
	res.MsgFormat = r.MsgFormat
	res.Msg = omi.ObjectsMsg(out)
	return res
}

// extract returns an Objects tree holding the node at path and its
// ancestors, without the ancestors' other children.
func (m *Memory) extract(path string) (*odf.Node, error) {
	ids, err := odf.SplitPath(path)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 && ids[0] == odf.RootID {
		ids = ids[1:]
	}
	if len(ids) == 0 {
		return m.root.Clone(), nil
	}
	chain := make([]*odf.Node, 0, len(ids))
	cur := m.root
	for _, id := range ids {
		if cur = cur.Child(id); cur == nil {
			return nil, &odf.NotFound{Path: path}
		}
		chain = append(chain, cur)
	}
	sub := chain[len(chain)-1].Clone()
	for i := len(chain) - 2; i >= 0; i-- {
		a := chain[i]
		sub, err = odf.BuildNode(a.Kind, a.ID, a.Description, nil, sub)
		if err != nil {
			return nil, err
		}
	}
	return odf.BuildNode(odf.ObjectsKind, odf.RootID, "", nil, sub)
}

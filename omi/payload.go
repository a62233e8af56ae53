package omi

import "github.com/signadot/go-omi/odf"

// Payload is the closed set of envelope payloads: *ReadRequest,
// *WriteRequest, *CancelRequest and *ResponseList.
//
// Dispatch either with a type switch or with the As methods, which return
// (nil, false) when the payload is of another kind:
//
//	if r, ok := env.Payload.AsRead(); ok {
//	    schedule(r.Subscription())
//	}
type Payload interface {
	Kind() Kind
	AsRead() (*ReadRequest, bool)
	AsWrite() (*WriteRequest, bool)
	AsCancel() (*CancelRequest, bool)
	AsResponse() (*ResponseList, bool)

	isNil() bool
	required() error
	trees() []tree
}

// tree is an embedded Objects tree and its location in the payload.
type tree struct {
	path string
	root *odf.Node
}

func (r *ReadRequest) Kind() Kind { return ReadKind }
func (r *ReadRequest) AsRead() (*ReadRequest, bool) { return r, true }
func (r *ReadRequest) AsWrite() (*WriteRequest, bool) { return nil, false }
func (r *ReadRequest) AsCancel() (*CancelRequest, bool) { return nil, false }
func (r *ReadRequest) AsResponse() (*ResponseList, bool) { return nil, false }
func (r *ReadRequest) isNil() bool { return r == nil }
func (r *ReadRequest) trees() []tree { return r.RequestBase.trees(ReadKind.String()) }

func (w *WriteRequest) Kind() Kind { return WriteKind }
func (w *WriteRequest) AsRead() (*ReadRequest, bool) { return nil, false }
func (w *WriteRequest) AsWrite() (*WriteRequest, bool) { return w, true }
func (w *WriteRequest) AsCancel() (*CancelRequest, bool) { return nil, false }
func (w *WriteRequest) AsResponse() (*ResponseList, bool) { return nil, false }
func (w *WriteRequest) isNil() bool { return w == nil }
func (w *WriteRequest) trees() []tree { return w.RequestBase.trees(WriteKind.String()) }

func (c *CancelRequest) Kind() Kind { return CancelKind }
func (c *CancelRequest) AsRead() (*ReadRequest, bool) { return nil, false }
func (c *CancelRequest) AsWrite() (*WriteRequest, bool) { return nil, false }
func (c *CancelRequest) AsCancel() (*CancelRequest, bool) { return c, true }
func (c *CancelRequest) AsResponse() (*ResponseList, bool) { return nil, false }
func (c *CancelRequest) isNil() bool { return c == nil }
func (c *CancelRequest) trees() []tree { return c.RequestBase.trees(CancelKind.String()) }

func (l *ResponseList) Kind() Kind { return ResponseKind }
func (l *ResponseList) AsRead() (*ReadRequest, bool) { return nil, false }
func (l *ResponseList) AsWrite() (*WriteRequest, bool) { return nil, false }
func (l *ResponseList) AsCancel() (*CancelRequest, bool) { return nil, false }
func (l *ResponseList) AsResponse() (*ResponseList, bool) { return l, true }
func (l *ResponseList) isNil() bool { return l == nil }

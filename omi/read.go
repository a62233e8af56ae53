package omi

import (
	"time"

	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/wire"
)

// ReadRequest reads the current values of its targets, or subscribes to
// them when Interval is set.
//
// A zero Begin, End, Oldest or Newest is unset. RequestID correlates a
// poll with an earlier subscription.
type ReadRequest struct {
	RequestBase
	Interval  Interval
	Begin     time.Time
	End       time.Time
	Oldest    int
	Newest    int
	RequestID string
}

// Subscription is the part of a read the subscription scheduler consumes.
type Subscription struct {
	RequestID string
	Interval  Interval
	Callback  string
}

// NewRead validates r and returns it. A read must name targets unless it
// polls an existing subscription by request id.
func NewRead(r ReadRequest) (*ReadRequest, error) {
	res := &r
	if err := checkPayload(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Subscription reports the subscription parameters of r; ok is false when
// r is not a subscription.
func (r *ReadRequest) Subscription() (s Subscription, ok bool) {
	if !r.Interval.IsSet() || r.Interval.Mode() == OneShotInterval {
		return Subscription{}, false
	}
	return Subscription{RequestID: r.RequestID, Interval: r.Interval, Callback: r.Callback}, true
}

func (r *ReadRequest) required() error {
	path := wire.ElemRead
	if err := r.RequestBase.check(path); err != nil {
		return err
	}
	if r.RequestID != "" {
		if err := checkRequestID(path+"/"+wire.ElemRequestID, r.RequestID); err != nil {
			return err
		}
	}
	if r.RequestID == "" && len(r.Targets()) == 0 {
		return invalid(RuleRequired, path, "missing targets")
	}
	if !r.Begin.IsZero() && !odf.ValidTime(r.Begin) {
		return invalid(RuleRequired, path, "begin not representable in RFC 3339")
	}
	if !r.End.IsZero() && !odf.ValidTime(r.End) {
		return invalid(RuleRequired, path, "end not representable in RFC 3339")
	}
	if !r.Begin.IsZero() && !r.End.IsZero() && r.Begin.After(r.End) {
		return invalid(RuleRequired, path, "begin after end")
	}
	if r.Oldest < 0 || r.Newest < 0 {
		return invalid(RuleRequired, path, "negative history count")
	}
	return nil
}

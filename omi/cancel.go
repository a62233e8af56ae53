package omi

import (
	"fmt"

	"github.com/signadot/go-omi/wire"
)

// CancelRequest terminates the subscriptions named by RequestIDs.
type CancelRequest struct {
	RequestBase
	RequestIDs []string
}

// NewCancel returns a cancel request for ids.
func NewCancel(ids ...string) (*CancelRequest, error) {
	res := &CancelRequest{RequestIDs: ids}
	if err := checkPayload(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *CancelRequest) required() error {
	path := wire.ElemCancel
	if err := c.RequestBase.check(path); err != nil {
		return err
	}
	if len(c.RequestIDs) == 0 {
		return invalid(RuleRequired, path, "no ids")
	}
	seen := make(map[string]bool, len(c.RequestIDs))
	for i, id := range c.RequestIDs {
		p := fmt.Sprintf("%s/%s[%d]", path, wire.ElemRequestID, i+1)
		if err := checkRequestID(p, id); err != nil {
			return err
		}
		if seen[id] {
			return invalid(RuleRequired, p, "duplicate request id "+id)
		}
		seen[id] = true
	}
	return nil
}

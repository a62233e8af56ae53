package omi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/wire"
)

// ReturnCode is the status code of a result.
type ReturnCode int

const (
	CodeOK             ReturnCode = 200
	CodePartial        ReturnCode = 207
	CodeBadRequest     ReturnCode = 400
	CodeUnauthorized   ReturnCode = 401
	CodeForbidden      ReturnCode = 403
	CodeNotFound       ReturnCode = 404
	CodeTimeout        ReturnCode = 408
	CodeConflict       ReturnCode = 409
	CodeTooLarge       ReturnCode = 413
	CodeInternal       ReturnCode = 500
	CodeNotImplemented ReturnCode = 501
	CodeUnavailable    ReturnCode = 503
)

// Status is the class of a return code.
type Status int

const (
	StatusUnknown Status = iota
	StatusSuccess
	StatusPartial
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusFailure:
		return "failure"
	}
	return "unknown"
}

var ErrBadReturnCode = errors.New("bad return code")

// ParseReturnCode parses the three digit lexical form of a return code.
// It does not check the code against the enumerated set; Validate does.
func ParseReturnCode(s string) (ReturnCode, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadReturnCode, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadReturnCode, s)
		}
	}
	n, _ := strconv.Atoi(s)
	return ReturnCode(n), nil
}

func (c ReturnCode) String() string { return strconv.Itoa(int(c)) }

// Status classifies c; codes outside the enumerated set are StatusUnknown.
func (c ReturnCode) Status() Status {
	switch c {
	case CodeOK:
		return StatusSuccess
	case CodePartial:
		return StatusPartial
	case CodeBadRequest, CodeUnauthorized, CodeForbidden, CodeNotFound, CodeTimeout,
		CodeConflict, CodeTooLarge, CodeInternal, CodeNotImplemented, CodeUnavailable:
		return StatusFailure
	}
	return StatusUnknown
}

// Return is the outcome of a request. A failure carries its reason in
// Description.
type Return struct {
	Code        ReturnCode
	Description string
}

func Success(desc string) Return {
	return Return{Code: CodeOK, Description: desc}
}

func Partial(warning string) Return {
	return Return{Code: CodePartial, Description: warning}
}

func Failure(code ReturnCode, reason string) Return {
	return Return{Code: code, Description: reason}
}

// ReturnFor translates an error from decoding, validation, merging or
// path resolution into a failure Return. A nil error is a success.
func ReturnFor(err error) Return {
	switch {
	case err == nil:
		return Success("")
	case errors.Is(err, wire.ErrDecode), errors.Is(err, ErrInvalid), errors.Is(err, ErrUnsupportedVersion):
		return Failure(CodeBadRequest, err.Error())
	case errors.Is(err, odf.ErrNotFound):
		return Failure(CodeNotFound, err.Error())
	case errors.Is(err, odf.ErrConflict):
		return Failure(CodeConflict, err.Error())
	}
	return Failure(CodeInternal, err.Error())
}

func (r Return) check(path string) error {
	switch r.Code.Status() {
	case StatusUnknown:
		return invalid(RuleReturnCode, path, "unknown return code "+r.Code.String())
	case StatusFailure:
		if r.Description == "" {
			return invalid(RuleReturnCode, path, "failure "+r.Code.String()+" without reason")
		}
	}
	if !odf.ValidText(r.Description) {
		return invalid(RuleReturnCode, path, "invalid character in description")
	}
	return nil
}

// Result is one entry of a response: the outcome, the subscription it
// answers and the data, if any.
type Result struct {
	Return    Return
	RequestID string
	MsgFormat string
	Msg       *Msg
}

// Objects returns the Objects tree of the result or nil.
func (r *Result) Objects() *odf.Node {
	return r.Msg.objects()
}

// ResponseList is an ordered list of results.
type ResponseList struct {
	Results []Result
}

// NewResponse returns a response holding results in order.
func NewResponse(results ...Result) (*ResponseList, error) {
	res := &ResponseList{Results: results}
	if err := checkPayload(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (l *ResponseList) resultPath(i int) string {
	return fmt.Sprintf("%s/%s[%d]", wire.ElemResponse, wire.ElemResult, i+1)
}

func (l *ResponseList) required() error {
	if len(l.Results) == 0 {
		return invalid(RuleRequired, wire.ElemResponse, "no results")
	}
	for i := range l.Results {
		r := &l.Results[i]
		path := l.resultPath(i)
		if r.RequestID != "" {
			if err := checkRequestID(path+"/"+wire.ElemRequestID, r.RequestID); err != nil {
				return err
			}
		}
		if err := checkMsgFormat(path, r.MsgFormat); err != nil {
			return err
		}
		if err := r.Msg.check(path + "/" + wire.ElemMsg); err != nil {
			return err
		}
	}
	return nil
}

func (l *ResponseList) trees() []tree {
	var res []tree
	for i := range l.Results {
		if root := l.Results[i].Objects(); root != nil {
			res = append(res, tree{path: l.resultPath(i) + "/" + wire.ElemMsg, root: root})
		}
	}
	return res
}

func (l *ResponseList) returns() error {
	for i := range l.Results {
		if err := l.Results[i].Return.check(l.resultPath(i) + "/" + wire.ElemReturn); err != nil {
			return err
		}
	}
	return nil
}

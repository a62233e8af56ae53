package omi

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-omi/odf"
)

func TestWrapVersion(t *testing.T) {
	c, err := NewCancel("1")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Wrap(c, "0.9", Forever)
	var ue *UnsupportedVersionError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff(&UnsupportedVersionError{Version: "0.9", Supported: []string{"1.0"}}, ue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Validate(&Envelope{Version: "0.9", Payload: c}, Versions("0.9")); err != nil {
		t.Errorf("allowed version rejected: %v", err)
	}
	configured, err := Wrap(c, "0.9", Forever, Versions(Version1, "0.9"))
	if err != nil {
		t.Fatalf("configured version rejected: %v", err)
	}
	if configured.Version != "0.9" {
		t.Errorf("version %q", configured.Version)
	}
	env, err := Wrap(c, Version1, TTLOf(0))
	if err != nil {
		t.Fatal(err)
	}
	if env.Kind() != CancelKind {
		t.Errorf("kind %s", env.Kind())
	}
}

func TestValidateOrder(t *testing.T) {
	dup := odf.Objects(odf.Object("a", odf.InfoItem("v", mustValue("1"))), odf.Object("a"))
	tests := []struct {
		name string
		env  *Envelope
		rule string
		path string
	}{
		{
			name: "version before payload",
			env:  &Envelope{Version: "2.0"},
		},
		{
			name: "no payload",
			env:  &Envelope{Version: Version1},
			rule: RulePayload,
			path: "omiEnvelope",
		},
		{
			name: "typed nil payload",
			env:  &Envelope{Version: Version1, Payload: (*ReadRequest)(nil)},
			rule: RulePayload,
			path: "omiEnvelope",
		},
		{
			name: "required before tree",
			env:  &Envelope{Version: Version1, Payload: &WriteRequest{RequestBase: RequestBase{Msg: ObjectsMsg(odf.Objects(odf.Object("a"), odf.Object("a")))}}},
			rule: RuleRequired,
			path: "write",
		},
		{
			name: "duplicate siblings",
			env:  &Envelope{Version: Version1, Payload: &WriteRequest{RequestBase: RequestBase{Msg: ObjectsMsg(dup)}}},
			rule: RuleNodeTree,
			path: "write/msg/Objects/a",
		},
		{
			name: "begin beyond year 9999",
			env: &Envelope{Version: Version1, Payload: &ReadRequest{
				RequestBase: RequestBase{NodeList: []string{"a"}},
				Begin:       time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
			rule: RuleRequired,
			path: "read",
		},
		{
			name: "value beyond year 9999",
			env: &Envelope{Version: Version1, Payload: &WriteRequest{RequestBase: RequestBase{Msg: ObjectsMsg(odf.Objects(
				odf.Object("a", odf.InfoItem("v", &odf.Value{Text: "1", Time: time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)}))))}}},
			rule: RuleNodeTree,
			path: "write/msg/Objects/a/v",
		},
		{
			name: "non canonical extension",
			env: &Envelope{Version: Version1, Payload: &ResponseList{Results: []Result{{
				Return: Success(""),
				Msg:    &Msg{Raw: []Raw{{Namespace: "urn:x", Name: "a", XML: `<a xmlns="urn:x"></a>`}}},
			}}}},
			rule: RuleRequired,
			path: "response/result[1]/msg",
		},
		{
			name: "unknown return code",
			env:  &Envelope{Version: Version1, Payload: &ResponseList{Results: []Result{{Return: Success("")}, {Return: Return{Code: 299}}}}},
			rule: RuleReturnCode,
			path: "response/result[2]/return",
		},
		{
			name: "failure without reason",
			env:  &Envelope{Version: Version1, Payload: &ResponseList{Results: []Result{{Return: Return{Code: CodeInternal}}}}},
			rule: RuleReturnCode,
			path: "response/result[1]/return",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.env)
			if tt.rule == "" {
				if !errors.Is(err, ErrUnsupportedVersion) {
					t.Errorf("got %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if ve.Rule != tt.rule || ve.Path != tt.path {
				t.Errorf("got rule %s path %q (%v)", ve.Rule, ve.Path, err)
			}
		})
	}
	if err := Validate(nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("nil envelope: %v", err)
	}
}

func TestReturnFor(t *testing.T) {
	tests := []struct {
		err  error
		code ReturnCode
	}{
		{nil, CodeOK},
		{&ValidationError{Rule: RuleRequired, Reason: "x"}, CodeBadRequest},
		{&UnsupportedVersionError{Version: "2"}, CodeBadRequest},
		{&odf.NotFound{Path: "a"}, CodeNotFound},
		{&odf.MergeConflict{Path: "a", Reason: "values differ"}, CodeConflict},
		{errors.New("disk on fire"), CodeInternal},
	}
	for _, tt := range tests {
		got := ReturnFor(tt.err)
		if got.Code != tt.code {
			t.Errorf("ReturnFor(%v) = %s, want %s", tt.err, got.Code, tt.code)
		}
		if tt.err != nil && got.Description != tt.err.Error() {
			t.Errorf("description %q", got.Description)
		}
		if err := got.check("r"); err != nil {
			t.Errorf("ReturnFor(%v) is not a valid return: %v", tt.err, err)
		}
	}
}

func TestParseReturnCode(t *testing.T) {
	for _, s := range []string{"200", "299", "000"} {
		if _, err := ParseReturnCode(s); err != nil {
			t.Errorf("%q: %v", s, err)
		}
	}
	for _, s := range []string{"", "20", "2000", "2x0", "+20", " 200"} {
		if _, err := ParseReturnCode(s); !errors.Is(err, ErrBadReturnCode) {
			t.Errorf("%q accepted", s)
		}
	}
	if s := CodePartial.Status(); s != StatusPartial {
		t.Errorf("207 is %s", s)
	}
	if s := ReturnCode(299).Status(); s != StatusUnknown {
		t.Errorf("299 is %s", s)
	}
}

package odf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildNode(t *testing.T) {
	got, err := BuildNode(ObjectKind, "a", "desc", nil,
		Object("b", InfoItem("x", &Value{Text: "1"})),
		Object("c"),
		Object("b", InfoItem("y", nil)),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := Object("a",
		Object("b", InfoItem("x", &Value{Text: "1"}), InfoItem("y", nil)),
		Object("c"),
	).WithDescription("desc")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBuildNodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		build  func() (*Node, error)
		reason string
		path   string
	}{
		{
			name:   "empty id",
			build:  func() (*Node, error) { return BuildNode(ObjectKind, "", "", nil) },
			reason: "empty id",
		},
		{
			name:   "misnamed root",
			build:  func() (*Node, error) { return BuildNode(ObjectsKind, "Root", "", nil) },
			reason: "root must be named Objects",
			path:   "Root",
		},
		{
			name:   "nil child",
			build:  func() (*Node, error) { return BuildNode(ObjectKind, "a", "", nil, nil) },
			reason: "nil child",
			path:   "a",
		},
		{
			name:   "child without id",
			build:  func() (*Node, error) { return BuildNode(ObjectKind, "a", "", nil, Object("")) },
			reason: "child with empty id",
			path:   "a",
		},
		{
			name: "ambiguous merge",
			build: func() (*Node, error) {
				return BuildNode(ObjectKind, "a", "", nil,
					InfoItem("v", &Value{Text: "1"}),
					InfoItem("v", &Value{Text: "2"}))
			},
			reason: "ambiguous merge",
			path:   "a/v",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			var se *StructuralError
			if !errors.As(err, &se) {
				t.Fatalf("got %v, want StructuralError", err)
			}
			if se.Reason != tt.reason || se.Path != tt.path {
				t.Errorf("got %q at %q", se.Reason, se.Path)
			}
		})
	}
	_, err := BuildNode(ObjectKind, "a", "", nil, InfoItem("v", &Value{Text: "1"}), InfoItem("v", &Value{Text: "2"}))
	if !errors.Is(err, ErrConflict) || !errors.Is(err, ErrStructure) {
		t.Errorf("ambiguous merge should be both structural and a conflict: %v", err)
	}
}

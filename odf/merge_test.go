package odf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeUnion(t *testing.T) {
	a := Object("x", Object("b"))
	b := Object("x", Object("c"))
	got, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := Object("x", Object("b"), Object("c"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got.Children[0].ID = "changed"
	if a.Children[0].ID != "b" {
		t.Error("merge result shares nodes with its input")
	}
}

func TestMergeRecursive(t *testing.T) {
	a := Objects(
		Object("a", InfoItem("v", &Value{Text: "1"})).WithDescription("room"),
		Object("b"),
	)
	b := Objects(
		Object("c"),
		Object("a", InfoItem("v", &Value{Text: "1"}), InfoItem("w", nil)),
	)
	got, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := Objects(
		Object("a", InfoItem("v", &Value{Text: "1"}), InfoItem("w", nil)).WithDescription("room"),
		Object("b"),
		Object("c"),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Check(got); err != nil {
		t.Error(err)
	}
}

func TestMergeConflicts(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		path string
	}{
		{
			name: "values",
			a:    Objects(Object("a", InfoItem("v", &Value{Text: "1"}))),
			b:    Objects(Object("a", InfoItem("v", &Value{Text: "2"}))),
			path: "Objects/a/v",
		},
		{
			name: "kinds",
			a:    Objects(Object("a", InfoItem("v", nil))),
			b:    Objects(Object("a", Object("v"))),
			path: "Objects/a/v",
		},
		{
			name: "descriptions",
			a:    Object("a").WithDescription("one"),
			b:    Object("a").WithDescription("two"),
			path: "a",
		},
		{
			name: "ids",
			a:    Object("a"),
			b:    Object("b"),
			path: "a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(tt.a, tt.b)
			var mc *MergeConflict
			if !errors.As(err, &mc) {
				t.Fatalf("got %v, want MergeConflict", err)
			}
			if mc.Path != tt.path {
				t.Errorf("path %q, want %q", mc.Path, tt.path)
			}
			if !errors.Is(err, ErrConflict) {
				t.Error("not ErrConflict")
			}
		})
	}
}

func TestMergeNil(t *testing.T) {
	a := Object("a", Object("b"))
	got, err := Merge(nil, a)
	if err != nil || !Equal(got, a) || got == a {
		t.Errorf("Merge(nil, a) = %v, %v", got, err)
	}
	if got, err := Merge(nil, nil); got != nil || err != nil {
		t.Errorf("Merge(nil, nil) = %v, %v", got, err)
	}
}

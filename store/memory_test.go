package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-omi/odf"
	"github.com/signadot/go-omi/omi"
)

func seed() *odf.Node {
	return odf.Objects(
		odf.Object("a",
			odf.InfoItem("b", &odf.Value{Text: "1"}),
			odf.InfoItem("c", &odf.Value{Text: "2"}),
		).WithDescription("first"),
		odf.Object("d"),
	)
}

func TestResolve(t *testing.T) {
	m := NewMemory(WithRoot(seed()))
	n, err := m.Resolve("Objects/a/b")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(odf.InfoItem("b", &odf.Value{Text: "1"}), n); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	n.Value.Text = "changed"
	if again, _ := m.Resolve("a/b"); again.Value.Text != "1" {
		t.Error("Resolve returned shared node")
	}
	_, err = m.Resolve("a/x")
	var nf *odf.NotFound
	if !errors.As(err, &nf) || nf.Path != "a/x" {
		t.Errorf("got %v", err)
	}
}

func TestApply(t *testing.T) {
	m := NewMemory(WithRoot(seed()))
	w, err := omi.WriteObjects(odf.Objects(
		odf.Object("a", odf.InfoItem("b", &odf.Value{Text: "10"})),
		odf.Object("e", odf.InfoItem("f", &odf.Value{Type: "xs:int", Text: "3"})),
	))
	if err != nil {
		t.Fatal(err)
	}
	if ret := m.Apply(w); ret.Code != omi.CodeOK {
		t.Fatalf("apply: %+v", ret)
	}
	want := odf.Objects(
		odf.Object("a",
			odf.InfoItem("b", &odf.Value{Text: "10"}),
			odf.InfoItem("c", &odf.Value{Text: "2"}),
		).WithDescription("first"),
		odf.Object("d"),
		odf.Object("e", odf.InfoItem("f", &odf.Value{Type: "xs:int", Text: "3"})),
	)
	if diff := cmp.Diff(want, m.Snapshot()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApplyConflictKeepsTree(t *testing.T) {
	m := NewMemory(WithRoot(seed()))
	// a/b is an InfoItem in the store
	w, err := omi.WriteObjects(odf.Objects(
		odf.Object("e", odf.InfoItem("f", &odf.Value{Text: "1"})),
		odf.Object("a", odf.Object("b", odf.InfoItem("z", &odf.Value{Text: "1"}))),
	))
	if err != nil {
		t.Fatal(err)
	}
	ret := m.Apply(w)
	if ret.Code != omi.CodeConflict || ret.Description == "" {
		t.Fatalf("got %+v", ret)
	}
	if diff := cmp.Diff(seed(), m.Snapshot()); diff != "" {
		t.Errorf("tree changed by failed write (-want +got):\n%s", diff)
	}
}

func TestRead(t *testing.T) {
	m := NewMemory(WithRoot(seed()))
	r, err := omi.NewRead(omi.ReadRequest{
		RequestBase: omi.RequestBase{NodeList: []string{"Objects/a/c", "a/b", "a/c"}},
		Interval:    omi.OneShot,
	})
	if err != nil {
		t.Fatal(err)
	}
	res := m.Read(r)
	if res.Return.Code != omi.CodeOK {
		t.Fatalf("read: %+v", res.Return)
	}
	want := odf.Objects(
		odf.Object("a",
			odf.InfoItem("c", &odf.Value{Text: "2"}),
			odf.InfoItem("b", &odf.Value{Text: "1"}),
		).WithDescription("first"),
	)
	if diff := cmp.Diff(want, res.Objects()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	r.NodeList = append(r.NodeList, "a/zz")
	if res := m.Read(r); res.Return.Code != omi.CodeNotFound {
		t.Errorf("missing target: %+v", res.Return)
	}
}

func TestHandle(t *testing.T) {
	m := NewMemory(WithRoot(seed()))
	c, _ := omi.NewCancel("1")
	sub, _ := omi.NewRead(omi.ReadRequest{
		RequestBase: omi.RequestBase{NodeList: []string{"a/b"}},
		Interval:    omi.OnChange,
	})
	w, _ := omi.WriteObjects(odf.Objects(odf.Object("d", odf.InfoItem("x", &odf.Value{Text: "5"}))))
	one, _ := omi.NewRead(omi.ReadRequest{RequestBase: omi.RequestBase{NodeList: []string{"d/x"}}})
	resp, _ := omi.NewResponse(omi.Result{Return: omi.Success("")})

	tests := []struct {
		name    string
		payload omi.Payload
		code    omi.ReturnCode
	}{
		{"cancel", c, omi.CodeNotImplemented},
		{"subscribe", sub, omi.CodeNotImplemented},
		{"write", w, omi.CodeOK},
		{"read written", one, omi.CodeOK},
		{"response", resp, omi.CodeBadRequest},
	}
	for _, tt := range tests {
		env, err := omi.Wrap(tt.payload, omi.Version1, omi.Forever)
		if err != nil {
			t.Fatal(err)
		}
		out, err := m.Handle(env)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		l, ok := out.Payload.AsResponse()
		if !ok || len(l.Results) != 1 {
			t.Fatalf("%s: bad response %+v", tt.name, out.Payload)
		}
		if got := l.Results[0].Return.Code; got != tt.code {
			t.Errorf("%s: code %s, want %s", tt.name, got, tt.code)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := string(rune('a' + i))
			w, err := omi.WriteObjects(odf.Objects(odf.Object(id, odf.InfoItem("v", &odf.Value{Text: id}))))
			if err != nil {
				t.Error(err)
				return
			}
			if ret := m.Apply(w); ret.Code != omi.CodeOK {
				t.Error(ret)
			}
			if _, err := m.Resolve(id + "/v"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if n := len(m.Snapshot().Children); n != 8 {
		t.Errorf("%d objects, want 8", n)
	}
}

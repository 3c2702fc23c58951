package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDoc() *Node {
	items := FromSlice([]*Node{FromString("one"), FromString("two")})
	e := &Node{Type: ObjectType}
	Set(e, "@id", FromString("7"))
	Set(e, "item", items)
	root := &Node{Type: ObjectType}
	Set(root, "e", e)
	return root
}

func TestGetPath(t *testing.T) {
	doc := testDoc()
	tests := []struct {
		path string
		want string
	}{
		{"$.e.item[0]", "one"},
		{"$.e.item[1]", "two"},
		{"$.e.'@id'", "7"},
	}
	for _, tc := range tests {
		got, err := doc.GetPath(tc.path)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if got == nil || got.String != tc.want {
			t.Errorf("%s: got %v, want %q", tc.path, got, tc.want)
		}
	}
	got, err := doc.GetPath("$.e.missing")
	if err != nil || got != nil {
		t.Errorf("missing field: got %v, %v; want nil, nil", got, err)
	}
	if _, err := doc.GetPath("$.e.item[9]"); err == nil {
		t.Error("out of bounds index: expected error")
	}
}

func TestListPath(t *testing.T) {
	doc := testDoc()
	res, err := doc.ListPath(nil, "$.e.item[*]")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, y := range res {
		got = append(got, y.String)
	}
	if d := cmp.Diff([]string{"one", "two"}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestNodePath(t *testing.T) {
	doc := testDoc()
	item1 := Get(Get(doc, "e"), "item").Values[1]
	if got := item1.Path(); got != "$.e.item[1]" {
		t.Errorf("got %q, want $.e.item[1]", got)
	}
	id := Get(Get(doc, "e"), "@id")
	if got := id.Path(); got != "$.e.@id" {
		t.Errorf("got %q, want $.e.@id", got)
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	for _, p := range []string{"$", "$.a", "$.a.b[0]", "$[*].c", "$.'we like. dots'"} {
		yp, err := ParsePath(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if got := yp.String(); got != p {
			t.Errorf("got %q, want %q", got, p)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, p := range []string{"", "a.b", "$..a", "$.", "$.a[", "$.a[x]", "$x"} {
		if _, err := ParsePath(p); err == nil {
			t.Errorf("%q: expected error", p)
		}
	}
	if _, err := testDoc().GetPath("$.e.item[*]"); err == nil {
		t.Error("wildcard in get: expected error")
	}
}

package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b *Node
		want int
	}{
		{Null(), Null(), 0},
		{nil, Null(), -1},
		{Null(), FromString(""), -1},
		{FromString("a"), FromString("b"), -1},
		{FromString("b"), FromString("b"), 0},
		{FromSlice(nil), FromSlice([]*Node{Null()}), -1},
		{
			FromSlice([]*Node{FromString("a")}),
			FromSlice([]*Node{FromString("a")}),
			0,
		},
		{obj("a", "1"), obj("a", "1"), 0},
		{obj("a", "1"), obj("a", "2"), -1},
		{obj("a", "1"), obj("b", "1"), -1},
		// key order is significant
		{obj("a", "1", "b", "2"), obj("b", "2", "a", "1"), -1},
	}
	for i, tc := range tests {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("test %d: got %d, want %d", i, got, tc.want)
		}
		if got := Compare(tc.b, tc.a); got != -tc.want {
			t.Errorf("test %d reversed: got %d, want %d", i, got, -tc.want)
		}
		if tc.want == 0 != Equal(tc.a, tc.b) {
			t.Errorf("test %d: Equal disagrees with Compare", i)
		}
	}
}

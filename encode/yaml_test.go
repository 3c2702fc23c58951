package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/xj/ir"
)

func TestEncodeYAMLKeyOrder(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	node := obj("z", "1", "a", "2")
	if err := Encode(node, buf, EncodeFormat(YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	zi := strings.Index(out, "z:")
	ai := strings.Index(out, "a:")
	if zi == -1 || ai == -1 || zi > ai {
		t.Errorf("key order lost in yaml output:\n%s", out)
	}
}

func TestEncodeYAMLShapes(t *testing.T) {
	root := &ir.Node{Type: ir.ObjectType}
	ir.Set(root, "e", ir.FromSlice([]*ir.Node{
		ir.FromString("x"),
		ir.Null(),
	}))
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, EncodeFormat(YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "e:") || !strings.Contains(out, "- x") {
		t.Errorf("unexpected yaml output:\n%s", out)
	}
}

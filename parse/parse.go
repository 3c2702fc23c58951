// Package parse converts XML documents into value trees.
package parse

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/signadot/xj/debug"
	"github.com/signadot/xj/ir"
	"github.com/signadot/xj/token"
)

// Parse converts one XML document into a value tree. Conversion is
// best effort: malformed markup and non-UTF-8 fragments are dropped,
// never reported. The only hard failure is exceeding the nesting depth
// bound, which returns an error matching ErrDepth. Empty input yields a
// Null node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth, trim: true}
	for _, f := range opts {
		f(pOpts)
	}
	src := token.NewSource(d, pOpts.TokenOpts()...)
	return read(src, 0, pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// read consumes events for exactly one element's extent: everything up
// to the matching end event or end of input. It returns the finished
// value of that extent. The caller holds the start event, so the
// element's own name and attributes are merged one level up.
func read(src *token.Source, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth >= opts.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, opts.maxDepth)
	}
	nv := &nodeValues{}
	for {
		ev, err := src.Next()
		if err == io.EOF {
			break
		}
		switch ev.Type {
		case token.TStart:
			child, err := read(src, depth+1, opts)
			if err != nil {
				return nil, err
			}
			name, ok := utf8String(ev.Name)
			if !ok {
				// fragment dropped, conversion continues
				continue
			}
			nv.insert(name, mergeAttrs(child, ev.Attrs))
		case token.TText:
			if s, ok := utf8String(ev.Bytes); ok {
				nv.insertText(s)
			}
		case token.TCData:
			if s, ok := utf8String(ev.Bytes); ok {
				nv.insertCData(s)
			}
		case token.TEnd:
			return finish(nv, depth), nil
		}
	}
	return finish(nv, depth), nil
}

func finish(nv *nodeValues, depth int) *ir.Node {
	res := nv.value()
	if debug.Parse() {
		d, _ := ir.ToJSON(res)
		debug.Logf("parse: depth %d -> %s\n", depth, d)
	}
	return res
}

// mergeAttrs integrates a child element's attributes with its own
// finished value. With no usable attributes the child passes through.
// Otherwise the attributes become "@key" entries: directly inside the
// child when it is already an object, else in a synthesized wrapper
// object that carries the child under "#text" when it is a string.
func mergeAttrs(child *ir.Node, attrs []token.Attr) *ir.Node {
	if len(attrs) == 0 {
		return child
	}
	res := &ir.Node{Type: ir.ObjectType}
	for _, a := range attrs {
		key, ok := utf8String(a.Key)
		if !ok {
			continue
		}
		val, ok := utf8String(a.Value)
		if !ok {
			continue
		}
		ir.Set(res, "@"+key, ir.FromString(val))
	}
	if len(res.Fields) == 0 {
		return child
	}
	switch child.Type {
	case ir.ObjectType:
		for i := range child.Fields {
			ir.Set(res, child.Fields[i].String, child.Values[i])
		}
	case ir.StringType:
		ir.Set(res, textKey, child)
	}
	return res
}

func utf8String(d []byte) (string, bool) {
	if !utf8.Valid(d) {
		return "", false
	}
	return string(d), true
}

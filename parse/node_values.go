package parse

import "github.com/signadot/xj/ir"

const (
	textKey  = "#text"
	cdataKey = "#cdata"
)

// entry is one name in the open node. Its value is single while
// len(vals) == 1 and promoted to an array on the second same-named
// sibling, keeping first-seen-then-appended order.
type entry struct {
	name string
	vals []*ir.Node
}

// seg is one ordered unit of an element's content: either a finished
// object node or a free-standing text value. Segments preserve document
// order when text and element groups interleave.
type seg struct {
	text string
	obj  *ir.Node
}

func (s *seg) isText() bool {
	return s.obj == nil
}

// nodeValues accumulates the content of one element frame and
// finalizes it into a single value. It never fails: state it cannot
// use is simply not recorded.
type nodeValues struct {
	entries []entry
	segs    []seg
}

// insert sets val under name in the open node, promoting to an array
// when name was already present.
func (nv *nodeValues) insert(name string, val *ir.Node) {
	for i := range nv.entries {
		if nv.entries[i].name == name {
			nv.entries[i].vals = append(nv.entries[i].vals, val)
			return
		}
	}
	nv.entries = append(nv.entries, entry{name: name, vals: []*ir.Node{val}})
}

// insertText flushes the open node, if any, then records text as its
// own segment. The flush is what keeps interleaved text and element
// groups in document order.
func (nv *nodeValues) insertText(text string) {
	nv.flush()
	nv.segs = append(nv.segs, seg{text: text})
}

// insertCData concatenates into the open node's "#cdata" entry, in
// document order with no separator. Unlike text it never flushes.
func (nv *nodeValues) insertCData(text string) {
	for i := range nv.entries {
		if nv.entries[i].name == cdataKey {
			nv.entries[i].vals[0].String += text
			return
		}
	}
	nv.entries = append(nv.entries, entry{
		name: cdataKey,
		vals: []*ir.Node{ir.FromString(text)},
	})
}

// flush closes the open node into an object segment.
func (nv *nodeValues) flush() {
	if len(nv.entries) == 0 {
		return
	}
	kvs := make([]ir.KeyVal, 0, len(nv.entries))
	for i := range nv.entries {
		e := &nv.entries[i]
		val := e.vals[0]
		if len(e.vals) > 1 {
			val = ir.FromSlice(e.vals)
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(e.name), Val: val})
	}
	nv.segs = append(nv.segs, seg{obj: ir.FromKeyVals(kvs)})
	nv.entries = nil
}

// value finalizes the frame:
//
//  1. flush the open node
//  2. a single object segment with at most one text segment folds the
//     text into the object's "#text" key
//  3. otherwise segments stay interleaved in document order
//  4. empty content is Null, a single segment is the value itself,
//     anything more is an array
func (nv *nodeValues) value() *ir.Node {
	nv.flush()
	nObj, nText := 0, 0
	var lastObj *ir.Node
	var lastText string
	for i := range nv.segs {
		if nv.segs[i].isText() {
			nText++
			lastText = nv.segs[i].text
			continue
		}
		nObj++
		lastObj = nv.segs[i].obj
	}
	if nObj == 1 && nText <= 1 {
		if nText == 1 {
			ir.Set(lastObj, textKey, ir.FromString(lastText))
		}
		return lastObj
	}
	switch len(nv.segs) {
	case 0:
		return ir.Null()
	case 1:
		return ir.FromString(nv.segs[0].text)
	}
	vals := make([]*ir.Node, len(nv.segs))
	for i := range nv.segs {
		if nv.segs[i].isText() {
			vals[i] = ir.FromString(nv.segs[i].text)
			continue
		}
		vals[i] = nv.segs[i].obj
	}
	return ir.FromSlice(vals)
}

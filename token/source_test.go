package token

import (
	"io"
	"testing"
)

type evt struct {
	t     EventType
	name  string
	bytes string
	attrs [][2]string
}

func drain(t *testing.T, in string, opts ...TokenOpt) []evt {
	t.Helper()
	src := NewSource([]byte(in), opts...)
	var res []evt
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return res
		}
		e := evt{t: ev.Type, name: string(ev.Name), bytes: string(ev.Bytes)}
		for _, a := range ev.Attrs {
			e.attrs = append(e.attrs, [2]string{string(a.Key), string(a.Value)})
		}
		res = append(res, e)
	}
}

func checkEvents(t *testing.T, in string, want []evt, opts ...TokenOpt) {
	t.Helper()
	got := drain(t, in, opts...)
	if len(got) != len(want) {
		t.Fatalf("%q: got %d events %v, want %d", in, len(got), got, len(want))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.t != w.t || g.name != w.name || g.bytes != w.bytes {
			t.Errorf("%q event %d: got %v, want %v", in, i, g, w)
		}
		if len(g.attrs) != len(w.attrs) {
			t.Errorf("%q event %d: got attrs %v, want %v", in, i, g.attrs, w.attrs)
			continue
		}
		for j := range w.attrs {
			if g.attrs[j] != w.attrs[j] {
				t.Errorf("%q event %d attr %d: got %v, want %v", in, i, j, g.attrs[j], w.attrs[j])
			}
		}
	}
}

func TestSourceElements(t *testing.T) {
	checkEvents(t, `<e>text</e>`, []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: "text"},
		{t: TEnd, name: "e"},
	})
	checkEvents(t, `<a><b></b></a>`, []evt{
		{t: TStart, name: "a"},
		{t: TStart, name: "b"},
		{t: TEnd, name: "b"},
		{t: TEnd, name: "a"},
	})
}

func TestSourceSelfClosing(t *testing.T) {
	checkEvents(t, `<e/>`, []evt{
		{t: TStart, name: "e"},
		{t: TEnd, name: "e"},
	})
	checkEvents(t, `<e a="1"/>`, []evt{
		{t: TStart, name: "e", attrs: [][2]string{{"a", "1"}}},
		{t: TEnd, name: "e"},
	})
}

func TestSourceAttrs(t *testing.T) {
	checkEvents(t, `<e name="value" other='two'></e>`, []evt{
		{t: TStart, name: "e", attrs: [][2]string{{"name", "value"}, {"other", "two"}}},
		{t: TEnd, name: "e"},
	})
	// entity decoding applies inside attribute values
	checkEvents(t, `<e a="x &amp; y"></e>`, []evt{
		{t: TStart, name: "e", attrs: [][2]string{{"a", "x & y"}}},
		{t: TEnd, name: "e"},
	})
}

func TestSourceEntities(t *testing.T) {
	checkEvents(t, `<e>a &lt; b &amp; c &gt; d</e>`, []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: "a < b & c > d"},
		{t: TEnd, name: "e"},
	})
	checkEvents(t, `<e>&#65;&#x41;&quot;&apos;</e>`, []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: `AA"'`},
		{t: TEnd, name: "e"},
	})
	// unknown references pass through literally
	checkEvents(t, `<e>&nope; &also</e>`, []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: "&nope; &also"},
		{t: TEnd, name: "e"},
	})
}

func TestSourceCData(t *testing.T) {
	checkEvents(t, `<e><![CDATA[ a < b &amp; ]]></e>`, []evt{
		{t: TStart, name: "e"},
		// raw: no entity decoding, no trimming
		{t: TCData, bytes: " a < b &amp; "},
		{t: TEnd, name: "e"},
	})
	checkEvents(t, `<e><![CDATA[x]]><![CDATA[y]]></e>`, []evt{
		{t: TStart, name: "e"},
		{t: TCData, bytes: "x"},
		{t: TCData, bytes: "y"},
		{t: TEnd, name: "e"},
	})
}

func TestSourceSkipsNonContent(t *testing.T) {
	in := `<?xml version="1.0"?>
<!DOCTYPE e [ <!ELEMENT e (#PCDATA)> ]>
<!-- comment -->
<e>x</e>`
	checkEvents(t, in, []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: "x"},
		{t: TEnd, name: "e"},
	})
}

func TestSourceTrim(t *testing.T) {
	checkEvents(t, "<e>  x  </e>", []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: "x"},
		{t: TEnd, name: "e"},
	})
	// whitespace-only runs are suppressed entirely
	checkEvents(t, "<a> <b></b> </a>", []evt{
		{t: TStart, name: "a"},
		{t: TStart, name: "b"},
		{t: TEnd, name: "b"},
		{t: TEnd, name: "a"},
	})
	checkEvents(t, "<e>  x  </e>", []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: "  x  "},
		{t: TEnd, name: "e"},
	}, Trim(false))
}

func TestSourceLenient(t *testing.T) {
	// stray '<' becomes part of nothing; parsing continues
	checkEvents(t, "<e>a < b</e>", []evt{
		{t: TStart, name: "e"},
		{t: TText, bytes: "a"},
		{t: TText, bytes: "b"},
		{t: TEnd, name: "e"},
	})
	// unterminated CDATA runs to end of input
	checkEvents(t, "<e><![CDATA[x", []evt{
		{t: TStart, name: "e"},
		{t: TCData, bytes: "x"},
	})
}

func TestSourcePos(t *testing.T) {
	src := NewSource([]byte("<a>\n  <b/>\n</a>"))
	ev, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if got := ev.Pos.String(); got != "1:1" {
		t.Errorf("got pos %s, want 1:1", got)
	}
	ev, err = src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if got := ev.Pos.String(); got != "2:3" {
		t.Errorf("got pos %s, want 2:3", got)
	}
}

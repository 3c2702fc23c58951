package parse

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/xj/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Minimal documents
		``,
		`<e></e>`,
		`<e/>`,
		`<e>text</e>`,

		// Attributes
		`<e name="value"></e>`,
		`<e name="value">text</e>`,
		`<e a='1' b="2"/>`,

		// Nesting and repetition
		`<a><b><c>deep</c></b></a>`,
		`<e><a>x</a><a>y</a></e>`,

		// Mixed content
		`<e>a <x>b</x> c <x>d</x></e>`,

		// CDATA, comments, declarations
		`<e><![CDATA[ foo ]]><![CDATA[ bar ]]></e>`,
		`<?xml version="1.0"?><e/>`,
		`<!DOCTYPE e [ <!ELEMENT e (#PCDATA)> ]><e/>`,
		`<e><!-- note -->x</e>`,

		// Entities
		`<e>&lt;&amp;&gt;&#65;&#x41;</e>`,
		`<e>&unknown; &broken</e>`,

		// Malformed
		`<e><a>x</b></e>`,
		`<a>1</a><b>2</b>`,
		`<e><a>x`,
		`<e a="unterminated`,
		`< e>`,
		`</e>`,
		"\xff\xfe<e>\xff</e>",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		node, err := Parse(d, MaxDepth(64))
		if err != nil {
			if !errors.Is(err, ErrParse) {
				t.Fatalf("non-parse error: %v", err)
			}
			return
		}
		if node == nil {
			t.Fatal("nil node without error")
		}
		// whatever came out must encode
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(node, buf); err != nil {
			t.Fatalf("result does not encode: %v", err)
		}
	})
}

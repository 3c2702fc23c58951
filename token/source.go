package token

import (
	"bytes"
	"io"

	"github.com/signadot/xj/debug"
)

var (
	bom          = []byte{0xef, 0xbb, 0xbf}
	cdataOpen    = []byte("<![CDATA[")
	cdataClose   = []byte("]]>")
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
	piOpen       = []byte("<?")
	piClose      = []byte("?>")
)

// Source produces lexical XML events from an in-memory document. It is
// lenient: constructs it cannot make sense of are skipped, never fatal.
// Self-closing elements are expanded to a start/end event pair, so
// consumers need no empty-element special case.
type Source struct {
	d      []byte
	i      int
	opt    *tokenOpts
	posDoc *PosDoc

	// queued end events from self-closing tags
	pending []Event
}

func NewSource(d []byte, opts ...TokenOpt) *Source {
	opt := &tokenOpts{trim: true}
	for _, o := range opts {
		o(opt)
	}
	d = bytes.TrimPrefix(d, bom)
	return &Source{
		d:      d,
		opt:    opt,
		posDoc: newPosDoc(d),
	}
}

// Next returns the next event in document order, or io.EOF when the
// document is exhausted.
func (s *Source) Next() (*Event, error) {
	ev, err := s.next()
	if err == nil && debug.Tokens() {
		debug.Logf("token: %s\n", ev.Info())
	}
	return ev, err
}

func (s *Source) next() (*Event, error) {
	if len(s.pending) > 0 {
		ev := s.pending[0]
		s.pending = s.pending[1:]
		return &ev, nil
	}
	for s.i < len(s.d) {
		if s.d[s.i] != '<' {
			if ev := s.text(); ev != nil {
				return ev, nil
			}
			continue
		}
		rest := s.d[s.i:]
		switch {
		case bytes.HasPrefix(rest, cdataOpen):
			return s.cdata(), nil
		case bytes.HasPrefix(rest, commentOpen):
			s.skipPast(len(commentOpen), commentClose)
		case bytes.HasPrefix(rest, piOpen):
			s.skipPast(len(piOpen), piClose)
		case bytes.HasPrefix(rest, []byte("<!")):
			s.skipDirective()
		case bytes.HasPrefix(rest, []byte("</")):
			if ev := s.endTag(); ev != nil {
				return ev, nil
			}
		default:
			if ev := s.startTag(); ev != nil {
				return ev, nil
			}
		}
	}
	return nil, io.EOF
}

// text consumes a character data run up to the next '<'. It returns nil
// when the run is suppressed by trimming.
func (s *Source) text() *Event {
	pos := s.posDoc.Pos(s.i)
	j := bytes.IndexByte(s.d[s.i:], '<')
	var raw []byte
	if j == -1 {
		raw = s.d[s.i:]
		s.i = len(s.d)
	} else {
		raw = s.d[s.i : s.i+j]
		s.i += j
	}
	dec := decodeEntities(raw)
	if s.opt.trim {
		dec = bytes.TrimSpace(dec)
		if len(dec) == 0 {
			return nil
		}
	}
	return &Event{Type: TText, Bytes: dec, Pos: pos}
}

func (s *Source) cdata() *Event {
	pos := s.posDoc.Pos(s.i)
	s.i += len(cdataOpen)
	j := bytes.Index(s.d[s.i:], cdataClose)
	var raw []byte
	if j == -1 {
		// unterminated section runs to end of input
		raw = s.d[s.i:]
		s.i = len(s.d)
	} else {
		raw = s.d[s.i : s.i+j]
		s.i += j + len(cdataClose)
	}
	return &Event{Type: TCData, Bytes: raw, Pos: pos}
}

// skipPast advances past a construct opened at s.i whose open marker has
// length openLen, up to and including close. An unterminated construct
// consumes the rest of the input.
func (s *Source) skipPast(openLen int, close []byte) {
	s.i += openLen
	j := bytes.Index(s.d[s.i:], close)
	if j == -1 {
		s.i = len(s.d)
		return
	}
	s.i += j + len(close)
}

// skipDirective skips "<!...>" declarations, tracking '<'/'>' nesting so
// that a DOCTYPE internal subset does not end the skip early.
func (s *Source) skipDirective() {
	depth := 0
	for ; s.i < len(s.d); s.i++ {
		switch s.d[s.i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				s.i++
				return
			}
		}
	}
}

func (s *Source) startTag() *Event {
	pos := s.posDoc.Pos(s.i)
	j := s.i + 1
	name, j := readName(s.d, j)
	if len(name) == 0 {
		// stray '<' with no name: not markup, drop the byte
		s.i++
		return nil
	}
	var attrs []Attr
	selfClose := false
loop:
	for j < len(s.d) {
		j = skipSpace(s.d, j)
		if j >= len(s.d) {
			break
		}
		switch s.d[j] {
		case '>':
			j++
			break loop
		case '/':
			if j+1 < len(s.d) && s.d[j+1] == '>' {
				selfClose = true
				j += 2
				break loop
			}
			j++
		default:
			var attr *Attr
			attr, j = readAttr(s.d, j)
			if attr != nil {
				attrs = append(attrs, *attr)
			}
		}
	}
	s.i = j
	ev := &Event{Type: TStart, Name: name, Attrs: attrs, Pos: pos}
	if selfClose {
		s.pending = append(s.pending, Event{Type: TEnd, Name: name, Pos: pos})
	}
	return ev
}

func (s *Source) endTag() *Event {
	pos := s.posDoc.Pos(s.i)
	j := s.i + 2
	name, j := readName(s.d, j)
	// scan to '>', tolerating trailing whitespace or junk
	for j < len(s.d) && s.d[j] != '>' {
		j++
	}
	if j < len(s.d) {
		j++
	}
	s.i = j
	if len(name) == 0 {
		return nil
	}
	return &Event{Type: TEnd, Name: name, Pos: pos}
}

// readAttr reads one key or key="value" attribute at i. A nil attribute
// with i advanced means the byte at i was junk.
func readAttr(d []byte, i int) (*Attr, int) {
	key, i := readName(d, i)
	if len(key) == 0 {
		return nil, i + 1
	}
	i = skipSpace(d, i)
	if i >= len(d) || d[i] != '=' {
		// attribute without value, tolerated with an empty value
		return &Attr{Key: key}, i
	}
	i = skipSpace(d, i+1)
	if i >= len(d) {
		return &Attr{Key: key}, i
	}
	if q := d[i]; q == '"' || q == '\'' {
		i++
		j := bytes.IndexByte(d[i:], q)
		if j == -1 {
			// unterminated quote runs to the end of the tag
			j = bytes.IndexByte(d[i:], '>')
			if j == -1 {
				j = len(d) - i
			}
		}
		val := decodeEntities(d[i : i+j])
		i += j
		if i < len(d) && d[i] == q {
			i++
		}
		return &Attr{Key: key, Value: val}, i
	}
	// unquoted value, tolerated up to whitespace or tag end
	start := i
	for i < len(d) && !isSpace(d[i]) && d[i] != '>' && d[i] != '/' {
		i++
	}
	return &Attr{Key: key, Value: decodeEntities(d[start:i])}, i
}

// readName reads a tag or attribute name at i. Name characters are
// anything except whitespace and XML tag punctuation; finer-grained
// name validity is left to the consumer.
func readName(d []byte, i int) ([]byte, int) {
	start := i
	for i < len(d) {
		c := d[i]
		if isSpace(c) || c == '>' || c == '/' || c == '=' || c == '<' {
			break
		}
		i++
	}
	return d[start:i], i
}

func skipSpace(d []byte, i int) int {
	for i < len(d) && isSpace(d[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

package token

import "fmt"

type EventType int

const (
	TStart EventType = iota
	TText
	TCData
	TEnd
)

func (t EventType) String() string {
	return map[EventType]string{
		TStart: "TStart",
		TText:  "TText",
		TCData: "TCData",
		TEnd:   "TEnd",
	}[t]
}

// Attr is one attribute of a start event. Key and Value are raw bytes
// from the document with entity references in Value already decoded;
// they are not guaranteed to be valid UTF-8.
type Attr struct {
	Key   []byte
	Value []byte
}

type Event struct {
	Type EventType

	// Name is set for TStart and TEnd.
	Name []byte
	// Attrs is set for TStart.
	Attrs []Attr
	// Bytes carries decoded text for TText and raw content for TCData.
	Bytes []byte

	Pos *Pos
}

func (e *Event) Info() string {
	switch e.Type {
	case TStart, TEnd:
		return fmt.Sprintf("%s %q %s", e.Type, e.Name, e.Pos)
	default:
		return fmt.Sprintf("%s %q %s", e.Type, e.Bytes, e.Pos)
	}
}

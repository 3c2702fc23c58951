package token

import (
	"sort"
	"strconv"
)

type PosDoc struct {
	d []byte
	n []int
}

func newPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

// Pos is a position in the input document, identified by byte offset
// with line and column derived on demand.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) Line() int {
	l, _ := p.D.LineCol(p.I)
	return l
}

func (p *Pos) String() string {
	if p == nil {
		return "-"
	}
	l, c := p.D.LineCol(p.I)
	return strconv.Itoa(l+1) + ":" + strconv.Itoa(c+1)
}

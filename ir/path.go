package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns a path expression locating y from its root, suitable
// for GetPath on that root.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + pathString(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// A Path is a parsed path expression: a sequence of field selections
// ".name", index selections "[i]", and array wildcards "[*]" applied
// to the root "$".
type Path struct {
	steps []pathStep
}

type pathStep struct {
	field    string
	hasField bool
	index    int
	wildcard bool
}

func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, st := range p.steps {
		switch {
		case st.hasField:
			sb.WriteByte('.')
			sb.WriteString(pathString(st.field))
		case st.wildcard:
			sb.WriteString("[*]")
		default:
			fmt.Fprintf(&sb, "[%d]", st.index)
		}
	}
	return sb.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	res := &Path{}
	rest := p[1:]
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			field, tail, err := parseField(rest[1:])
			if err != nil {
				return nil, err
			}
			res.steps = append(res.steps, pathStep{field: field, hasField: true})
			rest = tail
		case '[':
			i := strings.IndexByte(rest[1:], ']')
			if i == -1 {
				return nil, fmt.Errorf("expected '[' <index> ']'")
			}
			st, err := parseIndex(rest[1 : i+1])
			if err != nil {
				return nil, err
			}
			res.steps = append(res.steps, st)
			rest = rest[i+2:]
		default:
			return nil, fmt.Errorf("expected '.' or '[' at %q", rest)
		}
	}
	return res, nil
}

func parseIndex(is string) (pathStep, error) {
	if is == "*" {
		return pathStep{wildcard: true}, nil
	}
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return pathStep{}, err
	}
	return pathStep{index: int(u64)}, nil
}

// parseField reads one field name after '.'. Names containing path
// punctuation are single-quoted with backslash escapes for "'".
func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field at %q", frag)
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath resolves a path to at most one node. The result is a clone,
// nil without error when an addressed field is absent. Wildcards are
// rejected; use ListPath for those.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for _, st := range yp.steps {
		switch {
		case st.wildcard:
			return nil, fmt.Errorf("any index in get")
		case st.hasField:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("expected object, got %s", res.Type)
			}
			v := Get(res, st.field)
			if v == nil {
				return nil, nil
			}
			res = v
		default:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("expected array, got %s", res.Type)
			}
			if st.index < 0 || st.index >= len(res.Values) {
				return nil, fmt.Errorf("index out of bounds %d (len %d)", st.index, len(res.Values))
			}
			res = res.Values[st.index]
		}
	}
	return res.Clone(), nil
}

// ListPath resolves a path to all matching nodes, appending clones to
// dst. Selections that do not apply to a node's type match nothing.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp.steps), nil
}

func (y *Node) listPath(dst []*Node, steps []pathStep) []*Node {
	if len(steps) == 0 {
		return append(dst, y.Clone())
	}
	st := steps[0]
	switch y.Type {
	case ObjectType:
		if !st.hasField {
			return dst
		}
		for i := range y.Fields {
			if y.Fields[i].String != st.field {
				continue
			}
			dst = y.Values[i].listPath(dst, steps[1:])
		}
		return dst
	case ArrayType:
		if st.hasField {
			return dst
		}
		if st.wildcard {
			for _, yv := range y.Values {
				dst = yv.listPath(dst, steps[1:])
			}
			return dst
		}
		if 0 <= st.index && st.index < len(y.Values) {
			dst = y.Values[st.index].listPath(dst, steps[1:])
		}
		return dst
	default:
		return dst
	}
}

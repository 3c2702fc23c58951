package token

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// longest reference we accept, e.g. "&#x10FFFF;"
const maxEntityLen = 10

// decodeEntities decodes the five predefined entities and numeric
// character references in d. Unknown or malformed references pass
// through literally.
func decodeEntities(d []byte) []byte {
	amp := bytes.IndexByte(d, '&')
	if amp == -1 {
		return d
	}
	res := make([]byte, 0, len(d))
	res = append(res, d[:amp]...)
	for i := amp; i < len(d); {
		c := d[i]
		if c != '&' {
			res = append(res, c)
			i++
			continue
		}
		semi := bytes.IndexByte(d[i:i+min(len(d)-i, maxEntityLen+2)], ';')
		if semi <= 1 {
			res = append(res, c)
			i++
			continue
		}
		rep, ok := entityRepl(d[i+1 : i+semi])
		if !ok {
			res = append(res, c)
			i++
			continue
		}
		res = append(res, rep...)
		i += semi + 1
	}
	return res
}

func entityRepl(name []byte) ([]byte, bool) {
	switch string(name) {
	case "amp":
		return []byte("&"), true
	case "lt":
		return []byte("<"), true
	case "gt":
		return []byte(">"), true
	case "quot":
		return []byte(`"`), true
	case "apos":
		return []byte("'"), true
	}
	if name[0] != '#' {
		return nil, false
	}
	num := name[1:]
	base := 10
	if len(num) > 0 && (num[0] == 'x' || num[0] == 'X') {
		base = 16
		num = num[1:]
	}
	n, err := strconv.ParseUint(string(num), base, 32)
	if err != nil {
		return nil, false
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return nil, false
	}
	return utf8.AppendRune(nil, r), true
}

package ir

import (
	"encoding/json"
)

type irBase struct {
	Type   Type    `json:"type"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Values = tmp.Values
	y.Fields = tmp.Fields
	y.String = tmp.String
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
		if y.Type == ObjectType && i < len(y.Fields) {
			v.ParentField = y.Fields[i].String
		}
	}
	for i, f := range y.Fields {
		f.Parent = y
		f.ParentIndex = i
	}
	return nil
}

func ToJSON(y *Node) ([]byte, error) {
	return json.Marshal(y)
}

func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}

package encode

import (
	"fmt"
	"io"

	"github.com/signadot/xj/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// toYAML lowers a node to the generic shape goccy marshals, using
// MapSlice so that object key order survives.
func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: toYAML(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	default:
		return nil
	}
}

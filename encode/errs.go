package encode

import (
	"errors"
	"fmt"

	"github.com/signadot/xj/ir"
)

var ErrEncoding = errors.New("encoding error")

func errType(node *ir.Node) error {
	return fmt.Errorf("%w: unexpected node type %s", ErrEncoding, node.Type)
}

package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
	ErrDepth = fmt.Errorf("%w: max depth exceeded", ErrParse)
)

package generator

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks a construct no generation rule exists for. It halts the run.
var ErrUnsupported = errors.New("unsupported construct")

// UnsupportedError names the function and construct that stopped generation.
type UnsupportedError struct {
	Function  string
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not implemented (function %s)", e.Construct, e.Function)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

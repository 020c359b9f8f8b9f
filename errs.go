package deep

import "errors"

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidHandler   = errors.New("invalid handler")
	ErrInvalidType      = errors.New("invalid type")
	ErrCyclicStructure  = errors.New("cyclic structure")
)

package defs

import "errors"

var (
	ErrUnknownTank       = errors.New("defs: unknown tank")
	ErrInvalidDefinition = errors.New("defs: invalid definition")
	ErrNoLevel           = errors.New("defs: level has no waves")
)

package board

import "errors"

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrNoEdit     = errors.New("no item under edit")
)

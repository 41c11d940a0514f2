package othello

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrBadNotation = errors.New("bad notation")
)

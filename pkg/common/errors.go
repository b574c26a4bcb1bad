package common

import "errors"

var (
	ErrOutOfRange     = errors.New("out of range")
	ErrSquareOccupied = errors.New("square occupied")
	ErrIllegalMove    = errors.New("illegal move")
	ErrInvalidFEN     = errors.New("invalid fen")
)

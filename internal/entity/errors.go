package entity

import "errors"

var (
	ErrCellUnavailable   = errors.New("cell is occupied or out of range")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

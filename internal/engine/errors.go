package engine

import "errors"

var ErrNoAvailableMoves = errors.New("no available moves")

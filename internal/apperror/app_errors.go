package apperror

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrGameInactive   = errors.New("game is not active")
	ErrMissingToken   = errors.New("auth token is missing")
	ErrInvalidToken   = errors.New("auth token is invalid")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrUnknownAction  = errors.New("unknown action")
)

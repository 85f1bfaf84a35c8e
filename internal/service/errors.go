package service

import "errors"

// Error taxonomy shared by the chat interpreter and the HTTP API. Transports
// translate with errors.Is; anything that doesn't match is treated as a
// store failure and surfaced as a generic apology / 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

package session

import "errors"

// Error kinds surfaced by the session core. Controllers map these onto
// HTTP statuses; everything else is treated as a store failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
)

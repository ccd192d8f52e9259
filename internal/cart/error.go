package cart

import "errors"

var (
	// -- Resource State --
	ErrLineNotFound = errors.New("cart line not found")
)

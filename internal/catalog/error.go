package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page size must be > 0")

	// -- Resource State --
	// ErrSuperseded marks a response that lost the race against a newer
	// fetch; its payload was discarded and must not be rendered.
	ErrSuperseded = errors.New("fetch superseded by a newer request")
)

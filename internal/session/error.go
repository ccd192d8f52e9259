package session

import "errors"

var (
	ErrUnauthenticated = errors.New("user not authenticated")
)

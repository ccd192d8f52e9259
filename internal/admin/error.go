package admin

import "errors"

var ErrNotAdmin = errors.New("admin privileges required")

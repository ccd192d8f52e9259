package wishlist

import "errors"

var ErrLineNotFound = errors.New("wishlist line not found")

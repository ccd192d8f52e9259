package checkout

import "errors"

var ErrEmptyBasket = errors.New("basket is empty")

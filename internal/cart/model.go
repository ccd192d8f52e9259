package cart

import "veluxe-store/internal/catalog"

// Line is one cart entry. The server owns its lifetime; the client keeps a
// cache that is re-fetched after every mutation.
type Line struct {
	CartID   int64           `json:"cartId"`
	UserID   string          `json:"userId"`
	Quantity int             `json:"quantity"`
	Product  catalog.Product `json:"Product"`
}

type addRequest struct {
	ProductID int64  `json:"productId"`
	UserID    string `json:"userId"`
	Quantity  int    `json:"quantity"`
}

type updateRequest struct {
	Quantity int `json:"quantity"`
}

package wishlist

import "veluxe-store/internal/catalog"

// Line is one wishlist entry; no quantity, unlike a cart line.
type Line struct {
	WishlistID int64           `json:"wishlistId"`
	UserID     string          `json:"userId"`
	Product    catalog.Product `json:"Product"`
}

type addRequest struct {
	ProductID int64  `json:"productId"`
	UserID    string `json:"userId"`
}

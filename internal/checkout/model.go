package checkout

import (
	"github.com/shopspring/decimal"

	"veluxe-store/internal/cart"
	"veluxe-store/internal/catalog"
)

// Item is one order line with its price captured at checkout-view time.
// Prices are not re-validated against the server before submit (price lock).
type Item struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Basket is the union-typed checkout input: either the full cart collection
// or a single buy-now product, never both.
type Basket struct {
	items []Item
}

// BasketFromCart builds the checkout input from the cart collection.
func BasketFromCart(lines []cart.Line) Basket {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, Item{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: decimal.NewFromFloat(l.Product.Price),
			Quantity:  qty,
		})
	}
	return Basket{items: items}
}

// BasketBuyNow treats a single product as a cart of one.
func BasketBuyNow(p catalog.Product, quantity int) Basket {
	if quantity < 1 {
		quantity = 1
	}
	return Basket{items: []Item{{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: decimal.NewFromFloat(p.Price),
		Quantity:  quantity,
	}}}
}

func (b Basket) Items() []Item { return b.items }
func (b Basket) Empty() bool   { return len(b.items) == 0 }

// orderItemPayload and orderRequest are the wire shapes of the submit call.
type orderItemPayload struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderRequest struct {
	UserID         string             `json:"userId"`
	ShippingCharge float64            `json:"shippingCharge"`
	Tax            float64            `json:"tax"`
	TotalPrice     float64            `json:"totalPrice"`
	PaymentMethod  string             `json:"paymentMethod"`
	Status         int                `json:"status"`
	OrderItems     []orderItemPayload `json:"orderItems"`

	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Apt        string `json:"apt"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type orderResponse struct {
	Message string `json:"message"`
	Order   struct {
		OrderID int64 `json:"orderId"`
	} `json:"order"`
}

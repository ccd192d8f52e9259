package order

import (
	"time"

	"veluxe-store/internal/catalog"
)

// Status is the server-reported order progression.
type Status int

const (
	StatusOrdered        Status = 1
	StatusShipping       Status = 2
	StatusOutForDelivery Status = 3
	StatusDelivered      Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusOrdered:
		return "Ordered"
	case StatusShipping:
		return "Shipping"
	case StatusOutForDelivery:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

type Order struct {
	ID             int64       `json:"id"`
	UserID         string      `json:"userId"`
	Status         Status      `json:"status"`
	TotalPrice     float64     `json:"totalPrice"`
	ShippingCharge float64     `json:"shippingCharge"`
	Tax            float64     `json:"tax"`
	PaymentMethod  string      `json:"paymentMethod"`
	CreatedAt      time.Time   `json:"createdAt"`
	OrderItems     []OrderItem `json:"OrderItems"`
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	Product   catalog.Product `json:"Product"`
}

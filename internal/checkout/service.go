package checkout

import (
	"context"

	"veluxe-store/internal/logger"
	"veluxe-store/internal/session"

	"go.uber.org/zap"
)

type apiClient interface {
	Post(ctx context.Context, path string, body, out any) error
}

// Receipt is what a successful submit hands to the order-tracking view.
type Receipt struct {
	Message string
	OrderID int64
}

// Service assembles and submits orders.
type Service interface {
	Totals(b Basket) Totals
	Submit(ctx context.Context, b Basket, form BuyerForm) (*Receipt, error)
}

type service struct {
	client apiClient
	sess   *session.Session
}

func NewService(client apiClient, sess *session.Session) Service {
	return &service{client: client, sess: sess}
}

func (s *service) Totals(b Basket) Totals {
	return ComputeTotals(b)
}

// Submit validates everything client-side, then posts the assembled order.
// Any local failure blocks the network call entirely; a server failure is
// returned verbatim so the form can stay populated for retry.
func (s *service) Submit(ctx context.Context, b Basket, form BuyerForm) (*Receipt, error) {
	if !s.sess.Authenticated() {
		return nil, session.ErrUnauthenticated
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if b.Empty() {
		return nil, ErrEmptyBasket
	}

	totals := ComputeTotals(b)
	items := make([]orderItemPayload, 0, len(b.Items()))
	for _, it := range b.Items() {
		items = append(items, orderItemPayload{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.UnitPrice.InexactFloat64(),
		})
	}

	req := orderRequest{
		UserID:         s.sess.UserID(),
		ShippingCharge: totals.Shipping.InexactFloat64(),
		Tax:            totals.Tax.InexactFloat64(),
		TotalPrice:     totals.Total.InexactFloat64(),
		PaymentMethod:  form.PaymentMethod,
		Status:         1,
		OrderItems:     items,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		Phone:          form.Phone,
		Address:        form.Address,
		Apt:            form.Apt,
		City:           form.City,
		State:          form.State,
		PostalCode:     form.PostalCode,
	}

	var resp orderResponse
	if err := s.client.Post(ctx, "/api/order/create", req, &resp); err != nil {
		logger.FromCtx(ctx).Warn("order submit failed", zap.Error(err))
		return nil, err
	}

	logger.FromCtx(ctx).Info("order placed",
		zap.Int64("order_id", resp.Order.OrderID),
		zap.String("total", totals.Total.StringFixed(2)))
	return &Receipt{Message: resp.Message, OrderID: resp.Order.OrderID}, nil
}

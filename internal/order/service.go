package order

import (
	"context"
	"errors"
	"strconv"

	"veluxe-store/internal/api"
	"veluxe-store/internal/session"
)

type apiClient interface {
	Get(ctx context.Context, path string, out any) error
}

// Service is the order-tracking view's data source.
type Service interface {
	Get(ctx context.Context, orderID int64) (*Order, error)
	ListForUser(ctx context.Context) ([]Order, error)
}

type service struct {
	client apiClient
	sess   *session.Session
}

func NewService(client apiClient, sess *session.Session) Service {
	return &service{client: client, sess: sess}
}

// Get fetches one order's detail for the tracking timeline.
func (s *service) Get(ctx context.Context, orderID int64) (*Order, error) {
	if !s.sess.Authenticated() {
		return nil, session.ErrUnauthenticated
	}

	var out Order
	err := s.client.Get(ctx, "/api/order/get/"+strconv.FormatInt(orderID, 10), &out)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &out, nil
}

// ListForUser fetches the signed-in user's order history, newest first as
// the server returns it.
func (s *service) ListForUser(ctx context.Context) ([]Order, error) {
	if !s.sess.Authenticated() {
		return nil, session.ErrUnauthenticated
	}

	var out []Order
	if err := s.client.Get(ctx, "/api/order/getuserorder/"+s.sess.UserID(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

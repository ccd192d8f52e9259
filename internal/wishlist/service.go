package wishlist

import (
	"context"
	"strconv"
	"sync"

	"veluxe-store/internal/cart"
	"veluxe-store/internal/session"
)

type apiClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Service maintains the signed-in user's wishlist, mirroring the cart's
// re-fetch-after-mutation discipline.
type Service interface {
	Refresh(ctx context.Context) error
	Lines() []Line
	Add(ctx context.Context, productID int64) error
	Remove(ctx context.Context, lineID int64) error
	MoveToCart(ctx context.Context, lineID int64) error
}

type service struct {
	client apiClient
	sess   *session.Session
	cart   cart.Service

	mu    sync.Mutex
	lines []Line
}

func NewService(client apiClient, sess *session.Session, cartSvc cart.Service) Service {
	return &service{client: client, sess: sess, cart: cartSvc}
}

func (s *service) Refresh(ctx context.Context) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}

	var lines []Line
	if err := s.client.Get(ctx, "/api/wishlist/get/"+s.sess.UserID(), &lines); err != nil {
		return err
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	return nil
}

func (s *service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *service) Add(ctx context.Context, productID int64) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}

	req := addRequest{ProductID: productID, UserID: s.sess.UserID()}
	if err := s.client.Post(ctx, "/api/wishlist/add", req, nil); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *service) Remove(ctx context.Context, lineID int64) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}
	if _, ok := s.find(lineID); !ok {
		return ErrLineNotFound
	}

	path := "/api/wishlist/remove/" + strconv.FormatInt(lineID, 10)
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// MoveToCart adds the wished product to the cart, then drops the wishlist
// line. A failed cart add leaves the wishlist untouched.
func (s *service) MoveToCart(ctx context.Context, lineID int64) error {
	line, ok := s.find(lineID)
	if !ok {
		return ErrLineNotFound
	}
	if err := s.cart.Add(ctx, line.Product.ID); err != nil {
		return err
	}
	return s.Remove(ctx, lineID)
}

func (s *service) find(lineID int64) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.WishlistID == lineID {
			return l, true
		}
	}
	return Line{}, false
}

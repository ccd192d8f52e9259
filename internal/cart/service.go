package cart

import (
	"context"
	"strconv"
	"sync"

	"veluxe-store/internal/logger"
	"veluxe-store/internal/session"

	"go.uber.org/zap"
)

// apiClient is the slice of the REST client the cart needs.
type apiClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Service maintains the signed-in user's cart lines and keeps them
// synchronized with server mutations.
type Service interface {
	Refresh(ctx context.Context) error
	Lines() []Line
	Count() int
	Add(ctx context.Context, productID int64) error
	Increment(ctx context.Context, lineID int64) error
	Decrement(ctx context.Context, lineID int64) error
	Remove(ctx context.Context, lineID int64) error
}

type service struct {
	client apiClient
	sess   *session.Session

	mu    sync.Mutex
	lines []Line
}

// NewService creates a new cart service.
func NewService(client apiClient, sess *session.Session) Service {
	return &service{client: client, sess: sess}
}

// Refresh replaces the local cache with the server's line collection.
func (s *service) Refresh(ctx context.Context) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}

	var lines []Line
	if err := s.client.Get(ctx, "/api/cart/get/"+s.sess.UserID(), &lines); err != nil {
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

func (s *service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Add puts one unit of a product into the cart. The server decides whether
// that creates a line or bumps an existing one; reconcile picks it up.
func (s *service) Add(ctx context.Context, productID int64) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}

	req := addRequest{ProductID: productID, UserID: s.sess.UserID(), Quantity: 1}
	if err := s.client.Post(ctx, "/api/cart/add", req, nil); err != nil {
		return err
	}
	return s.reconcile(ctx)
}

// Increment raises a line's quantity by exactly 1.
func (s *service) Increment(ctx context.Context, lineID int64) error {
	return s.adjust(ctx, lineID, +1)
}

// Decrement lowers a line's quantity by 1, flooring at 1. Dropping a line
// entirely goes through Remove, never through Decrement.
func (s *service) Decrement(ctx context.Context, lineID int64) error {
	return s.adjust(ctx, lineID, -1)
}

func (s *service) adjust(ctx context.Context, lineID int64, delta int) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}

	line, ok := s.find(lineID)
	if !ok {
		return ErrLineNotFound
	}
	next := line.Quantity + delta
	if next < 1 {
		// Floor; nothing to send.
		return nil
	}

	path := "/api/cart/update/" + strconv.FormatInt(lineID, 10)
	if err := s.client.Put(ctx, path, updateRequest{Quantity: next}, nil); err != nil {
		return err
	}
	return s.reconcile(ctx)
}

// Remove deletes a line server-side, then reconciles.
func (s *service) Remove(ctx context.Context, lineID int64) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}
	if _, ok := s.find(lineID); !ok {
		return ErrLineNotFound
	}

	path := "/api/cart/remove/" + strconv.FormatInt(lineID, 10)
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return err
	}
	return s.reconcile(ctx)
}

func (s *service) find(lineID int64) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.CartID == lineID {
			return l, true
		}
	}
	return Line{}, false
}

// reconcile is the single post-mutation discipline: every successful
// mutation is followed by a full re-fetch, so the server stays the only
// source of truth. A failed re-fetch leaves the cache stale until the next
// one succeeds.
func (s *service) reconcile(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		logger.FromCtx(ctx).Warn("cart reconcile failed", zap.Error(err))
		return err
	}
	return nil
}

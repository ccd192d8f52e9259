package account

import (
	"context"

	"veluxe-store/internal/logger"
	"veluxe-store/internal/session"

	"go.uber.org/zap"
)

type apiClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Service owns login/signup and the profile screen.
type Service interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, input SignupInput) error
	Logout()
	Profile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, p Profile) error
	DeleteAccount(ctx context.Context) error
}

type service struct {
	client apiClient
	sess   *session.Session
}

func NewService(client apiClient, sess *session.Session) Service {
	return &service{client: client, sess: sess}
}

// Login authenticates and stores the returned identity in the session.
// Any previous identity is dropped first, so a failed login never leaves
// a stale user behind.
func (s *service) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	s.sess.Clear()

	var resp loginResponse
	if err := s.client.Post(ctx, "/api/users/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return err
	}

	s.sess.SetCredentials(resp.UserID, resp.Token)
	s.sess.SetAdmin(resp.IsAdmin)
	logger.FromCtx(ctx).Info("logged in", zap.Bool("admin", resp.IsAdmin))
	return nil
}

func (s *service) Signup(ctx context.Context, input SignupInput) error {
	return s.client.Post(ctx, "/api/users/signup", input, nil)
}

func (s *service) Logout() {
	s.sess.Clear()
}

func (s *service) Profile(ctx context.Context) (*Profile, error) {
	if !s.sess.Authenticated() {
		return nil, session.ErrUnauthenticated
	}

	var resp profileResponse
	if err := s.client.Get(ctx, "/api/users/profile/"+s.sess.UserID(), &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (s *service) UpdateProfile(ctx context.Context, p Profile) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}
	return s.client.Patch(ctx, "/api/users/profile/"+s.sess.UserID(), p, nil)
}

// DeleteAccount removes the user server-side and wipes the session.
func (s *service) DeleteAccount(ctx context.Context) error {
	if !s.sess.Authenticated() {
		return session.ErrUnauthenticated
	}
	if err := s.client.Delete(ctx, "/api/users/"+s.sess.UserID(), nil); err != nil {
		return err
	}
	s.sess.Clear()
	return nil
}

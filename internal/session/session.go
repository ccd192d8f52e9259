package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session carries the signed-in user's id and bearer token. Every component
// gets the one Session handed to it rather than reading ambient state.
// Safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	userID  string
	token   string
	isAdmin bool

	// now is swappable for expiry tests.
	now func() time.Time
}

func New() *Session {
	return &Session{now: time.Now}
}

// SetCredentials stores the identity returned by a successful login.
func (s *Session) SetCredentials(userID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.token = token
}

func (s *Session) SetAdmin(isAdmin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAdmin = isAdmin
}

// Clear wipes the stored identity on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	s.token = ""
	s.isAdmin = false
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}

// Token returns the bearer token, discarding it first when expired.
// There is no refresh flow; an expired token is simply dropped.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" && s.tokenExpired() {
		s.userID = ""
		s.token = ""
		s.isAdmin = false
	}
	return s.token
}

// Authenticated reports whether both user id and a live token are present.
// Mutations must check this before issuing any network call.
func (s *Session) Authenticated() bool {
	token := s.Token()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID != "" && token != ""
}

// tokenExpired decodes the token's claimed expiry without verifying the
// signature. Verification is the server's job; the client only needs to
// know when to stop sending a token the server would reject anyway.
func (s *Session) tokenExpired() bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.token, claims); err != nil {
		// Opaque tokens carry no readable expiry; let the server decide.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return s.now().After(exp.Time)
}

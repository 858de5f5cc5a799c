package auth

import "github.com/pkg/errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")
)

// Session tracks whether, and as whom, the current caller is authenticated.
// The zero value is the anonymous session. A Session has a single owner (the
// request/connection handler) and is never shared across users.
type Session struct {
	authenticated bool
	username      string
	role          string
}

// NewAuthenticatedSession is used by transport layers that re-establish a
// session from verified claims on each request.
func NewAuthenticatedSession(username, role string) Session {
	return Session{authenticated: true, username: username, role: role}
}

func (s *Session) IsAuthenticated() bool { return s.authenticated }

// Username returns the account name, or "" while anonymous.
func (s *Session) Username() string { return s.username }

// Role returns the account role, or "" while anonymous.
func (s *Session) Role() string { return s.role }

// Logout resets the session to anonymous. Calling it on an already anonymous
// session is a no-op.
func (s *Session) Logout() {
	*s = Session{}
}

// RequireAuthenticated gates actions open to any logged-in account.
// It must be re-evaluated on every guarded operation.
func (s *Session) RequireAuthenticated() error {
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireRole gates actions restricted to the given role.
func (s *Session) RequireRole(role string) error {
	if err := s.RequireAuthenticated(); err != nil {
		return err
	}
	if s.role != role {
		return ErrPermissionDenied
	}
	return nil
}

func (s *Session) promote(username, role string) {
	s.authenticated = true
	s.username = username
	s.role = role
}

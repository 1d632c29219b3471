// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"fmt"

	"github.com/courtside/auth-api/internal/core"
	"github.com/courtside/auth-api/internal/user"
)

// Service orchestrates registration, login, profile retrieval and logout.
// Every operation is a single-shot request/response; no session state is
// kept between calls.
type Service struct {
	users  *user.Service
	tokens *TokenIssuer
}

func NewService(users *user.Service, tokens *TokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register hashes the password, persists the user (propagating
// core.ErrDuplicateEmail) and answers with a signed session. The
// profilePicture reference, when present, has already been fully written by
// the upload store.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*Session, error) {
	birthdate, err := ParseBirthdate(req.Birthdate)
	if err != nil {
		return nil, fmt.Errorf("parse birthdate: %w", core.ErrInvalidInput)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, user.CreateParams{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		ProfilePicture: req.ProfilePicture,
		Birthdate:      birthdate,
		PhoneNumber:    req.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	return s.newSession(u)
}

// Login receives a user already resolved by the credential gate; it only
// issues the token and formats the view. A nil user means the gate was
// bypassed and is treated as an authentication failure.
func (s *Service) Login(
	ctx context.Context,
	u *user.User,
) (*Session, error) {
	if u == nil {
		return nil, fmt.Errorf("login: %w", core.ErrUnauthorized)
	}

	return s.newSession(u)
}

// Profile is pure formatting of an already-authenticated user.
func (s *Service) Profile(u *user.User) user.PublicView {
	return user.ToPublicView(u)
}

// Logout acknowledges a client-side token discard. Nothing is tracked
// server-side, so any userId is accepted; a real invalidation would need a
// token blacklist.
func (s *Service) Logout(ctx context.Context, userID string) string {
	return "Logged out successfully"
}

func (s *Service) newSession(u *user.User) (*Session, error) {
	accessToken, err := s.tokens.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{
		User:        user.ToPublicView(u),
		AccessToken: accessToken,
	}, nil
}

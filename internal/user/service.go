// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	ProfilePicture string
	Birthdate      time.Time
	PhoneNumber    string
}

// Create persists a new user. Email is normalized to lowercase so uniqueness
// is case-insensitive by construction; a duplicate surfaces as
// core.ErrDuplicateEmail from the repository.
func (s *Service) Create(
	ctx context.Context,
	params CreateParams,
) (*User, error) {
	user := &User{
		ID:             uuid.New().String(),
		Email:          NormalizeEmail(params.Email),
		PasswordHash:   params.PasswordHash,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		ProfilePicture: params.ProfilePicture,
		Birthdate:      params.Birthdate,
		PhoneNumber:    params.PhoneNumber,
		Role:           RolePlayer,
		Permissions:    Permissions{},
		IsVerified:     false,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, NormalizeEmail(email))
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

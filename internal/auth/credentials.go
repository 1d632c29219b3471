// AngelaMos | 2026
// credentials.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtside/auth-api/internal/core"
	"github.com/courtside/auth-api/internal/user"
)

type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// CredentialValidator resolves an email/password pair into a user, or nothing.
// It is side-effect-free and never reveals through its result or its timing
// whether the email exists: a lookup miss still runs a full hash verification.
type CredentialValidator struct {
	users UserFinder
}

func NewCredentialValidator(users UserFinder) *CredentialValidator {
	return &CredentialValidator{users: users}
}

// Validate returns (nil, nil) for an unknown email or a wrong password, and
// the user only for the exact correct pair.
func (v *CredentialValidator) Validate(
	ctx context.Context,
	email, password string,
) (*user.User, error) {
	u, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.VerifyPasswordTimingSafe(password, nil)
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !core.VerifyPasswordTimingSafe(password, &u.PasswordHash) {
		return nil, nil
	}

	return u, nil
}

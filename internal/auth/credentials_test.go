// AngelaMos | 2026
// credentials_test.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/auth-api/internal/core"
	"github.com/courtside/auth-api/internal/user"
)

type stubUserFinder struct {
	users map[string]*user.User
	err   error
}

func (f *stubUserFinder) GetByEmail(
	ctx context.Context,
	email string,
) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func newCredentialFixture(t *testing.T) (*CredentialValidator, *user.User) {
	t.Helper()

	hash, err := core.HashPassword("Str0ngPassword")
	require.NoError(t, err)

	u := testUser()
	u.PasswordHash = hash

	finder := &stubUserFinder{users: map[string]*user.User{u.Email: u}}
	return NewCredentialValidator(finder), u
}

func TestValidateCorrectPair(t *testing.T) {
	validator, want := newCredentialFixture(t)

	got, err := validator.Validate(context.Background(), "ada@x.com", "Str0ngPassword")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
}

func TestValidateWrongPassword(t *testing.T) {
	validator, _ := newCredentialFixture(t)

	got, err := validator.Validate(context.Background(), "ada@x.com", "WrongPassword1")
	require.NoError(t, err)
	assert.Nil(t, got, "wrong password must resolve to no user, not an error")
}

func TestValidateUnknownEmail(t *testing.T) {
	validator, _ := newCredentialFixture(t)

	got, err := validator.Validate(context.Background(), "ghost@x.com", "Str0ngPassword")
	require.NoError(t, err)
	assert.Nil(t, got, "unknown email is indistinguishable from wrong password")
}

func TestValidatePropagatesLookupFailure(t *testing.T) {
	finder := &stubUserFinder{err: errors.New("connection reset")}
	validator := NewCredentialValidator(finder)

	got, err := validator.Validate(context.Background(), "ada@x.com", "Str0ngPassword")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.NotErrorIs(t, err, core.ErrNotFound)
}

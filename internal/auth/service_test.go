// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/auth-api/internal/core"
	"github.com/courtside/auth-api/internal/user"
)

// memoryRepository mirrors the database repository contract, including the
// atomic uniqueness guarantee on email.
type memoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	byID    map[string]*user.User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		byEmail: make(map[string]*user.User),
		byID:    make(map[string]*user.User),
	}
}

func (r *memoryRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return fmt.Errorf("create user: %w", core.ErrDuplicateEmail)
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	r.byEmail[u.Email] = &stored
	r.byID[u.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (r *memoryRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func newServiceFixture(t *testing.T) (*Service, *user.Service) {
	t.Helper()

	users := user.NewService(newMemoryRepository())
	return NewService(users, newTestIssuer(t, time.Hour)), users
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "Ada@X.com",
		Birthdate:   "1990-12-10",
		PhoneNumber: "+15551234567",
		Password:    "Str0ngPassword",
	}
}

func TestRegister(t *testing.T) {
	svc, users := newServiceFixture(t)

	session, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.User.ID)
	assert.Equal(t, "ada@x.com", session.User.Email, "email is stored lowercase")
	assert.Equal(t, "Ada Lovelace", session.User.Name)
	assert.Equal(t, user.RolePlayer, session.User.Role)
	assert.NotNil(t, session.User.Permissions)
	assert.Empty(t, session.User.Permissions)
	assert.False(t, session.User.IsVerified)

	stored, err := users.GetByEmail(context.Background(), "ada@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPassword", stored.PasswordHash)
	assert.True(t, core.VerifyPassword("Str0ngPassword", stored.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newServiceFixture(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	// same address with different case collides after normalization
	req := registerRequest()
	req.Email = "ADA@x.COM"

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateEmail)
}

func TestRegisterInvalidBirthdate(t *testing.T) {
	svc, _ := newServiceFixture(t)

	req := registerRequest()
	req.Birthdate = "12/10/1990"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, users := newServiceFixture(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	u, err := users.GetByEmail(context.Background(), "ada@x.com")
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), u)
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, u.ID, session.User.ID)
}

func TestLoginNilUser(t *testing.T) {
	svc, _ := newServiceFixture(t)

	_, err := svc.Login(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	svc, _ := newServiceFixture(t)

	assert.Equal(
		t,
		"Logged out successfully",
		svc.Logout(context.Background(), "any-user-id"),
	)
}

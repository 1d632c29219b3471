// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/auth-api/internal/core"
)

type fakeRepository struct {
	byEmail map[string]*User
	byID    map[string]*User
	created []*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (r *fakeRepository) Create(ctx context.Context, u *User) error {
	if _, exists := r.byEmail[u.Email]; exists {
		return fmt.Errorf("create user: %w", core.ErrDuplicateEmail)
	}
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	r.created = append(r.created, u)
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (r *fakeRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func createParams() CreateParams {
	return CreateParams{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "  Ada@X.com ",
		PasswordHash: "$2a$10$hash",
		Birthdate:    time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		PhoneNumber:  "+15551234567",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	u, err := svc.Create(context.Background(), createParams())
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ada@x.com", u.Email, "email is trimmed and lowercased")
	assert.Equal(t, RolePlayer, u.Role)
	assert.Equal(t, Permissions{}, u.Permissions)
	assert.False(t, u.IsVerified)

	require.Len(t, repo.created, 1)
	assert.Same(t, u, repo.created[0])
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	first, err := svc.Create(context.Background(), createParams())
	require.NoError(t, err)

	params := createParams()
	params.Email = "grace@x.com"
	second, err := svc.Create(context.Background(), params)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), createParams())
	require.NoError(t, err)

	params := createParams()
	params.Email = "ADA@X.COM"
	_, err = svc.Create(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateEmail)
}

func TestGetByEmailNormalizes(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), createParams())
	require.NoError(t, err)

	found, err := svc.GetByEmail(context.Background(), " ADA@x.Com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@x.com", NormalizeEmail("  Ada@X.com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"product-catalog/internal/auth"
	"product-catalog/internal/repository"
	"product-catalog/internal/repository/sqlite"
)

func newTestRepos(t *testing.T) (repository.UserRepository, repository.ProductRepository) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := sqlite.NewUserRepository(db)
	products := sqlite.NewProductRepository(db)
	require.NoError(t, users.Init(context.Background()))
	require.NoError(t, products.Init(context.Background()))

	return users, products
}

func newUserService(t *testing.T) UserService {
	t.Helper()
	users, _ := newTestRepos(t)
	return NewUserService(users, auth.NewPasswordHasher(bcrypt.MinCost))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	created, err := svc.Register(ctx, "alice", "secret-password")
	require.NoError(t, err)
	require.Equal(t, "alice", created.Username)
	require.NotZero(t, created.ID)
	require.Empty(t, created.PasswordHash, "returned user must not carry the hash")

	authed, err := svc.Authenticate(ctx, "alice", "secret-password")
	require.NoError(t, err)
	require.Equal(t, created.ID, authed.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "alice", "secret-password")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another-password")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret-password"},
		{"short username", "al", "secret-password"},
		{"empty password", "alice", ""},
		{"short password", "alice", "short"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.password)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestAuthenticate_UniformFailure(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "alice", "secret-password")
	require.NoError(t, err)

	// unknown user and wrong password must be indistinguishable
	_, unknownErr := svc.Authenticate(ctx, "nobody", "secret-password")
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, wrongErr := svc.Authenticate(ctx, "alice", "wrong-password")
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	require.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestDelete_RemovesUser(t *testing.T) {
	ctx := context.Background()
	users, _ := newTestRepos(t)
	svc := NewUserService(users, auth.NewPasswordHasher(bcrypt.MinCost))

	created, err := svc.Register(ctx, "alice", "secret-password")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	require.True(t, errors.Is(err, repository.ErrNotFound))
}

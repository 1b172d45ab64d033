package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/Cod-Harsh/college-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)

		var created *domain.User
		repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(ctx context.Context, user *domain.User) {
				created = user
			}).
			Return(nil)

		svc := NewUserService(repo)

		user, err := svc.Register(context.Background(), domain.CreateUserInput{
			Name:            "Alice",
			Email:           "alice@college.edu",
			Password:        "secret1",
			PasswordConfirm: "secret1",
		})
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@college.edu", user.Email)
		assert.False(t, user.IsAdmin)
		assert.Equal(t, created, user)

		// The stored hash must verify against the original password.
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(user.PasswordHash), []byte("secret1"),
		))
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name  string
			input domain.CreateUserInput
		}{
			{
				name: "empty name",
				input: domain.CreateUserInput{
					Email: "a@b.c", Password: "secret1", PasswordConfirm: "secret1",
				},
			},
			{
				name: "empty email",
				input: domain.CreateUserInput{
					Name: "Alice", Password: "secret1", PasswordConfirm: "secret1",
				},
			},
			{
				name: "short password",
				input: domain.CreateUserInput{
					Name: "Alice", Email: "a@b.c", Password: "abc", PasswordConfirm: "abc",
				},
			},
			{
				name: "password mismatch",
				input: domain.CreateUserInput{
					Name: "Alice", Email: "a@b.c", Password: "secret1", PasswordConfirm: "secret2",
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := mocks.NewMockUserRepo(t)
				svc := NewUserService(repo)

				user, err := svc.Register(context.Background(), tt.input)
				assert.Nil(t, user)
				assert.ErrorIs(t, err, domain.ErrValidation)
			})
		}
	})

	t.Run("email taken", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(domain.ErrEmailTaken)

		svc := NewUserService(repo)

		user, err := svc.Register(context.Background(), domain.CreateUserInput{
			Name:            "Alice",
			Email:           "alice@college.edu",
			Password:        "secret1",
			PasswordConfirm: "secret1",
		})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "user-1",
		Email:        "alice@college.edu",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			GetByEmail(mock.Anything, "alice@college.edu").
			Return(stored, nil)

		svc := NewUserService(repo)

		user, err := svc.Authenticate(context.Background(), "alice@college.edu", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			GetByEmail(mock.Anything, "alice@college.edu").
			Return(stored, nil)

		svc := NewUserService(repo)

		user, err := svc.Authenticate(context.Background(), "alice@college.edu", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			GetByEmail(mock.Anything, "nobody@college.edu").
			Return(nil, domain.ErrUserNotFound)

		svc := NewUserService(repo)

		user, err := svc.Authenticate(context.Background(), "nobody@college.edu", "secret1")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("repo error is not masked", func(t *testing.T) {
		repoErr := errors.New("connection refused")

		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			GetByEmail(mock.Anything, "alice@college.edu").
			Return(nil, repoErr)

		svc := NewUserService(repo)

		user, err := svc.Authenticate(context.Background(), "alice@college.edu", "secret1")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, repoErr)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Run("already seeded", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			GetByEmail(mock.Anything, "admin@college.edu").
			Return(&domain.User{ID: "admin-1", IsAdmin: true}, nil)

		svc := NewUserService(repo)

		err := svc.EnsureAdmin(context.Background(), "Admin", "admin@college.edu", "admin123")
		assert.NoError(t, err)
	})

	t.Run("creates admin when missing", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			GetByEmail(mock.Anything, "admin@college.edu").
			Return(nil, domain.ErrUserNotFound)

		var created *domain.User
		repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(ctx context.Context, user *domain.User) {
				created = user
			}).
			Return(nil)

		svc := NewUserService(repo)

		err := svc.EnsureAdmin(context.Background(), "Admin", "admin@college.edu", "admin123")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, created.IsAdmin)
		assert.Equal(t, "admin@college.edu", created.Email)
	})

	t.Run("lost seeding race is not an error", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().
			GetByEmail(mock.Anything, "admin@college.edu").
			Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(domain.ErrEmailTaken)

		svc := NewUserService(repo)

		err := svc.EnsureAdmin(context.Background(), "Admin", "admin@college.edu", "admin123")
		assert.NoError(t, err)
	})
}

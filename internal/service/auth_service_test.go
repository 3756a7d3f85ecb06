package service_test

import (
	"context"
	"testing"

	"github.com/dom/league-improvement-tracker/internal/repository/postgres"
	"github.com/dom/league-improvement-tracker/internal/service"
	"github.com/dom/league-improvement-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Email:    "newuser@test.local",
				Username: "newuser",
				Password: "password123",
			},
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Email:    "other@test.local",
				Username: "existinguser",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrUsernameExists,
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:    "taken@test.local",
				Username: "freshname",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@test.local").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Username, user.Username)
			assert.NotEqual(t, tt.input.Password, user.HashedPassword)
			assert.True(t, user.IsActive)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().WithUsername("loginuser").Build(t, testDB.DB)

	t.Run("valid credentials", func(t *testing.T) {
		token, got, err := authService.Login(ctx, "loginuser", password)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := authService.Login(ctx, "loginuser", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := authService.Login(ctx, "ghost", password)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("token round-trips through validation", func(t *testing.T) {
		token, _, err := authService.Login(ctx, "loginuser", password)
		require.NoError(t, err)

		userID, err := authService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := authService.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})
}

package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"restman/internal/domain"
	"restman/internal/mocks"
	"restman/internal/service"
)

func TestAuthService_Register(t *testing.T) {
	users := mocks.NewUserRepository(t)
	tokens := mocks.NewTokenStore(t)
	svc := service.NewAuthService(users, tokens)
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	users.On("GetByUsername", "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil).Once()
	_, err = svc.Register(ctx, service.RegisterRequest{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	users.On("GetByUsername", "bob").Return(nil, assert.AnError).Once()
	users.On("Insert", mock.MatchedBy(func(u *domain.User) bool {
		// The stored password is a bcrypt hash, never the plaintext.
		return u.Role == domain.RoleCustomer &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) == nil
	})).Return(nil).Once()

	user, err := svc.Register(ctx, service.RegisterRequest{Username: "bob", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
}

func TestAuthService_LoginAndCurrentUser(t *testing.T) {
	users := mocks.NewUserRepository(t)
	tokens := mocks.NewTokenStore(t)
	svc := service.NewAuthService(users, tokens)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	stored := &domain.User{ID: 42, Username: "alice", Password: string(hash), Role: domain.RoleCustomer}

	users.On("GetByUsername", "alice").Return(stored, nil)

	_, _, err := svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	var savedToken string
	tokens.On("SaveToken", ctx, mock.Anything, 42).
		Run(func(args mock.Arguments) { savedToken = args.String(1) }).
		Return(nil).Once()

	token, user, err := svc.Login(ctx, "alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, 42, user.ID)
	assert.Len(t, token, 64)
	assert.Equal(t, token, savedToken)

	tokens.On("UserIDForToken", ctx, token).Return(42, nil).Once()
	users.On("GetByID", 42).Return(stored, nil).Once()

	current, err := svc.CurrentUser(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", current.Username)

	tokens.On("UserIDForToken", ctx, "stale").Return(0, assert.AnError).Once()
	_, err = svc.CurrentUser(ctx, "stale")
	assert.ErrorIs(t, err, service.ErrSessionExpired)
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	users := mocks.NewUserRepository(t)
	tokens := mocks.NewTokenStore(t)
	svc := service.NewAuthService(users, tokens)
	ctx := context.Background()

	tokens.On("DeleteToken", ctx, "tok-42").Return(nil).Once()
	assert.NoError(t, svc.Logout(ctx, "tok-42"))

	// The token is gone server side; it must not resolve afterwards.
	tokens.On("UserIDForToken", ctx, "tok-42").Return(0, assert.AnError).Once()
	_, err := svc.CurrentUser(ctx, "tok-42")
	assert.ErrorIs(t, err, service.ErrSessionExpired)

	// A guest without a token is a no-op, not an error.
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestAuthService_UpdateProfile(t *testing.T) {
	users := mocks.NewUserRepository(t)
	tokens := mocks.NewTokenStore(t)
	svc := service.NewAuthService(users, tokens)
	ctx := context.Background()

	user := &domain.User{ID: 42, Username: "alice", Email: "old@example.com"}
	email := "new@example.com"

	users.On("Update", mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.Username == "alice"
	})).Return(nil).Once()

	updated, err := svc.UpdateProfile(ctx, user, service.ProfilePatch{Email: &email})
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *UserRepository) GetByID(id int) (*domain.User, error) {
	args := _m.Called(id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *UserRepository) GetByUsername(username string) (*domain.User, error) {
	args := _m.Called(username)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *UserRepository) Insert(user *domain.User) error {
	args := _m.Called(user)
	return args.Error(0)
}

func (_m *UserRepository) Update(user *domain.User) error {
	args := _m.Called(user)
	return args.Error(0)
}

type TokenStore struct {
	mock.Mock
}

func NewTokenStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenStore {
	m := &TokenStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *TokenStore) SaveToken(ctx context.Context, token string, userID int) error {
	args := _m.Called(ctx, token, userID)
	return args.Error(0)
}

func (_m *TokenStore) UserIDForToken(ctx context.Context, token string) (int, error) {
	args := _m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (_m *TokenStore) DeleteToken(ctx context.Context, token string) error {
	args := _m.Called(ctx, token)
	return args.Error(0)
}

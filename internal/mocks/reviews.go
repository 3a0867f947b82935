package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
)

type ReviewRepository struct {
	mock.Mock
}

func NewReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewRepository {
	m := &ReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReviewRepository) Insert(review *domain.Review) error {
	args := _m.Called(review)
	return args.Error(0)
}

func (_m *ReviewRepository) Get(id int) (*domain.Review, error) {
	args := _m.Called(id)
	if review, ok := args.Get(0).(*domain.Review); ok {
		return review, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *ReviewRepository) Update(id int, rating int, content string) (*domain.Review, error) {
	args := _m.Called(id, rating, content)
	if review, ok := args.Get(0).(*domain.Review); ok {
		return review, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *ReviewRepository) Delete(id int) error {
	args := _m.Called(id)
	return args.Error(0)
}

func (_m *ReviewRepository) ListForDish(dishID int) ([]domain.Review, error) {
	args := _m.Called(dishID)
	if reviews, ok := args.Get(0).([]domain.Review); ok {
		return reviews, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *ReviewRepository) InsertReply(reply *domain.ReviewReply) error {
	args := _m.Called(reply)
	return args.Error(0)
}

type ReviewMarker struct {
	mock.Mock
}

func NewReviewMarker(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewMarker {
	m := &ReviewMarker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReviewMarker) MarkerKey(userID, dishID int) string {
	args := _m.Called(userID, dishID)
	return args.String(0)
}

func (_m *ReviewMarker) Exists(ctx context.Context, key string) (bool, error) {
	args := _m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (_m *ReviewMarker) SetMarker(ctx context.Context, key string) error {
	args := _m.Called(ctx, key)
	return args.Error(0)
}

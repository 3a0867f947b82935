package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
)

type StatsRepository struct {
	mock.Mock
}

func NewStatsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsRepository {
	m := &StatsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StatsRepository) MonthlyRevenue(year int) ([]domain.MonthRevenue, error) {
	args := _m.Called(year)
	if revenue, ok := args.Get(0).([]domain.MonthRevenue); ok {
		return revenue, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *StatsRepository) DishPopularity(limit int) ([]domain.DishCount, error) {
	args := _m.Called(limit)
	if dishes, ok := args.Get(0).([]domain.DishCount); ok {
		return dishes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *StatsRepository) RatingDistribution() (map[string]int, error) {
	args := _m.Called()
	if ratings, ok := args.Get(0).(map[string]int); ok {
		return ratings, args.Error(1)
	}
	return nil, args.Error(1)
}

type AnalyticsStore struct {
	mock.Mock
}

func NewAnalyticsStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnalyticsStore {
	m := &AnalyticsStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AnalyticsStore) RecordOrder(ctx context.Context, lines []domain.OrderLine, amount int64, day string) error {
	args := _m.Called(ctx, lines, amount, day)
	return args.Error(0)
}

func (_m *AnalyticsStore) ReverseOrder(ctx context.Context, lines []domain.OrderLine, amount int64, day string) error {
	args := _m.Called(ctx, lines, amount, day)
	return args.Error(0)
}

func (_m *AnalyticsStore) RecordReview(ctx context.Context, dishID, rating int) error {
	args := _m.Called(ctx, dishID, rating)
	return args.Error(0)
}

func (_m *AnalyticsStore) TopDishes(ctx context.Context, limit int) ([]domain.DishCount, error) {
	args := _m.Called(ctx, limit)
	if dishes, ok := args.Get(0).([]domain.DishCount); ok {
		return dishes, args.Error(1)
	}
	return nil, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
	"restman/internal/service"
)

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuRepository) ListCategories() ([]domain.Category, error) {
	args := _m.Called()
	if categories, ok := args.Get(0).([]domain.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *MenuRepository) ListDishes(params service.DishQuery) ([]domain.Dish, int, error) {
	args := _m.Called(params)
	if dishes, ok := args.Get(0).([]domain.Dish); ok {
		return dishes, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (_m *MenuRepository) GetDish(id int) (*domain.Dish, error) {
	args := _m.Called(id)
	if dish, ok := args.Get(0).(*domain.Dish); ok {
		return dish, args.Error(1)
	}
	return nil, args.Error(1)
}

type DishCache struct {
	mock.Mock
}

func NewDishCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *DishCache {
	m := &DishCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *DishCache) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	args := _m.Called(ctx, id)
	if dish, ok := args.Get(0).(*domain.Dish); ok {
		return dish, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *DishCache) SetDish(ctx context.Context, dish *domain.Dish) error {
	args := _m.Called(ctx, dish)
	return args.Error(0)
}

package service

import (
	"context"
	"log"

	"restman/internal/domain"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// DishQuery is the filter set for dish listing.
type DishQuery struct {
	Page       int
	PageSize   int
	CategoryID int
	Query      string
}

// DishPage is one page of dishes with the total match count.
type DishPage struct {
	Results  []domain.Dish `json:"results"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type MenuService struct {
	repository MenuRepository
	cache      DishCache
}

func NewMenuService(repository MenuRepository, cache DishCache) *MenuService {
	return &MenuService{repository: repository, cache: cache}
}

func (s *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repository.ListCategories()
}

func (s *MenuService) ListDishes(ctx context.Context, params DishQuery) (*DishPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		params.PageSize = defaultPageSize
	}

	dishes, total, err := s.repository.ListDishes(params)
	if err != nil {
		return nil, err
	}
	return &DishPage{
		Results:  dishes,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

func (s *MenuService) GetDish(ctx context.Context, dishID int) (*domain.Dish, error) {
	if s.cache != nil {
		if dish, err := s.cache.GetDish(ctx, dishID); err == nil && dish != nil {
			return dish, nil
		}
	}

	dish, err := s.repository.GetDish(dishID)
	if err != nil {
		return nil, ErrDishNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetDish(ctx, dish); err != nil {
			log.Printf("[restman] failed to cache dish %d: %v", dishID, err)
		}
	}
	return dish, nil
}

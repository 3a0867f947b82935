package service

import (
	"context"

	"restman/internal/domain"
)

const topDishLimit = 10

// StatsService serves read-only reporting. Dish popularity prefers the
// analytics keys maintained by the event consumer and falls back to the
// database when they are empty.
type StatsService struct {
	repository StatsRepository
	analytics  AnalyticsStore
}

func NewStatsService(repository StatsRepository, analytics AnalyticsStore) *StatsService {
	return &StatsService{repository: repository, analytics: analytics}
}

func (s *StatsService) MonthlyRevenue(ctx context.Context, year int) ([]domain.MonthRevenue, error) {
	return s.repository.MonthlyRevenue(year)
}

func (s *StatsService) DishPopularity(ctx context.Context) ([]domain.DishCount, error) {
	if s.analytics != nil {
		if top, err := s.analytics.TopDishes(ctx, topDishLimit); err == nil && len(top) > 0 {
			return top, nil
		}
	}
	return s.repository.DishPopularity(topDishLimit)
}

func (s *StatsService) RatingDistribution(ctx context.Context) (map[string]int, error) {
	return s.repository.RatingDistribution()
}

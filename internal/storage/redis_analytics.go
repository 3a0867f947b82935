package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"restman/internal/domain"
)

const dailyKeyTTL = 30 * 24 * time.Hour

// RedisAnalytics maintains the sorted sets behind the statistics
// endpoints: an all-time dish popularity set and per-day revenue
// counters.
type RedisAnalytics struct {
	Client *redis.Client
}

func NewRedisAnalytics(client *redis.Client) *RedisAnalytics {
	return &RedisAnalytics{Client: client}
}

func (a *RedisAnalytics) RecordOrder(ctx context.Context, lines []domain.OrderLine, amount int64, day string) error {
	for _, line := range lines {
		if err := a.Client.ZIncrBy(ctx, "stats:dishes", float64(line.Quantity), strconv.Itoa(line.DishID)).Err(); err != nil {
			return err
		}
	}

	dailyKey := "stats:revenue:" + day
	if err := a.Client.IncrBy(ctx, dailyKey, amount).Err(); err != nil {
		return err
	}
	return a.Client.Expire(ctx, dailyKey, dailyKeyTTL).Err()
}

// ReverseOrder backs a cancelled order out of the counters its creation
// added, against the day the cancellation lands on.
func (a *RedisAnalytics) ReverseOrder(ctx context.Context, lines []domain.OrderLine, amount int64, day string) error {
	for _, line := range lines {
		if err := a.Client.ZIncrBy(ctx, "stats:dishes", -float64(line.Quantity), strconv.Itoa(line.DishID)).Err(); err != nil {
			return err
		}
	}
	return a.Client.DecrBy(ctx, "stats:revenue:"+day, amount).Err()
}

func (a *RedisAnalytics) RecordReview(ctx context.Context, dishID, rating int) error {
	key := "stats:ratings:" + strconv.Itoa(dishID)
	if err := a.Client.HIncrBy(ctx, key, strconv.Itoa(rating), 1).Err(); err != nil {
		return err
	}
	return a.Client.Expire(ctx, key, dailyKeyTTL).Err()
}

// TopDishes returns dish ids with order counts; names are filled in by
// the caller when needed.
func (a *RedisAnalytics) TopDishes(ctx context.Context, limit int) ([]domain.DishCount, error) {
	results, err := a.Client.ZRevRangeWithScores(ctx, "stats:dishes", 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]domain.DishCount, 0, len(results))
	for _, result := range results {
		member, ok := result.Member.(string)
		if !ok {
			continue
		}
		dishID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		counts = append(counts, domain.DishCount{DishID: dishID, OrderCount: int(result.Score)})
	}
	return counts, nil
}

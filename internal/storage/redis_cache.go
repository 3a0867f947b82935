package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"restman/internal/domain"
)

const (
	dishCacheTTL = 10 * time.Minute
	tokenTTL     = 24 * time.Hour
	markerTTL    = 24 * time.Hour
)

// RedisCache backs the dish cache, review duplicate markers and auth
// token sessions.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

func dishKey(id int) string {
	return "dish:" + strconv.Itoa(id)
}

func (c *RedisCache) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	raw, err := c.Client.Get(ctx, dishKey(id)).Result()
	if err != nil {
		return nil, err
	}
	var dish domain.Dish
	if err := json.Unmarshal([]byte(raw), &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (c *RedisCache) SetDish(ctx context.Context, dish *domain.Dish) error {
	payload, err := json.Marshal(dish)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, dishKey(dish.ID), payload, dishCacheTTL).Err()
}

func (c *RedisCache) MarkerKey(userID, dishID int) string {
	return "review:" + strconv.Itoa(userID) + ":" + strconv.Itoa(dishID)
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", markerTTL).Err()
}

func tokenKey(token string) string {
	return "session:" + token
}

func (c *RedisCache) SaveToken(ctx context.Context, token string, userID int) error {
	return c.Client.Set(ctx, tokenKey(token), strconv.Itoa(userID), tokenTTL).Err()
}

func (c *RedisCache) UserIDForToken(ctx context.Context, token string) (int, error) {
	raw, err := c.Client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}

func (c *RedisCache) DeleteToken(ctx context.Context, token string) error {
	return c.Client.Del(ctx, tokenKey(token)).Err()
}

package storage

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"restman/internal/domain"
)

const (
	cartTTL  = 7 * 24 * time.Hour
	tableTTL = 12 * time.Hour
)

// RedisSessionStore persists cart snapshots and the per-session active
// table slot. Carts are whole-snapshot JSON overwrites: last writer wins,
// never a field-level merge.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

// LoadCart returns the stored snapshot, or an empty cart when the key is
// absent or the stored data does not decode. Corrupt data is treated as
// empty, never an error.
func (s *RedisSessionStore) LoadCart(ctx context.Context, key string) (domain.Cart, error) {
	raw, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("[restman] discarding undecodable cart snapshot %s: %v", key, err)
		return domain.Cart{}, nil
	}
	return domain.Cart{Lines: lines}, nil
}

func (s *RedisSessionStore) SaveCart(ctx context.Context, key string, cart domain.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, payload, cartTTL).Err()
}

func (s *RedisSessionStore) DeleteCart(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

func tableKey(sessionID string) string {
	return "table_session:" + sessionID
}

// ActiveTable returns 0 when no table is bound to the session.
func (s *RedisSessionStore) ActiveTable(ctx context.Context, sessionID string) (int, error) {
	raw, err := s.Client.Get(ctx, tableKey(sessionID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}
	return id, nil
}

// SetActiveTable binds the table to the session; tableID 0 clears the
// slot.
func (s *RedisSessionStore) SetActiveTable(ctx context.Context, sessionID string, tableID int) error {
	if tableID == 0 {
		return s.Client.Del(ctx, tableKey(sessionID)).Err()
	}
	return s.Client.Set(ctx, tableKey(sessionID), strconv.Itoa(tableID), tableTTL).Err()
}

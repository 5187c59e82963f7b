package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultCartTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisStore) Load(ctx context.Context, owner string) (*Cart, error) {
	raw, err := s.client.Get(ctx, storageKey(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return decodeCart(s.logger, owner, raw), nil
}

func (s *RedisStore) Save(ctx context.Context, owner string, cart *Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, storageKey(owner), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Update anahtarı WATCH eder; MULTI/EXEC sırasında anahtar değiştiyse işlem
// düşer ve fn güncel sepetle yeniden çalışır.
func (s *RedisStore) Update(ctx context.Context, owner string, fn func(*Cart) error) (*Cart, error) {
	key := storageKey(owner)
	var cart *Cart

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		cart = decodeCart(s.logger, owner, raw)
		if err := fn(cart); err != nil {
			return err
		}
		encoded, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("failed to encode cart: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return cart, nil
	}
	return nil, ErrConcurrentUpdate
}

func (s *RedisStore) Clear(ctx context.Context, owner string) error {
	return s.client.Del(ctx, storageKey(owner)).Err()
}

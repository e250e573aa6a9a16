package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yigitoz/prayer-times-service/internal/config"
)

// RedisStore реализует Store поверх Redis.
type RedisStore struct {
	Db *redis.Client
}

// NewRedisStore создает клиент Redis и проверяет соединение.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection) (*RedisStore, error) {
	const op = "storage.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{Db: db}, nil
}

// Get возвращает значение по ключу, found=false если ключа нет.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "storage.RedisStore.Get"
	val, err := s.Db.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Set сохраняет значение по ключу без срока жизни: временем жизни записей
// управляют менеджеры кеша по полю cachedAt, а не Redis TTL.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.Db.Set(ctx, key, value, 0).Err()
}

// Remove удаляет ключ. Удаление отсутствующего ключа не является ошибкой.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.Db.Del(ctx, key).Err()
}

// RemoveMany удаляет набор ключей одной командой.
func (s *RedisStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.Db.Del(ctx, keys...).Err()
}

// ListKeys возвращает все ключи базы через SCAN, не блокируя Redis командой KEYS.
func (s *RedisStore) ListKeys(ctx context.Context) ([]string, error) {
	const op = "storage.RedisStore.ListKeys"
	var keys []string
	iter := s.Db.Scan(ctx, 0, "*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return keys, nil
}

// Close закрывает соединение с Redis.
func (s *RedisStore) Close() error {
	return s.Db.Close()
}

// Package storage реализует персистентное строковое key-value хранилище —
// субстрат, на котором построено всё кеширование времён намаза.
// Доступны две реализации: Redis (основная) и PostgreSQL.
package storage

import "context"

// Store описывает операции персистентного key-value хранилища.
// Get возвращает found=false для отсутствующего ключа, это не ошибка.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error
	ListKeys(ctx context.Context) ([]string, error)
}

package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore реализует Store поверх PostgreSQL (таблица kv_store).
// Используется в развертываниях без Redis.
type PostgresStore struct {
	DB *sql.DB
}

// NewPostgresStore создаёт подключение к PostgreSQL и проверяет его.
func NewPostgresStore(storageConnectionString string) (*PostgresStore, error) {
	const op = "storage.NewPostgresStore"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &PostgresStore{DB: db}, nil
}

// Get возвращает значение по ключу, found=false если ключа нет.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "storage.PostgresStore.Get"
	var value string
	err := s.DB.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

// Set сохраняет значение по ключу, перезаписывая существующее.
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	const op = "storage.PostgresStore.Set"
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Remove удаляет ключ. Удаление отсутствующего ключа не является ошибкой.
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	const op = "storage.PostgresStore.Remove"
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RemoveMany удаляет набор ключей одним запросом.
func (s *PostgresStore) RemoveMany(ctx context.Context, keys []string) error {
	const op = "storage.PostgresStore.RemoveMany"
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListKeys возвращает все ключи таблицы.
func (s *PostgresStore) ListKeys(ctx context.Context) ([]string, error) {
	const op = "storage.PostgresStore.ListKeys"
	rows, err := s.DB.QueryContext(ctx, `SELECT key FROM kv_store`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return keys, nil
}

// Close закрывает соединение с базой данных.
func (s *PostgresStore) Close() error {
	return s.DB.Close()
}

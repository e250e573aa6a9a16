package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/models"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// Admin выполняет служебные операции над кешем: статистика, полная
// очистка и удаление просроченных записей. Чужие ключи хранилища
// (настройки, счётчики зикра) не затрагиваются.
type Admin struct {
	store storage.Store
	keys  config.CacheKeys
	log   *slog.Logger
}

// NewAdmin создает административный сервис кеша.
func NewAdmin(store storage.Store, keys config.CacheKeys, log *slog.Logger) *Admin {
	return &Admin{store: store, keys: keys, log: log}
}

// Stats возвращает сводку по месячному кешу: количество записей, суммарный
// размер и список городов. Ошибки гасятся, возвращается пустая сводка.
func (a *Admin) Stats(ctx context.Context) models.CacheStats {
	stats := models.CacheStats{TotalSize: "0 KB", Cities: []string{}}

	keys, err := a.store.ListKeys(ctx)
	if err != nil {
		a.log.Warn("failed to list cache keys", sl.Err(err))
		return stats
	}

	var totalSize int
	seen := make(map[string]struct{})
	for _, key := range keys {
		if !strings.HasPrefix(key, a.keys.MonthlyPrefix) {
			continue
		}
		stats.TotalItems++

		value, found, err := a.store.Get(ctx, key)
		if err != nil || !found {
			continue
		}
		totalSize += len(value)

		if city := a.cityOfKey(key); city != "" {
			if _, ok := seen[city]; !ok {
				seen[city] = struct{}{}
				stats.Cities = append(stats.Cities, city)
			}
		}
	}

	stats.TotalSize = fmt.Sprintf("%.2f KB", float64(totalSize)/1024)
	return stats
}

// cityOfKey извлекает город из ключа вида prayer_times_v2_<city>_<year>_<month>.
// Город может содержать подчёркивания, поэтому отбрасываются две последние части.
func (a *Admin) cityOfKey(key string) string {
	rest := strings.TrimPrefix(key, a.keys.MonthlyPrefix+a.keys.MonthlyVersion)
	if rest == key {
		// другая версия схемы: город не извлечь без знания её формата
		return ""
	}
	parts := strings.Split(rest, "_")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[:len(parts)-2], "_")
}

// ClearAll удаляет все записи месячного и недельного кеша, возвращает
// количество удалённых ключей.
func (a *Admin) ClearAll(ctx context.Context) int {
	keys, err := a.store.ListKeys(ctx)
	if err != nil {
		a.log.Warn("failed to list cache keys", sl.Err(err))
		return 0
	}

	var toRemove []string
	for _, key := range keys {
		if strings.HasPrefix(key, a.keys.MonthlyPrefix) || strings.HasPrefix(key, a.keys.WeeklyPrefix) {
			toRemove = append(toRemove, key)
		}
	}
	if len(toRemove) == 0 {
		return 0
	}

	if err := a.store.RemoveMany(ctx, toRemove); err != nil {
		a.log.Warn("failed to remove cache keys", sl.Err(err))
		return 0
	}

	a.log.Info("cache cleared", slog.Int("removed", len(toRemove)))
	return len(toRemove)
}

// CleanExpired удаляет месячные записи старше MonthlyMaxAge и возвращает
// количество удалённых. Нечитаемые записи тоже удаляются: они не могут
// быть корректно проверены на свежесть и бесполезны для чтения.
func (a *Admin) CleanExpired(ctx context.Context) int {
	keys, err := a.store.ListKeys(ctx)
	if err != nil {
		a.log.Warn("failed to list cache keys", sl.Err(err))
		return 0
	}

	deleted := 0
	for _, key := range keys {
		if !strings.HasPrefix(key, a.keys.MonthlyPrefix) {
			continue
		}

		raw, found, err := a.store.Get(ctx, key)
		if err != nil || !found {
			continue
		}

		var record models.MonthlyRecord
		expired := false
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			a.log.Warn("corrupt cache record, deleting", slog.String("key", key), sl.Err(err))
			expired = true
		} else if IsExpired(record.CachedAt, MonthlyMaxAge) {
			expired = true
		}

		if expired {
			if err := a.store.Remove(ctx, key); err != nil {
				a.log.Warn("failed to remove expired record", slog.String("key", key), sl.Err(err))
				continue
			}
			deleted++
		}
	}

	if deleted > 0 {
		a.log.Info("expired cache records deleted", slog.Int("count", deleted))
	}
	return deleted
}

package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/models"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// BackupManager хранит единственную резервную запись «последнего успешного
// результата» и отдельный скалярный ключ последнего города. Источником
// истины для последнего города служит сама резервная запись: скалярный
// ключ пишется только для совместимости со старыми установками, поэтому
// расхождение между ними невозможно по построению.
type BackupManager struct {
	store storage.Store
	keys  config.CacheKeys
	log   *slog.Logger
}

// NewBackupManager создает менеджер резервной записи.
func NewBackupManager(store storage.Store, keys config.CacheKeys, log *slog.Logger) *BackupManager {
	return &BackupManager{store: store, keys: keys, log: log}
}

// Save перезаписывает резервную запись. Скалярный ключ города пишется
// строго после успешной записи самой резервной копии.
func (b *BackupManager) Save(ctx context.Context, city string, times models.PrayerTimes) {
	record := models.BackupRecord{
		City:     city,
		Data:     times,
		CachedAt: nowMs(),
	}

	raw, err := json.Marshal(record)
	if err != nil {
		b.log.Warn("failed to marshal backup record", sl.Err(err))
		return
	}
	if err := b.store.Set(ctx, b.keys.BackupKey, string(raw)); err != nil {
		b.log.Warn("failed to write backup record", sl.Err(err))
		return
	}
	if err := b.store.Set(ctx, b.keys.LastCityKey, city); err != nil {
		b.log.Warn("failed to write last city key", sl.Err(err))
	}

	b.log.Info("backup record saved", slog.String("city", city))
}

// Load возвращает резервную запись либо nil. Резервная копия не имеет
// срока жизни: как последнее средство она валидна всегда.
func (b *BackupManager) Load(ctx context.Context) *models.BackupRecord {
	raw, found, err := b.store.Get(ctx, b.keys.BackupKey)
	if err != nil {
		b.log.Warn("failed to read backup record", sl.Err(err))
		return nil
	}
	if !found {
		return nil
	}

	var record models.BackupRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		b.log.Warn("corrupt backup record", sl.Err(err))
		return nil
	}
	return &record
}

// LastCity возвращает последний успешно разрешённый город либо пустую строку.
func (b *BackupManager) LastCity(ctx context.Context) string {
	if record := b.Load(ctx); record != nil {
		return record.City
	}
	return ""
}

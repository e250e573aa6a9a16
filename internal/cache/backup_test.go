package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigitoz/prayer-times-service/internal/models"
)

func newBackupManager(t *testing.T) (*BackupManager, *storageProbe) {
	t.Helper()
	store := setupTestStore(t)
	return NewBackupManager(store, testKeys(), testLogger()), &storageProbe{store: store}
}

func TestBackup_SaveAndLoad(t *testing.T) {
	manager, probe := newBackupManager(t)
	ctx := context.Background()

	times := models.PrayerTimes{
		Imsak: "05:30", Gunes: "07:00", Ogle: "12:30",
		Ikindi: "15:15", Aksam: "17:45", Yatsi: "19:15",
	}
	manager.Save(ctx, "Istanbul", times)

	record := manager.Load(ctx)
	require.NotNil(t, record)
	assert.Equal(t, "Istanbul", record.City)
	assert.Equal(t, times, record.Data)
	assert.InDelta(t, time.Now().UnixMilli(), record.CachedAt, float64(5*time.Second.Milliseconds()))

	// Скалярный ключ города пишется вслед за резервной копией
	lastCity, found, err := probe.store.Get(ctx, "last_city_used")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Istanbul", lastCity)
}

func TestBackup_SaveOverwritesPrevious(t *testing.T) {
	manager, _ := newBackupManager(t)
	ctx := context.Background()

	manager.Save(ctx, "Istanbul", models.PrayerTimes{Imsak: "05:30"})
	manager.Save(ctx, "Ankara", models.PrayerTimes{Imsak: "05:45"})

	record := manager.Load(ctx)
	require.NotNil(t, record)
	assert.Equal(t, "Ankara", record.City)
	assert.Equal(t, "05:45", record.Data.Imsak)
	assert.Equal(t, "Ankara", manager.LastCity(ctx))
}

func TestBackup_LoadWithoutRecord(t *testing.T) {
	manager, _ := newBackupManager(t)

	assert.Nil(t, manager.Load(context.Background()))
	assert.Equal(t, "", manager.LastCity(context.Background()))
}

func TestBackup_CorruptRecordTreatedAsMissing(t *testing.T) {
	manager, probe := newBackupManager(t)
	ctx := context.Background()

	require.NoError(t, probe.store.Set(ctx, "last_prayer_times_backup", "{{nope"))

	assert.Nil(t, manager.Load(ctx))
	assert.Equal(t, "", manager.LastCity(ctx))
}

// Последний город берётся из самой резервной записи, а не из
// скалярного ключа: расхождение между ними решается в пользу записи.
func TestBackup_LastCityComesFromRecordNotScalarKey(t *testing.T) {
	manager, probe := newBackupManager(t)
	ctx := context.Background()

	manager.Save(ctx, "Istanbul", models.PrayerTimes{Imsak: "05:30"})
	require.NoError(t, probe.store.Set(ctx, "last_city_used", "Ankara"))

	assert.Equal(t, "Istanbul", manager.LastCity(ctx))
}

package location

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/models"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

func newService(t *testing.T) *Service {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	store, err := storage.NewRedisStore(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)

	keys := config.CacheKeys{LocationKey: "user_location"}
	return New(store, keys, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSaveAndLoadLocation(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	want := models.UserLocation{Latitude: 41.0082, Longitude: 28.9784, City: "Istanbul"}
	require.NoError(t, service.Save(ctx, want))

	got, err := service.Location(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestLocation_Empty(t *testing.T) {
	service := newService(t)

	got, err := service.Location(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNearestCity(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		cityName string
		want     string
	}{
		{
			name: "координаты Стамбула",
			lat:  41.0, lon: 29.0,
			want: "Istanbul",
		},
		{
			name: "координаты Анкары",
			lat:  39.93, lon: 32.86,
			want: "Ankara",
		},
		{
			name: "имя города важнее расстояния",
			lat:  41.0, lon: 29.0,
			cityName: "Konya",
			want:     "Konya",
		},
		{
			name: "имя нормализуется по турецким правилам",
			lat:  0, lon: 0,
			cityName: "İZMİR",
			want:     "Izmir",
		},
		{
			name: "Diyarbakır с диакритикой",
			lat:  0, lon: 0,
			cityName: "diyarbakir",
			want:     "Diyarbakır",
		},
		{
			name: "неизвестное имя: поиск по расстоянию",
			lat:  36.9, lon: 30.7,
			cityName: "Atlantis",
			want:     "Antalya",
		},
		{
			name: "далёкие координаты сводятся к ближайшему городу",
			lat:  52.52, lon: 13.4, // Берлин
			want: "Istanbul",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearestCity(tt.lat, tt.lon, tt.cityName))
		})
	}
}

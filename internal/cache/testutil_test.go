package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/provider/aladhan"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// SourceMock реализует интерфейс TimingsSource
type SourceMock struct{ mock.Mock }

func (m *SourceMock) CalendarByCity(ctx context.Context, city, country string, year, month int) ([]aladhan.Day, error) {
	args := m.Called(ctx, city, country, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aladhan.Day), args.Error(1)
}

func (m *SourceMock) TimingsByCity(ctx context.Context, city, country string) (*aladhan.Day, error) {
	args := m.Called(ctx, city, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aladhan.Day), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testKeys() config.CacheKeys {
	return config.CacheKeys{
		MonthlyPrefix:  "prayer_times_",
		MonthlyVersion: "v2_",
		WeeklyPrefix:   "weekly_prayer_times_",
		WeeklyVersion:  "v1_",
		BackupKey:      "last_prayer_times_backup",
		LastCityKey:    "last_city_used",
		LocationKey:    "user_location",
		EzanKey:        "selected_ezan",
	}
}

func setupTestStore(t *testing.T) *storage.RedisStore {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	store, err := storage.NewRedisStore(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	return store
}

// calendarDay строит день календаря провайдера с одинаковым шаблоном времён.
func calendarDay(dayNumber int, month, year int) aladhan.Day {
	return aladhan.Day{
		Timings: aladhan.Timings{
			Fajr:    "05:30 (+03)",
			Sunrise: "07:00 (+03)",
			Dhuhr:   "12:30 (+03)",
			Asr:     "15:15 (+03)",
			Maghrib: "17:45 (+03)",
			Isha:    "19:15 (+03)",
		},
		Date: aladhan.DayDate{
			Gregorian: aladhan.GregorianDate{
				Date: fmt.Sprintf("%02d-%02d-%04d", dayNumber, month, year),
				Day:  fmt.Sprintf("%02d", dayNumber),
			},
			Hijri: aladhan.HijriDate{
				Day:   "10",
				Month: aladhan.HijriMonth{En: "Jumada al-ula"},
				Year:  "1447",
			},
		},
	}
}

// fullMonth строит календарь из 30 дней месяца.
func fullMonth(month, year int) []aladhan.Day {
	days := make([]aladhan.Day, 0, 30)
	for d := 1; d <= 30; d++ {
		days = append(days, calendarDay(d, month, year))
	}
	return days
}

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yigitoz/prayer-times-service/internal/provider/aladhan"
)

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		version string
		parts   []string
		want    string
	}{
		{
			name:    "monthly key",
			prefix:  "prayer_times_",
			version: "v2_",
			parts:   []string{"Istanbul", "2025", "11"},
			want:    "prayer_times_v2_Istanbul_2025_11",
		},
		{
			name:    "weekly key",
			prefix:  "weekly_prayer_times_",
			version: "v1_",
			parts:   []string{"Ankara", "Turkey", "2025-11-10"},
			want:    "weekly_prayer_times_v1_Ankara_Turkey_2025-11-10",
		},
		{
			name:    "no parts",
			prefix:  "p_",
			version: "v1_",
			parts:   nil,
			want:    "p_v1_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildKey(tt.prefix, tt.version, tt.parts...))
		})
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now().UnixMilli()

	assert.False(t, IsExpired(now, MonthlyMaxAge))
	assert.False(t, IsExpired(now-(29*24*time.Hour).Milliseconds(), MonthlyMaxAge))
	assert.True(t, IsExpired(now-(31*24*time.Hour).Milliseconds(), MonthlyMaxAge))
	assert.True(t, IsExpired(0, MonthlyMaxAge))
}

func TestTimesFromTimings(t *testing.T) {
	got := TimesFromTimings(aladhan.Timings{
		Fajr:    "05:30 (+03)",
		Sunrise: "07:00",
		Dhuhr:   "12:30 (EET)",
		Asr:     "", // отсутствующее значение
		Maghrib: "17:45 (+03)",
		Isha:    "19:15 (+03)",
	})

	assert.Equal(t, "05:30", got.Imsak)
	assert.Equal(t, "07:00", got.Gunes)
	assert.Equal(t, "12:30", got.Ogle)
	assert.Equal(t, "00:00", got.Ikindi)
	assert.Equal(t, "17:45", got.Aksam)
	assert.Equal(t, "19:15", got.Yatsi)
}

package cache

import (
	"strings"

	"github.com/yigitoz/prayer-times-service/internal/models"
	"github.com/yigitoz/prayer-times-service/internal/provider/aladhan"
)

// TimesFromTimings переводит сырой ответ провайдера в PrayerTimes:
// у каждого значения отбрасывается суффикс зоны после пробела,
// отсутствующее значение заменяется на "00:00".
func TimesFromTimings(t aladhan.Timings) models.PrayerTimes {
	return models.PrayerTimes{
		Imsak:  clockOf(t.Fajr),
		Gunes:  clockOf(t.Sunrise),
		Ogle:   clockOf(t.Dhuhr),
		Ikindi: clockOf(t.Asr),
		Aksam:  clockOf(t.Maghrib),
		Yatsi:  clockOf(t.Isha),
	}
}

func clockOf(raw string) string {
	clock, _, _ := strings.Cut(raw, " ")
	if clock == "" {
		return "00:00"
	}
	return clock
}

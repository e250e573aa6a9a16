package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/lib/week"
	"github.com/yigitoz/prayer-times-service/internal/metrics"
	"github.com/yigitoz/prayer-times-service/internal/models"
	"github.com/yigitoz/prayer-times-service/internal/provider/aladhan"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// WeeklyManager владеет кеш-записями текущей ISO-недели по паре город/страна.
// В отличие от месячного кеша запись инвалидируется не по возрасту,
// а по выходу сегодняшней даты за границы недели: проверка выполняется
// при каждом чтении, а не по сохранённому сроку.
type WeeklyManager struct {
	store  storage.Store
	source TimingsSource
	keys   config.CacheKeys
	log    *slog.Logger
}

// NewWeeklyManager создает менеджер недельного кеша.
func NewWeeklyManager(store storage.Store, source TimingsSource, keys config.CacheKeys, log *slog.Logger) *WeeklyManager {
	return &WeeklyManager{
		store:  store,
		source: source,
		keys:   keys,
		log:    log,
	}
}

func (m *WeeklyManager) key(city, country, weekStart string) string {
	return BuildKey(m.keys.WeeklyPrefix, m.keys.WeeklyVersion, city, country, weekStart)
}

// GetCachedWeek возвращает недельные данные из кеша либо nil. Запись валидна
// только если сегодняшняя дата присутствует среди закешированных дней;
// иначе она удаляется (наступила новая неделя).
func (m *WeeklyManager) GetCachedWeek(ctx context.Context, city, country string) []models.WeeklyPrayerTime {
	start, _ := week.Range(time.Now())
	cacheKey := m.key(city, country, week.ToISODate(start))

	raw, found, err := m.store.Get(ctx, cacheKey)
	if err != nil {
		m.log.Warn("failed to read weekly cache", slog.String("key", cacheKey), sl.Err(err))
		metrics.CacheMisses.Inc()
		return nil
	}
	if !found {
		metrics.CacheMisses.Inc()
		return nil
	}

	var record models.WeeklyRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		m.log.Warn("corrupt weekly cache record", slog.String("key", cacheKey), sl.Err(err))
		metrics.CacheMisses.Inc()
		return nil
	}

	today := week.ToISODate(time.Now())
	inCachedWeek := false
	for _, day := range record.Data {
		if day.Date == today {
			inCachedWeek = true
			break
		}
	}
	if !inCachedWeek {
		m.log.Info("weekly cache rolled over, deleting", slog.String("key", cacheKey))
		if err := m.store.Remove(ctx, cacheKey); err != nil {
			m.log.Warn("failed to delete stale weekly record", slog.String("key", cacheKey), sl.Err(err))
		}
		metrics.CacheMisses.Inc()
		return nil
	}

	metrics.CacheHits.Inc()
	return record.Data
}

// PutWeek сохраняет недельные данные; ошибки записи гасятся с логированием.
func (m *WeeklyManager) PutWeek(ctx context.Context, city, country string, data []models.WeeklyPrayerTime) {
	start, end := week.Range(time.Now())
	record := models.WeeklyRecord{
		City:      city,
		Country:   country,
		WeekStart: week.ToISODate(start),
		WeekEnd:   week.ToISODate(end),
		Data:      data,
		CachedAt:  nowMs(),
	}

	cacheKey := m.key(city, country, record.WeekStart)
	raw, err := json.Marshal(record)
	if err != nil {
		m.log.Warn("failed to marshal weekly record", slog.String("key", cacheKey), sl.Err(err))
		return
	}
	if err := m.store.Set(ctx, cacheKey, string(raw)); err != nil {
		m.log.Warn("failed to write weekly cache", slog.String("key", cacheKey), sl.Err(err))
		return
	}
	m.log.Info("weekly times cached", slog.String("city", city), slog.Int("days", len(data)))
}

// FetchWeek возвращает времена текущей недели: сначала из кеша, при промахе —
// загружает у провайдера календарь месяца, в который попадает начало недели,
// отбирает дни недели и кеширует их. fromCache сообщает, был ли сетевой вызов.
func (m *WeeklyManager) FetchWeek(ctx context.Context, city, country string) (data []models.WeeklyPrayerTime, fromCache bool) {
	if cached := m.GetCachedWeek(ctx, city, country); cached != nil {
		return cached, true
	}

	start, end := week.Range(time.Now())
	m.log.Info("fetching weekly times from provider",
		slog.String("city", city), slog.String("country", country),
		slog.String("week_start", week.ToISODate(start)))

	days, err := m.source.CalendarByCity(ctx, city, country, start.Year(), int(start.Month()))
	if err != nil {
		m.log.Error("failed to fetch weekly times", slog.String("city", city), sl.Err(err))
		return nil, false
	}

	startStr := week.ToISODate(start)
	endStr := week.ToISODate(end)
	for _, day := range days {
		entry, ok := weeklyEntryOf(day)
		if !ok {
			m.log.Warn("skipping day with invalid date", slog.String("date", day.Date.Gregorian.Date))
			continue
		}
		if entry.Date >= startStr && entry.Date <= endStr {
			data = append(data, entry)
		}
	}
	if len(data) == 0 {
		m.log.Error("no days of the current week in provider response", slog.String("city", city))
		return nil, false
	}

	sort.Slice(data, func(i, j int) bool { return data[i].Date < data[j].Date })

	m.PutWeek(ctx, city, country, data)
	return data, false
}

// weeklyEntryOf переводит день календаря провайдера в недельную запись:
// дата DD-MM-YYYY становится ISO (YYYY-MM-DD), григорианская и хиджри
// даты форматируются для отображения.
func weeklyEntryOf(day aladhan.Day) (models.WeeklyPrayerTime, bool) {
	parts := strings.Split(day.Date.Gregorian.Date, "-")
	if len(parts) != 3 {
		return models.WeeklyPrayerTime{}, false
	}
	dd, mm, yyyy := parts[0], parts[1], parts[2]

	monthName := day.Date.Hijri.Month.Tr
	if monthName == "" {
		monthName = day.Date.Hijri.Month.En
	}

	return models.WeeklyPrayerTime{
		Date:      fmt.Sprintf("%s-%s-%s", yyyy, mm, dd),
		Gregorian: fmt.Sprintf("%s.%s.%s", dd, mm, yyyy),
		Hijri:     fmt.Sprintf("%s %s %s", day.Date.Hijri.Day, monthName, day.Date.Hijri.Year),
		Timings:   TimesFromTimings(day.Timings),
	}, true
}

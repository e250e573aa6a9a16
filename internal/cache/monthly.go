package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/metrics"
	"github.com/yigitoz/prayer-times-service/internal/models"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// MonthlyManager владеет месячными кеш-записями по ключу (город, год, месяц).
// Все ошибки хранилища и провайдера гасятся внутри: наружу уходит только
// nil-результат, путь чтения никогда не ломается из-за кеша.
type MonthlyManager struct {
	store   storage.Store
	source  TimingsSource
	keys    config.CacheKeys
	country string
	log     *slog.Logger
}

// NewMonthlyManager создает менеджер месячного кеша.
func NewMonthlyManager(store storage.Store, source TimingsSource, keys config.CacheKeys, country string, log *slog.Logger) *MonthlyManager {
	return &MonthlyManager{
		store:   store,
		source:  source,
		keys:    keys,
		country: country,
		log:     log,
	}
}

func (m *MonthlyManager) key(city string, year, month int) string {
	return BuildKey(m.keys.MonthlyPrefix, m.keys.MonthlyVersion,
		city, strconv.Itoa(year), strconv.Itoa(month))
}

// GetCachedMonth возвращает месячные данные из кеша либо nil при промахе.
// Запись старше MonthlyMaxAge удаляется при обнаружении и считается промахом,
// чтобы протухшие данные не всплыли при повторном чтении того же ключа.
func (m *MonthlyManager) GetCachedMonth(ctx context.Context, city string, year, month int) models.MonthlyData {
	cacheKey := m.key(city, year, month)

	raw, found, err := m.store.Get(ctx, cacheKey)
	if err != nil {
		m.log.Warn("failed to read monthly cache", slog.String("key", cacheKey), sl.Err(err))
		metrics.CacheMisses.Inc()
		return nil
	}
	if !found {
		metrics.CacheMisses.Inc()
		return nil
	}

	var record models.MonthlyRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		m.log.Warn("corrupt monthly cache record", slog.String("key", cacheKey), sl.Err(err))
		metrics.CacheMisses.Inc()
		return nil
	}

	if IsExpired(record.CachedAt, MonthlyMaxAge) {
		m.log.Info("monthly cache expired, deleting", slog.String("key", cacheKey))
		if err := m.store.Remove(ctx, cacheKey); err != nil {
			m.log.Warn("failed to delete expired record", slog.String("key", cacheKey), sl.Err(err))
		}
		metrics.CacheMisses.Inc()
		return nil
	}

	metrics.CacheHits.Inc()
	return record.Data
}

// PutMonth сохраняет месячные данные. Запись по существующему ключу
// заменяется целиком. Ошибка записи логируется и не возвращается:
// неудавшаяся запись кеша не должна ломать путь чтения.
func (m *MonthlyManager) PutMonth(ctx context.Context, city string, year, month int, data models.MonthlyData) {
	cacheKey := m.key(city, year, month)
	record := models.MonthlyRecord{
		City:     city,
		Year:     year,
		Month:    month,
		Data:     data,
		CachedAt: nowMs(),
	}

	raw, err := json.Marshal(record)
	if err != nil {
		m.log.Warn("failed to marshal monthly record", slog.String("key", cacheKey), sl.Err(err))
		return
	}
	if err := m.store.Set(ctx, cacheKey, string(raw)); err != nil {
		m.log.Warn("failed to write monthly cache", slog.String("key", cacheKey), sl.Err(err))
		return
	}
	m.log.Info("monthly times cached", slog.String("city", city),
		slog.Int("year", year), slog.Int("month", month), slog.Int("days", len(data)))
}

// FetchMonth возвращает месячные данные: сначала из кеша, при промахе —
// от провайдера с записью результата в кеш. fromCache сообщает, был ли
// сетевой вызов. Ошибка провайдера или пустой ответ дают nil без
// частичной записи в кеш.
func (m *MonthlyManager) FetchMonth(ctx context.Context, city string, year, month int) (data models.MonthlyData, fromCache bool) {
	if cached := m.GetCachedMonth(ctx, city, year, month); cached != nil {
		return cached, true
	}

	m.log.Info("fetching monthly times from provider",
		slog.String("city", city), slog.Int("year", year), slog.Int("month", month))

	days, err := m.source.CalendarByCity(ctx, city, m.country, year, month)
	if err != nil {
		m.log.Error("failed to fetch monthly times", slog.String("city", city), sl.Err(err))
		return nil, false
	}

	data = make(models.MonthlyData, len(days))
	for _, day := range days {
		dayNumber, err := strconv.Atoi(day.Date.Gregorian.Day)
		if err != nil {
			m.log.Warn("skipping day with invalid number",
				slog.String("day", day.Date.Gregorian.Day), sl.Err(err))
			continue
		}
		data[dayNumber] = TimesFromTimings(day.Timings)
	}
	if len(data) == 0 {
		m.log.Error("provider returned no usable days", slog.String("city", city))
		return nil, false
	}

	m.PutMonth(ctx, city, year, month, data)
	return data, false
}

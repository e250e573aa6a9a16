// Package resolver реализует умное разрешение времён намаза: минимум
// сетевых вызовов, цепочка фолбэков месяц → день → резервная копия.
package resolver

import (
	"context"
	"log/slog"
	"time"

	"github.com/yigitoz/prayer-times-service/internal/cache"
	"github.com/yigitoz/prayer-times-service/internal/lib/cityname"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/lib/week"
	"github.com/yigitoz/prayer-times-service/internal/metrics"
	"github.com/yigitoz/prayer-times-service/internal/models"
)

// Source указывает, откуда взят результат разрешения.
type Source string

const (
	SourceMonthCache Source = "month-cache"
	SourceWeekCache  Source = "week-cache"
	SourceNetwork    Source = "network"
	SourceBackup     Source = "backup"
	SourceNone       Source = "none"
)

// FromCache сообщает, обошлось ли разрешение без сетевого вызова.
func (s Source) FromCache() bool {
	return s != SourceNetwork
}

// Resolution — результат разрешения времён намаза. Times равен nil
// только при полном отказе: ни сети, ни кеша, ни резервной копии.
type Resolution struct {
	Times       *models.PrayerTimes
	Source      Source
	CityChanged bool
}

// Resolver оркестрирует менеджеры кеша и провайдера. Порядок шагов
// фиксирован: проверка города, кеш месяца, загрузка месяца, загрузка
// одного дня, резервная копия. Перестановка шагов меняет частоту
// сетевых вызовов и запрещена.
type Resolver struct {
	monthly *cache.MonthlyManager
	weekly  *cache.WeeklyManager
	backup  *cache.BackupManager
	source  cache.TimingsSource
	country string
	log     *slog.Logger
}

// New создает резолвер.
func New(
	monthly *cache.MonthlyManager,
	weekly *cache.WeeklyManager,
	backup *cache.BackupManager,
	source cache.TimingsSource,
	country string,
	log *slog.Logger,
) *Resolver {
	return &Resolver{
		monthly: monthly,
		weekly:  weekly,
		backup:  backup,
		source:  source,
		country: country,
		log:     log,
	}
}

// Resolve возвращает времена намаза на сегодня для города. Быстрый путь:
// если город не менялся и в кеше месяца есть сегодняшний день, сеть не
// трогается вовсе. Это единственный механизм, ограничивающий частоту
// обращений к провайдеру одним вызовом на пару (город, месяц) за срок
// жизни кеша.
func (r *Resolver) Resolve(ctx context.Context, city string) Resolution {
	now := time.Now()

	lastCity := r.backup.LastCity(ctx)
	cityChanged := !cityname.IsSame(city, lastCity)

	if !cityChanged {
		if data := r.monthly.GetCachedMonth(ctx, city, now.Year(), int(now.Month())); data != nil {
			if entry, ok := data[now.Day()]; ok {
				r.log.Debug("resolved from monthly cache fast path", slog.String("city", city))
				return Resolution{Times: &entry, Source: SourceMonthCache}
			}
		}
	}

	return r.resolveWith(ctx, city, cityChanged, r.todayViaMonth)
}

// TodayFromWeek разрешает сегодняшние времена через недельный кеш.
// Стратегия получения другая, политика фолбэка та же. Смену города
// недельный путь не отслеживает.
func (r *Resolver) TodayFromWeek(ctx context.Context, city, country string) Resolution {
	return r.resolveWith(ctx, city, false, func(ctx context.Context, city string) (*models.PrayerTimes, Source) {
		return r.todayViaWeek(ctx, city, country)
	})
}

// Today возвращает времена на сегодня либо nil. При пустом городе
// используется последний успешно разрешённый.
func (r *Resolver) Today(ctx context.Context, city string) *models.PrayerTimes {
	if city == "" {
		city = r.backup.LastCity(ctx)
	}
	if city == "" {
		r.log.Info("no city given and no last city known")
		return nil
	}
	return r.Resolve(ctx, city).Times
}

// Monthly возвращает данные месяца: из кеша либо от провайдера.
func (r *Resolver) Monthly(ctx context.Context, city string, year, month int) models.MonthlyData {
	data, _ := r.monthly.FetchMonth(ctx, city, year, month)
	return data
}

// Weekly возвращает времена текущей недели: из кеша либо от провайдера.
func (r *Resolver) Weekly(ctx context.Context, city, country string) []models.WeeklyPrayerTime {
	data, _ := r.weekly.FetchWeek(ctx, city, country)
	return data
}

// fetchFunc — стратегия получения сегодняшних времён. Возвращает nil
// при полном отказе стратегии.
type fetchFunc func(ctx context.Context, city string) (*models.PrayerTimes, Source)

// resolveWith применяет общую политику фолбэка: стратегия → резервная
// копия → пустой результат. Резервная копия отдаётся независимо от
// того, совпадает ли её город с запрошенным: устаревший ответ лучше
// никакого.
func (r *Resolver) resolveWith(ctx context.Context, city string, cityChanged bool, fetch fetchFunc) Resolution {
	if times, source := fetch(ctx, city); times != nil {
		return Resolution{Times: times, Source: source, CityChanged: cityChanged}
	}

	if record := r.backup.Load(ctx); record != nil {
		r.log.Warn("all remote attempts failed, serving backup",
			slog.String("requested_city", city), slog.String("backup_city", record.City))
		metrics.BackupFallbacks.Inc()
		return Resolution{Times: &record.Data, Source: SourceBackup, CityChanged: cityChanged}
	}

	r.log.Error("resolution failed completely", slog.String("city", city))
	return Resolution{Source: SourceNone}
}

// todayViaMonth — месячная стратегия: fetchMonth (сам по себе
// кеш-первый), при отказе — загрузка одного дня напрямую. Резервная
// копия обновляется при любом успехе, чтобы lastCity отражал последний
// разрешённый город.
func (r *Resolver) todayViaMonth(ctx context.Context, city string) (*models.PrayerTimes, Source) {
	now := time.Now()

	if data, fromCache := r.monthly.FetchMonth(ctx, city, now.Year(), int(now.Month())); data != nil {
		if entry, ok := data[now.Day()]; ok {
			r.backup.Save(ctx, city, entry)
			if fromCache {
				return &entry, SourceMonthCache
			}
			return &entry, SourceNetwork
		}
		r.log.Warn("monthly data misses today's entry", slog.String("city", city), slog.Int("day", now.Day()))
	}

	day, err := r.source.TimingsByCity(ctx, city, r.country)
	if err != nil {
		r.log.Error("single-day fetch failed", slog.String("city", city), sl.Err(err))
		return nil, SourceNone
	}
	times := cache.TimesFromTimings(day.Timings)
	r.backup.Save(ctx, city, times)
	return &times, SourceNetwork
}

// todayViaWeek — недельная стратегия: fetchWeek и поиск сегодняшнего
// дня. Резервная копия пишется только после сетевого результата, не
// после попадания в кеш.
func (r *Resolver) todayViaWeek(ctx context.Context, city, country string) (*models.PrayerTimes, Source) {
	data, fromCache := r.weekly.FetchWeek(ctx, city, country)
	if data == nil {
		return nil, SourceNone
	}

	today := week.ToISODate(time.Now())
	for _, day := range data {
		if day.Date == today {
			times := day.Timings
			if fromCache {
				return &times, SourceWeekCache
			}
			r.backup.Save(ctx, city, times)
			return &times, SourceNetwork
		}
	}

	r.log.Warn("weekly data misses today's entry", slog.String("city", city))
	return nil, SourceNone
}

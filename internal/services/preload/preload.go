// Package preload заранее прогревает месячный кеш на следующий месяц,
// чтобы смена месяца не требовала сети в момент первого запроса.
package preload

import (
	"context"
	"log/slog"
	"time"

	"github.com/yigitoz/prayer-times-service/internal/models"
)

// MonthlyFetcher — способность получить месяц времён (из кеша или сети).
type MonthlyFetcher interface {
	FetchMonth(ctx context.Context, city string, year, month int) (models.MonthlyData, bool)
}

// Preloader прогревает кеш следующего месяца.
type Preloader struct {
	fetcher MonthlyFetcher
	log     *slog.Logger
}

// New создает прелоадер.
func New(fetcher MonthlyFetcher, log *slog.Logger) *Preloader {
	return &Preloader{fetcher: fetcher, log: log}
}

// NextMonth загружает времена следующего месяца для города. Ошибки
// гасятся: прогрев — побочная оптимизация, а не обязательная операция.
// Возвращает true, если данные получены (из кеша или сети).
func (p *Preloader) NextMonth(ctx context.Context, city string) bool {
	now := time.Now()
	next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.Local)

	data, fromCache := p.fetcher.FetchMonth(ctx, city, next.Year(), int(next.Month()))
	if data == nil {
		p.log.Warn("next month preload failed", slog.String("city", city))
		return false
	}

	p.log.Info("next month preloaded",
		slog.String("city", city),
		slog.Int("year", next.Year()),
		slog.Int("month", int(next.Month())),
		slog.Bool("from_cache", fromCache))
	return true
}

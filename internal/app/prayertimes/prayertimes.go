// Package prayertimes собирает приложение: хранилище, клиент провайдера,
// менеджеры кеша, резолвер, HTTP-сервер и фоновую уборку кеша.
package prayertimes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/yigitoz/prayer-times-service/internal/cache"
	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/migrations"
	"github.com/yigitoz/prayer-times-service/internal/provider/aladhan"
	"github.com/yigitoz/prayer-times-service/internal/services/location"
	"github.com/yigitoz/prayer-times-service/internal/services/preload"
	"github.com/yigitoz/prayer-times-service/internal/services/resolver"
	"github.com/yigitoz/prayer-times-service/internal/services/settings"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// janitorInterval — период фоновой уборки кеша.
const janitorInterval = 12 * time.Hour

// store объединяет интерфейс хранилища и закрытие соединения.
type store interface {
	storage.Store
	io.Closer
}

// App хранит собранные зависимости приложения.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	store    store
	admin    *cache.Admin
	backup   *cache.BackupManager
	preload  *preload.Preloader
	resolver *resolver.Resolver
}

// New собирает приложение по конфигурации. Хранилище выбирается драйвером:
// redis по умолчанию, postgres с прогоном миграций.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	st, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := aladhan.NewClient(cfg.Provider)

	monthly := cache.NewMonthlyManager(st, client, cfg.CacheKeys, cfg.DefaultCountry, logger)
	weekly := cache.NewWeeklyManager(st, client, cfg.CacheKeys, logger)
	backup := cache.NewBackupManager(st, cfg.CacheKeys, logger)
	admin := cache.NewAdmin(st, cfg.CacheKeys, logger)

	res := resolver.New(monthly, weekly, backup, client, cfg.DefaultCountry, logger)
	preloader := preload.New(monthly, logger)
	locationService := location.New(st, cfg.CacheKeys, logger)
	settingsService := settings.New(st, cfg.CacheKeys, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, res, admin, preloader, locationService, settingsService, cfg.DefaultCountry)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		store:    st,
		admin:    admin,
		backup:   backup,
		preload:  preloader,
		resolver: res,
	}, nil
}

func newStore(ctx context.Context, cfg *config.Config) (store, error) {
	switch cfg.StorageDriver {
	case "postgres":
		st, err := storage.NewPostgresStore(cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		if err := migrations.Run(st.DB, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		return st, nil
	case "redis", "":
		return storage.NewRedisStore(ctx, cfg.RedisConnection)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.StorageDriver)
	}
}

// Run запускает HTTP-сервер и фоновую уборку, блокируется до отмены
// контекста или ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	go a.janitor(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.store.Close(); closeErr != nil {
			a.logger.Error("failed to close storage", sl.Err(closeErr))
		}
		return err
	}
}

// janitor периодически удаляет просроченные записи, а в последние три дня
// месяца прогревает кеш следующего месяца для последнего города.
func (a *App) janitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted := a.admin.CleanExpired(ctx)
			a.logger.Info("janitor pass finished", slog.Int("deleted", deleted))

			if city := a.backup.LastCity(ctx); city != "" && daysLeftInMonth(time.Now()) <= 3 {
				a.preload.NextMonth(ctx, city)
			}
		}
	}
}

func daysLeftInMonth(now time.Time) int {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return lastDay - now.Day()
}

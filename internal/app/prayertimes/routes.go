// Package prayertimes предоставляет маршруты приложения.
package prayertimes

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/yigitoz/prayer-times-service/internal/cache"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/cacheadmin/clean"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/cacheadmin/clear"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/cacheadmin/preloadnext"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/cacheadmin/stats"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/health"
	locationget "github.com/yigitoz/prayer-times-service/internal/http/handlers/location/get"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/location/nearest"
	locationsave "github.com/yigitoz/prayer-times-service/internal/http/handlers/location/save"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/prayer/monthly"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/prayer/smart"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/prayer/today"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/prayer/weekly"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/prayer/weeklytoday"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/settings/ezanget"
	"github.com/yigitoz/prayer-times-service/internal/http/handlers/settings/ezanset"
	"github.com/yigitoz/prayer-times-service/internal/http/middlewarectx"
	"github.com/yigitoz/prayer-times-service/internal/services/location"
	"github.com/yigitoz/prayer-times-service/internal/services/preload"
	"github.com/yigitoz/prayer-times-service/internal/services/resolver"
	"github.com/yigitoz/prayer-times-service/internal/services/settings"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	res *resolver.Resolver,
	admin *cache.Admin,
	preloader *preload.Preloader,
	locationService *location.Service,
	settingsService *settings.Service,
	defaultCountry string,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Группа с провайдером за спиной: частота запросов ограничена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimit(10, 20))
			r.Get("/prayer-times/today", today.New(logger, res).ServeHTTP)
			r.Get("/prayer-times/smart", smart.New(logger, res).ServeHTTP)
			r.Get("/prayer-times/monthly", monthly.New(logger, res).ServeHTTP)
			r.Get("/prayer-times/weekly", weekly.New(logger, res, defaultCountry).ServeHTTP)
			r.Get("/prayer-times/weekly/today", weeklytoday.New(logger, res, defaultCountry).ServeHTTP)
			r.Post("/cache/preload", preloadnext.New(logger, preloader).ServeHTTP)
		})

		r.Get("/cache/stats", stats.New(logger, admin).ServeHTTP)
		r.Delete("/cache", clear.New(logger, admin).ServeHTTP)
		r.Post("/cache/clean", clean.New(logger, admin).ServeHTTP)

		r.Put("/location", locationsave.New(logger, locationService).ServeHTTP)
		r.Get("/location", locationget.New(logger, locationService).ServeHTTP)
		r.Get("/location/nearest", nearest.New(logger, locationService).ServeHTTP)

		r.Get("/settings/ezan", ezanget.New(logger, settingsService).ServeHTTP)
		r.Put("/settings/ezan", ezanset.New(logger, settingsService).ServeHTTP)

		r.Get("/health", health.New(logger).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// Package stats реализует HTTP-обработчик статистики кеша времён намаза.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/models"
)

// Handler обрабатывает запросы статистики кеша.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис административных операций кеша
}

// Service описывает интерфейс получения статистики кеша.
type Service interface {
	Stats(ctx context.Context) models.CacheStats
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика кеша
// @Description Возвращает количество месячных записей, их суммарный размер и список городов.
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]any "Статистика кеша"
// @Router /cache/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cacheadmin.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats := h.service.Stats(r.Context())
	log.Info("cache stats collected", slog.Int("total_items", stats.TotalItems))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"total_items": stats.TotalItems,
		"total_size":  stats.TotalSize,
		"cities":      stats.Cities,
	}))
}

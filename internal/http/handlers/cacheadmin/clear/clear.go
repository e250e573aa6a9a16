// Package clear реализует HTTP-обработчик полной очистки кеша времён
// намаза. Удаляются месячные и недельные записи; резервная копия и
// настройки пользователя не затрагиваются.
package clear

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
)

// Handler обрабатывает запросы полной очистки кеша.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис административных операций кеша
}

// Service описывает интерфейс очистки кеша.
type Service interface {
	ClearAll(ctx context.Context) int
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Очистить кеш
// @Description Удаляет все месячные и недельные записи кеша. Возвращает количество удалённых ключей.
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]any "Количество удалённых ключей"
// @Router /cache [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cacheadmin.clear"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	removed := h.service.ClearAll(r.Context())
	log.Info("cache cleared", slog.Int("removed", removed))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": removed,
	}))
}

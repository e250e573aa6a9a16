// Package clean реализует HTTP-обработчик удаления просроченных записей
// месячного кеша.
package clean

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
)

// Handler обрабатывает запросы удаления просроченных записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис административных операций кеша
}

// Service описывает интерфейс чистки просроченных записей.
type Service interface {
	CleanExpired(ctx context.Context) int
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить просроченные записи кеша
// @Description Удаляет месячные записи старше 30 дней и нечитаемые записи. Возвращает количество удалённых.
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]any "Количество удалённых записей"
// @Router /cache/clean [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cacheadmin.clean"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	deleted := h.service.CleanExpired(r.Context())
	log.Info("expired cache records cleaned", slog.Int("deleted_count", deleted))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": deleted,
	}))
}

// Package ezanget реализует HTTP-обработчик чтения выбранного варианта эзана.
package ezanget

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
)

// Handler обрабатывает запросы чтения настройки эзана.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики настроек
}

// Service описывает интерфейс чтения настройки эзана.
type Service interface {
	Ezan(ctx context.Context) string
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выбранный вариант эзана
// @Description Возвращает выбранный вариант эзана; если настройка не сохранена, вариант по умолчанию.
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]any "Вариант эзана"
// @Router /settings/ezan [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.ezanget"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ezan := h.service.Ezan(r.Context())
	log.Info("ezan selection read", slog.String("ezan", ezan))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ezan": ezan,
	}))
}

// Package get реализует HTTP-обработчик чтения сохранённой геопозиции.
package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/models"
)

// Handler обрабатывает запросы на чтение геопозиции.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики геопозиции
}

// Service описывает интерфейс чтения геопозиции.
type Service interface {
	Location(ctx context.Context) (*models.UserLocation, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить сохранённую геопозицию
// @Description Возвращает последнюю сохранённую геопозицию пользователя.
// @Tags Location
// @Produce json
// @Success 200 {object} map[string]any "Сохранённая позиция"
// @Failure 404 {object} response.ErrorResponse "Позиция не сохранена"
// @Failure 500 {object} response.ErrorResponse "Ошибка чтения"
// @Router /location [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	loc, err := h.service.Location(r.Context())
	if err != nil {
		log.Error("failed to read location", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read location"))
		return
	}
	if loc == nil {
		log.Info("no saved location")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("location not found"))
		return
	}

	log.Info("location read", slog.String("city", loc.City))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"location": loc,
	}))
}

// Package today реализует HTTP-обработчик для получения сегодняшних времён намаза.
//
// Handler принимает необязательный параметр города, вызывает бизнес-логику
// разрешения времён и возвращает результат в JSON-формате. Отсутствие данных
// не является ошибкой сервера: клиент получает null и показывает заглушку.
package today

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/models"
)

// Handler обрабатывает запросы на получение сегодняшних времён намаза.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики разрешения времён
}

// Service описывает интерфейс бизнес-логики получения сегодняшних времён.
type Service interface {
	Today(ctx context.Context, city string) *models.PrayerTimes
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Времена намаза на сегодня
// @Description Возвращает времена намаза на сегодня. Город необязателен: без него используется последний успешно разрешённый. Если данных нет нигде, times равен null.
// @Tags PrayerTimes
// @Produce json
// @Param city query string false "Город"
// @Success 200 {object} map[string]any "Времена намаза либо null"
// @Router /prayer-times/today [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prayer.today"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	city := r.URL.Query().Get("city")

	times := h.service.Today(r.Context(), city)
	if times == nil {
		log.Warn("no prayer times available", slog.String("city", city))
	} else {
		log.Info("success to resolve today prayer times", slog.String("city", city))
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"times": times,
	}))
}

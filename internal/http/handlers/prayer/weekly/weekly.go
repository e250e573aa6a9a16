// Package weekly реализует HTTP-обработчик для получения времён намаза
// на текущую неделю.
package weekly

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/models"
)

// Handler обрабатывает запросы на получение недельных времён намаза.
type Handler struct {
	log            *slog.Logger // Логгер для записи информации и ошибок
	service        Service      // Сервис бизнес-логики получения недели
	defaultCountry string       // Страна по умолчанию для запросов без country
}

// Service описывает интерфейс бизнес-логики получения недели.
type Service interface {
	Weekly(ctx context.Context, city, country string) []models.WeeklyPrayerTime
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service, defaultCountry string) *Handler {
	return &Handler{
		log:            log,
		service:        service,
		defaultCountry: defaultCountry,
	}
}

// ServeHTTP godoc
// @Summary Времена намаза на текущую неделю
// @Description Возвращает времена намаза на текущую ISO-неделю (понедельник-воскресенье), отсортированные по дате.
// @Tags PrayerTimes
// @Produce json
// @Param city query string true "Город"
// @Param country query string false "Страна (по умолчанию из конфигурации)"
// @Success 200 {object} map[string]any "Дни текущей недели"
// @Failure 400 {object} response.ErrorResponse "Не указан город"
// @Failure 502 {object} response.ErrorResponse "Данные недоступны"
// @Router /prayer-times/weekly [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prayer.weekly"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	city := r.URL.Query().Get("city")
	if city == "" {
		log.Error("city query parameter is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("city is required"))
		return
	}
	country := r.URL.Query().Get("country")
	if country == "" {
		country = h.defaultCountry
	}

	data := h.service.Weekly(r.Context(), city, country)
	if data == nil {
		log.Error("weekly times unavailable", slog.String("city", city))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not fetch weekly times"))
		return
	}

	log.Info("success to fetch weekly times", slog.String("city", city), slog.Int("days", len(data)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"city":    city,
		"country": country,
		"days":    data,
	}))
}

// Package smart реализует HTTP-обработчик умного разрешения времён намаза.
//
// Handler принимает обязательный параметр города, вызывает оркестратор
// с цепочкой фолбэков и возвращает результат вместе с признаками
// from_cache, city_changed и источником данных.
package smart

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/services/resolver"
)

// Handler обрабатывает запросы умного разрешения времён намаза.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики разрешения времён
}

// Service описывает интерфейс оркестратора разрешения.
type Service interface {
	Resolve(ctx context.Context, city string) resolver.Resolution
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Умное разрешение времён намаза
// @Description Возвращает времена намаза на сегодня с минимумом сетевых вызовов: кеш месяца, загрузка месяца, загрузка дня, резервная копия. При полном отказе times равен null.
// @Tags PrayerTimes
// @Produce json
// @Param city query string true "Город"
// @Success 200 {object} map[string]any "Результат разрешения"
// @Failure 400 {object} response.ErrorResponse "Не указан город"
// @Router /prayer-times/smart [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prayer.smart"

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

	res := h.service.Resolve(r.Context(), city)
	log.Info("smart resolution finished",
		slog.String("city", city),
		slog.String("source", string(res.Source)),
		slog.Bool("city_changed", res.CityChanged))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"times":        res.Times,
		"from_cache":   res.Source.FromCache(),
		"city_changed": res.CityChanged,
		"source":       res.Source,
	}))
}

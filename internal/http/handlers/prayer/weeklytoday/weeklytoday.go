// Package weeklytoday реализует HTTP-обработчик получения сегодняшних
// времён намаза через недельный кеш. Стратегия получения отличается от
// умного разрешения, политика фолбэка на резервную копию та же.
package weeklytoday

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/services/resolver"
)

// Handler обрабатывает запросы сегодняшних времён через недельный кеш.
type Handler struct {
	log            *slog.Logger // Логгер для записи информации и ошибок
	service        Service      // Сервис бизнес-логики недельной стратегии
	defaultCountry string       // Страна по умолчанию для запросов без country
}

// Service описывает интерфейс недельной стратегии разрешения.
type Service interface {
	TodayFromWeek(ctx context.Context, city, country string) resolver.Resolution
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
// @Summary Времена намаза на сегодня через недельный кеш
// @Description Разрешает сегодняшние времена по недельному кешу с фолбэком на резервную копию. При полном отказе times равен null.
// @Tags PrayerTimes
// @Produce json
// @Param city query string true "Город"
// @Param country query string false "Страна (по умолчанию из конфигурации)"
// @Success 200 {object} map[string]any "Результат разрешения"
// @Failure 400 {object} response.ErrorResponse "Не указан город"
// @Router /prayer-times/weekly/today [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prayer.weeklytoday"

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

	res := h.service.TodayFromWeek(r.Context(), city, country)
	log.Info("weekly today resolution finished",
		slog.String("city", city), slog.String("source", string(res.Source)))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"times":      res.Times,
		"from_cache": res.Source.FromCache(),
		"source":     res.Source,
	}))
}

// Package nearest реализует HTTP-обработчик поиска ближайшего
// поддерживаемого города по координатам.
package nearest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
)

// Handler обрабатывает запросы поиска ближайшего города.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики геопозиции
}

// Service описывает интерфейс поиска ближайшего города.
type Service interface {
	NearestCity(latitude, longitude float64, name string) string
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Ближайший поддерживаемый город
// @Description Возвращает ближайший из поддерживаемых городов по координатам. Имя города из обратного геокодинга, если оно совпадает с одним из поддерживаемых, имеет приоритет над расстоянием.
// @Tags Location
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param name query string false "Имя города из геокодинга"
// @Success 200 {object} map[string]any "Ближайший город"
// @Failure 400 {object} response.ErrorResponse "Некорректные координаты"
// @Router /location/nearest [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.nearest"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	lat, errLat := strconv.ParseFloat(query.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(query.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		log.Error("invalid coordinates",
			slog.String("lat", query.Get("lat")), slog.String("lon", query.Get("lon")))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("lat and lon must be numbers"))
		return
	}

	city := h.service.NearestCity(lat, lon, query.Get("name"))
	log.Info("nearest city resolved", slog.String("city", city))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"city": city,
	}))
}

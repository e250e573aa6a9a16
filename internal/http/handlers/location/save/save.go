// Package save реализует HTTP-обработчик сохранения геопозиции пользователя.
package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/lib/sl"
	"github.com/yigitoz/prayer-times-service/internal/models"
)

// Handler обрабатывает запросы на сохранение геопозиции.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики геопозиции
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс сохранения геопозиции.
type Service interface {
	Save(ctx context.Context, loc models.UserLocation) error
}

// Request — тело запроса сохранения геопозиции.
type Request struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	City      string  `json:"city"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сохранить геопозицию пользователя
// @Description Перезаписывает сохранённую геопозицию: широта, долгота и необязательное имя города.
// @Tags Location
// @Accept json
// @Produce json
// @Param request body Request true "Геопозиция"
// @Success 200 {object} map[string]any "Позиция сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка сохранения"
// @Router /location [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.save"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	loc := models.UserLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		City:      req.City,
	}
	if err := h.service.Save(r.Context(), loc); err != nil {
		log.Error("failed to save location", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save location"))
		return
	}

	log.Info("location saved", slog.String("city", req.City))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"location": loc,
	}))
}

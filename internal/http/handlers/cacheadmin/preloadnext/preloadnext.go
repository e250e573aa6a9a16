// Package preloadnext реализует HTTP-обработчик прогрева кеша на
// следующий месяц.
//
// Handler принимает JSON-запрос с городом, валидирует его и запускает
// загрузку времён следующего месяца через бизнес-логику прелоадера.
package preloadnext

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
)

// Handler обрабатывает запросы прогрева кеша следующего месяца.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики прогрева
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс прогрева кеша.
type Service interface {
	NextMonth(ctx context.Context, city string) bool
}

// Request — тело запроса прогрева.
type Request struct {
	City string `json:"city" validate:"required"`
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
// @Summary Прогреть кеш следующего месяца
// @Description Загружает времена намаза следующего месяца для города, чтобы смена месяца не требовала сети.
// @Tags Cache
// @Accept json
// @Produce json
// @Param request body Request true "Город для прогрева"
// @Success 200 {object} map[string]any "Прогрев выполнен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 502 {object} response.ErrorResponse "Данные недоступны"
// @Router /cache/preload [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cacheadmin.preloadnext"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", slog.Any("request", req))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if !h.service.NextMonth(r.Context(), req.City) {
		log.Error("preload failed", slog.String("city", req.City))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not preload next month"))
		return
	}

	log.Info("next month preloaded", slog.String("city", req.City))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"city": req.City,
	}))
}

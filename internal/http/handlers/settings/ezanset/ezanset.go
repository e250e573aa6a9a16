// Package ezanset реализует HTTP-обработчик сохранения варианта эзана.
package ezanset

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
)

// Handler обрабатывает запросы сохранения настройки эзана.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики настроек
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс сохранения настройки эзана.
type Service interface {
	SetEzan(ctx context.Context, value string) error
}

// Request — тело запроса сохранения эзана.
type Request struct {
	Ezan string `json:"ezan" validate:"required,oneof=ezan1 ezan2"`
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
// @Summary Сохранить вариант эзана
// @Description Сохраняет выбранный вариант эзана (ezan1 или ezan2).
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body Request true "Вариант эзана"
// @Success 200 {object} map[string]any "Настройка сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или вариант"
// @Failure 500 {object} response.ErrorResponse "Ошибка сохранения"
// @Router /settings/ezan [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.ezanset"

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

	if err := h.service.SetEzan(r.Context(), req.Ezan); err != nil {
		log.Error("failed to save ezan selection", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save ezan selection"))
		return
	}

	log.Info("ezan selection saved", slog.String("ezan", req.Ezan))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ezan": req.Ezan,
	}))
}

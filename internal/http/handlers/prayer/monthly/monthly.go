// Package monthly реализует HTTP-обработчик для получения времён намаза
// на месяц.
//
// Handler валидирует параметры запроса, вызывает бизнес-логику получения
// месяца (кеш либо провайдер) и возвращает данные в JSON-формате.
package monthly

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
	"github.com/yigitoz/prayer-times-service/internal/models"
)

// Handler обрабатывает запросы на получение месячных времён намаза.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики получения месяца
	validate *validator.Validate // Валидатор параметров запроса
}

// Service описывает интерфейс бизнес-логики получения месяца.
type Service interface {
	Monthly(ctx context.Context, city string, year, month int) models.MonthlyData
}

// Request — параметры запроса месячных времён.
type Request struct {
	City  string `validate:"required"`
	Year  int    `validate:"required,min=2000"`
	Month int    `validate:"required,min=1,max=12"`
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
// @Summary Времена намаза на месяц
// @Description Возвращает времена намаза на указанный месяц по дням. Запрос к провайдеру выполняется не чаще одного раза на пару город/месяц за срок жизни кеша.
// @Tags PrayerTimes
// @Produce json
// @Param city query string true "Город"
// @Param year query int true "Год (от 2000)"
// @Param month query int true "Месяц (1-12)"
// @Success 200 {object} map[string]any "Времена по дням месяца"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 502 {object} response.ErrorResponse "Данные недоступны"
// @Router /prayer-times/monthly [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prayer.monthly"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	year, _ := strconv.Atoi(query.Get("year"))
	month, _ := strconv.Atoi(query.Get("month"))
	req := Request{
		City:  query.Get("city"),
		Year:  year,
		Month: month,
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", slog.Any("request", req))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	data := h.service.Monthly(r.Context(), req.City, req.Year, req.Month)
	if data == nil {
		log.Error("monthly times unavailable", slog.String("city", req.City),
			slog.Int("year", req.Year), slog.Int("month", req.Month))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not fetch monthly times"))
		return
	}

	log.Info("success to fetch monthly times", slog.String("city", req.City), slog.Int("days", len(data)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"city":  req.City,
		"year":  req.Year,
		"month": req.Month,
		"days":  data,
	}))
}

// Package middlewarectx содержит HTTP-middleware сервиса.
package middlewarectx

import (
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/yigitoz/prayer-times-service/internal/http/response"
)

// RateLimit ограничивает частоту запросов к группе эндпоинтов одним
// общим лимитером. Превышение лимита отклоняется сразу, без ожидания:
// за обработчиками стоит внешний провайдер, и очередь запросов к нему
// хуже быстрого отказа.
func RateLimit(rps float64, burst int) func(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

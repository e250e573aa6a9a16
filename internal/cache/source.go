package cache

import (
	"context"

	"github.com/yigitoz/prayer-times-service/internal/provider/aladhan"
)

// TimingsSource описывает способность получать времена намаза из внешнего
// источника. Общий интерфейс для менеджеров кеша и предзагрузчика:
// оба зависят от него, а не друг от друга.
type TimingsSource interface {
	// CalendarByCity возвращает календарь на весь месяц.
	CalendarByCity(ctx context.Context, city, country string, year, month int) ([]aladhan.Day, error)
	// TimingsByCity возвращает времена одного дня (сегодня).
	TimingsByCity(ctx context.Context, city, country string) (*aladhan.Day, error)
}

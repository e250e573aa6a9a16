// Package location хранит последнюю геопозицию пользователя и находит
// ближайший поддерживаемый город по координатам.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/lib/cityname"
	"github.com/yigitoz/prayer-times-service/internal/models"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// cityCoords — координаты крупных городов Турции. Поиск ближайшего
// города ведётся по этому списку; неизвестные координаты сводятся
// к Стамбулу.
var cityCoords = map[string]struct{ Lat, Lon float64 }{
	"Istanbul":   {41.0082, 28.9784},
	"Ankara":     {39.9334, 32.8597},
	"Izmir":      {38.4237, 27.1428},
	"Bursa":      {40.1826, 29.0665},
	"Antalya":    {36.8969, 30.7133},
	"Adana":      {37.0017, 35.3289},
	"Konya":      {37.8746, 32.4932},
	"Gaziantep":  {37.0662, 37.3833},
	"Kayseri":    {38.7205, 35.4826},
	"Diyarbakır": {37.9144, 40.2306},
}

// Service сохраняет и читает позицию пользователя.
type Service struct {
	store storage.Store
	keys  config.CacheKeys
	log   *slog.Logger
}

// New создает сервис геопозиции.
func New(store storage.Store, keys config.CacheKeys, log *slog.Logger) *Service {
	return &Service{store: store, keys: keys, log: log}
}

// Save перезаписывает сохранённую позицию пользователя.
func (s *Service) Save(ctx context.Context, loc models.UserLocation) error {
	const op = "services.location.Save"

	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.store.Set(ctx, s.keys.LocationKey, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user location saved", slog.String("city", loc.City))
	return nil
}

// Location возвращает сохранённую позицию либо nil, если её нет.
func (s *Service) Location(ctx context.Context) (*models.UserLocation, error) {
	const op = "services.location.Location"

	raw, found, err := s.store.Get(ctx, s.keys.LocationKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, nil
	}

	var loc models.UserLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &loc, nil
}

// NearestCity возвращает ближайший поддерживаемый город.
func (s *Service) NearestCity(latitude, longitude float64, name string) string {
	return NearestCity(latitude, longitude, name)
}

// NearestCity возвращает ближайший поддерживаемый город. Если имя из
// обратного геокодинга совпадает с одним из городов (после турецкой
// нормализации), оно имеет приоритет над расстоянием.
func NearestCity(latitude, longitude float64, name string) string {
	if name != "" {
		normalized := cityname.Normalize(name)
		for city := range cityCoords {
			if cityname.Normalize(city) == normalized {
				return city
			}
		}
	}

	closest := "Istanbul"
	minDistance := math.Inf(1)
	for city, coords := range cityCoords {
		distance := math.Hypot(latitude-coords.Lat, longitude-coords.Lon)
		if distance < minDistance {
			minDistance = distance
			closest = city
		}
	}
	return closest
}

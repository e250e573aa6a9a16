// Package settings хранит пользовательские настройки приложения.
package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/storage"
)

// Допустимые варианты эзана.
const (
	EzanDefault = "ezan1"
	EzanAlt     = "ezan2"
)

// ErrUnknownEzan возвращается при попытке сохранить неизвестный вариант.
var ErrUnknownEzan = fmt.Errorf("unknown ezan variant")

// Service читает и пишет настройки в хранилище.
type Service struct {
	store storage.Store
	keys  config.CacheKeys
	log   *slog.Logger
}

// New создает сервис настроек.
func New(store storage.Store, keys config.CacheKeys, log *slog.Logger) *Service {
	return &Service{store: store, keys: keys, log: log}
}

// Ezan возвращает выбранный вариант эзана; при отсутствии или ошибке
// чтения — вариант по умолчанию.
func (s *Service) Ezan(ctx context.Context) string {
	value, found, err := s.store.Get(ctx, s.keys.EzanKey)
	if err != nil || !found {
		return EzanDefault
	}
	if value != EzanDefault && value != EzanAlt {
		s.log.Warn("unknown ezan value in storage, using default", slog.String("value", value))
		return EzanDefault
	}
	return value
}

// SetEzan сохраняет вариант эзана.
func (s *Service) SetEzan(ctx context.Context, value string) error {
	const op = "services.settings.SetEzan"

	if value != EzanDefault && value != EzanAlt {
		return fmt.Errorf("%s: %w: %q", op, ErrUnknownEzan, value)
	}
	if err := s.store.Set(ctx, s.keys.EzanKey, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("ezan selection saved", slog.String("ezan", value))
	return nil
}

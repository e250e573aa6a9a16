// Package aladhan реализует клиент API aladhan.com — внешнего провайдера
// времён намаза. Клиент не кеширует ничего сам: политика кеширования
// целиком принадлежит менеджерам кеша.
package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yigitoz/prayer-times-service/internal/config"
	"github.com/yigitoz/prayer-times-service/internal/metrics"
)

// Client — HTTP-клиент провайдера времён намаза.
type Client struct {
	baseURL    string
	method     int
	httpClient *http.Client
}

// NewClient создаёт клиент с настройками из конфига.
func NewClient(cfg config.Provider) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		method:     cfg.Method,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// CalendarByCity возвращает календарь на весь месяц для города и страны.
func (c *Client) CalendarByCity(ctx context.Context, city, country string, year, month int) ([]Day, error) {
	const op = "aladhan.CalendarByCity"

	query := url.Values{}
	query.Set("city", city)
	query.Set("country", country)
	query.Set("method", strconv.Itoa(c.method))
	endpoint := fmt.Sprintf("%s/calendarByCity/%d/%d?%s", c.baseURL, year, month, query.Encode())

	var result calendarResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("%s: empty calendar data", op)
	}
	return result.Data, nil
}

// TimingsByCity возвращает времена одного дня (сегодня) для города и страны.
func (c *Client) TimingsByCity(ctx context.Context, city, country string) (*Day, error) {
	const op = "aladhan.TimingsByCity"

	query := url.Values{}
	query.Set("city", city)
	query.Set("country", country)
	query.Set("method", strconv.Itoa(c.method))
	endpoint := fmt.Sprintf("%s/timingsByCity?%s", c.baseURL, query.Encode())

	var result timingsResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result.Data, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	metrics.ProviderCalls.Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderErrors.Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrors.Inc()
		return errors.New("unexpected status: " + resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ProviderErrors.Inc()
		return err
	}
	return nil
}

package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigitoz/prayer-times-service/internal/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.Provider{
		BaseURL: serverURL,
		Method:  13,
		Timeout: 5 * time.Second,
	})
}

func TestCalendarByCity(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": [
				{
					"timings": {
						"Fajr": "05:30 (+03)",
						"Sunrise": "07:00 (+03)",
						"Dhuhr": "12:30 (+03)",
						"Asr": "15:15 (+03)",
						"Maghrib": "17:45 (+03)",
						"Isha": "19:15 (+03)"
					},
					"date": {
						"readable": "01 Nov 2025",
						"gregorian": {"date": "01-11-2025", "day": "01"},
						"hijri": {"day": "10", "month": {"en": "Jumada al-ula"}, "year": "1447"}
					}
				},
				{
					"timings": {
						"Fajr": "05:31 (+03)",
						"Sunrise": "07:01 (+03)",
						"Dhuhr": "12:30 (+03)",
						"Asr": "15:14 (+03)",
						"Maghrib": "17:44 (+03)",
						"Isha": "19:14 (+03)"
					},
					"date": {
						"readable": "02 Nov 2025",
						"gregorian": {"date": "02-11-2025", "day": "02"},
						"hijri": {"day": "11", "month": {"en": "Jumada al-ula"}, "year": "1447"}
					}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	days, err := client.CalendarByCity(context.Background(), "Istanbul", "Turkey", 2025, 11)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "/calendarByCity/2025/11", gotPath)
	assert.Contains(t, gotQuery, "city=Istanbul")
	assert.Contains(t, gotQuery, "country=Turkey")
	assert.Contains(t, gotQuery, "method=13")

	assert.Equal(t, "05:30 (+03)", days[0].Timings.Fajr)
	assert.Equal(t, "01", days[0].Date.Gregorian.Day)
	assert.Equal(t, "02-11-2025", days[1].Date.Gregorian.Date)
}

func TestCalendarByCity_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": 200, "status": "OK", "data": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	days, err := client.CalendarByCity(context.Background(), "Istanbul", "Turkey", 2025, 11)
	assert.Nil(t, days)
	assert.Error(t, err)
}

func TestCalendarByCity_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CalendarByCity(context.Background(), "Istanbul", "Turkey", 2025, 11)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestCalendarByCity_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CalendarByCity(context.Background(), "Istanbul", "Turkey", 2025, 11)
	assert.Error(t, err)
}

func TestTimingsByCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/timingsByCity", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": {
				"timings": {
					"Fajr": "05:30 (+03)",
					"Sunrise": "07:00 (+03)",
					"Dhuhr": "12:30 (+03)",
					"Asr": "15:15 (+03)",
					"Maghrib": "17:45 (+03)",
					"Isha": "19:15 (+03)"
				},
				"date": {
					"readable": "15 Nov 2025",
					"gregorian": {"date": "15-11-2025", "day": "15"},
					"hijri": {"day": "24", "month": {"en": "Jumada al-ula"}, "year": "1447"}
				}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	day, err := client.TimingsByCity(context.Background(), "Ankara", "Turkey")
	require.NoError(t, err)
	assert.Equal(t, "12:30 (+03)", day.Timings.Dhuhr)
	assert.Equal(t, "15", day.Date.Gregorian.Day)
}

func TestTimingsByCity_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(config.Provider{
		BaseURL: server.URL,
		Method:  13,
		Timeout: 50 * time.Millisecond,
	})

	_, err := client.TimingsByCity(context.Background(), "Ankara", "Turkey")
	assert.Error(t, err)
}

// Package metrics регистрирует счётчики Prometheus для наблюдения за тем,
// насколько кеширование действительно сокращает обращения к внешнему API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderCalls — количество HTTP-запросов к провайдеру времён намаза.
	ProviderCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prayer_provider_calls_total",
		Help: "Total number of HTTP calls to the remote timings provider.",
	})

	// ProviderErrors — количество неуспешных запросов к провайдеру.
	ProviderErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prayer_provider_errors_total",
		Help: "Total number of failed calls to the remote timings provider.",
	})

	// CacheHits — количество ответов, отданных из локального кеша.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prayer_cache_hits_total",
		Help: "Total number of reads served from the local cache.",
	})

	// CacheMisses — количество промахов кеша.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prayer_cache_misses_total",
		Help: "Total number of cache misses.",
	})

	// BackupFallbacks — количество ответов из резервной записи последней надежды.
	BackupFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prayer_backup_fallbacks_total",
		Help: "Total number of responses served from the last-known-good backup.",
	})
)

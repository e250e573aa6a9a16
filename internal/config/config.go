// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageDriver           string `yaml:"storage_driver" env:"STORAGE_DRIVER" env-default:"redis"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	Provider                `yaml:"provider"`
	CacheKeys               `yaml:"cache_keys"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"10s"`
}

// Provider структура для настройки клиента внешнего API времён намаза.
// Method 13 — расчёт по методике Diyanet İşleri Başkanlığı.
type Provider struct {
	BaseURL        string        `yaml:"base_url" env:"PROVIDER_BASE_URL" env-default:"https://api.aladhan.com/v1"`
	Method         int           `yaml:"method" env-default:"13"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
	DefaultCountry string        `yaml:"default_country" env-default:"Turkey"`
}

// CacheKeys задаёт префиксы и версии ключей хранилища. Версия в ключе позволяет
// менять схему записи без миграции: записи старых версий просто осиротевают.
type CacheKeys struct {
	MonthlyPrefix  string `yaml:"monthly_prefix" env-default:"prayer_times_"`
	MonthlyVersion string `yaml:"monthly_version" env-default:"v2_"`
	WeeklyPrefix   string `yaml:"weekly_prefix" env-default:"weekly_prayer_times_"`
	WeeklyVersion  string `yaml:"weekly_version" env-default:"v1_"`
	BackupKey      string `yaml:"backup_key" env-default:"last_prayer_times_backup"`
	LastCityKey    string `yaml:"last_city_key" env-default:"last_city_used"`
	LocationKey    string `yaml:"location_key" env-default:"user_location"`
	EzanKey        string `yaml:"ezan_key" env-default:"selected_ezan"`
}

// MustLoad функция для загрузки конфига, при ошибке завершает процесс
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageDriver: %s\n"+
			"StorageConnectionString: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  MaxRetries: %d\n"+
			"  DialTimeout: %s\n"+
			"  Timeout: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Provider:\n"+
			"  BaseURL: %s\n"+
			"  Method: %d\n"+
			"  Timeout: %s\n"+
			"  DefaultCountry: %s\n",
		c.Env,
		c.StorageDriver,
		c.StorageConnectionString,
		c.AddressRedis,
		c.DB,
		c.MaxRetries,
		c.DialTimeout,
		c.TimeoutRedis,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.BaseURL,
		c.Method,
		c.Timeout,
		c.DefaultCountry,
	)
}

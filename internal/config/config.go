package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "CONFIG_PATH"

type Config struct {
	Server              ServerConfig              `toml:"server"`
	Logs                LogsConfig                `toml:"logs"`
	Metrics             MetricsConfig             `toml:"metrics"`
	Database            DatabaseConfig            `toml:"database"`
	AvailabilityService AvailabilityServiceConfig `toml:"availability_service"`
	Booking             BookingConfig             `toml:"booking"`
	RateLimit           RateLimitConfig           `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type AvailabilityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type BookingConfig struct {
	ResolveTimeout  int `toml:"resolve_timeout"`  // секунды, ограничение одного запроса доступности
	SessionTTL      int `toml:"session_ttl"`      // минуты простоя до удаления сессии
	JanitorInterval int `toml:"janitor_interval"` // секунды между проходами очистки
}

func (b BookingConfig) ResolveTimeoutDuration() time.Duration {
	return time.Duration(b.ResolveTimeout) * time.Second
}

func (b BookingConfig) SessionTTLDuration() time.Duration {
	return time.Duration(b.SessionTTL) * time.Minute
}

func (b BookingConfig) JanitorIntervalDuration() time.Duration {
	return time.Duration(b.JanitorInterval) * time.Second
}

// RateLimitConfig ограничение частоты запросов на токен
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает конфиг из файла. Путь можно переопределить через CONFIG_PATH.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "skillslot-booking-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.AvailabilityService.Timeout == 0 {
		c.AvailabilityService.Timeout = 5
	}

	if c.Booking.ResolveTimeout == 0 {
		c.Booking.ResolveTimeout = 10
	}
	if c.Booking.SessionTTL == 0 {
		c.Booking.SessionTTL = 30
	}
	if c.Booking.JanitorInterval == 0 {
		c.Booking.JanitorInterval = 60
	}

	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
}

func (c *Config) validate() error {
	if c.AvailabilityService.URL == "" {
		return fmt.Errorf("config: availability_service.url is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"server.shutdown_timeout", float64(c.Server.ShutdownTimeout)},
		{"availability_service.timeout", float64(c.AvailabilityService.Timeout)},
		{"booking.resolve_timeout", float64(c.Booking.ResolveTimeout)},
		{"booking.session_ttl", float64(c.Booking.SessionTTL)},
		{"booking.janitor_interval", float64(c.Booking.JanitorInterval)},
		{"rate_limit.requests_per_second", c.RateLimit.RequestsPerSecond},
		{"rate_limit.burst", float64(c.RateLimit.Burst)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.value)
		}
	}
	return nil
}

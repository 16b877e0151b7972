package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid value")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Backend  BackendConfig  `toml:"backend"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig параметры БД журнала бронирований
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// BackendConfig параметры бэкенда клиники
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig политика рабочих часов врачей
type ScheduleConfig struct {
	OpenHour    int    `toml:"open_hour"`
	CloseHour   int    `toml:"close_hour"`
	SlotMinutes int    `toml:"slot_minutes"`
	HorizonDays int    `toml:"horizon_days"`
	Timezone    string `toml:"timezone"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location возвращает часовой пояс расписания
func (s ScheduleConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// WorkingHours собирает политику слотов из секции [schedule]
func (s ScheduleConfig) WorkingHours() (domain.WorkingHours, error) {
	loc, err := s.Location()
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("%w: schedule.timezone: %v", ErrInvalidConfig, err)
	}

	policy := domain.WorkingHours{
		OpenHour:    s.OpenHour,
		CloseHour:   s.CloseHour,
		SlotMinutes: s.SlotMinutes,
		HorizonDays: s.HorizonDays,
		Location:    loc,
	}
	if err := policy.Validate(); err != nil {
		return domain.WorkingHours{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return policy, nil
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse читает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию (часы приема 10:00-21:00, шаг 30 минут, 7 дней)
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "doctor_booking",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Backend: BackendConfig{
			URL:     "http://localhost:4000",
			Timeout: 10,
		},
		Schedule: ScheduleConfig{
			OpenHour:    10,
			CloseHour:   21,
			SlotMinutes: 30,
			HorizonDays: 7,
			Timezone:    "Local",
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
	}

	s := c.Schedule
	if s.OpenHour < 0 || s.CloseHour > 24 || s.OpenHour >= s.CloseHour {
		return fmt.Errorf("%w: schedule hours %d-%d", ErrInvalidConfig, s.OpenHour, s.CloseHour)
	}
	if s.SlotMinutes <= 0 || 60%s.SlotMinutes != 0 {
		return fmt.Errorf("%w: schedule.slot_minutes must divide an hour", ErrInvalidConfig)
	}
	if s.HorizonDays <= 0 {
		return fmt.Errorf("%w: schedule.horizon_days must be positive", ErrInvalidConfig)
	}
	if _, err := s.Location(); err != nil {
		return fmt.Errorf("%w: schedule.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required when database is enabled", ErrInvalidConfig)
	}

	return nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-DoctorBooking/internal/config"
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/infra/storage/journal"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicbackend"
	"github.com/m04kA/SMC-DoctorBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
	"github.com/m04kA/SMC-DoctorBooking/pkg/metrics"
)

// recorder все метрики, которые пишут компоненты сервиса
type recorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordBookingOutcome(outcome string)
	ObserveBackendCall(operation string, duration time.Duration)
	ObserveDBQuery(query string, failed bool, duration time.Duration)
}

// app общие зависимости команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	policy  domain.WorkingHours
	metrics recorder
	db      *sql.DB
	journal *journal.Repository // nil, если [database] enabled = false
	clinic  *clinicbackend.Client
}

// newApp загружает конфигурацию и поднимает логгер, метрики, журнал и клиента бэкенда.
// Метрики регистрируются только для serve: у CLI команд нет /metrics.
func newApp(ctx context.Context, configPath string, withMetrics bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	policy, err := cfg.Schedule.WorkingHours()
	if err != nil {
		log.Close()
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		policy:  policy,
		metrics: metrics.Nop{},
	}

	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	if cfg.Database.Enabled {
		if err := a.openJournal(ctx); err != nil {
			a.close()
			return nil, err
		}
	} else {
		log.Info("Booking journal disabled")
	}

	a.clinic = clinicbackend.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		a.metrics,
	)
	log.Info("Clinic backend client initialized (url=%s timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	return a, nil
}

func (a *app) openJournal(ctx context.Context) error {
	db, err := sql.Open("postgres", a.cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(a.cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(a.cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(a.cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	a.db = db
	a.log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.DBName)

	repo := journal.NewRepository(dbmetrics.Wrap(db, a.metrics))
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare journal schema: %w", err)
	}
	a.journal = repo
	return nil
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error("Failed to close database: %v", err)
		}
	}
	a.log.Close()
}

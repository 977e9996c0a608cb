package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/errors"
	"jobboard/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval   = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica connections. On start it pings the
// primary, applies pending migrations when migration.autoMigrate is set, and
// starts the pool monitor.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// unique violations surface as gorm.ErrDuplicatedKey
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// multi-step writes go through txManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{logger: params.Logger, db: sqlDB, interval: poolMonitorInterval}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := autoMigrate(params.Config.Migration, params.Logger); err != nil {
				return err
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func autoMigrate(cfg *config.MigrationConfig, logger *slog.Logger) error {
	if cfg == nil || !cfg.AutoMigrate {
		return nil
	}

	if err := migrations.Run(cfg.DSN, migrations.DirectionUp); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	logger.Info("Database schema is up to date")

	return nil
}

// poolMonitor logs when callers had to wait for a pooled connection.
type poolMonitor struct {
	logger   *slog.Logger
	db       *sql.DB
	interval time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.db == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
}

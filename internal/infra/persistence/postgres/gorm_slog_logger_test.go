package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_LogsFailedQueries(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_SkipsExpectedErrors(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrDuplicatedKey)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(newBufferLogger(&base), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), sqlFn, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "SELECT 1")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
}

package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, _, waited := poolWait(prev, prev)
		assert.False(t, waited)
	})

	t.Run("short waits are debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}
		level, attrs, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold}
		level, _, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
	})
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "gorm slow query")
	})

	t.Run("request logger is preferred", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})
		ctx := deliverycontext.WithLogger(context.Background(),
			slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9")))

		l.Trace(ctx, time.Now(), sqlFn, assert.AnError)

		assert.Empty(t, base.String())
		assert.Contains(t, scoped.String(), "request_id=req-9")
		assert.Contains(t, scoped.String(), "gorm query failed")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{}).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)

		assert.Empty(t, buf.String())
	})
}

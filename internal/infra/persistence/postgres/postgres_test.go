package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, _, waited := poolWait(prev, prev)
		assert.False(t, waited)
	})

	t.Run("short waits", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4}

		level, attrs, waited := poolWait(prev, cur)
		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, int64(2), attrs[0].Value.Int64())
		assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())
	})

	t.Run("long waits", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond}

		level, _, waited := poolWait(prev, cur)
		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
	})
}

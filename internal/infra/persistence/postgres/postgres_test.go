package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Sample(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	monitor := &poolMonitor{logger: logger}

	assert.False(t, monitor.sample(context.Background(), sql.DBStats{}))
	assert.Zero(t, buf.Len())

	logged := monitor.sample(context.Background(), sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.True(t, logged)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avg_wait=5ms")

	buf.Reset()
	logged = monitor.sample(context.Background(), sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond})
	assert.True(t, logged)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")

	buf.Reset()
	assert.False(t, monitor.sample(context.Background(), sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond}))
	assert.Zero(t, buf.Len())
}

package logger_test

import (
	"path/filepath"
	"testing"
	"time"

	"tms-lite/config"
	"tms-lite/database"
	"tms-lite/logger"
	log_model "tms-lite/models/log"
	"tms-lite/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncLogger_CloseDrainsQueue(t *testing.T) {
	db, err := database.InitDB(config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "logs.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	for i := 0; i < 5; i++ {
		asyncLogger.Log(types.LogEntry{
			RequestID:  "req-1",
			Method:     "POST",
			URL:        "/add_box/1",
			StatusCode: 303,
			CreatedAt:  time.Now(),
		})
	}
	asyncLogger.Close()
	asyncLogger.Close()

	var rows []log_model.Log
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 5)
	assert.Equal(t, "req-1", rows[0].RequestID)
	assert.Equal(t, 303, rows[0].StatusCode)
}

func TestAsyncLogger_LogAfterCloseIsDropped(t *testing.T) {
	db, err := database.InitDB(config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "logs.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()
	asyncLogger.Close()

	assert.NotPanics(t, func() {
		asyncLogger.Log(types.LogEntry{Method: "GET", URL: "/", CreatedAt: time.Now()})
	})

	var count int64
	require.NoError(t, db.Model(&log_model.Log{}).Count(&count).Error)
	assert.Zero(t, count)
}

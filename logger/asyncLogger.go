package logger

import (
	"sync"

	log_model "tms-lite/models/log"
	"tms-lite/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request log entries off the request path.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
		done:    make(chan struct{}),
	}
}

// ProcessLog drains the channel until Close is called.
func (logger *AsyncLogger) ProcessLog() {
	defer close(logger.done)
	Debug("Starting asynchronous request logger")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			RequestID:       logEntry.RequestID,
			Method:          logEntry.Method,
			URL:             logEntry.URL,
			RequestBody:     logEntry.RequestBody,
			ResponseBody:    logEntry.ResponseBody,
			RequestHeaders:  logEntry.RequestHeaders,
			ResponseHeaders: logEntry.ResponseHeaders,
			StatusCode:      logEntry.StatusCode,
			CreatedAt:       logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			Error("Failed to insert request log entry", err)
		}
	}
}

// Log pushes a log entry into the channel. Entries arriving after Close
// are dropped.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.mu.RLock()
	defer logger.mu.RUnlock()

	if logger.closed {
		Warning("Request log entry dropped, logger is closed")
		return
	}
	logger.channel <- entry
}

// Close stops accepting entries and waits for queued ones to be written.
// ProcessLog must have been started.
func (logger *AsyncLogger) Close() {
	logger.mu.Lock()
	if !logger.closed {
		logger.closed = true
		close(logger.channel)
	}
	logger.mu.Unlock()

	<-logger.done
}

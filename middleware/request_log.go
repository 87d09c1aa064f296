package middleware

import (
	"tms-lite/logger"
	"tms-lite/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLog tags each request with an id and queues a sanitized copy of the
// exchange for the async logger once the handler has run.
func RequestLog(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)

		err := c.Next()
		if err != nil {
			// let the error handler write the response before it is captured
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				return handlerErr
			}
		}

		asyncLogger.Log(utils.CreateSanitizedLogEntry(c, requestID))
		return nil
	}
}

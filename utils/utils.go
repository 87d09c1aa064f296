package utils

import (
	"fmt"
	"strings"
	"time"

	"tms-lite/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// ParseIDParam reads a positive numeric route parameter.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, c.Params(name))
	}
	return uint(id), nil
}

// ParseSince understands "today", "week", "month" and RFC3339 timestamps.
// An empty value means no lower bound.
func ParseSince(raw string, at time.Time) (*time.Time, error) {
	var t time.Time
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "today":
		t = now.With(at).BeginningOfDay()
	case "week":
		t = now.With(at).BeginningOfWeek()
	case "month":
		t = now.With(at).BeginningOfMonth()
	default:
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("since must be today, week, month or an RFC3339 time")
		}
		t = parsed
	}
	return &t, nil
}

const (
	maxLoggedBodySize = 4096
	redacted          = "[REDACTED]"
)

// sanitizeRequestBody keeps form and JSON bodies, truncating oversized ones.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := c.Body()
	if len(body) > maxLoggedBodySize {
		return string(body[:maxLoggedBodySize]) + "...[TRUNCATED]"
	}
	return string(body)
}

// sanitizeRequestHeaders copies the request headers with credentials redacted.
func sanitizeRequestHeaders(c *fiber.Ctx) string {
	var b strings.Builder
	c.Request().Header.VisitAll(func(key, value []byte) {
		b.Write(key)
		b.WriteString(": ")
		if strings.EqualFold(string(key), fiber.HeaderAuthorization) {
			b.WriteString(redacted)
		} else {
			b.Write(value)
		}
		b.WriteString("\r\n")
	})
	return b.String()
}

// sanitizeResponseBody keeps JSON and text bodies and drops binary ones
// such as spreadsheet exports.
func sanitizeResponseBody(c *fiber.Ctx) string {
	contentType := string(c.Response().Header.ContentType())
	if strings.HasPrefix(contentType, "application/json") ||
		strings.HasPrefix(contentType, "text/") {
		return string(append([]byte(nil), c.Response().Body()...))
	}
	if len(c.Response().Body()) == 0 {
		return ""
	}
	return "[BINARY_RESPONSE_BODY_REMOVED]"
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for logging.
// fasthttp reuses request buffers, so nothing here may alias them.
func CreateSanitizedLogEntry(c *fiber.Ctx, requestID string) types.LogEntry {
	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		RequestID:       requestID,
		Method:          string([]byte(c.Method())),
		URL:             string([]byte(c.OriginalURL())),
		RequestBody:     sanitizeRequestBody(c),
		ResponseBody:    sanitizeResponseBody(c),
		RequestHeaders:  sanitizeRequestHeaders(c),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

package middleware

import (
	"bytes"
	"errors"
	"log"
	"strings"

	"swipe11-web/internal/components"
	"swipe11-web/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ErrorMiddleware recovers panics and normalizes errors escaping the
// handlers. Page routes get the HTML error view, the health endpoint keeps
// its JSON envelope.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if m != nil && m.logger != nil {
					m.logger.Printf("panic recovered: %v", r)
				}
				err = m.respond(c, fiber.StatusInternalServerError, "")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if m != nil && m.logger != nil && status >= 500 {
			m.logger.Printf("request failed path=%s status=%d err=%v", c.OriginalURL(), status, err)
		}
		return m.respond(c, status, msg)
	}
}

func (m *ErrorMiddleware) respond(c fiber.Ctx, status int, msg string) error {
	if wantsJSON(c) {
		return response.Error(c, status, msg, nil)
	}

	var buf bytes.Buffer
	if renderErr := components.ErrorPage(status, msg).Render(&buf); renderErr != nil {
		return response.Error(c, status, msg, nil)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func wantsJSON(c fiber.Ctx) bool {
	if c.Path() == "/health" {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

func normalizeError(err error) (int, string) {
	if err == nil {
		return fiber.StatusInternalServerError, ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return status, ""
		}
		return status, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return status, ""
		}
		return status, fiberErr.Message
	}

	return fiber.StatusInternalServerError, ""
}

package handler

import (
	"bytes"
	"errors"

	"swipe11-web/internal/careers"

	"github.com/gofiber/fiber/v3"
	g "maragu.dev/gomponents"
)

func render(c fiber.Ctx, status int, node g.Node) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// userMessage maps a careers error to text safe to show on the page. API
// messages are display copy from the backend and pass through verbatim.
func userMessage(err error) string {
	var apiErr *careers.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	var netErr *careers.NetworkError
	if errors.As(err, &netErr) {
		return "We couldn't reach our careers service. Please try again in a moment."
	}

	return ""
}

// validationMessage converts a validation failure into its form banner.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, careers.ErrResumeMissing):
		return "Please upload your resume."
	case errors.Is(err, careers.ErrResumeTooLarge):
		return "File size must be less than 10MB."
	case errors.Is(err, careers.ErrResumeType):
		return "Please upload a PDF or DOC file."
	case errors.Is(err, careers.ErrFieldRequired):
		var vErr *careers.ValidationError
		if errors.As(err, &vErr) {
			return "Please fill in the required field: " + vErr.Field + "."
		}
		return "Please fill in all required fields."
	default:
		return ""
	}
}

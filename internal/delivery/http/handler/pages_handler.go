package handler

import (
	"swipe11-web/internal/components"

	"github.com/gofiber/fiber/v3"
)

// PagesHandler serves the purely static marketing pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Home)
	r.Get("/about", h.About)
}

func (h *PagesHandler) Home(c fiber.Ctx) error {
	return render(c, fiber.StatusOK, components.HomePage())
}

func (h *PagesHandler) About(c fiber.Ctx) error {
	return render(c, fiber.StatusOK, components.AboutPage())
}

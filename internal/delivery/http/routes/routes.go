package routes

import (
	"swipe11-web/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	pages    *handler.PagesHandler
	careers  *handler.CareersHandler
	creators *handler.CreatorsHandler
}

func NewRegistry(health *handler.HealthHandler, pages *handler.PagesHandler, careers *handler.CareersHandler, creators *handler.CreatorsHandler) *Registry {
	return &Registry{health: health, pages: pages, careers: careers, creators: creators}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.pages != nil {
		r.pages.RegisterRoutes(app)
	}
	if r.careers != nil {
		r.careers.RegisterRoutes(app)
	}
	if r.creators != nil {
		r.creators.RegisterRoutes(app)
	}
}

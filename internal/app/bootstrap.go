package app

import (
	"fmt"
	"strings"

	"swipe11-web/internal/config"
	"swipe11-web/internal/delivery/http/handler"
	"swipe11-web/internal/delivery/http/middleware"
	"swipe11-web/internal/delivery/http/routes"
	"swipe11-web/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// maxUploadBytes leaves headroom over the 10 MiB resume limit for the rest
// of the multipart body.
const maxUploadBytes = 12 << 20

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: maxUploadBytes,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	positions := usecase.NewPositionsUsecase(c.Careers, c.Logger)
	jobPages := usecase.NewJobPageUsecase(c.Careers, c.Logger)
	creators := usecase.NewCreatorsUsecase(c.Careers, c.Cache, c.Logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.Config.App.AppName),
		handler.NewPagesHandler(),
		handler.NewCareersHandler(positions, jobPages, c.Logger),
		handler.NewCreatorsHandler(creators, c.Logger),
	)
	registry.Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

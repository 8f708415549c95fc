package app

import (
	"errors"
	"log"
	"os"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/config"
	"swipe11-web/internal/infrastructure/cache"
)

// Container wires the site's shared dependencies: the careers API client
// and the optional Redis cache.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	Careers careers.Client
	Cache   *cache.Redis
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	client := careers.NewClient(cfg.CareersAPI.BaseURL, cfg.CareersAPI.Token, logger)
	if client == nil {
		return nil, errors.New("careers api base URL is not configured")
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Careers: client,
		Cache:   cache.NewRedis(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}

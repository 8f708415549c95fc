package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App        AppConfig
	CareersAPI CareersAPIConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// CareersAPIConfig points at the remote jobs/applications/creators API.
// Every outbound request bears Token as a bearer credential.
type CareersAPIConfig struct {
	BaseURL string
	Token   string
}

const defaultCareersAPIURL = "https://card11-dev.vercel.app"

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.CareersAPI = CareersAPIConfig{
		BaseURL: opt("CAREERS_API_URL"),
		Token:   req("CAREERS_API_TOKEN"),
	}
	if cfg.CareersAPI.BaseURL == "" {
		cfg.CareersAPI.BaseURL = defaultCareersAPIURL
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

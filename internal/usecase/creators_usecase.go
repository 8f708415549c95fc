package usecase

import (
	"context"
	"log"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/infrastructure/cache"
)

// CreatorsUsecase backs the creator-partnership page: the domain options
// for its form and the submission path.
type CreatorsUsecase interface {
	Domains(ctx context.Context) []careers.DomainOption
	Apply(ctx context.Context, app careers.CreatorApplication) (*careers.SubmitResult, error)
}

type Creators struct {
	client careers.Client
	cache  *cache.Redis
	logger *log.Logger
}

func NewCreatorsUsecase(client careers.Client, redis *cache.Redis, logger *log.Logger) *Creators {
	return &Creators{client: client, cache: redis, logger: logger}
}

// Domains never fails: a cache hit, a live fetch, or the client's built-in
// fallback enumeration, in that order. The list changes rarely, so a short
// cache spares the remote API a call per page view.
func (u *Creators) Domains(ctx context.Context) []careers.DomainOption {
	var cached []careers.DomainOption
	if found, err := u.cache.GetJSON(ctx, cache.CreatorDomainsKey, &cached); err == nil && found && len(cached) > 0 {
		return cached
	}

	domains, _ := u.client.FetchCreatorDomains(ctx)
	if len(domains) == 0 {
		domains = careers.DefaultCreatorDomains()
	}

	if err := u.cache.SetJSON(ctx, cache.CreatorDomainsKey, domains, cache.CreatorDomainsTTL); err != nil && u.logger != nil {
		u.logger.Printf("[Creators] domain cache write failed: %v", err)
	}
	return domains
}

func (u *Creators) Apply(ctx context.Context, app careers.CreatorApplication) (*careers.SubmitResult, error) {
	if app.Source == "" {
		app.Source = applicationSource
	}

	result, err := u.client.SubmitCreatorApplication(ctx, app)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Creators] submit failed domain=%s err=%v", app.Domain, err)
		}
		return nil, err
	}
	return result, nil
}

var _ CreatorsUsecase = (*Creators)(nil)

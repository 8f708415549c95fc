package handler

import (
	"errors"
	"log"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/components"
	"swipe11-web/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CreatorsHandler serves the creator-partnership page and its intake form.
type CreatorsHandler struct {
	creators usecase.CreatorsUsecase
	logger   *log.Logger
}

func NewCreatorsHandler(creators usecase.CreatorsUsecase, logger *log.Logger) *CreatorsHandler {
	return &CreatorsHandler{creators: creators, logger: logger}
}

func (h *CreatorsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/creators", h.Page)
	r.Post("/creators/apply", h.Apply)
}

func (h *CreatorsHandler) Page(c fiber.Ctx) error {
	domains := h.creators.Domains(c.Context())
	return render(c, fiber.StatusOK, components.CreatorsPage(domains, components.CreatorFormView{}))
}

func (h *CreatorsHandler) Apply(c fiber.Ctx) error {
	form := components.CreatorFormView{
		FullName:        c.FormValue("fullName"),
		Email:           c.FormValue("email"),
		Domain:          c.FormValue("domain"),
		InstagramID:     c.FormValue("instagramId"),
		LinkedInProfile: c.FormValue("linkedinProfile"),
		TwitterProfile:  c.FormValue("twitterProfile"),
		YouTubeLink:     c.FormValue("youtubeLink"),
	}

	app := careers.CreatorApplication{
		FullName:        form.FullName,
		Email:           form.Email,
		Domain:          form.Domain,
		InstagramID:     form.InstagramID,
		LinkedInProfile: form.LinkedInProfile,
		TwitterProfile:  form.TwitterProfile,
		YouTubeLink:     form.YouTubeLink,
	}

	result, err := h.creators.Apply(c.Context(), app)
	if err != nil {
		domains := h.creators.Domains(c.Context())

		var vErr *careers.ValidationError
		if errors.As(err, &vErr) {
			form.Error = validationMessage(err)
			return render(c, fiber.StatusUnprocessableEntity, components.CreatorsPage(domains, form))
		}

		form.Error = userMessage(err)
		if form.Error == "" {
			form.Error = "Failed to submit your application. Please try again."
		}
		return render(c, fiber.StatusBadGateway, components.CreatorsPage(domains, form))
	}

	return render(c, fiber.StatusOK, components.CreatorsPage(nil, components.CreatorFormView{
		Submitted: true,
		Message:   result.Message,
	}))
}

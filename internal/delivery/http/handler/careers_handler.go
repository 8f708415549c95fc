package handler

import (
	"errors"
	"log"
	"strconv"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/components"
	"swipe11-web/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CareersHandler serves the careers board and the job detail/application
// flow.
type CareersHandler struct {
	positions usecase.PositionsUsecase
	jobs      usecase.JobPageUsecase
	logger    *log.Logger
}

func NewCareersHandler(positions usecase.PositionsUsecase, jobs usecase.JobPageUsecase, logger *log.Logger) *CareersHandler {
	return &CareersHandler{positions: positions, jobs: jobs, logger: logger}
}

func (h *CareersHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/careers", h.List)
	r.Get("/careers/:slug", h.Detail)
	r.Post("/careers/:slug/apply", h.Apply)
}

// List renders the open-positions board. Filters arrive as query params
// and are applied in memory against the freshly fetched list.
func (h *CareersHandler) List(c fiber.Ctx) error {
	filters := careers.FilterSet{
		Department:     c.Query("department"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("type"),
	}

	data, err := h.positions.OpenPositions(c.Context(), filters)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("[Careers] list failed: %v", err)
		}
		return render(c, fiber.StatusBadGateway, components.CareersErrorPage(c.OriginalURL()))
	}

	return render(c, fiber.StatusOK, components.CareersPage(data))
}

func (h *CareersHandler) Detail(c fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := h.jobs.JobPage(c.Context(), slug)
	if err != nil {
		return h.renderJobError(c, err)
	}

	return render(c, fiber.StatusOK, components.JobDetailPage(page, components.ApplicationFormView{}))
}

// Apply handles the multipart application form. Validation failures and
// upstream errors re-render the page with an inline banner and the entered
// values intact; success swaps the form for an acknowledgement.
func (h *CareersHandler) Apply(c fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := h.jobs.JobPage(c.Context(), slug)
	if err != nil {
		return h.renderJobError(c, err)
	}

	form := components.ApplicationFormView{
		FirstName:   c.FormValue("firstName"),
		LastName:    c.FormValue("lastName"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		LinkedIn:    c.FormValue("linkedin"),
		Portfolio:   c.FormValue("portfolio"),
		CoverLetter: c.FormValue("coverLetter"),
	}

	app := careers.Application{
		JobID:       page.Job.ID,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       form.Phone,
		LinkedIn:    form.LinkedIn,
		Portfolio:   form.Portfolio,
		CoverLetter: form.CoverLetter,
	}
	if years := c.FormValue("yearsOfExperience"); years != "" {
		if v, err := strconv.Atoi(years); err == nil {
			app.YearsOfExperience = &v
		}
	}

	fileHeader, err := c.FormFile("resume")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			form.Error = "We couldn't read your resume file. Please try again."
			return render(c, fiber.StatusBadRequest, components.JobDetailPage(page, form))
		}
		defer file.Close()

		app.Resume = &careers.ResumeFile{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Content:     file,
		}
	}

	result, err := h.jobs.Apply(c.Context(), app)
	if err != nil {
		var vErr *careers.ValidationError
		if errors.As(err, &vErr) {
			form.Error = validationMessage(err)
			return render(c, fiber.StatusUnprocessableEntity, components.JobDetailPage(page, form))
		}

		form.Error = userMessage(err)
		if form.Error == "" {
			form.Error = "Failed to submit application. Please try again."
		}
		return render(c, fiber.StatusBadGateway, components.JobDetailPage(page, form))
	}

	return render(c, fiber.StatusOK, components.JobDetailPage(page, components.ApplicationFormView{
		Submitted: true,
		Message:   result.Message,
	}))
}

func (h *CareersHandler) renderJobError(c fiber.Ctx, err error) error {
	if errors.Is(err, careers.ErrNotFound) {
		return render(c, fiber.StatusNotFound, components.JobNotFoundPage())
	}

	if h.logger != nil {
		h.logger.Printf("[Careers] job load failed path=%s err=%v", c.OriginalURL(), err)
	}
	return render(c, fiber.StatusBadGateway, components.JobErrorPage(userMessage(err), c.OriginalURL()))
}

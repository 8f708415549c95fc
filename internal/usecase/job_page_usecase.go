package usecase

import (
	"context"
	"log"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/richtext"
)

// applicationSource tags submissions that originate from this site.
const applicationSource = "website"

// JobPage is a job detail with its rich-text sections already rendered to
// HTML. A section with no content renders as "".
type JobPage struct {
	Job *careers.JobDetail

	DescriptionHTML      string
	AboutUsHTML          string
	ResponsibilitiesHTML string
	RequirementsHTML     string
	BenefitsHTML         string
}

type JobPageUsecase interface {
	JobPage(ctx context.Context, slug string) (*JobPage, error)
	Apply(ctx context.Context, app careers.Application) (*careers.SubmitResult, error)
}

type JobPages struct {
	client careers.Client
	logger *log.Logger
}

func NewJobPageUsecase(client careers.Client, logger *log.Logger) *JobPages {
	return &JobPages{client: client, logger: logger}
}

func (u *JobPages) JobPage(ctx context.Context, slug string) (*JobPage, error) {
	detail, err := u.client.GetJobBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &JobPage{
		Job:                  detail,
		DescriptionHTML:      richtext.Render(detail.Description),
		AboutUsHTML:          richtext.Render(detail.AboutUs),
		ResponsibilitiesHTML: richtext.Render(detail.Responsibilities),
		RequirementsHTML:     richtext.Render(detail.Requirements),
		BenefitsHTML:         richtext.Render(detail.Benefits),
	}, nil
}

// Apply forwards a validated application to the careers API. Validation
// errors surface before any network call; resubmission is left to the user.
func (u *JobPages) Apply(ctx context.Context, app careers.Application) (*careers.SubmitResult, error) {
	if app.Source == "" {
		app.Source = applicationSource
	}
	if app.Consent == nil {
		consent := true
		app.Consent = &consent
	}

	result, err := u.client.SubmitApplication(ctx, app)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[JobPages] application submit failed job=%s err=%v", app.JobID, err)
		}
		return nil, err
	}
	return result, nil
}

var _ JobPageUsecase = (*JobPages)(nil)

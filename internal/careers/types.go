package careers

import (
	"time"

	"swipe11-web/internal/richtext"
)

// WorkMode is the onsite/hybrid/remote classification of a posting.
type WorkMode string

const (
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeRemote WorkMode = "remote"
)

// EmploymentType is the raw enum value used on the wire. The UI shows the
// formatted label, see FormatEmploymentType.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// EmploymentTypes lists the known enum values in display order.
var EmploymentTypes = []EmploymentType{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentInternship,
	EmploymentContract,
}

type SalaryRange struct {
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
	Period   string `json:"period,omitempty"`
}

// Job is one open posting as listed by the careers API. Slug is unique
// within the active set and is the lookup key for detail pages.
type Job struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Department      string         `json:"department"`
	Location        string         `json:"location"`
	WorkMode        WorkMode       `json:"workMode,omitempty"`
	EmploymentType  EmploymentType `json:"employmentType"`
	ExperienceLevel string         `json:"experienceLevel,omitempty"`
	SalaryRange     *SalaryRange   `json:"salaryRange,omitempty"`
	Intro           string         `json:"intro,omitempty"`
	IsActive        bool           `json:"isActive"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// JobDetail is a posting plus its long-form rich-text sections.
type JobDetail struct {
	Job
	Description         *richtext.Document `json:"description,omitempty"`
	Requirements        *richtext.Document `json:"requirements,omitempty"`
	Responsibilities    *richtext.Document `json:"responsibilities,omitempty"`
	Benefits            *richtext.Document `json:"benefits,omitempty"`
	AboutUs             *richtext.Document `json:"aboutUs,omitempty"`
	ApplicationDeadline *time.Time         `json:"applicationDeadline,omitempty"`
}

// Department is a department aggregate with its open-posting count.
type Department struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Pagination struct {
	TotalDocs   int  `json:"totalDocs"`
	TotalPages  int  `json:"totalPages"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// Filters selects which query parameters ListJobs serializes. Zero values
// and sentinel option values ("All Departments", "All Locations",
// "All Types") are not sent.
type Filters struct {
	Query              string
	Department         string
	Location           string
	WorkMode           string
	EmploymentType     string
	ExperienceLevel    string
	Page               int
	Limit              int
	Sort               string
	IncludeDepartments bool
}

// JobList is one page of postings plus pagination metadata. Departments is
// populated only when the request asked for inline aggregates.
type JobList struct {
	Jobs        []Job
	Pagination  Pagination
	Departments []string
}

// DomainOption is one creator-domain choice offered on the partnership form.
type DomainOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SubmitResult is the acknowledgement returned for a submitted application.
type SubmitResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId,omitempty"`
	JobTitle      string `json:"jobTitle,omitempty"`
}

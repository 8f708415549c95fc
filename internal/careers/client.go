package careers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Sentinel filter option values meaning "no constraint on this field".
const (
	AllDepartments = "All Departments"
	AllLocations   = "All Locations"
	AllTypes       = "All Types"
)

const apiPrefix = "/api/swipe11"

// Client is the typed interface to the remote careers API. Read methods
// always fetch live data; submit methods perform exactly one network call
// per invocation and never retry.
type Client interface {
	ListJobs(ctx context.Context, filters Filters) (*JobList, error)
	GetJobBySlug(ctx context.Context, slug string) (*JobDetail, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	SubmitApplication(ctx context.Context, app Application) (*SubmitResult, error)
	SubmitCreatorApplication(ctx context.Context, app CreatorApplication) (*SubmitResult, error)
	FetchCreatorDomains(ctx context.Context) ([]DomainOption, error)
}

type httpCareersClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *log.Logger
}

// NewClient builds a careers API client. baseURL is the deployment host,
// token the bearer credential attached to every request.
func NewClient(baseURL, token string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpCareersClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

type jobListEnvelope struct {
	Success     bool       `json:"success"`
	Data        []Job      `json:"data"`
	Pagination  Pagination `json:"pagination"`
	Departments []string   `json:"departments,omitempty"`
}

type jobDetailEnvelope struct {
	Success bool       `json:"success"`
	Data    *JobDetail `json:"data"`
}

type departmentsEnvelope struct {
	Success bool         `json:"success"`
	Data    []Department `json:"data"`
	Total   int          `json:"total"`
}

type apiErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *httpCareersClient) ListJobs(ctx context.Context, filters Filters) (*JobList, error) {
	if c == nil {
		return nil, errors.New("nil careers client")
	}

	query := buildJobsQuery(filters)

	var out jobListEnvelope
	if err := c.getJSON(ctx, apiPrefix+"/jobs", query, &out); err != nil {
		return nil, err
	}
	return &JobList{Jobs: out.Data, Pagination: out.Pagination, Departments: out.Departments}, nil
}

func (c *httpCareersClient) GetJobBySlug(ctx context.Context, slug string) (*JobDetail, error) {
	if c == nil {
		return nil, errors.New("nil careers client")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: empty slug", ErrNotFound)
	}

	var out jobDetailEnvelope
	err := c.getJSON(ctx, apiPrefix+"/jobs/"+url.PathEscape(slug), nil, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return out.Data, nil
}

func (c *httpCareersClient) ListDepartments(ctx context.Context) ([]Department, error) {
	if c == nil {
		return nil, errors.New("nil careers client")
	}

	var out departmentsEnvelope
	if err := c.getJSON(ctx, apiPrefix+"/jobs/departments", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// buildJobsQuery serializes only non-default, non-sentinel filter options.
// Employment type is normalized from its display form to the wire enum,
// e.g. "Full Time" -> "full-time".
func buildJobsQuery(filters Filters) url.Values {
	query := url.Values{}

	if q := strings.TrimSpace(filters.Query); q != "" {
		query.Set("q", q)
	}
	if d := strings.TrimSpace(filters.Department); d != "" && d != AllDepartments {
		query.Set("department", d)
	}
	if l := strings.TrimSpace(filters.Location); l != "" && l != AllLocations {
		query.Set("location", l)
	}
	if wm := strings.TrimSpace(filters.WorkMode); wm != "" {
		query.Set("workMode", wm)
	}
	if et := strings.TrimSpace(filters.EmploymentType); et != "" && et != AllTypes {
		et = strings.ReplaceAll(strings.ToLower(et), " ", "-")
		query.Set("employmentType", et)
	}
	if el := strings.TrimSpace(filters.ExperienceLevel); el != "" {
		query.Set("experienceLevel", el)
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}
	if s := strings.TrimSpace(filters.Sort); s != "" {
		query.Set("sort", s)
	}
	if filters.IncludeDepartments {
		query.Set("includeDepartments", "true")
	}

	return query
}

func (c *httpCareersClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, endpoint); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode careers response: %w", err)
	}
	return nil
}

func (c *httpCareersClient) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	// Job data must always be fetched live.
	req.Header.Set("Cache-Control", "no-store")
}

// checkStatus turns a non-2xx response into an *APIError carrying the
// body's message field verbatim.
func (c *httpCareersClient) checkStatus(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body apiErrorBody
	_ = json.Unmarshal(raw, &body)

	msg := strings.TrimSpace(body.Message)
	if c.logger != nil {
		c.logger.Printf("[Careers] request failed endpoint=%s status=%d message=%q", endpoint, resp.StatusCode, msg)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

var _ Client = (*httpCareersClient)(nil)

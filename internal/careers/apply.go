package careers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
)

// MaxResumeSize is the largest resume accepted, checked before any upload.
const MaxResumeSize = 10 << 20

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ResumeFile is the binary resume attached to an application.
type ResumeFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Application is a career application constructed from form state. Optional
// fields left empty are omitted from the transmitted payload entirely so
// the backend's own defaults apply.
type Application struct {
	JobID             string
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	LinkedIn          string
	Portfolio         string
	CurrentCompany    string
	CurrentRole       string
	YearsOfExperience *int
	NoticePeriod      string
	ExpectedSalary    string
	CoverLetter       string
	Resume            *ResumeFile
	Source            string
	Consent           *bool
}

// CreatorApplication is the partnership-intake variant, JSON-encoded with
// no file attachment.
type CreatorApplication struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Domain          string `json:"domain"`
	InstagramID     string `json:"instagramId,omitempty"`
	LinkedInProfile string `json:"linkedinProfile,omitempty"`
	TwitterProfile  string `json:"twitterProfile,omitempty"`
	YouTubeLink     string `json:"youtubeLink,omitempty"`
	Source          string `json:"source,omitempty"`
}

// ValidateResume checks presence, size and MIME type. It runs client-side
// before any network call so oversized or unsupported files never upload.
func ValidateResume(f *ResumeFile) error {
	if f == nil || f.Content == nil {
		return &ValidationError{Field: "resume", Err: ErrResumeMissing}
	}
	if f.Size > MaxResumeSize {
		return &ValidationError{Field: "resume", Err: ErrResumeTooLarge}
	}
	if !allowedResumeTypes[f.ContentType] {
		return &ValidationError{Field: "resume", Err: ErrResumeType}
	}
	return nil
}

func (app Application) validate() error {
	required := []struct {
		field string
		value string
	}{
		{"jobId", app.JobID},
		{"firstName", app.FirstName},
		{"lastName", app.LastName},
		{"email", app.Email},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Err: ErrFieldRequired}
		}
	}
	return ValidateResume(app.Resume)
}

func (app CreatorApplication) validate() error {
	required := []struct {
		field string
		value string
	}{
		{"fullName", app.FullName},
		{"email", app.Email},
		{"domain", app.Domain},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Err: ErrFieldRequired}
		}
	}
	return nil
}

// SubmitApplication validates, packages and posts a career application as a
// single multipart request. Resubmission creates a new record server-side,
// so retry stays with the caller.
func (c *httpCareersClient) SubmitApplication(ctx context.Context, app Application) (*SubmitResult, error) {
	if c == nil {
		return nil, errors.New("nil careers client")
	}
	if err := app.validate(); err != nil {
		return nil, err
	}

	body, contentType, err := encodeApplication(app)
	if err != nil {
		return nil, err
	}

	return c.postForResult(ctx, apiPrefix+"/applications", body, contentType)
}

// SubmitCreatorApplication posts the creator-partnership variant as JSON.
func (c *httpCareersClient) SubmitCreatorApplication(ctx context.Context, app CreatorApplication) (*SubmitResult, error) {
	if c == nil {
		return nil, errors.New("nil careers client")
	}
	if err := app.validate(); err != nil {
		return nil, err
	}

	b, err := json.Marshal(app)
	if err != nil {
		return nil, err
	}

	return c.postForResult(ctx, apiPrefix+"/creators/apply", bytes.NewReader(b), "application/json")
}

// FetchCreatorDomains returns the domain options for the partnership form.
// On any failure it substitutes the fixed fallback enumeration instead of
// propagating the error; the form must always have options to offer.
func (c *httpCareersClient) FetchCreatorDomains(ctx context.Context) ([]DomainOption, error) {
	if c == nil {
		return DefaultCreatorDomains(), nil
	}

	var out struct {
		Success bool           `json:"success"`
		Domains []DomainOption `json:"domains"`
	}
	if err := c.getJSON(ctx, apiPrefix+"/creators/apply", nil, &out); err != nil {
		if c.logger != nil {
			c.logger.Printf("[Careers] creator domains unavailable, using defaults: %v", err)
		}
		return DefaultCreatorDomains(), nil
	}
	if len(out.Domains) == 0 {
		return DefaultCreatorDomains(), nil
	}
	return out.Domains, nil
}

// DefaultCreatorDomains is the fallback enumeration used when the domain
// list cannot be fetched.
func DefaultCreatorDomains() []DomainOption {
	return []DomainOption{
		{Value: "finance", Label: "Finance"},
		{Value: "technology", Label: "Technology"},
		{Value: "lifestyle", Label: "Lifestyle"},
		{Value: "travel", Label: "Travel"},
		{Value: "food", Label: "Food"},
		{Value: "fashion", Label: "Fashion"},
		{Value: "gaming", Label: "Gaming"},
		{Value: "education", Label: "Education"},
		{Value: "entertainment", Label: "Entertainment"},
		{Value: "health-fitness", Label: "Health & Fitness"},
		{Value: "business", Label: "Business"},
		{Value: "other", Label: "Other"},
	}
}

func encodeApplication(app Application) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct {
		name  string
		value string
	}{
		{"jobId", app.JobID},
		{"firstName", app.FirstName},
		{"lastName", app.LastName},
		{"email", app.Email},
		{"phone", app.Phone},
		{"linkedin", app.LinkedIn},
		{"portfolio", app.Portfolio},
		{"currentCompany", app.CurrentCompany},
		{"currentRole", app.CurrentRole},
		{"noticePeriod", app.NoticePeriod},
		{"expectedSalary", app.ExpectedSalary},
		{"coverLetter", app.CoverLetter},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}
	if app.YearsOfExperience != nil {
		if err := w.WriteField("yearsOfExperience", strconv.Itoa(*app.YearsOfExperience)); err != nil {
			return nil, "", err
		}
	}

	part, err := createResumePart(w, app.Resume)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, app.Resume.Content); err != nil {
		return nil, "", fmt.Errorf("read resume: %w", err)
	}

	if app.Source != "" {
		if err := w.WriteField("source", app.Source); err != nil {
			return nil, "", err
		}
	}
	if app.Consent != nil {
		if err := w.WriteField("consent", strconv.FormatBool(*app.Consent)); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func createResumePart(w *multipart.Writer, resume *ResumeFile) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="resume"; filename="%s"`, quoteEscaper.Replace(resume.FileName)))
	h.Set("Content-Type", resume.ContentType)
	return w.CreatePart(h)
}

func (c *httpCareersClient) postForResult(ctx context.Context, path string, body io.Reader, contentType string) (*SubmitResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, c.baseURL+path); err != nil {
		return nil, err
	}

	var out SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode careers response: %w", err)
	}
	return &out, nil
}

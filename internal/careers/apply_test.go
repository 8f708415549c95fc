package careers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
)

func validResume() *ResumeFile {
	return &ResumeFile{
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        1 << 20,
		Content:     strings.NewReader("%PDF-1.4 fake"),
	}
}

func validApplication() Application {
	yoe := 4
	consent := true
	return Application{
		JobID:             "job-1",
		FirstName:         "Asha",
		LastName:          "Rao",
		Email:             "asha@example.com",
		Phone:             "+91 98765 43210",
		YearsOfExperience: &yoe,
		Resume:            validResume(),
		Source:            "website",
		Consent:           &consent,
	}
}

func TestValidateResume(t *testing.T) {
	cases := []struct {
		name   string
		resume *ResumeFile
		want   error
	}{
		{"nil file", nil, ErrResumeMissing},
		{"nil content", &ResumeFile{FileName: "r.pdf", ContentType: "application/pdf"}, ErrResumeMissing},
		{"too large", &ResumeFile{FileName: "r.pdf", ContentType: "application/pdf", Size: 11 << 20, Content: strings.NewReader("x")}, ErrResumeTooLarge},
		{"bad type", &ResumeFile{FileName: "r.png", ContentType: "image/png", Size: 100, Content: strings.NewReader("x")}, ErrResumeType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateResume(tc.resume)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Field != "resume" {
				t.Fatalf("err = %v, want ValidationError on resume", err)
			}
		})
	}

	if err := ValidateResume(validResume()); err != nil {
		t.Fatalf("valid resume rejected: %v", err)
	}
	exact := validResume()
	exact.Size = MaxResumeSize
	if err := ValidateResume(exact); err != nil {
		t.Fatalf("resume at exact limit rejected: %v", err)
	}
}

func TestSubmitApplicationValidatesBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(SubmitResult{Success: true})
	})

	app := validApplication()
	app.Email = ""
	_, err := client.SubmitApplication(context.Background(), app)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "email" {
		t.Fatalf("err = %v, want ValidationError on email", err)
	}

	app = validApplication()
	app.Resume.Size = 11 << 20
	if _, err := client.SubmitApplication(context.Background(), app); !errors.Is(err, ErrResumeTooLarge) {
		t.Fatalf("err = %v, want ErrResumeTooLarge", err)
	}

	if n := hits.Load(); n != 0 {
		t.Fatalf("server was hit %d times during validation failures", n)
	}
}

func TestSubmitApplicationMultipartEncoding(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/swipe11/applications" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(MaxResumeSize); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}

		for field, want := range map[string]string{
			"jobId":             "job-1",
			"firstName":         "Asha",
			"lastName":          "Rao",
			"email":             "asha@example.com",
			"yearsOfExperience": "4",
			"source":            "website",
			"consent":           "true",
		} {
			if got := r.FormValue(field); got != want {
				t.Errorf("field %s = %q, want %q", field, got, want)
			}
		}

		// Empty optional fields must be omitted, not sent blank.
		for _, field := range []string{"linkedin", "portfolio", "coverLetter", "currentCompany"} {
			if _, ok := r.MultipartForm.Value[field]; ok {
				t.Errorf("empty field %s was transmitted", field)
			}
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			t.Fatalf("resume part: %v", err)
		}
		defer file.Close()
		if header.Filename != "resume.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("resume content type = %q", ct)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "%PDF-1.4 fake" {
			t.Errorf("resume content = %q", content)
		}

		_ = json.NewEncoder(w).Encode(SubmitResult{
			Success:       true,
			Message:       "Application received",
			ApplicationID: "app-77",
			JobTitle:      "Growth Lead",
		})
	})

	res, err := client.SubmitApplication(context.Background(), validApplication())
	if err != nil {
		t.Fatalf("SubmitApplication: %v", err)
	}
	if !res.Success || res.ApplicationID != "app-77" || res.Message != "Application received" {
		t.Fatalf("result = %+v", res)
	}
}

func TestSubmitApplicationAPIError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"You have already applied for this position"}`))
	})

	_, err := client.SubmitApplication(context.Background(), validApplication())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Message != "You have already applied for this position" {
		t.Errorf("message = %q, want body message verbatim", apiErr.Message)
	}
}

func TestSubmitCreatorApplication(t *testing.T) {
	var got CreatorApplication
	var rawKeys map[string]any
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/swipe11/creators/apply" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		_ = json.Unmarshal(raw, &rawKeys)
		_ = json.NewEncoder(w).Encode(SubmitResult{Success: true, Message: "Thanks for applying"})
	})

	res, err := client.SubmitCreatorApplication(context.Background(), CreatorApplication{
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		Domain:      "finance",
		InstagramID: "@asha",
		Source:      "website",
	})
	if err != nil {
		t.Fatalf("SubmitCreatorApplication: %v", err)
	}
	if !res.Success || res.Message != "Thanks for applying" {
		t.Fatalf("result = %+v", res)
	}
	if got.FullName != "Asha Rao" || got.Domain != "finance" || got.InstagramID != "@asha" {
		t.Fatalf("payload = %+v", got)
	}
	for _, key := range []string{"linkedinProfile", "twitterProfile", "youtubeLink"} {
		if _, ok := rawKeys[key]; ok {
			t.Errorf("empty field %s was transmitted", key)
		}
	}
}

func TestSubmitCreatorApplicationRequiredFields(t *testing.T) {
	var hits atomic.Int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	_, err := client.SubmitCreatorApplication(context.Background(), CreatorApplication{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "domain" {
		t.Fatalf("err = %v, want ValidationError on domain", err)
	}
	if hits.Load() != 0 {
		t.Fatal("server was hit during validation failure")
	}
}

func TestFetchCreatorDomains(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/swipe11/creators/apply" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"domains":[{"value":"finance","label":"Finance"},{"value":"gaming","label":"Gaming"}]}`))
	})

	got, err := client.FetchCreatorDomains(context.Background())
	if err != nil {
		t.Fatalf("FetchCreatorDomains: %v", err)
	}
	if len(got) != 2 || got[1].Value != "gaming" {
		t.Fatalf("domains = %v", got)
	}
}

func TestFetchCreatorDomainsFallsBack(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty list", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"domains":[]}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, client := newTestServer(t, tc.handler)
			got, err := client.FetchCreatorDomains(context.Background())
			if err != nil {
				t.Fatalf("FetchCreatorDomains: %v", err)
			}
			want := DefaultCreatorDomains()
			if len(got) != len(want) {
				t.Fatalf("got %d domains, want %d defaults", len(got), len(want))
			}
			if got[0].Value != "finance" || got[len(got)-1].Value != "other" {
				t.Fatalf("fallback domains = %v", got)
			}
		})
	}
}

func TestDefaultCreatorDomainsShape(t *testing.T) {
	domains := DefaultCreatorDomains()
	if len(domains) != 12 {
		t.Fatalf("got %d default domains, want 12", len(domains))
	}
	for _, d := range domains {
		if d.Value == "" || d.Label == "" {
			t.Errorf("incomplete domain option %+v", d)
		}
	}
}

package careers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "test-token", testLogger())
}

func TestNewClientEmptyBaseURL(t *testing.T) {
	if c := NewClient("", "token", testLogger()); c != nil {
		t.Fatalf("NewClient with empty base URL = %v, want nil", c)
	}
	if c := NewClient("   ", "token", testLogger()); c != nil {
		t.Fatalf("NewClient with blank base URL = %v, want nil", c)
	}
}

func TestListJobsQuerySerialization(t *testing.T) {
	var gotQuery map[string][]string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/swipe11/jobs" {
			t.Errorf("path = %q, want /api/swipe11/jobs", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(jobListEnvelope{Success: true, Data: []Job{{ID: "1"}}})
	})

	_, err := client.ListJobs(context.Background(), Filters{
		Department:         "Engineering",
		Location:           AllLocations,
		EmploymentType:     "Full Time",
		Page:               2,
		Limit:              50,
		IncludeDepartments: true,
	})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}

	if got := gotQuery["department"]; len(got) != 1 || got[0] != "Engineering" {
		t.Errorf("department = %v, want [Engineering]", got)
	}
	if _, ok := gotQuery["location"]; ok {
		t.Error("sentinel location was serialized")
	}
	if got := gotQuery["employmentType"]; len(got) != 1 || got[0] != "full-time" {
		t.Errorf("employmentType = %v, want [full-time]", got)
	}
	if got := gotQuery["page"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("page = %v, want [2]", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "50" {
		t.Errorf("limit = %v, want [50]", got)
	}
	if got := gotQuery["includeDepartments"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("includeDepartments = %v, want [true]", got)
	}
}

func TestListJobsOmitsDefaultFilters(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.RawQuery; q != "" {
			t.Errorf("query = %q, want empty", q)
		}
		_ = json.NewEncoder(w).Encode(jobListEnvelope{Success: true})
	})

	if _, err := client.ListJobs(context.Background(), Filters{
		Department:     AllDepartments,
		EmploymentType: AllTypes,
	}); err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
}

func TestRequestHeaders(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Cache-Control"); got != "no-store" {
			t.Errorf("Cache-Control = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		_ = json.NewEncoder(w).Encode(jobListEnvelope{Success: true})
	})

	if _, err := client.ListJobs(context.Background(), Filters{}); err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
}

func TestGetJobBySlugNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Job not found"}`))
	})

	_, err := client.GetJobBySlug(context.Background(), "no-such-role")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetJobBySlugNilDataIsNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})

	_, err := client.GetJobBySlug(context.Background(), "ghost-role")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetJobBySlugEscapesPath(t *testing.T) {
	var gotPath string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(jobDetailEnvelope{Success: true, Data: &JobDetail{Job: Job{ID: "1"}}})
	})

	if _, err := client.GetJobBySlug(context.Background(), "growth lead"); err != nil {
		t.Fatalf("GetJobBySlug: %v", err)
	}
	if gotPath != "/api/swipe11/jobs/growth%20lead" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestAPIErrorCarriesBodyMessage(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":false,"message":"Board temporarily offline"}`))
	})

	_, err := client.ListJobs(context.Background(), Filters{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", apiErr.StatusCode)
	}
	if apiErr.Message != "Board temporarily offline" {
		t.Errorf("message = %q, want body message verbatim", apiErr.Message)
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(srv.URL, "", testLogger())
	srv.Close()

	_, err := client.ListJobs(context.Background(), Filters{})
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want *NetworkError", err)
	}
	if netErr.Unwrap() == nil {
		t.Error("NetworkError did not wrap the transport error")
	}
}

func TestListDepartments(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/swipe11/jobs/departments" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(departmentsEnvelope{
			Success: true,
			Data:    []Department{{Name: "Marketing", Count: 3}, {Name: "Media", Count: 1}},
			Total:   2,
		})
	})

	got, err := client.ListDepartments(context.Background())
	if err != nil {
		t.Fatalf("ListDepartments: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Marketing" || got[0].Count != 3 {
		t.Fatalf("departments = %v", got)
	}
}

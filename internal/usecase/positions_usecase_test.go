package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"testing"

	"swipe11-web/internal/careers"
)

// fakeCareersClient implements careers.Client with canned responses.
type fakeCareersClient struct {
	jobs        []careers.Job
	departments []careers.Department
	detail      *careers.JobDetail
	domains     []careers.DomainOption
	submit      *careers.SubmitResult

	listErr    error
	deptErr    error
	detailErr  error
	submitErr  error
	domainsErr error

	lastFilters     careers.Filters
	lastApplication careers.Application
	lastCreator     careers.CreatorApplication
}

func (f *fakeCareersClient) ListJobs(_ context.Context, filters careers.Filters) (*careers.JobList, error) {
	f.lastFilters = filters
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &careers.JobList{Jobs: f.jobs}, nil
}

func (f *fakeCareersClient) GetJobBySlug(_ context.Context, slug string) (*careers.JobDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeCareersClient) ListDepartments(_ context.Context) ([]careers.Department, error) {
	if f.deptErr != nil {
		return nil, f.deptErr
	}
	return f.departments, nil
}

func (f *fakeCareersClient) SubmitApplication(_ context.Context, app careers.Application) (*careers.SubmitResult, error) {
	f.lastApplication = app
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submit, nil
}

func (f *fakeCareersClient) SubmitCreatorApplication(_ context.Context, app careers.CreatorApplication) (*careers.SubmitResult, error) {
	f.lastCreator = app
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submit, nil
}

func (f *fakeCareersClient) FetchCreatorDomains(_ context.Context) ([]careers.DomainOption, error) {
	if f.domainsErr != nil {
		return nil, f.domainsErr
	}
	return f.domains, nil
}

var _ careers.Client = (*fakeCareersClient)(nil)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestOpenPositionsGroupsAndOptions(t *testing.T) {
	fake := &fakeCareersClient{
		jobs: []careers.Job{
			{ID: "1", Department: "Marketing", Location: "Mumbai, MH", EmploymentType: careers.EmploymentFullTime},
			{ID: "2", Department: "Analytics", Location: "Remote", EmploymentType: careers.EmploymentContract},
			{ID: "3", Department: "Marketing", Location: "Remote", EmploymentType: careers.EmploymentInternship},
		},
		departments: []careers.Department{{Name: "Marketing", Count: 2}, {Name: "Analytics", Count: 1}},
	}

	u := NewPositionsUsecase(fake, quietLogger())
	got, err := u.OpenPositions(context.Background(), careers.FilterSet{})
	if err != nil {
		t.Fatalf("OpenPositions: %v", err)
	}

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if len(got.Groups) != 2 || got.Groups[0].Name != "Marketing" || got.Groups[1].Name != "Analytics" {
		t.Errorf("Groups = %v", got.Groups)
	}
	if want := []string{careers.AllDepartments, "Marketing", "Analytics"}; !reflect.DeepEqual(got.DepartmentOptions, want) {
		t.Errorf("DepartmentOptions = %v, want %v", got.DepartmentOptions, want)
	}
	if want := []string{careers.AllLocations, "Mumbai, MH", "Remote"}; !reflect.DeepEqual(got.LocationOptions, want) {
		t.Errorf("LocationOptions = %v, want %v", got.LocationOptions, want)
	}
	if len(got.TypeOptions) == 0 || got.TypeOptions[0] != careers.AllTypes {
		t.Errorf("TypeOptions = %v", got.TypeOptions)
	}
	if fake.lastFilters.Limit != 100 {
		t.Errorf("fetch limit = %d, want 100", fake.lastFilters.Limit)
	}
}

func TestOpenPositionsFilterNarrowsGroupsNotOptions(t *testing.T) {
	fake := &fakeCareersClient{
		jobs: []careers.Job{
			{ID: "1", Department: "Marketing", Location: "Mumbai, MH", EmploymentType: careers.EmploymentFullTime},
			{ID: "2", Department: "Analytics", Location: "Remote", EmploymentType: careers.EmploymentFullTime},
		},
		departments: []careers.Department{{Name: "Marketing", Count: 1}, {Name: "Analytics", Count: 1}},
	}

	u := NewPositionsUsecase(fake, quietLogger())
	got, err := u.OpenPositions(context.Background(), careers.FilterSet{Department: "Marketing"})
	if err != nil {
		t.Fatalf("OpenPositions: %v", err)
	}

	if got.Total != 1 || len(got.Groups) != 1 || got.Groups[0].Name != "Marketing" {
		t.Errorf("filtered result = %+v", got)
	}
	// Location options come from the full list, not the filtered one.
	if want := []string{careers.AllLocations, "Mumbai, MH", "Remote"}; !reflect.DeepEqual(got.LocationOptions, want) {
		t.Errorf("LocationOptions = %v, want %v", got.LocationOptions, want)
	}
}

func TestOpenPositionsPropagatesFetchError(t *testing.T) {
	wantErr := errors.New("upstream down")
	fake := &fakeCareersClient{deptErr: wantErr}

	u := NewPositionsUsecase(fake, quietLogger())
	if _, err := u.OpenPositions(context.Background(), careers.FilterSet{}); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/richtext"
)

func TestJobPageRendersSections(t *testing.T) {
	fake := &fakeCareersClient{
		detail: &careers.JobDetail{
			Job: careers.Job{ID: "1", Slug: "growth-lead", Title: "Growth Lead"},
			Description: &richtext.Document{Root: &richtext.Node{
				Type: richtext.NodeParagraph,
				Children: []*richtext.Node{
					{Type: richtext.NodeText, Text: "Own paid growth", Bold: true},
				},
			}},
		},
	}

	u := NewJobPageUsecase(fake, quietLogger())
	page, err := u.JobPage(context.Background(), "growth-lead")
	if err != nil {
		t.Fatalf("JobPage: %v", err)
	}

	if page.Job.Title != "Growth Lead" {
		t.Errorf("Title = %q", page.Job.Title)
	}
	if want := "<p><strong>Own paid growth</strong></p>"; page.DescriptionHTML != want {
		t.Errorf("DescriptionHTML = %q, want %q", page.DescriptionHTML, want)
	}
	if page.AboutUsHTML != "" || page.BenefitsHTML != "" {
		t.Errorf("absent sections rendered: about=%q benefits=%q", page.AboutUsHTML, page.BenefitsHTML)
	}
}

func TestJobPagePropagatesNotFound(t *testing.T) {
	fake := &fakeCareersClient{detailErr: careers.ErrNotFound}

	u := NewJobPageUsecase(fake, quietLogger())
	if _, err := u.JobPage(context.Background(), "ghost"); !errors.Is(err, careers.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestApplyDefaultsSourceAndConsent(t *testing.T) {
	fake := &fakeCareersClient{submit: &careers.SubmitResult{Success: true}}

	u := NewJobPageUsecase(fake, quietLogger())
	_, err := u.Apply(context.Background(), careers.Application{
		JobID:     "1",
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Resume: &careers.ResumeFile{
			FileName:    "r.pdf",
			ContentType: "application/pdf",
			Size:        100,
			Content:     strings.NewReader("x"),
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if fake.lastApplication.Source != "website" {
		t.Errorf("Source = %q, want website", fake.lastApplication.Source)
	}
	if fake.lastApplication.Consent == nil || !*fake.lastApplication.Consent {
		t.Errorf("Consent = %v, want true", fake.lastApplication.Consent)
	}
}

func TestApplyKeepsExplicitSource(t *testing.T) {
	fake := &fakeCareersClient{submit: &careers.SubmitResult{Success: true}}

	u := NewJobPageUsecase(fake, quietLogger())
	if _, err := u.Apply(context.Background(), careers.Application{
		JobID:     "1",
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Source:    "referral",
		Resume: &careers.ResumeFile{
			FileName:    "r.pdf",
			ContentType: "application/pdf",
			Size:        100,
			Content:     strings.NewReader("x"),
		},
	}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if fake.lastApplication.Source != "referral" {
		t.Errorf("Source = %q, want referral", fake.lastApplication.Source)
	}
}

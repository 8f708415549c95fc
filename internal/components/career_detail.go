package components

import (
	"fmt"
	"net/url"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/usecase"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ApplicationFormView is the form's render state. Entered values survive a
// failed submit so the applicant can correct and resubmit; the file input
// always resets, browsers do not allow refilling it.
type ApplicationFormView struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	LinkedIn    string
	Portfolio   string
	CoverLetter string

	Error     string
	Submitted bool
	Message   string
}

func JobDetailPage(page *usecase.JobPage, form ApplicationFormView) g.Node {
	job := page.Job
	return Layout(
		PageConfig{
			Title:       job.Title + " — Careers at Swipe11",
			Description: job.Intro,
		},
		jobHeader(job),
		Section(
			Class("px-5 md:px-10 lg:px-20 py-12 md:py-16 max-w-[1400px] mx-auto"),
			Div(
				Class("max-w-[950px] flex flex-col gap-12"),
				richSection("About the role", page.DescriptionHTML),
				richSection("About us", page.AboutUsHTML),
				richSection("What you'll do", page.ResponsibilitiesHTML),
				richSection("What we're looking for", page.RequirementsHTML),
				richSection("Benefits", page.BenefitsHTML),
				applicationSection(job, form),
			),
		),
	)
}

func jobHeader(job *careers.JobDetail) g.Node {
	salary := formatSalary(job.SalaryRange)
	return Section(
		Class("bg-[#ededed] px-5 md:px-10 lg:px-20 py-8 md:py-10"),
		Div(
			Class("max-w-[1400px] mx-auto flex flex-col gap-4"),
			A(
				Href("/careers"),
				Class("inline-flex items-center gap-2 text-black/60 hover:text-black text-sm font-medium"),
				g.Text("← All positions"),
			),
			Div(
				Class("flex flex-col md:flex-row md:items-start md:justify-between gap-4"),
				Div(
					Class("flex flex-col gap-3"),
					H1(Class("font-bold text-[#1e1e1e] text-2xl md:text-[32px] leading-tight"), g.Text(job.Title)),
					Div(
						Class("flex flex-wrap gap-4 items-center text-sm text-black/75 font-medium"),
						Span(g.Text(careers.FormatEmploymentType(string(job.EmploymentType)))),
						Span(g.Text(job.Location)),
						g.If(job.WorkMode != "", Span(g.Text(careers.FormatEmploymentType(string(job.WorkMode))))),
						g.If(salary != "", Span(g.Text(salary))),
					),
				),
				A(
					Href("#apply"),
					Class("bg-[#2924ff] text-white font-semibold px-6 py-2.5 rounded self-start hover:bg-[#2924ff]/90 transition-colors"),
					g.Text("Apply now"),
				),
			),
		),
	)
}

func formatSalary(r *careers.SalaryRange) string {
	if r == nil {
		return ""
	}
	currency := r.Currency
	if currency == "" {
		currency = "INR"
	}
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%s %d–%d / %s", currency, *r.Min, *r.Max, salaryPeriod(r))
	case r.Min != nil:
		return fmt.Sprintf("%s %d+ / %s", currency, *r.Min, salaryPeriod(r))
	case r.Max != nil:
		return fmt.Sprintf("up to %s %d / %s", currency, *r.Max, salaryPeriod(r))
	default:
		return ""
	}
}

func salaryPeriod(r *careers.SalaryRange) string {
	if r.Period == "" {
		return "year"
	}
	return r.Period
}

// richSection renders one pre-converted rich-text block; sections without
// content collapse to nothing.
func richSection(title, html string) g.Node {
	if html == "" {
		return nil
	}
	return Div(
		Class("flex flex-col gap-3"),
		H2(Class("font-semibold text-xl md:text-2xl"), g.Text(title)),
		Div(Class("prose prose-neutral max-w-none text-black/75"), g.Raw(html)),
	)
}

func applicationSection(job *careers.JobDetail, form ApplicationFormView) g.Node {
	if form.Submitted {
		message := form.Message
		if message == "" {
			message = "Application submitted. We'll be in touch soon!"
		}
		return Div(
			ID("apply"),
			Class("border border-green-200 bg-green-50 rounded-2xl p-8 flex flex-col gap-2"),
			H2(Class("font-semibold text-xl"), g.Text("Thank you for applying")),
			P(Class("text-black/75"), g.Text(message)),
		)
	}

	slug := job.Slug
	if slug == "" {
		slug = job.ID
	}

	return Div(
		ID("apply"),
		Class("flex flex-col gap-6"),
		H2(Class("font-semibold text-xl md:text-2xl"), g.Text("Apply for this position")),
		g.If(form.Error != "", Div(
			Class("border border-red-200 bg-red-50 text-red-700 rounded-lg px-4 py-3 text-sm"),
			g.Text(form.Error),
		)),
		Form(
			Method("post"),
			Action("/careers/"+url.PathEscape(slug)+"/apply"),
			EncType("multipart/form-data"),
			Class("grid md:grid-cols-2 gap-5"),
			formField("firstName", "First name", "text", form.FirstName, true),
			formField("lastName", "Last name", "text", form.LastName, true),
			formField("email", "Email", "email", form.Email, true),
			formField("phone", "Phone", "tel", form.Phone, false),
			formField("linkedin", "LinkedIn", "url", form.LinkedIn, false),
			formField("portfolio", "Portfolio", "url", form.Portfolio, false),
			Div(
				Class("md:col-span-2 flex flex-col gap-1.5"),
				Label(For("coverLetter"), Class("font-semibold text-sm"), g.Text("Why do you want to join?")),
				Textarea(
					ID("coverLetter"), Name("coverLetter"), Rows("5"),
					Class("border border-black/15 rounded-lg px-3 py-2"),
					g.Text(form.CoverLetter),
				),
			),
			Div(
				Class("md:col-span-2 flex flex-col gap-1.5"),
				Label(For("resume"), Class("font-semibold text-sm"), g.Text("Resume (PDF or Word, max 10 MB)")),
				Input(
					ID("resume"), Name("resume"), Type("file"),
					Accept(".pdf,.doc,.docx"), Required(),
					Class("border border-black/15 rounded-lg px-3 py-2"),
				),
			),
			Div(
				Class("md:col-span-2"),
				Button(
					Type("submit"),
					Class("bg-[#2924ff] text-white font-semibold px-8 py-3 rounded-lg hover:bg-[#2924ff]/90 transition-colors"),
					g.Text("Submit application"),
				),
			),
		),
	)
}

func formField(name, label, inputType, value string, required bool) g.Node {
	return Div(
		Class("flex flex-col gap-1.5"),
		Label(For(name), Class("font-semibold text-sm"), g.Text(label)),
		Input(
			ID(name), Name(name), Type(inputType), Value(value),
			g.If(required, Required()),
			Class("border border-black/15 rounded-lg px-3 py-2"),
		),
	)
}

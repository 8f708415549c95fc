package components

import (
	"fmt"
	"net/url"

	"swipe11-web/internal/careers"
	"swipe11-web/internal/content"
	"swipe11-web/internal/usecase"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CareersPage(data *usecase.OpenPositions) g.Node {
	return Layout(
		PageConfig{
			Title:       "Careers — Swipe11",
			Description: "Open positions at Swipe11 across strategy, creative, media, and analytics.",
		},
		careersHero(),
		perksSection(),
		openPositionsSection(data),
	)
}

// CareersErrorPage is the retry-capable error view for the careers board.
func CareersErrorPage(retryHref string) g.Node {
	return Layout(
		PageConfig{Title: "Careers — Swipe11", Description: "Open positions at Swipe11."},
		errorState(
			"Failed to load positions",
			"We encountered an error while loading job positions. Please try again.",
			retryHref,
		),
	)
}

func careersHero() g.Node {
	return Section(
		Class("bg-[#ededed] px-5 md:px-10 lg:px-20 py-16 md:py-24"),
		Div(
			Class("max-w-[1400px] mx-auto flex flex-col gap-4"),
			H1(
				Class("text-[#060606] text-4xl md:text-[56px] font-bold tracking-wide"),
				g.Text("Do the best work of your career."),
			),
			P(
				Class("text-black/60 text-lg max-w-[640px]"),
				g.Text("Join a team that ships real growth for real brands, and grows its people just as deliberately."),
			),
		),
	)
}

func perksSection() g.Node {
	return Section(
		Class("px-5 md:px-10 lg:px-20 py-12 max-w-[1400px] mx-auto"),
		Div(
			Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
			g.Map(content.CareerPerks, func(p content.Perk) g.Node {
				return Div(
					Class("border border-black/10 rounded-2xl p-6 flex flex-col gap-2"),
					Span(Class("font-semibold"), g.Text(p.Title)),
					P(Class("text-black/60 text-sm"), g.Text(p.Description)),
				)
			}),
		),
	)
}

func openPositionsSection(data *usecase.OpenPositions) g.Node {
	return Section(
		ID("positions"),
		Class("py-12 md:py-20 px-5 md:px-10 lg:px-20 max-w-[1400px] mx-auto flex flex-col gap-10"),
		H2(
			Class("text-[#060606] text-3xl sm:text-4xl md:text-[48px] font-bold tracking-wide"),
			g.Text(fmt.Sprintf("Open positions (%d)", data.Total)),
		),
		filterForm(data),
		g.If(data.Total == 0, emptyState(data.Filters.Active())),
		g.If(data.Total > 0, Div(
			Class("flex flex-col gap-12"),
			g.Map(data.Groups, departmentSection),
		)),
	)
}

func filterForm(data *usecase.OpenPositions) g.Node {
	return Form(
		Method("get"),
		Action("/careers"),
		Class("flex flex-col sm:flex-row gap-4 sm:gap-6"),
		filterSelect("department", data.DepartmentOptions, data.Filters.Department),
		filterSelect("location", data.LocationOptions, data.Filters.Location),
		filterSelect("type", data.TypeOptions, data.Filters.EmploymentType),
		Button(
			Type("submit"),
			Class("bg-[#298bff] text-white font-semibold px-6 rounded-lg h-[50px] hover:bg-[#298bff]/90 transition-colors"),
			g.Text("Filter"),
		),
	)
}

func filterSelect(name string, options []string, selected string) g.Node {
	return Select(
		Name(name),
		Class("bg-white/75 border border-black/10 h-[50px] px-3 rounded-lg min-w-[200px] font-semibold text-sm text-black/75"),
		g.Map(options, func(opt string) g.Node {
			return Option(
				Value(opt),
				g.If(opt == selected, Selected()),
				g.Text(opt),
			)
		}),
	)
}

func departmentSection(group careers.DepartmentGroup) g.Node {
	return Div(
		Class("flex flex-col gap-5"),
		H3(
			Class("font-semibold text-[#1e1e1e] text-xl md:text-2xl"),
			g.Text(fmt.Sprintf("%s (%d)", group.Name, len(group.Jobs))),
		),
		Div(
			Class("flex flex-col gap-5"),
			g.Map(group.Jobs, jobCard),
		),
	)
}

func jobCard(job careers.Job) g.Node {
	return Div(
		Class("border border-black/20 flex flex-col gap-3 px-4 md:px-6 py-4 md:py-5 rounded-2xl hover:border-black/30 hover:shadow-sm transition-all"),
		Div(
			Class("flex flex-col sm:flex-row sm:items-center sm:justify-between gap-1 sm:gap-4"),
			H4(Class("font-semibold text-[#1e1e1e] text-base md:text-lg"), g.Text(job.Title)),
			Span(Class("font-semibold text-sm text-black/75 whitespace-nowrap"), g.Text(job.Location)),
		),
		Div(
			Class("flex items-center justify-between"),
			Span(
				Class("font-semibold text-sm text-black/75"),
				g.Text(careers.FormatEmploymentType(string(job.EmploymentType))),
			),
			A(
				Href("/careers/"+url.PathEscape(job.Slug)),
				Class("font-semibold text-sm text-[#298bff] uppercase tracking-wide hover:underline"),
				g.Text("Apply Now"),
			),
		),
	)
}

func emptyState(hasFilters bool) g.Node {
	title := "No open positions"
	body := "We don't have any open positions at the moment. Check back soon or follow us for updates!"
	if hasFilters {
		title = "No positions match your filters"
		body = "Try adjusting your filters or clearing them to see all available positions."
	}

	return Div(
		Class("flex flex-col items-center justify-center py-16 text-center gap-4"),
		H3(Class("text-xl md:text-2xl font-semibold"), g.Text(title)),
		P(Class("text-black/60 max-w-md"), g.Text(body)),
		g.If(hasFilters, A(
			Href("/careers"),
			Class("text-[#298bff] font-semibold hover:underline"),
			g.Text("Clear all filters"),
		)),
	)
}

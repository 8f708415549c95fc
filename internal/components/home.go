package components

import (
	"swipe11-web/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func HomePage() g.Node {
	return Layout(
		PageConfig{
			Title:       "Swipe11 — Growth Marketing Agency",
			Description: "Swipe11 partners with BFSI brands to ship measurable growth: campaigns, creators, launches, and lifecycle programmes.",
		},
		hero(),
		metricsSection(),
		servicesSection(),
		whyChooseSection(),
		coverageSection(),
		readyToElevateSection(),
	)
}

func hero() g.Node {
	return Section(
		ID("hero"),
		Class("px-5 md:px-10 lg:px-20 py-20 md:py-28 max-w-[1400px] mx-auto"),
		Div(
			Class("max-w-[860px] flex flex-col gap-6"),
			H1(
				Class("text-[#060606] text-4xl sm:text-5xl md:text-[64px] font-bold leading-tight tracking-wide"),
				g.Text("Growth programmes that move the revenue needle."),
			),
			P(
				Class("text-black/60 text-lg md:text-xl max-w-[640px]"),
				g.Text("From fintech unicorns to nationalised banks, we design, launch, and scale marketing that compounds."),
			),
			Div(
				Class("flex flex-wrap gap-4 mt-2"),
				A(
					Href("/#services"),
					Class("bg-[#2924ff] text-white font-semibold px-6 py-3 rounded-lg hover:bg-[#2924ff]/90 transition-colors"),
					g.Text("Explore services"),
				),
				A(
					Href("/creators"),
					Class("text-[#2924ff] font-semibold px-6 py-3 hover:underline"),
					g.Text("Partner as a creator"),
				),
			),
		),
	)
}

func metricsSection() g.Node {
	return Section(
		Class("px-5 md:px-10 lg:px-20 py-12 max-w-[1400px] mx-auto"),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-6"),
			g.Map(content.MetricCards, func(m content.MetricCard) g.Node {
				return Div(
					Class("border border-black/10 rounded-2xl p-6 flex flex-col gap-2"),
					Span(Class("text-3xl md:text-4xl font-bold text-[#060606]"), g.Text(m.Value)),
					Span(Class("text-sm text-black/60 font-medium"), g.Text(m.Label)),
				)
			}),
		),
	)
}

func servicesSection() g.Node {
	return Section(
		ID("services"),
		Class("px-5 md:px-10 lg:px-20 py-16 md:py-24 max-w-[1400px] mx-auto flex flex-col gap-10"),
		sectionHeading("What we do"),
		Div(
			Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
			g.Map(content.Services, func(s content.Service) g.Node {
				return Div(
					Class("border border-black/15 rounded-2xl p-6 flex flex-col gap-4 hover:border-black/30 hover:shadow-sm transition-all"),
					H3(Class("font-semibold text-xl text-[#1e1e1e]"), g.Text(s.Title)),
					P(Class("text-black/60 text-sm"), g.Text(s.Description)),
					Ul(
						Class("flex flex-col gap-2 mt-auto"),
						g.Map(s.Bullets, func(b string) g.Node {
							return Li(Class("text-sm text-black/75 pl-4 relative before:content-['—'] before:absolute before:left-0"), g.Text(b))
						}),
					),
				)
			}),
		),
	)
}

func whyChooseSection() g.Node {
	return Section(
		Class("px-5 md:px-10 lg:px-20 py-16 max-w-[1400px] mx-auto flex flex-col gap-10"),
		sectionHeading("Why teams choose us"),
		Div(
			Class("grid md:grid-cols-3 gap-6"),
			g.Map(content.Differentiators, func(d content.Differentiator) g.Node {
				return Div(
					Class("flex flex-col gap-3"),
					H3(Class("font-semibold text-lg"), g.Text(d.Title)),
					P(Class("text-black/60 text-sm"), g.Text(d.Description)),
				)
			}),
		),
		Div(
			Class("grid grid-cols-3 gap-6 border-t border-black/10 pt-8"),
			g.Map(content.MethodStats, func(s content.MethodStat) g.Node {
				return Div(
					Class("flex flex-col gap-1"),
					Span(Class("text-2xl md:text-3xl font-bold"), g.Text(s.Stat)),
					Span(Class("text-sm text-black/60"), g.Text(s.Label)),
				)
			}),
		),
	)
}

func coverageSection() g.Node {
	return Section(
		Class("px-5 md:px-10 lg:px-20 py-16 max-w-[1400px] mx-auto flex flex-col gap-10"),
		sectionHeading("Global footprint"),
		Div(
			Class("grid md:grid-cols-3 gap-6"),
			g.Map(content.Coverage, func(c content.CoverageRegion) g.Node {
				return Div(
					Class("border border-black/10 rounded-2xl p-6 flex flex-col gap-2"),
					Span(Class("font-semibold text-lg"), g.Text(c.Country)),
					P(Class("text-black/60 text-sm"), g.Text(c.Blurb)),
				)
			}),
		),
	)
}

func readyToElevateSection() g.Node {
	return Section(
		ID("cta"),
		Class("px-5 md:px-10 lg:px-20 py-16 md:py-24 max-w-[1400px] mx-auto"),
		Div(
			Class("bg-[#060606] text-white rounded-3xl px-8 md:px-16 py-12 md:py-20 flex flex-col gap-6"),
			H2(Class("text-3xl md:text-5xl font-bold tracking-wide"), g.Text("Ready to elevate your growth?")),
			Div(
				Class("flex flex-wrap gap-3"),
				g.Map(content.CTATags, func(t string) g.Node {
					return Span(Class("border border-white/30 rounded-full px-4 py-1.5 text-sm"), g.Text(t))
				}),
			),
			Div(
				A(
					Href("/careers"),
					Class("inline-block bg-white text-[#060606] font-semibold px-6 py-3 rounded-lg hover:bg-white/90 transition-colors"),
					g.Text("Work with us"),
				),
			),
		),
	)
}

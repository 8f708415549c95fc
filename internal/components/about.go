package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func AboutPage() g.Node {
	return Layout(
		PageConfig{
			Title:       "About — Swipe11",
			Description: "The story, people, and principles behind Swipe11.",
		},
		Section(
			Class("px-5 md:px-10 lg:px-20 py-20 max-w-[1400px] mx-auto flex flex-col gap-6"),
			H1(
				Class("text-[#060606] text-4xl md:text-[56px] font-bold tracking-wide"),
				g.Text("We unlock growth for ambitious brands."),
			),
			P(
				Class("text-black/60 text-lg max-w-[720px]"),
				g.Text("Swipe11 started as a two-person growth lab and became the partner of record for banks, fintechs, and consumer brands across three continents."),
			),
		),
		Section(
			Class("px-5 md:px-10 lg:px-20 py-12 max-w-[1400px] mx-auto flex flex-col gap-8"),
			sectionHeading("Our story"),
			Div(
				Class("grid md:grid-cols-2 gap-8 text-black/75"),
				P(g.Text("We believe growth is a system, not a stunt. Every engagement pairs audience research with rapid experimentation, so the campaigns that ship are the campaigns that convert.")),
				P(g.Text("Today our squads span strategy, creative, media, and analytics, working as one embedded team with every client. The scoreboard is always revenue, never vanity metrics.")),
			),
		),
		Section(
			Class("px-5 md:px-10 lg:px-20 py-12 max-w-[1400px] mx-auto flex flex-col gap-8"),
			sectionHeading("How we work"),
			Ul(
				Class("grid md:grid-cols-3 gap-6"),
				aboutValue("Research first", "Cohort insights and competitor benchmarks before a single creative is drafted."),
				aboutValue("Ship weekly", "Small bets, fast loops, and compounding wins over big-bang launches."),
				aboutValue("Report honestly", "Dashboards clients can read without a glossary, reviewed together every week."),
			),
		),
	)
}

func aboutValue(title, body string) g.Node {
	return Li(
		Class("border border-black/10 rounded-2xl p-6 flex flex-col gap-2"),
		Span(Class("font-semibold text-lg"), g.Text(title)),
		P(Class("text-black/60 text-sm"), g.Text(body)),
	)
}

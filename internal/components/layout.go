// Package components renders the site's pages with gomponents. Everything
// here is presentational; data arrives fully prepared from the usecases.
package components

import (
	"swipe11-web/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(cfg PageConfig, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(cfg.Description)),
				Title(cfg.Title),
				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Class("bg-white text-[#1e1e1e] antialiased"),
				SiteNavbar(),
				Main(Class("mt-16 md:mt-20"), g.Group(children)),
				SiteFooter(),
			),
		),
	)
}

func SiteNavbar() g.Node {
	return Nav(
		Class("fixed top-0 inset-x-0 z-30 bg-white/90 backdrop-blur border-b border-black/10"),
		Div(
			Class("max-w-[1400px] mx-auto flex items-center justify-between px-5 md:px-10 h-16 md:h-20"),
			A(Href("/"), Class("font-bold text-xl tracking-wide"), g.Text("Swipe11")),
			Div(
				Class("hidden md:flex items-center gap-8"),
				g.Map(content.NavLinks, func(l content.NavLink) g.Node {
					return A(
						Href(l.Href),
						Class("font-semibold text-sm text-black/75 hover:text-black transition-colors"),
						g.Text(l.Name),
					)
				}),
			),
		),
	)
}

func SiteFooter() g.Node {
	return Footer(
		Class("border-t border-black/10 mt-20"),
		Div(
			Class("max-w-[1400px] mx-auto px-5 md:px-10 py-10 flex flex-col md:flex-row items-start md:items-center justify-between gap-6"),
			Div(
				Span(Class("font-bold text-lg"), g.Text("Swipe11")),
				P(Class("text-sm text-black/60 mt-1"), g.Text("Growth marketing for BFSI and beyond.")),
			),
			Div(
				Class("flex flex-wrap gap-6"),
				g.Map(content.NavLinks, func(l content.NavLink) g.Node {
					return A(Href(l.Href), Class("text-sm text-black/60 hover:text-black"), g.Text(l.Name))
				}),
			),
		),
	)
}

func sectionHeading(text string) g.Node {
	return H2(
		Class("text-[#060606] text-3xl sm:text-4xl md:text-[48px] font-bold tracking-wide"),
		g.Text(text),
	)
}

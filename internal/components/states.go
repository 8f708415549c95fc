package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func errorState(title, body, retryHref string) g.Node {
	return Section(
		Class("min-h-[60vh] flex items-center justify-center px-5"),
		Div(
			Class("text-center flex flex-col items-center gap-4"),
			H1(Class("text-2xl font-bold"), g.Text(title)),
			P(Class("text-black/60 max-w-md"), g.Text(body)),
			Div(
				Class("flex gap-4 justify-center"),
				A(
					Href(retryHref),
					Class("bg-[#2924ff] text-white font-semibold px-6 py-2.5 rounded hover:bg-[#2924ff]/90 transition-colors"),
					g.Text("Try again"),
				),
				A(
					Href("/careers"),
					Class("text-[#2924ff] font-semibold px-6 py-2.5 hover:underline"),
					g.Text("Back to Careers"),
				),
			),
		),
	)
}

// JobNotFoundPage is the dedicated view for an unknown job slug.
func JobNotFoundPage() g.Node {
	return Layout(
		PageConfig{Title: "Job Not Found — Swipe11", Description: "This position does not exist."},
		Section(
			Class("min-h-[60vh] flex items-center justify-center px-5"),
			Div(
				Class("text-center flex flex-col items-center gap-4"),
				H1(Class("text-2xl font-bold"), g.Text("Job Not Found")),
				P(
					Class("text-black/60 max-w-md"),
					g.Text("The position you're looking for doesn't exist or has been filled."),
				),
				A(
					Href("/careers"),
					Class("text-[#2924ff] font-semibold hover:underline"),
					g.Text("Back to Careers"),
				),
			),
		),
	)
}

// JobErrorPage is the retry-capable error view for a job detail page.
func JobErrorPage(message, retryHref string) g.Node {
	if message == "" {
		message = "We encountered an error while loading this job. Please try again."
	}
	return Layout(
		PageConfig{Title: "Careers — Swipe11", Description: "Open positions at Swipe11."},
		errorState("Failed to load job", message, retryHref),
	)
}

// ErrorPage is the generic fallback rendered by the error middleware.
func ErrorPage(status int, message string) g.Node {
	if message == "" {
		message = "Something went wrong on our side."
	}
	return Layout(
		PageConfig{Title: "Swipe11", Description: "Growth marketing agency."},
		Section(
			Class("min-h-[60vh] flex items-center justify-center px-5"),
			Div(
				Class("text-center flex flex-col items-center gap-4"),
				H1(Class("text-2xl font-bold"), g.Textf("Error %d", status)),
				P(Class("text-black/60 max-w-md"), g.Text(message)),
				A(Href("/"), Class("text-[#2924ff] font-semibold hover:underline"), g.Text("Back home")),
			),
		),
	)
}

package components

import (
	"swipe11-web/internal/careers"
	"swipe11-web/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CreatorFormView is the partnership form's render state.
type CreatorFormView struct {
	FullName        string
	Email           string
	Domain          string
	InstagramID     string
	LinkedInProfile string
	TwitterProfile  string
	YouTubeLink     string

	Error     string
	Submitted bool
	Message   string
}

func CreatorsPage(domains []careers.DomainOption, form CreatorFormView) g.Node {
	return Layout(
		PageConfig{
			Title:       "For Creators — Swipe11",
			Description: "Partner with Swipe11 and turn your audience into a business.",
		},
		creatorsHero(),
		metricsSection(),
		whyJoinSection(),
		creatorFormSection(domains, form),
	)
}

func creatorsHero() g.Node {
	return Section(
		Class("bg-[#ededed] px-5 md:px-10 lg:px-20 py-16 md:py-24"),
		Div(
			Class("max-w-[1400px] mx-auto flex flex-col gap-4"),
			H1(
				Class("text-[#060606] text-4xl md:text-[56px] font-bold tracking-wide"),
				g.Text("Create with brands that take you seriously."),
			),
			P(
				Class("text-black/60 text-lg max-w-[640px]"),
				g.Text("We match creators with BFSI and consumer campaigns that pay fairly, brief clearly, and respect your voice."),
			),
		),
	)
}

func whyJoinSection() g.Node {
	return Section(
		Class("px-5 md:px-10 lg:px-20 py-12 max-w-[1400px] mx-auto flex flex-col gap-10"),
		sectionHeading("Why creators join"),
		Div(
			Class("grid md:grid-cols-3 gap-6"),
			g.Map(content.Differentiators, func(d content.Differentiator) g.Node {
				return Div(
					Class("border border-black/10 rounded-2xl p-6 flex flex-col gap-2"),
					Span(Class("font-semibold text-lg"), g.Text(d.Title)),
					P(Class("text-black/60 text-sm"), g.Text(d.Description)),
				)
			}),
		),
	)
}

func creatorFormSection(domains []careers.DomainOption, form CreatorFormView) g.Node {
	if form.Submitted {
		message := form.Message
		if message == "" {
			message = "Application received. Our partnerships team will reach out soon!"
		}
		return Section(
			ID("apply"),
			Class("px-5 md:px-10 lg:px-20 py-16 max-w-[900px] mx-auto"),
			Div(
				Class("border border-green-200 bg-green-50 rounded-2xl p-8 flex flex-col gap-2"),
				H2(Class("font-semibold text-xl"), g.Text("Thanks for your interest")),
				P(Class("text-black/75"), g.Text(message)),
			),
		)
	}

	return Section(
		ID("apply"),
		Class("px-5 md:px-10 lg:px-20 py-16 max-w-[900px] mx-auto flex flex-col gap-6"),
		sectionHeading("Tell us about yourself"),
		g.If(form.Error != "", Div(
			Class("border border-red-200 bg-red-50 text-red-700 rounded-lg px-4 py-3 text-sm"),
			g.Text(form.Error),
		)),
		Form(
			Method("post"),
			Action("/creators/apply"),
			Class("grid md:grid-cols-2 gap-5"),
			formField("fullName", "Full name", "text", form.FullName, true),
			formField("email", "Email", "email", form.Email, true),
			Div(
				Class("md:col-span-2 flex flex-col gap-1.5"),
				Label(For("domain"), Class("font-semibold text-sm"), g.Text("Your domain")),
				Select(
					ID("domain"), Name("domain"), Required(),
					Class("border border-black/15 rounded-lg px-3 py-2 h-[46px]"),
					Option(Value(""), g.Text("Select an option"), g.If(form.Domain == "", Selected())),
					g.Map(domains, func(d careers.DomainOption) g.Node {
						return Option(
							Value(d.Value),
							g.If(d.Value == form.Domain, Selected()),
							g.Text(d.Label),
						)
					}),
				),
			),
			formField("instagramId", "Instagram handle", "text", form.InstagramID, false),
			formField("linkedinProfile", "LinkedIn profile", "url", form.LinkedInProfile, false),
			formField("twitterProfile", "Twitter/X profile", "url", form.TwitterProfile, false),
			formField("youtubeLink", "YouTube channel", "url", form.YouTubeLink, false),
			Div(
				Class("md:col-span-2"),
				Button(
					Type("submit"),
					Class("bg-[#2924ff] text-white font-semibold px-8 py-3 rounded-lg hover:bg-[#2924ff]/90 transition-colors"),
					g.Text("Submit"),
				),
			),
		),
	)
}

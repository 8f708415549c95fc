// Package content holds the static marketing copy rendered across the site.
package content

type NavLink struct {
	Name string
	Href string
}

var NavLinks = []NavLink{
	{Name: "Home", Href: "/"},
	{Name: "Services", Href: "/#services"},
	{Name: "About", Href: "/about"},
	{Name: "Careers", Href: "/careers"},
	{Name: "For creators", Href: "/creators"},
}

type MetricCard struct {
	Value string
	Label string
}

var MetricCards = []MetricCard{
	{Value: "200+", Label: "Campaigns launched"},
	{Value: "40L+", Label: "Leads generated across BFSI"},
	{Value: "10+", Label: "Strategic verticals activated"},
	{Value: "5K", Label: "Content assets shipped"},
}

type Service struct {
	Title       string
	Description string
	Bullets     []string
}

var Services = []Service{
	{
		Title:       "Customer Engagement & Loyalty",
		Description: "Build lasting customer bonds and foster brand affinity through targeted lifecycle programmes.",
		Bullets: []string{
			"Design loyalty and rewards ecosystems.",
			"Deliver personalised, omnichannel communication.",
			"Map and optimise full funnel customer journeys.",
			"Capture insights with real-time feedback loops.",
		},
	},
	{
		Title:       "Impactful Product Launches",
		Description: "Ensure new offerings make a memorable market entry with end-to-end launch orchestration.",
		Bullets: []string{
			"Craft data-informed go-to-market strategies.",
			"Spark pre-launch buzz with integrated campaigns.",
			"Manage launch events across digital and offline touchpoints.",
			"Track performance, iterate, and scale momentum.",
		},
	},
	{
		Title:       "Insightful Market Research",
		Description: "Navigate the Indian BFSI landscape with clarity using deep market intelligence.",
		Bullets: []string{
			"Benchmark competitors and emerging trends.",
			"Decode consumer behaviour across cohorts.",
			"Validate new ventures with feasibility studies.",
			"Illustrate regulatory opportunities and risks.",
		},
	},
	{
		Title:       "Online Reputation Management",
		Description: "Protect and elevate your brand’s digital footprint with proactive monitoring.",
		Bullets: []string{
			"Monitor sentiment across search, social, and communities.",
			"Respond to crises with rapid communication playbooks.",
			"Amplify positive brand narratives with always-on content.",
			"Streamline review and rating management.",
		},
	},
	{
		Title:       "Social Media Management",
		Description: "Elevate your presence with platform-native storytelling and data-informed content.",
		Bullets: []string{
			"Develop editorial calendars aligned to business goals.",
			"Build thumb-stopping creatives & motion design.",
			"Run paid + organic experiments and iterate fast.",
			"Report actionable metrics to keep teams aligned.",
		},
	},
	{
		Title:       "Strategic Influencer Marketing",
		Description: "Partner with credible voices to influence adoption and trust at scale.",
		Bullets: []string{
			"Identify, vet, and contract BFSI-aligned creators.",
			"Co-create campaigns that feel authentic, not advertorial.",
			"Manage collaborations, logistics, and compliance.",
			"Measure performance and optimise for ROI.",
		},
	},
}

type Differentiator struct {
	Title       string
	Description string
}

var Differentiators = []Differentiator{
	{
		Title:       "Proven Results",
		Description: "From fintech unicorns to nationalised banks, we’ve shipped measurable growth programmes that move the revenue needle.",
	},
	{
		Title:       "Tailored Strategies",
		Description: "No cookie-cutter playbooks. Every engagement is backed by custom research, audience insights, and agile experimentation.",
	},
	{
		Title:       "Transparent Reporting",
		Description: "Weekly dashboards and structured reviews keep stakeholders in the loop and highlight the next best action.",
	},
}

type MethodStat struct {
	Stat  string
	Label string
}

var MethodStats = []MethodStat{
	{Stat: "120+", Label: "Influencer activations"},
	{Stat: "18x", Label: "Average ROAS on pilots"},
	{Stat: "93%", Label: "Client retention YoY"},
}

type CoverageRegion struct {
	Country string
	Blurb   string
}

var Coverage = []CoverageRegion{
	{
		Country: "India 🇮🇳",
		Blurb:   "HQ and growth lab with full-stack delivery teams in Mumbai & Bengaluru.",
	},
	{
		Country: "UAE 🇦🇪",
		Blurb:   "Embedded partnerships for retail banking and fintech challengers.",
	},
	{
		Country: "USA 🇺🇸",
		Blurb:   "Strategic advisory for venture-backed fintechs expanding into APAC.",
	},
}

var CTATags = []string{
	"Growth operations",
	"Demand generation",
	"Creator economy",
}

type Perk struct {
	Title       string
	Description string
}

var CareerPerks = []Perk{
	{Title: "Ownership from day one", Description: "Small squads, real mandates, and direct access to clients and leadership."},
	{Title: "Learning budget", Description: "Courses, conferences, and certifications funded every year, no questions asked."},
	{Title: "Flexible work", Description: "Hybrid by default with remote-friendly rituals and async-first documentation."},
	{Title: "Health & wellness", Description: "Comprehensive insurance for you and your family plus wellness allowances."},
}

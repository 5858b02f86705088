package deck

var sections = []Section{
	{
		ID:          "identity",
		Title:       "Who We Are",
		Subtitle:    "Directorate Identity & Scale",
		Description: "We are the technological backbone of the organization, delivering scalable, resilient, and secure software solutions across the globe.",
		KPIs: []KPI{
			{Label: "Developers", Value: "139.5"},
			{Label: "Agile Teams", Value: "21"},
			{Label: "Men / Women", Value: "80.5 / 59"},
			{Label: "5 Networks", Value: "Global, Shmura, TSN, Azure, Labs"},
			{Label: "Common Languages", Value: "Java, React, C++, C#, Python, Node"},
		},
		Tags: []string{"React", "Node.js", "Go", "AWS", "Kubernetes", "Python/AI", "Microservices", "DevOps", "Azure"},
		Bullets: []BulletPoint{
			{Title: "Mission", Description: "To accelerate business velocity through engineering excellence."},
		},
		Projects: []string{
			"Arig", "DITA", "Serbia", "EMK", "KTP", "BAA", "WES", "Nora", "Pulse",
			"C2SJOC", "ZAYAD", "MARS", "Tarazan", "Sheldon", "Autonumy", "Voss", "FDC", "Shield",
		},
	},
	{
		ID:          "success",
		Title:       "Key Successes",
		Subtitle:    "Deliveries & Impact",
		Description: "This year marked a turning point in our delivery capability. We shipped major refactors and launched two greenfield products.",
		KPIs: []KPI{
			{Label: "Annual Commits", Value: "30,000", Trend: "+15% vs last year", Positive: true},
			{Label: "Releases", Value: "450+", Trend: "+20%", Positive: true},
			{Label: "Most Commits / Dev", Value: "Dominion", Positive: true},
		},
		Bullets: []BulletPoint{
			{Title: "Project \"Titan\" Launch", Description: "Delivered the new unified customer portal 2 weeks ahead of schedule."},
			{Title: "Legacy Migration", Description: "Successfully retired the 10-year-old monolith, moving 100% to microservices."},
			{Title: "Performance", Description: "Optimized database queries resulting in a 40% cost reduction in cloud spend."},
		},
	},
	{
		ID:          "challenges",
		Title:       "Challenges",
		Subtitle:    "Lessons Learned",
		Description: "\"Ideas are cheap, delivery is everything.\" Our greatest hurdle remains bridging the gap between concept and consistent execution.",
		Bullets: []BulletPoint{
			{
				Title:       "Deployment Strategy",
				Description: "Navigating the complexity of On-Premises air-gapped systems versus dynamic Cloud infrastructures requires precision.",
				Lesson:      "Standardization",
				LessonColor: "cyber",
			},
			{
				Title:       "Quality Assurance",
				Description: "We are enforcing strict KPIs, automated unit testing, and rigorous code reviews to catch issues early.",
				Lesson:      "Responsibility",
				LessonColor: "gold",
			},
			{
				Title:       "AI Transformation",
				Description: "We must not just observe but actively participate in the technological transformation sweeping the world.",
				Lesson:      "Innovation & Progress",
				LessonColor: "purple",
			},
		},
		Tags:         []string{"Standardization", "Responsibility", "Innovation"},
		Illustration: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=2070",
	},
	{
		ID:          "focus",
		Title:       "Focus Next Year",
		Subtitle:    "Strategic Directions",
		Description: "Moving forward, we are refining our structure, mindset, and toolset to unlock higher velocity and impact.",
		Bullets: []BulletPoint{
			{
				Title:       "Strategic Domain Alignment",
				Description: "Rearranging our groups to align knowledge domains in the right way to better serve our projects and eliminate silos.",
			},
			{
				Title:       "Product-First Mindset",
				Description: "Thinking in a fierce **Product** way. Understanding what is core and what isn't to drive true **Product**ivity.",
				Lesson:      "Core Value",
				LessonColor: "cyber",
			},
			{
				Title:       "Unified Routines",
				Description: "Adjusting and standardizing the same base routines across the entire group to create a consistent engineering heartbeat.",
			},
			{
				Title:       "AI Everywhere",
				Description: "AI for everyone, everywhere. Empowering every developer and project with intelligence to revolutionize our workflow.",
			},
		},
		Tags:         []string{"Alignment", "Product", "Routines", "AI"},
		Illustration: "https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&q=80&w=2070",
	},
	{
		ID:          "innovation",
		Title:       "Innovation & AI",
		Subtitle:    "Future Tech & Pilots",
		Description: "We stopped talking about AI and started building with it.",
		KPIs: []KPI{
			{Label: "Copilot Adoption", Value: "85%"},
			{Label: "Code Gen Speed", Value: "+30%"},
			{Label: "Patents Filed", Value: "2"},
		},
		Bullets: []BulletPoint{
			{Title: "Development with AI", Description: "Almost everyone adopted AI tools like Copilot or Cursor and using local or global models."},
			{Title: "Border Project", Description: "Mars and Shield were the first to adopt new AI capabilities in the project (also operational features)."},
			{Title: "AI for Fun", Description: "We did movies, pictures, demos, and invented more using the revolution AI did for us."},
		},
	},
	{
		ID:          "people",
		Title:       "People & Culture",
		Subtitle:    "The Heart of Engineering",
		Description: "Code is written by people. We invested heavily in upskilling, mental health, and creating a culture of ownership.",
		KPIs: []KPI{
			{Label: "Promotions", Value: "12"},
			{Label: "Retention", Value: "94%"},
			{Label: "eNPS", Value: "62"},
		},
		Bullets: []BulletPoint{
			{Title: "Tech Talks", Description: "Hosted 24 internal \"Lunch & Learn\" sessions covering everything from Rust to Soft Skills."},
			{Title: "Hackathon", Description: "Our annual 48-hour hackathon resulted in 3 ideas making it to the product roadmap."},
			{Title: "Hybrid Model", Description: "Solidified our \"Remote-First, Office-Optional\" policy."},
		},
	},
	{
		ID:          "closing",
		Title:       "Closing",
		Subtitle:    "A Message from the Director",
		Description: "Thank you.",
		Bullets: []BulletPoint{
			{Title: "Gratitude", Description: "To every developer, QA, product manager, and designer who pushed a commit this year: you are the engine of this company."},
			{Title: "The Future", Description: "The software landscape is changing faster than ever. Stay curious, stay humble, and keep building."},
		},
		Tags:         []string{"Thank You", "Onwards", "2025"},
		Illustration: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=2070",
	},
	{
		ID:          GalleryID,
		Title:       "Memories",
		Subtitle:    "Captured by You",
		Description: "A collection of moments uploaded by our team during this presentation.",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1522071820081-009f0129c71c?auto=format&fit=crop&q=80&w=500",
			"https://images.unsplash.com/photo-1515187029135-18ee286d815b?auto=format&fit=crop&q=80&w=500",
			"https://images.unsplash.com/photo-1516321318423-f06f85e504b3?auto=format&fit=crop&q=80&w=500",
			"https://images.unsplash.com/photo-1556761175-5973dc0f32e7?auto=format&fit=crop&q=80&w=500",
		},
	},
}

// Sections returns the deck in presentation order. Callers must not mutate
// the returned slice.
func Sections() []Section {
	return sections
}

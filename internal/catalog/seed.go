package catalog

// seedCourses returns the demo catalog. Prices are whole units in the listed
// currency, matching the marketing site.
func seedCourses() []Course {
	return []Course{
		{
			ID:               "c-fe-01",
			Slug:             "html-css-foundations",
			Title:            "HTML & CSS Foundations",
			ShortDescription: "Build responsive pages with modern HTML5 and CSS3.",
			FullDescription:  "Start from zero and learn semantic HTML, Flexbox, Grid, and responsive layouts. You'll build multiple landing pages and a small portfolio.",
			Category:         "Frontend",
			Level:            "Beginner",
			Language:         "English",
			Instructor:       Instructor{Name: "Nour Alami", Title: "Front-End Engineer"},
			Schedule:         Schedule{Duration: "4 Weeks", Days: []string{"Sun", "Tue"}, Time: "18:00 - 20:00"},
			Pricing:          Pricing{OldPrice: 99, NewPrice: 49, Currency: "USD"},
			Meta:             Meta{LessonsCount: 16, TotalHours: 12, Students: 9800, Rating: 4.7},
			Tags:             []string{"HTML", "CSS", "Responsive"},
			Badges:           []string{"Projects", "Certificate"},
			Topics: []Topic{
				{Title: "Semantic HTML", DurationMin: 45},
				{Title: "Flexbox & Grid", DurationMin: 60},
				{Title: "Responsive Design", DurationMin: 55},
			},
		},
		{
			ID:               "c-fe-02",
			Slug:             "javascript-core",
			Title:            "JavaScript Core",
			ShortDescription: "Master JS fundamentals, DOM, and modern syntax.",
			FullDescription:  "Learn variables, functions, objects, arrays, async basics, DOM manipulation, and write clean reusable code with practical exercises.",
			Category:         "Frontend",
			Level:            "Beginner",
			Language:         "English",
			Instructor:       Instructor{Name: "Omar Al-Khatib", Title: "Full-Stack Engineer"},
			Schedule:         Schedule{Duration: "5 Weeks", Days: []string{"Mon", "Wed"}, Time: "19:00 - 21:00"},
			Pricing:          Pricing{OldPrice: 139, NewPrice: 79, Currency: "USD"},
			Meta:             Meta{LessonsCount: 22, TotalHours: 18, Students: 15400, Rating: 4.8},
			Tags:             []string{"JavaScript", "DOM", "ES6+"},
			Badges:           []string{"Best Seller", "Projects"},
		},
		{
			ID:               "c-fe-03",
			Slug:             "react-from-zero-to-hero",
			Title:            "React: From Zero to Hero",
			ShortDescription: "Build modern SPAs with React, hooks, and routing.",
			FullDescription:  "Create reusable components, manage state, handle forms, routing, and connect to APIs. Includes 2 real projects and deployment.",
			Category:         "Frontend",
			Level:            "Intermediate",
			Language:         "English",
			Instructor:       Instructor{Name: "Lina Haddad", Title: "Senior Product Designer"},
			Schedule:         Schedule{Duration: "6 Weeks", Days: []string{"Sun", "Thu"}, Time: "18:00 - 20:30"},
			Pricing:          Pricing{OldPrice: 179, NewPrice: 99, Currency: "USD"},
			Meta:             Meta{LessonsCount: 26, TotalHours: 24, Students: 21100, Rating: 4.7},
			Tags:             []string{"React", "Hooks", "SPA"},
			Badges:           []string{"Best Seller", "Certificate"},
		},
		{
			ID:               "c-fe-04",
			Slug:             "typescript-for-frontend",
			Title:            "TypeScript for Front-End",
			ShortDescription: "Type your React apps and avoid runtime bugs.",
			FullDescription:  "Understand TS types, interfaces, generics, narrowing, and apply it to React components, props, and API data models.",
			Category:         "Frontend",
			Level:            "Intermediate",
			Language:         "English",
			Instructor:       Instructor{Name: "Rami Saad", Title: "Software Engineer"},
			Schedule:         Schedule{Duration: "4 Weeks", Days: []string{"Tue", "Thu"}, Time: "20:00 - 22:00"},
			Pricing:          Pricing{OldPrice: 149, NewPrice: 89, Currency: "USD"},
			Meta:             Meta{LessonsCount: 18, TotalHours: 14, Students: 8700, Rating: 4.6},
			Tags:             []string{"TypeScript", "React"},
		},
		{
			ID:               "c-fe-05",
			Slug:             "nextjs-in-practice",
			Title:            "Next.js in Practice",
			ShortDescription: "SSR/SSG, routing, and production-ready React apps.",
			FullDescription:  "Build SEO-friendly apps with Next.js, data fetching, app structure, and deployment workflows. Includes a blog + dashboard project.",
			Category:         "Frontend",
			Level:            "Advanced",
			Language:         "English",
			Instructor:       Instructor{Name: "Hassan Jaber", Title: "Lead Front-End Engineer"},
			Schedule:         Schedule{Duration: "5 Weeks", Days: []string{"Mon", "Wed"}, Time: "18:30 - 21:00"},
			Pricing:          Pricing{OldPrice: 199, NewPrice: 119, Currency: "USD"},
			Meta:             Meta{LessonsCount: 20, TotalHours: 20, Students: 6400, Rating: 4.6},
			Tags:             []string{"Next.js", "SSR", "SEO"},
		},
		{
			ID:               "c-be-01",
			Slug:             "nodejs-express-api",
			Title:            "Node.js & Express APIs",
			ShortDescription: "Design REST APIs with Express and best practices.",
			FullDescription:  "Routing, middleware, auth basics, validation, error handling, and clean project structure. Build a complete REST API.",
			Category:         "Backend",
			Level:            "Intermediate",
			Language:         "English",
			Instructor:       Instructor{Name: "Yara Mansour", Title: "Back-End Engineer"},
			Schedule:         Schedule{Duration: "6 Weeks", Days: []string{"Sun", "Tue"}, Time: "19:00 - 21:00"},
			Pricing:          Pricing{OldPrice: 189, NewPrice: 109, Currency: "USD"},
			Meta:             Meta{LessonsCount: 24, TotalHours: 22, Students: 12050, Rating: 4.7},
			Tags:             []string{"Node.js", "Express", "REST"},
			Badges:           []string{"Projects", "Certificate"},
		},
		{
			ID:               "c-be-02",
			Slug:             "database-sql-essentials",
			Title:            "SQL Essentials",
			ShortDescription: "Query, join, and model relational databases.",
			FullDescription:  "Learn relational modeling, normalization, joins, indexing basics, and write fast queries for real-world datasets.",
			Category:         "Backend",
			Level:            "Beginner",
			Language:         "English",
			Instructor:       Instructor{Name: "Majd Tarek", Title: "Data Engineer"},
			Schedule:         Schedule{Duration: "4 Weeks", Days: []string{"Mon", "Thu"}, Time: "18:00 - 20:00"},
			Pricing:          Pricing{OldPrice: 119, NewPrice: 59, Currency: "USD"},
			Meta:             Meta{LessonsCount: 16, TotalHours: 12, Students: 14300, Rating: 4.8},
			Tags:             []string{"SQL", "Database"},
			Badges:           []string{"Best Seller"},
		},
		{
			ID:               "c-be-03",
			Slug:             "django-rest-framework",
			Title:            "Django REST Framework",
			ShortDescription: "Build secure REST APIs with Django.",
			FullDescription:  "Serializers, viewsets, permissions, JWT, and testing. Build an API for an e-commerce backend with admin tools.",
			Category:         "Backend",
			Level:            "Advanced",
			Language:         "English",
			Instructor:       Instructor{Name: "Khaled R.", Title: "Python Developer"},
			Schedule:         Schedule{Duration: "6 Weeks", Days: []string{"Tue", "Thu"}, Time: "19:30 - 22:00"},
			Pricing:          Pricing{OldPrice: 219, NewPrice: 129, Currency: "USD"},
			Meta:             Meta{LessonsCount: 24, TotalHours: 26, Students: 5200, Rating: 4.6},
			Tags:             []string{"Django", "REST", "Python"},
		},
		{
			ID:               "c-be-04",
			Slug:             "spring-boot-fundamentals",
			Title:            "Spring Boot Fundamentals",
			ShortDescription: "Create robust Java backends with Spring Boot.",
			FullDescription:  "Controllers, services, JPA, validation, security intro, and clean architecture. Includes a complete API project.",
			Category:         "Backend",
			Level:            "Intermediate",
			Language:         "English",
			Instructor:       Instructor{Name: "Mina George", Title: "Java Engineer"},
			Schedule:         Schedule{Duration: "7 Weeks", Days: []string{"Sun", "Wed"}, Time: "18:00 - 20:30"},
			Pricing:          Pricing{OldPrice: 239, NewPrice: 139, Currency: "USD"},
			Meta:             Meta{LessonsCount: 28, TotalHours: 28, Students: 4800, Rating: 4.5},
			Tags:             []string{"Java", "Spring Boot"},
		},
		{
			ID:               "c-be-05",
			Slug:             "graphql-for-apis",
			Title:            "GraphQL for Modern APIs",
			ShortDescription: "Design GraphQL schemas and integrate with clients.",
			FullDescription:  "Learn schemas, resolvers, pagination, auth patterns, and how to integrate GraphQL with React clients.",
			Category:         "Backend",
			Level:            "Advanced",
			Language:         "English",
			Instructor:       Instructor{Name: "Samir N.", Title: "API Architect"},
			Schedule:         Schedule{Duration: "4 Weeks", Days: []string{"Mon", "Thu"}, Time: "20:00 - 22:00"},
			Pricing:          Pricing{OldPrice: 169, NewPrice: 99, Currency: "USD"},
			Meta:             Meta{LessonsCount: 16, TotalHours: 14, Students: 3100, Rating: 4.6},
			Tags:             []string{"GraphQL", "APIs"},
		},
		{
			ID:               "c-ux-01",
			Slug:             "uiux-masterclass",
			Title:            "UI/UX Masterclass",
			ShortDescription: "Design modern interfaces and ship polished prototypes.",
			FullDescription:  "UX research basics, user flows, wireframes, UI kits, design systems, and advanced prototyping in Figma with a portfolio case study.",
			Category:         "UI/UX",
			Level:            "Intermediate",
			Language:         "English",
			Instructor:       Instructor{Name: "Lina Haddad", Title: "Senior Product Designer"},
			Schedule:         Schedule{Duration: "6 Weeks", Days: []string{"Sun", "Tue"}, Time: "18:00 - 20:00"},
			Pricing:          Pricing{OldPrice: 129, NewPrice: 69, Currency: "USD"},
			Meta:             Meta{LessonsCount: 18, TotalHours: 12, Students: 12450, Rating: 4.8},
			Tags:             []string{"UI", "UX", "Figma"},
			Badges:           []string{"Best Seller", "Certificate"},
		},
		{
			ID:               "c-ux-02",
			Slug:             "figma-for-beginners",
			Title:            "Figma for Beginners",
			ShortDescription: "Learn Figma tools and create your first design file.",
			FullDescription:  "Frames, components, auto-layout, styles, and exporting assets. You'll rebuild a real app screen from scratch.",
			Category:         "UI/UX",
			Level:            "Beginner",
			Language:         "English",
			Instructor:       Instructor{Name: "Rana Ali", Title: "UI Designer"},
			Schedule:         Schedule{Duration: "3 Weeks", Days: []string{"Mon", "Wed"}, Time: "18:30 - 20:30"},
			Pricing:          Pricing{OldPrice: 89, NewPrice: 39, Currency: "USD"},
			Meta:             Meta{LessonsCount: 12, TotalHours: 8, Students: 9000, Rating: 4.7},
			Tags:             []string{"Figma", "UI"},
		},
		{
			ID:               "c-ux-03",
			Slug:             "ux-research-basics",
			Title:            "UX Research Basics",
			ShortDescription: "Interview users, synthesize insights, and validate ideas.",
			FullDescription:  "Learn qualitative methods, surveys, usability testing, and how to turn findings into actionable design improvements.",
			Category:         "UI/UX",
			Level:            "Intermediate",
			Language:         "English",
			Instructor:       Instructor{Name: "Dalia Noor", Title: "UX Researcher"},
			Schedule:         Schedule{Duration: "4 Weeks", Days: []string{"Tue", "Thu"}, Time: "19:00 - 21:00"},
			Pricing:          Pricing{OldPrice: 149, NewPrice: 79, Currency: "USD"},
			Meta:             Meta{LessonsCount: 14, TotalHours: 10, Students: 4100, Rating: 4.6},
			Tags:             []string{"UX", "Research"},
		},
		{
			ID:               "c-ux-04",
			Slug:             "design-systems-in-figma",
			Title:            "Design Systems in Figma",
			ShortDescription: "Build scalable UI libraries and component standards.",
			FullDescription:  "Tokens, typography scales, color systems, components, variants, and documentation patterns used in real product teams.",
			Category:         "UI/UX",
			Level:            "Advanced",
			Language:         "English",
			Instructor:       Instructor{Name: "Hala M.", Title: "Design Systems Lead"},
			Schedule:         Schedule{Duration: "5 Weeks", Days: []string{"Sun", "Wed"}, Time: "18:00 - 20:30"},
			Pricing:          Pricing{OldPrice: 199, NewPrice: 119, Currency: "USD"},
			Meta:             Meta{LessonsCount: 18, TotalHours: 16, Students: 2500, Rating: 4.7},
			Tags:             []string{"Design System", "Figma"},
		},
		{
			ID:               "c-ux-05",
			Slug:             "portfolio-for-designers",
			Title:            "Portfolio for Designers",
			ShortDescription: "Craft case studies and present your work confidently.",
			FullDescription:  "Learn storytelling, structure, visuals, and how to present UX decisions clearly. End with a polished portfolio project.",
			Category:         "UI/UX",
			Level:            "Intermediate",
			Language:         "English",
			Instructor:       Instructor{Name: "Maya K.", Title: "Product Designer"},
			Schedule:         Schedule{Duration: "3 Weeks", Days: []string{"Mon", "Thu"}, Time: "20:00 - 22:00"},
			Pricing:          Pricing{OldPrice: 109, NewPrice: 59, Currency: "USD"},
			Meta:             Meta{LessonsCount: 10, TotalHours: 8, Students: 3600, Rating: 4.6},
			Tags:             []string{"Portfolio", "Case Study"},
		},
	}
}

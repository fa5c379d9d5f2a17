// Package content holds the fixed resume records rendered on the page.
package content

// Asset references served from the images directory.
const (
	DashboardExample  = "/images/dashboard-example.jpg"
	DataVisualization = "/images/data-visualization.png"
	TechBackground    = "/images/tech-background.jpg"
)

type Profile struct {
	Name      string   `json:"name"`
	Headline  string   `json:"headline"`
	Summary   string   `json:"summary"`
	AboutLead string   `json:"about_lead"`
	About     []string `json:"about"`
	Location  string   `json:"location"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	LinkedIn  string   `json:"linkedin"`
	Pitch     string   `json:"pitch"`
	Copyright string   `json:"copyright"`
}

// MailtoURL opens an email composer addressed to the owner.
func (p Profile) MailtoURL() string { return "mailto:" + p.Email }

type Skill string

// SkillGroup is one card in the skills section.
type SkillGroup struct {
	Title  string  `json:"title"`
	Tone   string  `json:"tone"`
	Skills []Skill `json:"skills"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	Achievements []string `json:"achievements"`
}

type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Location         string   `json:"location"`
	Type             string   `json:"type,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

type Status string

const (
	Completed Status = ""
	Current   Status = "current"
)

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Location    string `json:"location,omitempty"`
	Status      Status `json:"status,omitempty"`
}

// InProgress reports whether the course is still running.
func (e Education) InProgress() bool { return e.Status == Current }

var owner = Profile{
	Name:     "Andre Zeni",
	Headline: "Data Analyst & Business Intelligence Specialist",
	Summary: "9+ years of experience in Sales & Strategy with expertise in ETL design, dashboard development, " +
		"and data-driven decision making. Specialized in transforming complex data into actionable business insights.",
	AboutLead: "Transforming Data into Strategic Insights",
	About: []string{
		"With over 9 years of experience in sales and strategy, I've developed a unique perspective on how data drives business success. " +
			"My journey has taken me from Brazil to Australia, working with diverse teams and adapting to international environments.",
		"I specialize in ETL design, dashboard development, and turning complex datasets into actionable business intelligence. " +
			"My approach combines technical expertise with strategic thinking to deliver solutions that drive real business value.",
	},
	Location: "Sydney, Australia",
	Phone:    "+61 7 44 42 06 62",
	Email:    "afszeni@gmail.com",
	LinkedIn: "https://www.linkedin.com/in/andre-zeni-fs1991",
	Pitch: "I'm always interested in new opportunities and collaborations. " +
		"Let's discuss how we can work together to turn data into actionable insights.",
	Copyright: "© 2024 Andre Zeni.",
}

var skills = []Skill{
	"SQL", "SAS", "Salesforce", "Big Query", "Excel", "Power BI",
	"Python", "Data Analysis", "ETL Design", "Dashboard Development",
	"KPI Analysis", "Project Management", "Business Intelligence",
}

var skillGroups = []SkillGroup{
	{Title: "Data Management & ETL", Tone: "blue", Skills: []Skill{"SQL", "SAS", "Big Query", "Salesforce"}},
	{Title: "Reporting & Visualization", Tone: "green", Skills: []Skill{"Power BI", "Excel", "Dashboard Development", "KPI Analysis"}},
	{Title: "Business & Strategy", Tone: "purple", Skills: []Skill{"Project Management", "Business Intelligence", "Data Analysis", "Process Optimization"}},
}

var projects = []Project{
	{
		Title:        "SME Sales Pipeline Optimization",
		Description:  "Developed comprehensive ETL processes and interactive dashboards for a $200M annual revenue SME segment, implementing segmentation models and forecasting analytics.",
		Technologies: []string{"SQL", "SAS", "Power BI", "CRM Analytics"},
		Image:        DashboardExample,
		Achievements: []string{"Optimized sales pipeline management", "Implemented customer retention models", "Created profitability analysis frameworks"},
	},
	{
		Title:        "Cloud Computing Performance Analytics",
		Description:  "Designed advanced dashboards for key client portfolios, measuring segmented sales campaigns performance and conversion rates to guide commercial strategies.",
		Technologies: []string{"Big Query", "Data Visualization", "Campaign Analytics"},
		Image:        DataVisualization,
		Achievements: []string{"Monitored KPIs including sales and conversion rates", "Developed weekly action plans", "Improved customer satisfaction (NPS) tracking"},
	},
	{
		Title:        "Retail Performance Management System",
		Description:  "Led strategic sales campaigns implementation with structured training programs, delivering comprehensive performance analysis and team coordination.",
		Technologies: []string{"Excel", "KPI Dashboards", "Performance Analytics"},
		Image:        TechBackground,
		Achievements: []string{"Achieved sales targets through data-driven strategies", "Implemented continuous operational improvements", "Enhanced team performance tracking"},
	},
}

var experience = []Experience{
	{
		Title:    "Business Development",
		Company:  "KOFE Advertising",
		Period:   "Jun 2023 - Mar 2024",
		Location: "Sydney, Australia",
		Type:     "Self-Employed",
		Responsibilities: []string{
			"Pipeline Management to achieve growth targets and market trend analysis",
			"Multi-channel prospecting including cold emailing, calls, LinkedIn and Social Ads",
			"Proposal creation and tailored solutions per client needs with post-sales support",
		},
	},
	{
		Title:    "Retail Manager",
		Company:  "Oakley - Flagship George Street",
		Period:   "May 2021 - Jul 2023",
		Location: "Sydney, Australia",
		Responsibilities: []string{
			"Performance Analysis: Monitoring KPIs such as sales, conversion rates, customer satisfaction (NPS)",
			"Team Coordination & Project Management: Leading strategic sales campaigns and structured trainings",
			"Process Management & Optimisation: Implementing continuous operational improvements driven by data insights",
		},
	},
	{
		Title:    "Business Analyst Sr | Planning DA",
		Company:  "Serasa Experian",
		Period:   "Nov 2013 - Jan 2018",
		Location: "São Paulo, Brazil",
		Responsibilities: []string{
			"SME Strategy Planning: Optimisation & management of sales pipeline for $200M annual revenue segment",
			"Reports & Dashboards Development: ETL process development using MS SQL and SAS",
			"Process Management & Optimisation: Cross-functional coordination with multiple departments",
		},
	},
	{
		Title:    "Data Analyst II | Cloud Computing",
		Company:  "A5 Solutions",
		Period:   "Dec 2011 - Oct 2013",
		Location: "São Paulo, Brazil",
		Responsibilities: []string{
			"Cloud Contact Center (CCaaS) Management: Designing advanced dashboards for key client portfolios",
			"Data analysis to measure segmented sales campaigns performance and evaluate conversion rates",
			"Commercial strategies guidance through comprehensive data insights",
		},
	},
}

var education = []Education{
	{Degree: "Google Data Analytics Professional Certificate", Institution: "Google", Period: "In Progress – March 2025", Status: Current},
	{Degree: "Diploma in Community Services & Counselling", Institution: "Australian Learning Group", Period: "2021/2024", Location: "Australia"},
	{Degree: "Diploma in Project Management", Institution: "Australian Pacific College", Period: "2019/2021", Location: "Australia"},
	{Degree: "MBA – Executive Finance", Institution: "FIPE", Period: "2016/2017", Location: "Brazil"},
	{Degree: "Diploma in Marketing", Institution: "UNINOVE", Period: "2007/2011", Location: "Brazil"},
}

func Owner() Profile {
	p := owner
	p.About = append([]string(nil), owner.About...)
	return p
}

func Skills() []Skill {
	return append([]Skill(nil), skills...)
}

func SkillGroups() []SkillGroup {
	out := make([]SkillGroup, len(skillGroups))
	for i, g := range skillGroups {
		g.Skills = append([]Skill(nil), g.Skills...)
		out[i] = g
	}
	return out
}

func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		p.Achievements = append([]string(nil), p.Achievements...)
		out[i] = p
	}
	return out
}

func Experiences() []Experience {
	out := make([]Experience, len(experience))
	for i, e := range experience {
		e.Responsibilities = append([]string(nil), e.Responsibilities...)
		out[i] = e
	}
	return out
}

func Educations() []Education {
	return append([]Education(nil), education...)
}

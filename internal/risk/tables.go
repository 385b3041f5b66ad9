package risk

// Static lookup tables behind the scorer. Values are hand-curated; the tier
// groupings are documentation only, the stored numbers are what count.

// taskRiskWeights maps a canonical task label to an automation-risk weight
// in [0,100]. Tasks missing from the table score defaultTaskRisk.
var taskRiskWeights = map[string]int{
	// High risk (70-95): easily automatable
	"Data entry":                    95,
	"Translation":                   90,
	"Bookkeeping":                   88,
	"Report generation":             85,
	"Email management":              82,
	"Scheduling/Calendar management": 80,
	"Scheduling":                    80,
	"Documentation/Paperwork":       78,
	"Transcription":                 92,
	"Basic coding tasks":            75,
	"Invoice processing":            88,
	"Form filling":                  90,
	"Proofreading":                  82,

	// Medium-high risk (55-70): partially automatable
	"Writing content/copy":        68,
	"Social media management":     65,
	"Customer support":            70,
	"Email support":               72,
	"Live chat support":           75,
	"Phone support":               55,
	"Ticket management":           70,
	"Data analysis":               62,
	"Research":                    58,
	"Market research":             60,
	"Lead generation":             65,
	"SEO optimization":            60,
	"Financial analysis":          58,
	"Transaction processing":      72,
	"Inventory management":        65,
	"Order processing":            70,
	"Compliance checks":           55,
	"Grading/Assessment":          60,
	"Progress tracking":           62,
	"CRM management":              58,
	"Sales reporting":             65,
	"Performance reporting":       62,
	"GPS/Fleet tracking":          70,
	"Route planning & navigation": 75,
	"Fuel management":             68,

	// Medium risk (40-55): requires human oversight
	"Graphic design":          52,
	"Video editing":           48,
	"Audio editing":           45,
	"Project management":      42,
	"Project coordination":    45,
	"Coding/Programming":      50,
	"Code review":             45,
	"Testing/QA":              55,
	"Bug fixing":              52,
	"Ad creation":             55,
	"Email marketing":         58,
	"Campaign planning":       48,
	"Content creation":        52,
	"Script writing":          50,
	"Legal research":          55,
	"Document review":         58,
	"Contract drafting":       52,
	"Risk assessment":         50,
	"Investment research":     52,
	"Product troubleshooting": 55,
	"Refund processing":       60,
	"Returns handling":        58,
	"Price tagging":           65,
	"Listing management":      55,
	"Contract preparation":    55,

	// Low-medium risk (25-40): human-centric but AI-assisted
	"Team communication":        35,
	"Team coordination":         38,
	"Client meetings":           30,
	"Customer communication":    40,
	"Patient communication":     35,
	"Student communication":     32,
	"Stakeholder communication": 35,
	"Employee relations":        30,
	"Recruitment/Hiring":        42,
	"Employee onboarding":       40,
	"Training coordination":     38,
	"Negotiation":               28,
	"Sales assistance":          45,
	"Product demonstrations":    35,
	"Teaching/Instruction":      32,
	"Curriculum planning":       40,
	"Material preparation":      45,
	"Strategy development":      35,
	"Process improvement":       40,
	"Presentation creation":     48,
	"Brand management":          38,
	"Post-production":           45,
	"Photography/Staging":       42,
	"Interviewing":              30,
	"System design":             38,
	"API development":           45,
	"Database management":       48,
	"DevOps/Deployment":         42,
	"Equipment operation":       40,
	"Warehouse operations":      55,
	"Material handling":         52,

	// Low risk (10-25): physical presence or deep human skills
	"Problem solving":              25,
	"Patient care":                 18,
	"Health assessments":           22,
	"Medication management":        35,
	"Equipment sterilization":      30,
	"Lab work/Testing":             40,
	"Court appearances":            15,
	"Parent meetings":              20,
	"Performance reviews":          28,
	"Open house coordination":      25,
	"Property showings":            22,
	"Cold calling/Outreach":        40,
	"Customer follow-ups":          42,
	"Answering customer inquiries": 55,
	"Handling complaints":          45,
	"Machine operation":            45,
	"Assembly line work":           55,
	"Quality control/Inspection":   48,
	"Equipment maintenance":        35,
	"Vehicle maintenance checks":   38,
	"Safety monitoring":            42,
	"Safety inspections":           40,
	"Process optimization":         38,
	"Auditing":                     45,
	"Budget planning":              42,
	"Account management":           40,

	// Very low risk: physical/hands-on work
	"Driving/Operating vehicles": 25, // will increase with self-driving
	"Loading/Unloading cargo":    35,
	"Delivery scheduling":        55,
	"Cash register/POS operation": 60,
	"Product stocking":           45,
	"Visual merchandising":       35,
	"Store opening/closing":      30,
}

// industryModifiers is the signed base adjustment per declared industry.
// Unknown industries fall back to defaultIndustryModifier.
var industryModifiers = map[string]int{
	"Marketing & Advertising":    15,
	"Software Development":       10,
	"Finance & Banking":          12,
	"Customer Service":           18,
	"Human Resources":            10,
	"Legal":                      8,
	"Sales":                      5,
	"Media & Entertainment":      12,
	"Consulting":                 8,
	"Education":                  5,
	"Healthcare":                 -5,
	"Real Estate":                0,
	"Retail":                     8,
	"Manufacturing":              10,
	"Transportation & Logistics": 12,
	"Other":                      5,
}

const (
	defaultTaskRisk         = 50
	defaultIndustryModifier = 5
	titleModifierPoints     = 8
	maxExperienceYears      = 10
)

// Title keyword sets. The high-risk set is checked first and wins on overlap.
var (
	highRiskTitleKeywords = []string{"assistant", "clerk", "entry", "junior", "data", "support", "operator"}
	lowRiskTitleKeywords  = []string{"director", "manager", "lead", "senior", "chief", "head", "vp", "president"}
)

// recommendationRule matches tasks by case-sensitive substring and names the
// skill pool whose top entries get recommended. Rules run in declaration
// order so the output ordering is fixed.
type recommendationRule struct {
	keywords []string
	pool     []string
}

var recommendationRules = []recommendationRule{
	{
		keywords: []string{"Writing", "content", "Social media"},
		pool: []string{
			"AI-assisted content strategy",
			"Brand voice development",
			"Multimedia content creation",
			"Audience analytics",
			"Creative direction",
		},
	},
	{
		keywords: []string{"Data", "Report", "Analysis"},
		pool: []string{
			"Advanced data visualization",
			"Machine learning basics",
			"Business intelligence tools",
			"Statistical analysis",
			"Data-driven decision making",
		},
	},
	{
		keywords: []string{"Customer", "Client", "support"},
		pool: []string{
			"Emotional intelligence",
			"Complex negotiation",
			"Relationship management",
			"Conflict resolution",
			"Consultative selling",
		},
	},
	{
		keywords: []string{"Coding", "Programming", "API"},
		pool: []string{
			"AI/ML integration",
			"System architecture",
			"Cloud computing",
			"Cybersecurity basics",
			"API design",
		},
	},
	{
		keywords: []string{"Driving", "Machine", "Loading"},
		pool: []string{
			"Robotics operation",
			"IoT systems management",
			"Safety compliance",
			"Quality assurance",
			"Process optimization",
		},
	},
	{
		keywords: []string{"management", "coordination", "Team"},
		pool: []string{
			"AI-augmented leadership",
			"Change management",
			"Strategic planning",
			"Cross-functional collaboration",
			"Digital transformation",
		},
	},
}

// highAutomationPool is prepended when the final score crosses
// highScoreRecommendationCutoff.
var highAutomationPool = []string{
	"AI prompt engineering",
	"AI tool management",
	"Data interpretation & storytelling",
	"Complex problem solving",
	"Human-AI collaboration",
}

// defaultRecommendations pad the list when fewer than minRecommendations
// category recommendations matched.
var defaultRecommendations = []string{
	"AI prompt engineering",
	"Digital literacy",
	"Adaptability & continuous learning",
}

const (
	highScoreRecommendationCutoff = 60
	maxRecommendations            = 5
	minRecommendations            = 3
	topRiskyTaskCount             = 3
)

package catalog

const (
	EmploymentFullTime = "Full-Time"
	EmploymentPartTime = "Part-Time"
	EmploymentContract = "Contract"
)

const (
	LevelDirector = "Director"
	LevelLead     = "Lead"
	LevelManager  = "Manager"
	LevelStaff    = "Staff"
	LevelSenior   = "Senior"
	LevelMid      = "Mid-level"
	LevelJunior   = "Junior"
	LevelIntern   = "Intern"
)

// DomainOther is the fallback domain.
const DomainOther = "Other"

var defaultDomains = []Domain{
	{Name: "Android", Slug: "android"},
	{Name: "Backend", Slug: "backend"},
	{Name: "Frontend", Slug: "frontend"},
	{Name: "iOS", Slug: "ios"},
	{Name: "Full-stack", Slug: "full-stack"},
	{Name: "DevOps", Slug: "devops"},
	{Name: "AI / Data Science", Slug: "ai-data-science"},
	{Name: "Customer Acquisition", Slug: "customer-acquisition"},
	{Name: "Talent / HR", Slug: "talent-hr"},
	{Name: "Accounts / Finance", Slug: "accounts-finance"},
	{Name: "Product / Project", Slug: "product-project"},
	{Name: "Support / Customer Success", Slug: "support-customer-success"},
	{Name: "Operations", Slug: "operations"},
	{Name: "Legal", Slug: "legal"},
	{Name: "Design / Creative", Slug: "design-creative"},
	{Name: "QA / Testing", Slug: "qa-testing"},
	{Name: "Admin / Office", Slug: "admin-office"},
	{Name: "AI", Slug: "ai"},
	{Name: "Software Engineering", Slug: "software-engineering"},
	{Name: "Analyst", Slug: "analyst"},
	{Name: "Research", Slug: "research"},
	{Name: DomainOther, Slug: "other"},
}

var defaultEmploymentTypes = []string{EmploymentFullTime, EmploymentPartTime, EmploymentContract}

var defaultExperienceLevels = []string{
	LevelDirector,
	LevelLead,
	LevelManager,
	LevelStaff,
	LevelSenior,
	LevelMid,
	LevelJunior,
	LevelIntern,
}

package classify

import "github.com/eqhq/jobindex/jobindex/catalog"

// Order matters in every table below.

var domainRules = []rule{
	{"Android", []string{" android "}},
	{"Backend", []string{" backend ", " back-end "}},
	{"Frontend", []string{" frontend ", " front-end "}},
	{"iOS", []string{" ios "}},
	{"Full-stack", []string{" full stack ", " fullstack ", " full-stack "}},
	{"DevOps", []string{" devops ", " sre ", " site reliability "}},
	{"AI / Data Science", []string{
		" data scientist ", " data science", " machine learning ", " ml ", " ai ",
		" artificial intelligence ", " deep learning ",
	}},
	{"Customer Acquisition", []string{
		" customer acquisition", " growth ", " sales ", " business development ",
		" partnerships ", " marketing ",
	}},
	{"Talent / HR", []string{
		" talent ", " recruiter ", " recruiting ", " hr ", " human resources ",
		" people ops ", " people operations ",
	}},
	{"Accounts / Finance", []string{
		" accounts ", " accountant ", " account ", " accounting ", " finance ",
		" financial ", " controller ", " cfo ",
	}},
	{"Product / Project", []string{
		" product manager ", " product management ", " product owner ",
		" program manager ", " project manager ",
	}},
	{"Support / Customer Success", []string{
		" support ", " customer success ", " help desk ", " technical support ",
		" client services ", " customer service ",
	}},
	{"Operations", []string{" operations ", " ops ", " chief operating officer ", " coo "}},
	{"Legal", []string{" legal ", " counsel ", " attorney ", " lawyer "}},
	{"Design / Creative", []string{" design ", " ux ", " ui ", " designer ", " creative "}},
	{"QA / Testing", []string{" qa ", " quality assurance ", " test engineer ", " testing "}},
	{"Admin / Office", []string{
		" admin ", " administration ", " executive assistant ", " office manager ",
		" administrative ",
	}},
	// " ai " is already taken by AI / Data Science above.
	{"AI", []string{" prompt "}},
	{"Software Engineering", []string{" engineering "}},
	{"Analyst", []string{" analyst "}},
	{"Software Engineering", []string{" engineer "}},
	{"Research", []string{" researcher ", " research "}},
}

var levelRules = []rule{
	{catalog.LevelDirector, []string{"director", "vp", "vice president"}},
	{catalog.LevelLead, []string{"head of"}},
	{catalog.LevelManager, []string{"manager"}},
	{catalog.LevelStaff, []string{"staff", "principal", "distinguished"}},
	{catalog.LevelLead, []string{"lead", "tech lead", "team lead", "architect"}},
	{catalog.LevelSenior, []string{"senior", "sr"}},
	{catalog.LevelJunior, []string{"junior", "jr", "associate", "assistant", "entry level", "entry-level"}},
	{catalog.LevelIntern, []string{"intern", "internship", "trainee"}},
}

var employmentRules = []rule{
	{catalog.EmploymentContract, []string{"contract", "temporary", "freelance"}},
	{catalog.EmploymentPartTime, []string{"part-time", "part time"}},
}

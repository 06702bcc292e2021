package services

// Static lookup tables for the analysis and interview pipelines. They are
// passed into the relevant service at construction so tests can swap them;
// the defaults below are the product content. Order matters everywhere:
// skills are reported in vocabulary order, the first matching degree wins,
// and company ties keep declaration order.

// DefaultSkillVocabulary is the fixed skill vocabulary scanned for in resume
// text, in reporting order.
var DefaultSkillVocabulary = []string{
	"python", "java", "c++", "sql", "html", "css", "django", "react",
	"node", "aws", "linux", "git", "shell scripting",
}

type DegreeRank struct {
	Token string
	Rank  int
}

// DefaultDegreeRanks maps degree tokens to their rank contribution. The
// first token found in the text wins.
var DefaultDegreeRanks = []DegreeRank{
	{Token: "b.tech", Rank: 3},
	{Token: "m.tech", Rank: 4},
	{Token: "phd", Rank: 5},
	{Token: "b.e", Rank: 3},
	{Token: "m.sc", Rank: 4},
}

type CompanyRequirement struct {
	Company string
	Skills  []string
}

// DefaultCompanyRequirements is the static company table used for
// skill-overlap suggestions.
var DefaultCompanyRequirements = []CompanyRequirement{
	{Company: "Google", Skills: []string{"python", "machine learning", "tensorflow", "sql"}},
	{Company: "Microsoft", Skills: []string{"azure", "c#", "sql", "python"}},
	{Company: "Amazon", Skills: []string{"aws", "python", "java", "data analysis"}},
	{Company: "TCS", Skills: []string{"java", "sql", "spring", "oracle"}},
	{Company: "Infosys", Skills: []string{"python", "sql", "django", "react"}},
	{Company: "Wipro", Skills: []string{"html", "css", "javascript", "node"}},
	{Company: "Capgemini", Skills: []string{"java", "spring", "sql"}},
	{Company: "Accenture", Skills: []string{"python", "react", "cloud", "sql"}},
	{Company: "IBM", Skills: []string{"java", "cloud computing", "data analysis", "python"}},
	{Company: "Cognizant", Skills: []string{"java", "sql", "cloud computing", "python"}},
	{Company: "HCL", Skills: []string{"java", "c++", "cloud", "linux"}},
}

type RoleRequirement struct {
	Role   string
	Skills []string
}

// DefaultRoleRequirements maps job-role keywords to the skills expected for
// that role. Matched by case-insensitive substring against the resume's job
// role line; the first match wins.
var DefaultRoleRequirements = []RoleRequirement{
	{Role: "software engineer", Skills: []string{"python", "git", "sql", "linux"}},
	{Role: "data analyst", Skills: []string{"python", "sql", "excel"}},
	{Role: "web developer", Skills: []string{"html", "css", "react", "node"}},
	{Role: "backend developer", Skills: []string{"java", "sql", "aws"}},
	{Role: "frontend developer", Skills: []string{"html", "css", "react"}},
	{Role: "devops engineer", Skills: []string{"aws", "linux", "git", "shell scripting"}},
}

// GenericRecommendedSkills is the fallback recommendation when no role
// matched or nothing is missing.
var GenericRecommendedSkills = []string{"communication", "problem solving", "team collaboration"}

type AlternateRoleRule struct {
	Role   string
	Skills []string
}

// DefaultAlternateRoleRules suggests alternate roles when all of the rule's
// skills are present on the resume. Every matching rule is reported, in
// declaration order.
var DefaultAlternateRoleRules = []AlternateRoleRule{
	{Role: "Data Analyst", Skills: []string{"python", "sql"}},
	{Role: "Business Analyst", Skills: []string{"python", "pandas"}},
	{Role: "Backend Developer", Skills: []string{"java"}},
	{Role: "Frontend Developer", Skills: []string{"html", "css"}},
	{Role: "DevOps Engineer", Skills: []string{"aws", "linux"}},
}

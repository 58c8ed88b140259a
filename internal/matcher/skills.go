package matcher

import "strings"

// skillVocabulary is the closed set of skill phrases the extractor knows
// about. Matching is plain substring containment on strict-normalized text,
// so multi-word entries only hit when the exact phrase appears contiguously.
// It is intentionally not word-boundary aware ("java" matches inside
// "javascript"); the regression model was trained against this behavior.
var skillVocabulary = []string{
	// IT / Data
	"python", "java", "sql", "machine learning", "deep learning",
	"nlp", "data analysis", "tensorflow", "pytorch",
	"data engineering", "data visualization", "power bi", "tableau",
	"big data", "spark", "hadoop", "cloud computing",
	"aws", "azure", "gcp", "docker", "kubernetes",
	"devops", "ci cd", "git", "github",
	"api development", "rest api", "microservices",
	"cybersecurity", "penetration testing",

	// Software / Engineering
	"software development", "web development", "frontend development",
	"backend development", "full stack development",
	"react", "angular", "vue",
	"django", "flask", "spring boot",
	"system design", "object oriented programming",

	// Business / HR
	"recruitment", "talent acquisition", "payroll",
	"performance management", "training",
	"hr analytics", "employee engagement",
	"organizational development", "workforce planning",
	"policy development", "conflict resolution",

	// Finance
	"accounting", "auditing", "financial analysis", "taxation",
	"budgeting", "forecasting", "risk management",
	"investment analysis", "financial modeling",
	"cost control", "compliance",

	// Marketing / Sales
	"digital marketing", "seo", "content marketing",
	"sales", "lead generation",
	"social media marketing", "email marketing",
	"brand management", "market research",
	"crm", "customer acquisition",

	// Design / Creative
	"ui ux design", "graphic design", "figma",
	"adobe photoshop", "adobe illustrator",
	"video editing", "motion graphics",

	// Operations / Management
	"project management", "agile", "scrum",
	"kanban", "lean management",
	"supply chain management", "operations management",
	"quality assurance", "process improvement",

	// Healthcare / Life Sciences
	"clinical research", "healthcare management",
	"medical data analysis", "biostatistics",
	"public health",

	// Education / Research
	"teaching", "curriculum development",
	"academic research", "technical writing",
	"documentation",

	// Legal / Compliance
	"legal research", "contract management",
	"regulatory compliance", "corporate governance",

	// General / Professional
	"communication", "management", "leadership",
	"problem solving", "critical thinking",
	"time management", "team collaboration",
	"decision making", "adaptability", "negotiation",
}

// Vocabulary returns a copy of the skill vocabulary.
func Vocabulary() []string {
	out := make([]string, len(skillVocabulary))
	copy(out, skillVocabulary)
	return out
}

// ExtractSkills returns the vocabulary entries present in strict-normalized
// text. Set semantics: each skill appears at most once.
func ExtractSkills(strictText string) map[string]struct{} {
	skills := make(map[string]struct{})
	for _, skill := range skillVocabulary {
		if strings.Contains(strictText, skill) {
			skills[skill] = struct{}{}
		}
	}
	return skills
}

// SkillMatchPercent is the share of JD skills also present in the CV,
// as a percentage. Defined as 0 when the JD mentions no known skills.
func SkillMatchPercent(cvSkills, jdSkills map[string]struct{}) float64 {
	if len(jdSkills) == 0 {
		return 0
	}

	matched := 0
	for skill := range jdSkills {
		if _, ok := cvSkills[skill]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(jdSkills)) * 100
}

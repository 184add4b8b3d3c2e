package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// rolePattern scores one detectable role by its signal keywords. Patterns
// are ordered; the first highest-scoring role wins.
type rolePattern struct {
	role     string
	keywords []string
}

var rolePatterns = []rolePattern{
	{"Frontend Developer", []string{"frontend", "react", "vue", "angular", "html", "css", "typescript", "jsx"}},
	{"Backend Developer", []string{"backend", "fastapi", "django", "node.js", "express", "java", "spring", "microservice"}},
	{"Full Stack Developer", []string{"full stack", "mern", "mean", "full-stack"}},
	{"Data Scientist", []string{"data scientist", "data science", "machine learning", "ml", "nlp", "pandas", "numpy", "scikit"}},
	{"ML Engineer", []string{"ml engineer", "machine learning engineer", "mlops", "tensorflow", "pytorch"}},
	{"DevOps Engineer", []string{"devops", "kubernetes", "docker", "ci/cd", "jenkins", "terraform"}},
	{"Cloud Engineer", []string{"cloud engineer", "aws", "azure", "gcp", "cloud architect"}},
	{"Database Administrator", []string{"database", "dba", "sql", "mongodb", "postgresql"}},
	{"Solutions Architect", []string{"architect", "solution architect", "system design"}},
	{"QA Engineer", []string{"qa engineer", "qa", "testing", "selenium", "test automation"}},
}

// GuessRole detects the most likely current role from resume text by
// counting keyword hits per role. Returns "" when nothing matches.
func GuessRole(text string) string {
	lower := strings.ToLower(text)

	bestRole := ""
	bestScore := 0
	for _, p := range rolePatterns {
		score := 0
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestRole = p.role
		}
	}
	return bestRole
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s+years?(?:\s+of)?\s+experience`),
	regexp.MustCompile(`(?:with|over|about|around|approximately)\s+(\d+)\s+years?`),
	regexp.MustCompile(`(\d+)\s+year\+`),
	regexp.MustCompile(`total\s+(\d+)\s+years?`),
}

// ExperienceYears extracts a stated years-of-experience figure from resume
// text. Values outside (0, 70] are discarded as noise. Returns 0 when no
// pattern matches.
func ExperienceYears(text string) int {
	lower := strings.ToLower(text)
	for _, re := range experiencePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > 0 && years <= 70 {
			return years
		}
	}
	return 0
}

package discovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

type scoredKeyword struct {
	keyword string
	scores  map[string]int
}

// interestKeywords scores roles from the technology-interest answer (Q1,
// weight 3). First matching keyword wins.
var interestKeywords = []scoredKeyword{
	{"website", map[string]int{"Frontend Developer": 3, "Full Stack Developer": 2, "Backend Developer": 1}},
	{"web", map[string]int{"Frontend Developer": 3, "Full Stack Developer": 2, "Backend Developer": 1}},
	{"mobile", map[string]int{"Mobile Developer": 3, "Full Stack Developer": 1}},
	{"data", map[string]int{"Data Analyst": 3, "Data Scientist": 2}},
	{"analytics", map[string]int{"Data Analyst": 3, "Data Scientist": 2}},
	{"design", map[string]int{"UI/UX Designer": 3, "Frontend Developer": 2}},
	{"interface", map[string]int{"UI/UX Designer": 3, "Frontend Developer": 2}},
	{"database", map[string]int{"Backend Developer": 3, "Full Stack Developer": 2}},
	{"backend", map[string]int{"Backend Developer": 3, "Full Stack Developer": 2}},
	{"ai", map[string]int{"ML Engineer": 3, "Data Scientist": 2}},
	{"machine learning", map[string]int{"ML Engineer": 3, "Data Scientist": 2}},
	{"cloud", map[string]int{"DevOps Engineer": 3, "Cloud Architect": 2, "Backend Developer": 1}},
	{"devops", map[string]int{"DevOps Engineer": 3, "Cloud Architect": 2}},
	{"security", map[string]int{"Backend Developer": 2, "DevOps Engineer": 2}},
	{"game", map[string]int{"Frontend Developer": 2, "Full Stack Developer": 1}},
}

// focusKeywords scores roles from the technical-focus answer (Q5, weight 3).
var focusKeywords = []scoredKeyword{
	{"frontend", map[string]int{"Frontend Developer": 3, "UI/UX Designer": 2}},
	{"backend", map[string]int{"Backend Developer": 3, "DevOps Engineer": 1}},
	{"full", map[string]int{"Full Stack Developer": 3}},
	{"data pipelines", map[string]int{"Data Analyst": 3, "Data Scientist": 2}},
	{"machine learning", map[string]int{"ML Engineer": 3, "Data Scientist": 2}},
	{"infrastructure", map[string]int{"DevOps Engineer": 3, "Cloud Architect": 2}},
	{"mobile", map[string]int{"Mobile Developer": 3}},
}

// skillSignal adds points to roles for each technology mentioned in the
// technical-skills answer (Q2). All matching signals accumulate.
type skillSignal struct {
	keywords []string
	scores   map[string]int
}

var skillSignals = []skillSignal{
	{[]string{"html", "css", "javascript"}, map[string]int{"Frontend Developer": 3, "Full Stack Developer": 2}},
	{[]string{"react", "vue", "angular"}, map[string]int{"Frontend Developer": 3}},
	{[]string{"python"}, map[string]int{"Backend Developer": 2, "Data Scientist": 2, "ML Engineer": 1}},
	{[]string{"node.js"}, map[string]int{"Backend Developer": 3, "Full Stack Developer": 2}},
	{[]string{"sql", "database"}, map[string]int{"Backend Developer": 2, "Data Analyst": 2}},
	{[]string{"docker", "kubernetes"}, map[string]int{"DevOps Engineer": 3}},
	{[]string{"aws", "azure", "gcp"}, map[string]int{"Cloud Architect": 3, "DevOps Engineer": 2}},
	{[]string{"tensorflow", "pytorch"}, map[string]int{"ML Engineer": 3}},
}

// ruleBased scores roles directly from answer keywords when the LLM path
// is unavailable or produced an unusable recommendation.
func (s *Service) ruleBased(answers map[int]any, available []string) types.RoleDiscoveryResult {
	scores := make(map[string]int)

	interest := strings.ToLower(answerString(answers[1]))
	for _, entry := range interestKeywords {
		if strings.Contains(interest, entry.keyword) {
			for role, score := range entry.scores {
				scores[role] += score * 3
			}
			break
		}
	}

	skills := strings.ToLower(answerString(answers[2]))
	for _, signal := range skillSignals {
		for _, kw := range signal.keywords {
			if strings.Contains(skills, kw) {
				for role, score := range signal.scores {
					scores[role] += score
				}
				break
			}
		}
	}

	focus := strings.ToLower(answerString(answers[5]))
	for _, entry := range focusKeywords {
		if strings.Contains(focus, entry.keyword) {
			for role, score := range entry.scores {
				scores[role] += score * 3
			}
			break
		}
	}

	math := strings.ToLower(answerString(answers[10]))
	if strings.Contains(math, "strong") || strings.Contains(math, "expert") {
		scores["Data Scientist"] += 4
		scores["ML Engineer"] += 4
	} else if strings.Contains(math, "not comfortable") || strings.Contains(math, "avoid") {
		scores["Frontend Developer"] += 4
		scores["UI/UX Designer"] += 4
	}

	recommended := "Full Stack Developer"
	confidence := 70
	if len(scores) > 0 {
		ranked := rankRoles(scores)
		recommended = ranked[0]
		confidence = 60 + scores[recommended]*2
		if confidence > 95 {
			confidence = 95
		}
	}
	if !containsFold(available, recommended) && len(available) > 0 {
		recommended = available[0]
	}

	var alternatives []string
	for _, role := range rankRoles(scores) {
		if role != recommended && containsFold(available, role) {
			alternatives = append(alternatives, role)
		}
		if len(alternatives) == 2 {
			break
		}
	}

	requiredSkills := s.catalog.RequiredSkills(recommended)
	if len(requiredSkills) > 8 {
		requiredSkills = requiredSkills[:8]
	}

	skillLevel := determineSkillLevel(answers)

	coreSkills := "fundamental technologies"
	if len(requiredSkills) > 0 {
		top := requiredSkills
		if len(top) > 3 {
			top = top[:3]
		}
		coreSkills = strings.Join(top, ", ")
	}

	interestSummary := interest
	if interestSummary == "" {
		interestSummary = "technology"
	} else if len(interestSummary) > 40 {
		interestSummary = interestSummary[:40]
	}

	return types.RoleDiscoveryResult{
		Success:         true,
		RecommendedRole: recommended,
		Confidence:      confidence,
		SkillLevel:      skillLevel,
		Explanation: fmt.Sprintf(
			"Based on your interests in %s and your technical skills, %s is an excellent match! This role aligns well with your career goals and offers strong job market demand.",
			interestSummary, recommended),
		KeyStrengths: []string{
			"Clear interest alignment with role requirements",
			"Relevant technical skills or strong learning motivation",
			"Career goals match well with role progression path",
		},
		MatchFactors: map[string]int{
			"technical_alignment": capAt95(confidence + 5),
			"interest_match":      capAt95(confidence),
			"career_goals_fit":    capAt95(confidence - 5),
		},
		AlternativeRoles: alternatives,
		RequiredSkills:   requiredSkills,
		NextSteps: []string{
			fmt.Sprintf("Master the core skills for %s: %s", recommended, coreSkills),
			"Build 2-3 portfolio projects showcasing your abilities",
			"Follow your personalized learning roadmap",
			"Network with professionals in the field",
		},
		LearningPath: fmt.Sprintf(
			"Start with fundamentals, build projects, contribute to open source, and prepare for interviews in %s", recommended),
		TimeToJobReady: estimateTimeToReady(skillLevel),
	}
}

// rankRoles orders roles by score descending with alphabetical
// tie-breaking for determinism.
func rankRoles(scores map[string]int) []string {
	roles := make([]string, 0, len(scores))
	for role := range scores {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		if scores[roles[i]] != scores[roles[j]] {
			return scores[roles[i]] > scores[roles[j]]
		}
		return roles[i] < roles[j]
	})
	return roles
}

func containsFold(roles []string, candidate string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, candidate) {
			return true
		}
	}
	return false
}

func capAt95(v int) int {
	if v > 95 {
		return 95
	}
	return v
}

// determineSkillLevel reads the experience-level answer (Q4).
func determineSkillLevel(answers map[int]any) string {
	answer := strings.ToLower(answerString(answers[4]))
	switch {
	case strings.Contains(answer, "complete beginner") || strings.Contains(answer, "just exploring"):
		return "beginner"
	case strings.Contains(answer, "advanced") || strings.Contains(answer, "professional") || strings.Contains(answer, "expert"):
		return "advanced"
	default:
		return "intermediate"
	}
}

func estimateTimeToReady(skillLevel string) string {
	switch skillLevel {
	case "advanced":
		return "1-3 months (ready for interviews)"
	case "intermediate":
		return "3-6 months (build portfolio)"
	default:
		return "6-12 months (learn fundamentals)"
	}
}

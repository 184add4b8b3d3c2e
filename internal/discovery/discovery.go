// Package discovery recommends a career role from a weighted questionnaire.
// Analysis prefers a Gemini JSON completion over the available catalog
// roles; any failure there drops to rule-based keyword scoring so the
// endpoint always answers.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/jonathan/career-advisor/internal/types"
)

// defaultRoles backs analysis when the catalog carries no roles.
var defaultRoles = []string{
	"Frontend Developer", "Backend Developer", "Full Stack Developer",
	"Data Scientist", "ML Engineer", "DevOps Engineer",
	"Mobile Developer", "Data Analyst", "Cloud Architect",
	"UI/UX Designer", "QA Engineer",
}

// Service analyzes questionnaire answers into a role recommendation.
type Service struct {
	client  llm.Client
	catalog *catalog.Catalog
}

// NewService builds the discovery service. A nil client means every
// analysis uses the rule-based path.
func NewService(client llm.Client, cat *catalog.Catalog) *Service {
	return &Service{client: client, catalog: cat}
}

// Analyze recommends a role from the user's answers.
func (s *Service) Analyze(ctx context.Context, answers map[int]any) types.RoleDiscoveryResult {
	available := s.availableRoles()

	if s.client != nil {
		if result, ok := s.analyzeWithLLM(ctx, answers, available); ok {
			return result
		}
	}
	return s.ruleBased(answers, available)
}

func (s *Service) availableRoles() []string {
	if roles := s.catalog.Roles(); len(roles) > 0 {
		return roles
	}
	return defaultRoles
}

// aiRecommendation mirrors the JSON contract in the analysis prompt.
type aiRecommendation struct {
	RecommendedRole  string         `json:"recommended_role"`
	Confidence       int            `json:"confidence"`
	SkillLevel       string         `json:"skill_level"`
	Explanation      string         `json:"explanation"`
	KeyStrengths     []string       `json:"key_strengths"`
	MatchFactors     map[string]int `json:"match_factors"`
	AlternativeRoles []string       `json:"alternative_roles"`
	NextSteps        []string       `json:"next_steps"`
	LearningPath     string         `json:"learning_path"`
	TimeToJobReady   string         `json:"time_to_job_ready"`
}

func (s *Service) analyzeWithLLM(ctx context.Context, answers map[int]any, available []string) (types.RoleDiscoveryResult, bool) {
	rolesJSON, _ := json.MarshalIndent(available, "", "  ")

	prompt := prompts.Format(prompts.MustGet("discovery.json", "analyze"), map[string]string{
		"Roles":   string(rolesJSON),
		"Answers": formatAnswers(answers),
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		log.Printf("[discovery] analysis generation failed: %v", err)
		return types.RoleDiscoveryResult{}, false
	}

	var rec aiRecommendation
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &rec); err != nil {
		log.Printf("[discovery] failed to parse analysis response: %v", err)
		return types.RoleDiscoveryResult{}, false
	}

	matched := matchRoleName(rec.RecommendedRole, available)
	if matched == "" {
		log.Printf("[discovery] recommended role %q not in catalog, using rule-based fallback", rec.RecommendedRole)
		return types.RoleDiscoveryResult{}, false
	}

	return types.RoleDiscoveryResult{
		Success:          true,
		RecommendedRole:  matched,
		Confidence:       rec.Confidence,
		SkillLevel:       rec.SkillLevel,
		Explanation:      rec.Explanation,
		KeyStrengths:     rec.KeyStrengths,
		MatchFactors:     rec.MatchFactors,
		AlternativeRoles: rec.AlternativeRoles,
		RequiredSkills:   s.catalog.RequiredSkills(matched),
		NextSteps:        rec.NextSteps,
		LearningPath:     rec.LearningPath,
		TimeToJobReady:   rec.TimeToJobReady,
	}, true
}

// formatAnswers renders each answered question with its category and
// weight so the model can weigh responses the way the questionnaire does.
func formatAnswers(answers map[int]any) string {
	questions := Questions()
	byID := make(map[int]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var sb strings.Builder
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("[Q%d] [%s] (Weight: %d/3)\n", id, strings.ToUpper(q.Category), q.Weight))
		sb.WriteString("Question: " + q.Question + "\n")
		sb.WriteString("User's Answer: " + answerString(answers[id]) + "\n\n")
	}
	return sb.String()
}

// answerString flattens a single answer, which is a string for single
// choice questions and a list for multi-select ones.
func answerString(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		return strings.Join(a, ", ")
	case []any:
		parts := make([]string, 0, len(a))
		for _, item := range a {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// matchRoleName resolves a model-suggested role name against the catalog:
// exact match ignoring case first, then bidirectional substring.
func matchRoleName(candidate string, available []string) string {
	if candidate == "" {
		return ""
	}
	candidateLower := strings.ToLower(candidate)

	for _, role := range available {
		if candidateLower == strings.ToLower(role) {
			return role
		}
	}
	for _, role := range available {
		roleLower := strings.ToLower(role)
		if strings.Contains(roleLower, candidateLower) || strings.Contains(candidateLower, roleLower) {
			return role
		}
	}
	return ""
}

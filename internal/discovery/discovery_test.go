package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                       { return nil }

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]string{"python", "sql", "react", "docker"},
		[]catalog.RoleSkills{
			{Role: "Frontend Developer", RequiredSkills: []string{"html", "css", "javascript", "react"}},
			{Role: "Backend Developer", RequiredSkills: []string{"python", "sql", "docker"}},
			{Role: "Full Stack Developer", RequiredSkills: []string{"javascript", "python", "sql"}},
			{Role: "Data Scientist", RequiredSkills: []string{"python", "statistics"}},
			{Role: "ML Engineer", RequiredSkills: []string{"python", "tensorflow"}},
			{Role: "DevOps Engineer", RequiredSkills: []string{"docker", "kubernetes"}},
			{Role: "UI/UX Designer", RequiredSkills: []string{"figma"}},
		},
		nil,
		catalog.Fallbacks{},
	)
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 12)

	for i, q := range qs {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Options)
		assert.GreaterOrEqual(t, q.Weight, 1)
		assert.LessOrEqual(t, q.Weight, 3)
	}

	assert.True(t, qs[1].MultiSelect)
}

func TestAnalyze_RuleBasedWebInterest(t *testing.T) {
	svc := NewService(nil, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		1: "Building websites and web applications",
		2: []string{"HTML, CSS, JavaScript", "React, Vue, or Angular"},
		5: "What users see (Frontend - UI/UX)",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "Frontend Developer", result.RecommendedRole)
	assert.GreaterOrEqual(t, result.Confidence, 60)
	assert.LessOrEqual(t, result.Confidence, 95)
	assert.NotEmpty(t, result.RequiredSkills)
	assert.NotEmpty(t, result.NextSteps)
}

func TestAnalyze_RuleBasedDataInterest(t *testing.T) {
	svc := NewService(nil, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		1:  "Working with data and analytics",
		5:  "Machine Learning models and AI",
		10: "Strong level - enjoy probability, statistics, and calculus",
	})

	// ML Engineer: focus 3*3 + math 4 = 13; Data Scientist: interest 2*3 + focus 2*3 + 4 = 16.
	// Data Analyst: interest 3*3 = 9.
	assert.Equal(t, "Data Scientist", result.RecommendedRole)
	assert.Contains(t, result.AlternativeRoles, "ML Engineer")
}

func TestAnalyze_RuleBasedNoSignalsDefaults(t *testing.T) {
	svc := NewService(nil, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		6: "Any industry - I'm flexible",
	})

	assert.Equal(t, "Full Stack Developer", result.RecommendedRole)
	assert.Equal(t, 70, result.Confidence)
}

func TestAnalyze_MathAvoidanceBoostsDesignRoles(t *testing.T) {
	svc := NewService(nil, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		1:  "Designing user interfaces and experiences",
		10: "Not comfortable - prefer to avoid heavy math",
	})

	assert.Equal(t, "UI/UX Designer", result.RecommendedRole)
}

func TestAnalyze_SkillLevel(t *testing.T) {
	svc := NewService(nil, testCatalog())

	tests := []struct {
		answer string
		want   string
		ready  string
	}{
		{"Complete beginner - just exploring", "beginner", "6-12 months (learn fundamentals)"},
		{"Intermediate - can build simple projects", "intermediate", "3-6 months (build portfolio)"},
		{"Expert - have 3+ years professional experience", "advanced", "1-3 months (ready for interviews)"},
	}
	for _, tt := range tests {
		result := svc.Analyze(context.Background(), map[int]any{4: tt.answer})
		assert.Equal(t, tt.want, result.SkillLevel, tt.answer)
		assert.Equal(t, tt.ready, result.TimeToJobReady, tt.answer)
	}
}

func TestAnalyze_LLMPath(t *testing.T) {
	client := &fakeClient{response: `{
		"recommended_role": "backend developer",
		"confidence": 88,
		"skill_level": "intermediate",
		"explanation": "You like systems.",
		"key_strengths": ["APIs"],
		"match_factors": {"technical_alignment": 90},
		"alternative_roles": ["Full Stack Developer"],
		"next_steps": ["Learn SQL"],
		"learning_path": "Start with Python",
		"time_to_job_ready": "3-6 months"
	}`}
	svc := NewService(client, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		1: "Managing databases and backend systems",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "Backend Developer", result.RecommendedRole)
	assert.Equal(t, 88, result.Confidence)
	assert.NotEmpty(t, result.RequiredSkills)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "[Q1]")
	assert.Contains(t, client.prompts[0], "Managing databases and backend systems")
}

func TestAnalyze_LLMBadJSONFallsBack(t *testing.T) {
	client := &fakeClient{response: "not json at all"}
	svc := NewService(client, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		1: "Building websites and web applications",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "Frontend Developer", result.RecommendedRole)
}

func TestAnalyze_LLMUnknownRoleFallsBack(t *testing.T) {
	client := &fakeClient{response: `{"recommended_role": "Astronaut", "confidence": 99}`}
	svc := NewService(client, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		1: "Building websites and web applications",
	})

	assert.Equal(t, "Frontend Developer", result.RecommendedRole)
}

func TestAnalyze_LLMErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	svc := NewService(client, testCatalog())

	result := svc.Analyze(context.Background(), map[int]any{
		1: "Cloud infrastructure and DevOps",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "DevOps Engineer", result.RecommendedRole)
}

func TestMatchRoleName(t *testing.T) {
	available := []string{"Frontend Developer", "Backend Developer", "Data Scientist"}

	tests := []struct {
		candidate string
		want      string
	}{
		{"Backend Developer", "Backend Developer"},
		{"backend developer", "Backend Developer"},
		{"Backend", "Backend Developer"},
		{"Senior Data Scientist", "Data Scientist"},
		{"Astronaut", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchRoleName(tt.candidate, available), tt.candidate)
	}
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "Python", answerString("Python"))
	assert.Equal(t, "a, b", answerString([]string{"a", "b"}))
	assert.Equal(t, "a, b", answerString([]any{"a", "b"}))
	assert.Equal(t, "7", answerString(7))
}

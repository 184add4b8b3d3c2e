package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/types"
)

// fakeClient records prompts and returns canned responses.
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
		[]string{"python", "sql", "react"},
		[]catalog.RoleSkills{
			{Role: "Backend Developer", RequiredSkills: []string{"python", "sql"}},
		},
		nil,
		catalog.Fallbacks{},
	)
}

func TestChat_Success(t *testing.T) {
	client := &fakeClient{response: "You should start with Python."}
	svc := NewService(client, testCatalog())

	resp := svc.Chat(context.Background(), "Where do I start?", "Backend Developer")

	assert.True(t, resp.Success)
	assert.Equal(t, "You should start with Python.", resp.Response)
	assert.Equal(t, "Backend Developer", resp.UserRole)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Where do I start?")
	assert.Contains(t, client.prompts[0], "User's Current/Target Role: Backend Developer")
	assert.Contains(t, client.prompts[0], "Backend Developer")
}

func TestChat_NoRoleOmitsRoleLine(t *testing.T) {
	client := &fakeClient{response: "ok"}
	svc := NewService(client, testCatalog())

	svc.Chat(context.Background(), "hello", "")

	require.Len(t, client.prompts, 1)
	assert.NotContains(t, client.prompts[0], "User's Current/Target Role")
}

func TestChat_ErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	svc := NewService(client, testCatalog())

	resp := svc.Chat(context.Background(), "hi", "")

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Response, "having trouble")
}

func TestChat_NilClient(t *testing.T) {
	svc := NewService(nil, testCatalog())

	resp := svc.Chat(context.Background(), "hi", "")
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Response)
}

func TestChat_EmptyCompletion(t *testing.T) {
	client := &fakeClient{response: "   "}
	svc := NewService(client, testCatalog())

	resp := svc.Chat(context.Background(), "hi", "")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Response, "rephrasing")
}

func TestTranslate_Success(t *testing.T) {
	client := &fakeClient{response: "Hola"}
	svc := NewService(client, testCatalog())

	resp := svc.Translate(context.Background(), types.TranslationRequest{
		Text:           "Hello",
		TargetLanguage: "es",
	})

	assert.True(t, resp.Success)
	assert.Equal(t, "Hola", resp.TranslatedText)
	assert.Equal(t, "en", resp.SourceLanguage)
	assert.Equal(t, "es", resp.TargetLanguage)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "English")
	assert.Contains(t, client.prompts[0], "Spanish")
}

func TestTranslate_FailureReturnsOriginal(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	svc := NewService(client, testCatalog())

	resp := svc.Translate(context.Background(), types.TranslationRequest{
		Text:           "Hello",
		TargetLanguage: "fr",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, "Hello", resp.TranslatedText)
}

func TestTranslate_UnknownLanguageCodePassesThrough(t *testing.T) {
	client := &fakeClient{response: "translated"}
	svc := NewService(client, testCatalog())

	svc.Translate(context.Background(), types.TranslationRequest{
		Text:           "Hello",
		TargetLanguage: "xx",
	})

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "xx")
}

func TestExplainRoadmap_ParsesNarrativeAndIdeas(t *testing.T) {
	completion := strings.Join([]string{
		"Your journey starts with the fundamentals before moving deeper.",
		"Each phase builds on the previous one, matching market demand.",
		"The final phase prepares you for production systems.",
		"And a closing thought on consistency.",
		"Project ideas:",
		"- Build a REST API with auth",
		"- Create a dashboard for job trends",
	}, "\n")
	client := &fakeClient{response: completion}
	svc := NewService(client, testCatalog())

	result := svc.ExplainRoadmap(context.Background(), types.Roadmap{TargetRole: "Backend Developer"})

	assert.Contains(t, result.Narrative, "fundamentals")
	require.NotEmpty(t, result.ProjectIdeas)
	assert.LessOrEqual(t, len(result.ProjectIdeas), 3)
}

func TestExplainRoadmap_NilClientFallback(t *testing.T) {
	svc := NewService(nil, testCatalog())

	result := svc.ExplainRoadmap(context.Background(), types.Roadmap{})

	assert.NotEmpty(t, result.Narrative)
	assert.Len(t, result.ProjectIdeas, 3)
}

func TestExplainRoadmap_ErrorFallback(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	svc := NewService(client, testCatalog())

	result := svc.ExplainRoadmap(context.Background(), types.Roadmap{})

	assert.Equal(t, fallbackNarrative, result.Narrative)
	assert.Len(t, result.ProjectIdeas, 3)
}

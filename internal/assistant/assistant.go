// Package assistant provides the Gemini-backed career chatbot, roadmap
// narrative explanation, and translation. Every operation degrades to a
// static response instead of erroring when the LLM is unavailable.
package assistant

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	fallbackChatReply = "I apologize, but I'm having trouble processing your request right now. Please try again."
	emptyChatReply    = "I received your question but couldn't generate a response. Please try rephrasing your question."

	fallbackNarrative = "This roadmap progresses from fundamentals to advanced topics based on market demand and role requirements."
)

var fallbackProjectIdeas = []string{
	"Build a full-stack demo app",
	"Implement a data pipeline",
	"Deploy a model with CI/CD",
}

// languageNames maps ISO language codes to names for translation prompts.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"zh": "Chinese",
	"ja": "Japanese",
	"hi": "Hindi",
	"ar": "Arabic",
	"pt": "Portuguese",
	"ru": "Russian",
}

// Service answers career questions grounded in the platform catalogs.
type Service struct {
	client  llm.Client
	catalog *catalog.Catalog
	context string
}

// NewService builds the assistant. A nil client is valid and puts every
// operation on its static fallback path.
func NewService(client llm.Client, cat *catalog.Catalog) *Service {
	return &Service{
		client:  client,
		catalog: cat,
		context: buildPlatformContext(cat),
	}
}

// buildPlatformContext assembles the grounding context from the catalogs so
// the chatbot only speaks about data the platform actually has.
func buildPlatformContext(cat *catalog.Catalog) string {
	roles, _ := json.MarshalIndent(cat.Roles(), "", "  ")

	skills := cat.Skills()
	if len(skills) > 20 {
		skills = skills[:20]
	}
	skillsJSON, _ := json.MarshalIndent(skills, "", "  ")

	roleSkills := make(map[string][]string)
	for i, role := range cat.Roles() {
		if i == 3 {
			break
		}
		roleSkills[role] = cat.RequiredSkills(role)
	}
	roleSkillsJSON, _ := json.MarshalIndent(roleSkills, "", "  ")

	template := prompts.MustGet("assistant.json", "chat_context")
	return prompts.Format(template, map[string]string{
		"Roles":      string(roles),
		"Skills":     string(skillsJSON),
		"RoleSkills": string(roleSkillsJSON),
	})
}

// Chat answers a user message. The user's current or target role, when
// known, is threaded into the prompt for tailored answers.
func (s *Service) Chat(ctx context.Context, message, userRole string) types.ChatResponse {
	if s.client == nil {
		return types.ChatResponse{Success: false, Response: fallbackChatReply, UserRole: userRole}
	}

	roleLine := ""
	if userRole != "" {
		roleLine = "User's Current/Target Role: " + userRole + "\n\n"
	}

	prompt := prompts.Format(prompts.MustGet("assistant.json", "chat"), map[string]string{
		"Context":  s.context,
		"RoleLine": roleLine,
		"Message":  message,
	})

	reply, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[assistant] chat generation failed: %v", err)
		return types.ChatResponse{Success: false, Response: fallbackChatReply, UserRole: userRole}
	}
	if strings.TrimSpace(reply) == "" {
		return types.ChatResponse{Success: false, Response: emptyChatReply, UserRole: userRole}
	}

	return types.ChatResponse{Success: true, Response: reply, UserRole: userRole}
}

// Translate translates text between languages. On failure the original
// text comes back with Success false so the UI can still render something.
func (s *Service) Translate(ctx context.Context, req types.TranslationRequest) types.TranslationResponse {
	source := req.SourceLanguage
	if source == "" {
		source = "en"
	}
	resp := types.TranslationResponse{
		TranslatedText: req.Text,
		SourceLanguage: source,
		TargetLanguage: req.TargetLanguage,
	}
	if s.client == nil {
		return resp
	}

	prompt := prompts.Format(prompts.MustGet("assistant.json", "translate"), map[string]string{
		"SourceLanguage": languageName(source),
		"TargetLanguage": languageName(req.TargetLanguage),
		"Text":           req.Text,
	})

	translated, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil || strings.TrimSpace(translated) == "" {
		if err != nil {
			log.Printf("[assistant] translation failed: %v", err)
		}
		return resp
	}

	resp.Success = true
	resp.TranslatedText = strings.TrimSpace(translated)
	return resp
}

// ExplainRoadmap produces a short narrative and three project ideas for a
// roadmap.
func (s *Service) ExplainRoadmap(ctx context.Context, rm types.Roadmap) types.RoadmapExplanation {
	fallback := types.RoadmapExplanation{
		Narrative:    fallbackNarrative,
		ProjectIdeas: fallbackProjectIdeas,
	}
	if s.client == nil {
		return fallback
	}

	roadmapJSON, err := json.Marshal(rm)
	if err != nil {
		return fallback
	}

	prompt := prompts.Format(prompts.MustGet("assistant.json", "explain_roadmap"), map[string]string{
		"Roadmap": string(roadmapJSON),
	})

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.Printf("[assistant] roadmap explanation failed: %v", err)
		}
		return fallback
	}

	narrative, ideas := splitExplanation(text)
	if len(ideas) == 0 {
		ideas = fallbackProjectIdeas
	}
	return types.RoadmapExplanation{Narrative: narrative, ProjectIdeas: ideas}
}

// splitExplanation separates the narrative paragraph from bullet-style
// project ideas in the completion.
func splitExplanation(text string) (string, []string) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.Trim(l, "-*• \t")
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) <= 3 {
		ideas := lines
		if len(ideas) > 3 {
			ideas = ideas[:3]
		}
		return strings.TrimSpace(text), ideas
	}

	var para, bullets []string
	inBullets := false
	for _, l := range lines {
		lower := strings.ToLower(l)
		if inBullets || strings.Contains(lower, "project") || strings.Contains(lower, "idea") ||
			strings.Contains(lower, "build") || strings.Contains(lower, "create") || strings.Contains(lower, "develop") {
			inBullets = true
			bullets = append(bullets, l)
		} else {
			para = append(para, l)
		}
	}

	narrative := strings.Join(para, " ")
	if narrative == "" {
		narrative = strings.TrimSpace(text)
	}
	ideas := bullets
	if len(ideas) > 3 {
		ideas = ideas[:3]
	}
	if len(ideas) == 0 && len(lines) >= 3 {
		ideas = lines[len(lines)-3:]
	}
	return narrative, ideas
}

func languageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

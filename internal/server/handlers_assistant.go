package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-advisor/internal/discovery"
	"github.com/jonathan/career-advisor/internal/types"
)

// handleChat answers a career question grounded in the platform catalogs.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.Chat(r.Context(), req.Message, req.UserRole))
}

// handleTranslate translates UI or roadmap text between languages.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req types.TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.Translate(r.Context(), req))
}

// handleExplainRoadmap produces a narrative explanation and project ideas for
// a roadmap.
func (s *Server) handleExplainRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.ExplainRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.ExplainRoadmap(r.Context(), req.Roadmap))
}

// handleDiscoveryQuestions returns the role-discovery questionnaire.
func (s *Server) handleDiscoveryQuestions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": discovery.Questions(),
	})
}

// handleDiscoveryAnalyze recommends a role from questionnaire answers.
func (s *Server) handleDiscoveryAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.RoleDiscoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "answers are required")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.discovery.Analyze(r.Context(), req.Answers))
}

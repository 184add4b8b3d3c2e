package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/roadmap"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/types"
)

// handleAnalyzeResume extracts skills, a role guess, and years of experience
// from resume text. When a valid bearer token accompanies the request the
// analysis is also persisted for the user.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	analysis := types.ResumeAnalysis{
		Skills:          s.extractor.Extract(req.ResumeText),
		CurrentRole:     extract.GuessRole(req.ResumeText),
		ExperienceYears: extract.ExperienceYears(req.ResumeText),
	}

	// Persistence is best-effort; analysis still succeeds without it.
	if userID := s.optionalUserID(r); userID != uuid.Nil {
		if err := s.store.SaveAnalysis(r.Context(), userID, analysis); err != nil {
			log.Printf("[analyze] failed to persist analysis for %s: %v", userID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleMarketTrends returns trending skills and market statistics for a role.
func (s *Server) handleMarketTrends(w http.ResponseWriter, r *http.Request) {
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	if role == "" {
		s.errorResponse(w, http.StatusBadRequest, "role query parameter is required")
		return
	}
	location := strings.TrimSpace(r.URL.Query().Get("location"))

	resp := types.MarketTrendsResponse{
		TrendingSkills: s.trends.TrendingSkills(r.Context(), role, location),
		MarketStats:    s.trends.MarketStatistics(r.Context(), role, location),
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGenerateRoadmap builds a three-phase learning roadmap toward a target
// role. Current skills come from the request directly or are extracted from
// resume text when only that is given.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	current := req.CurrentSkills
	if len(current) == 0 {
		if strings.TrimSpace(req.ResumeText) == "" {
			s.errorResponse(w, http.StatusBadRequest, "current_skills or resume_text is required")
			return
		}
		current = s.extractor.Extract(req.ResumeText)
	}

	trending := s.trends.TrendingSkills(r.Context(), req.TargetRole, req.Location)
	rm := roadmap.Build(current, req.TargetRole, trending, s.catalog)

	// Persistence is best-effort for authenticated callers.
	if userID := s.optionalUserID(r); userID != uuid.Nil {
		if err := s.store.SaveRoadmap(r.Context(), userID, rm.TargetRole, rm); err != nil {
			log.Printf("[roadmap] failed to persist roadmap for %s: %v", userID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, rm)
}

// handleSaveRoadmap stores a roadmap document for the authenticated user.
func (s *Server) handleSaveRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var rm types.Roadmap
	if err := json.NewDecoder(r.Body).Decode(&rm); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(rm.TargetRole) == "" {
		s.errorResponse(w, http.StatusBadRequest, "target_role is required")
		return
	}

	if err := s.store.SaveRoadmap(r.Context(), userID, rm.TargetRole, rm); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save roadmap")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Roadmap saved",
	})
}

// handleLatestRoadmap returns the authenticated user's most recent roadmap.
func (s *Server) handleLatestRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	content, err := s.store.LatestRoadmap(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load roadmap")
		return
	}
	if content == nil {
		s.errorResponse(w, http.StatusNotFound, "No roadmap found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Printf("Error writing roadmap response: %v", err)
	}
}

// handleLatestAnalysis returns the authenticated user's most recent resume analysis.
func (s *Server) handleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	content, err := s.store.LatestAnalysis(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load analysis")
		return
	}
	if content == nil {
		s.errorResponse(w, http.StatusNotFound, "No analysis found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Printf("Error writing analysis response: %v", err)
	}
}

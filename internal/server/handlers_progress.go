package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/career-advisor/internal/progress"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/types"
)

// handleMarkComplete marks a course as completed within a roadmap phase and
// recalculates progress.
func (s *Server) handleMarkComplete(w http.ResponseWriter, r *http.Request) {
	s.updateCourseProgress(w, r, true)
}

// handleUncomplete removes a course completion mark.
func (s *Server) handleUncomplete(w http.ResponseWriter, r *http.Request) {
	s.updateCourseProgress(w, r, false)
}

func (s *Server) updateCourseProgress(w http.ResponseWriter, r *http.Request, complete bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CourseProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	completed, storedTotals, err := s.loadProgressState(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	courseID := progress.CourseID(req.Phase, req.CourseTitle)
	if complete {
		completed = appendUnique(completed, courseID)
	} else {
		completed = remove(completed, courseID)
	}

	rm := s.loadUserRoadmap(r.Context(), userID)

	existing := make(map[string]types.PhaseProgress, len(storedTotals))
	for phase, total := range storedTotals {
		existing[phase] = types.PhaseProgress{Total: total}
	}

	phaseProgress := progress.Compute(completed, rm, req.Phase, req.PhaseTotal, existing)

	newTotals := make(map[string]int, len(phaseProgress))
	for phase, p := range phaseProgress {
		newTotals[phase] = p.Total
	}
	if err := s.store.SaveProgress(r.Context(), userID, completed, newTotals); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save progress")
		return
	}

	message := "Course marked as complete"
	if !complete {
		message = "Course marked as incomplete"
	}

	s.jsonResponse(w, http.StatusOK, types.CourseProgressResponse{
		Success:          true,
		Message:          message,
		CompletedCourses: completed,
		PhaseProgress:    phaseProgress,
		TotalProgress:    progress.Overall(phaseProgress),
	})
}

// handleProgressStatus reports the authenticated user's progress across all
// phases.
func (s *Server) handleProgressStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rec, err := s.store.GetProgress(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}
	if rec == nil {
		s.jsonResponse(w, http.StatusOK, types.CourseProgressResponse{
			Success:          true,
			CompletedCourses: []string{},
			PhaseProgress:    progress.Empty(),
			TotalProgress:    0,
		})
		return
	}

	existing := make(map[string]types.PhaseProgress, len(rec.PhaseTotals))
	for phase, total := range rec.PhaseTotals {
		existing[phase] = types.PhaseProgress{Total: total}
	}

	rm := s.loadUserRoadmap(r.Context(), userID)
	phaseProgress := progress.Compute(rec.CompletedCourses, rm, "", 0, existing)

	s.jsonResponse(w, http.StatusOK, types.CourseProgressResponse{
		Success:          true,
		CompletedCourses: rec.CompletedCourses,
		PhaseProgress:    phaseProgress,
		TotalProgress:    progress.Overall(phaseProgress),
	})
}

// loadProgressState returns the stored completed-course list and phase totals
// for a user, defaulting to empty state.
func (s *Server) loadProgressState(ctx context.Context, userID uuid.UUID) ([]string, map[string]int, error) {
	rec, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return []string{}, map[string]int{}, nil
	}
	return rec.CompletedCourses, rec.PhaseTotals, nil
}

// loadUserRoadmap fetches and parses the user's latest saved roadmap.
// Returns nil when there is none or it cannot be parsed.
func (s *Server) loadUserRoadmap(ctx context.Context, userID uuid.UUID) *types.Roadmap {
	content, err := s.store.LatestRoadmap(ctx, userID)
	if err != nil {
		log.Printf("[progress] failed to load roadmap for %s: %v", userID, err)
		return nil
	}
	if content == nil {
		return nil
	}
	var rm types.Roadmap
	if err := json.Unmarshal(content, &rm); err != nil {
		log.Printf("[progress] failed to parse stored roadmap for %s: %v", userID, err)
		return nil
	}
	return &rm
}

func appendUnique(items []string, item string) []string {
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}

func remove(items []string, item string) []string {
	result := make([]string, 0, len(items))
	for _, existing := range items {
		if existing != item {
			result = append(result, existing)
		}
	}
	return result
}

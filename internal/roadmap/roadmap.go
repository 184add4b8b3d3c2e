// Package roadmap builds three-phase learning roadmaps from a skill gap,
// ordered by market demand. Building never fails: unknown roles, missing
// trend data, and empty gaps all take defined fallback paths.
package roadmap

import (
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/types"
)

// trendingFallbackLimit caps how many trending skills seed the roadmap when
// the user already covers every required skill.
const trendingFallbackLimit = 15

// Build produces a roadmap toward targetRole. Missing skills are the role's
// required skills minus the user's current skills (case-insensitive),
// ranked by trending importance. When there is no gap, the top trending
// skills fill the phases instead so the user still gets a plan.
func Build(current []string, targetRole string, trends []types.TrendingSkill, cat *catalog.Catalog) types.Roadmap {
	required := cat.RequiredSkills(targetRole)

	currentSet := make(map[string]bool, len(current))
	for _, s := range current {
		currentSet[strings.ToLower(s)] = true
	}

	missing := make([]string, 0, len(required))
	for _, s := range required {
		if !currentSet[strings.ToLower(s)] {
			missing = append(missing, s)
		}
	}

	importance := make(map[string]float64, len(trends))
	for _, t := range trends {
		importance[strings.ToLower(t.Name)] = t.Importance
	}

	// Rank the gap by market importance, most in-demand first. Skills
	// absent from the trend data sink to the bottom in required order.
	sort.SliceStable(missing, func(i, j int) bool {
		return importance[strings.ToLower(missing[i])] > importance[strings.ToLower(missing[j])]
	})

	if len(missing) == 0 {
		missing = trendingPool(trends, cat, targetRole)
	}

	p1, p2, p3 := chunk(missing)

	advancedImportance := "Medium"
	if len(p3) == 0 {
		advancedImportance = "Low"
	}

	phases := []types.RoadmapPhase{
		buildPhase(cat, targetRole, p1, "Foundation", "0-3 months", "High"),
		buildPhase(cat, targetRole, p2, "Intermediate", "3-6 months", "Medium"),
		buildPhase(cat, targetRole, p3, "Advanced", "6-9 months", advancedImportance),
	}

	readiness, gap := Score(current, required)

	return types.Roadmap{
		Phases:             phases,
		TargetRole:         targetRole,
		CurrentSkills:      current,
		MissingSkills:      missing,
		ReadinessScore:     readiness,
		SkillGapPercentage: gap,
	}
}

/// chunk splits skills across the three phases: the first two phases each
// get floor(n/3) skills and the last phase takes the remainder.
func chunk(skills []string) (p1, p2, p3 []string) {
	n := len(skills)
	q := n / 3
	return skills[:q], skills[q : 2*q], skills[2*q:]
}

// trendingPool returns the skills that seed a roadmap when the user has no
// gap: the top trending skills, or the catalog fallback list for the role
// when no trend data exists.
func trendingPool(trends []types.TrendingSkill, cat *catalog.Catalog, targetRole string) []string {
	pool := make([]string, 0, trendingFallbackLimit)
	for _, t := range trends {
		if t.Name == "" {
			continue
		}
		pool = append(pool, t.Name)
		if len(pool) == trendingFallbackLimit {
			return pool
		}
	}
	if len(pool) > 0 {
		return pool
	}

	for _, s := range cat.FallbackSkills(targetRole) {
		pool = append(pool, extract.DisplayName(s))
	}
	return pool
}

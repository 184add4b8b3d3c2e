// Package progress computes course-completion percentages across the three
// roadmap phases. It is pure arithmetic; the server layer owns persistence.
package progress

import (
	"math"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// Phases lists the roadmap phases in order.
var Phases = []string{"foundation", "intermediate", "advanced"}

// CourseID builds the stable identifier a completed course is stored under.
func CourseID(phase, title string) string {
	return phase + "_" + title
}

// Compute recalculates per-phase progress from the completed-course list.
// The total for each phase is resolved in order of preference: the course
// count in the user's saved roadmap, then the caller-provided total for the
// phase being updated, then a previously stored total, and finally the
// completed count itself so the percentage never divides by zero.
func Compute(completed []string, rm *types.Roadmap, reqPhase string, reqTotal int, existing map[string]types.PhaseProgress) map[string]types.PhaseProgress {
	result := make(map[string]types.PhaseProgress, len(Phases))
	for _, phase := range Phases {
		var done []string
		for _, c := range completed {
			if strings.HasPrefix(c, phase+"_") {
				done = append(done, c)
			}
		}
		if done == nil {
			done = []string{}
		}

		total := 0
		if rm != nil {
			for _, p := range rm.Phases {
				if strings.EqualFold(p.Name, phase) {
					total = courseCount(p)
					break
				}
			}
		}
		if total == 0 && phase == reqPhase && reqTotal > 0 {
			total = reqTotal
		}
		if total == 0 {
			if prev, ok := existing[phase]; ok && prev.Total > 0 {
				total = prev.Total
			}
		}
		if total == 0 {
			total = len(done)
			if total < 1 {
				total = 1
			}
		}

		result[phase] = types.PhaseProgress{
			Completed: done,
			Total:     total,
			Progress:  round1(float64(len(done)) / float64(total) * 100),
		}
	}
	return result
}

// Overall averages the three phase percentages, rounded to one decimal.
func Overall(phaseProgress map[string]types.PhaseProgress) float64 {
	if len(phaseProgress) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range phaseProgress {
		sum += p.Progress
	}
	return round1(sum / float64(len(Phases)))
}

// Empty returns zeroed progress for users with no progress document.
func Empty() map[string]types.PhaseProgress {
	result := make(map[string]types.PhaseProgress, len(Phases))
	for _, phase := range Phases {
		result[phase] = types.PhaseProgress{Completed: []string{}, Total: 0, Progress: 0}
	}
	return result
}

func courseCount(phase types.RoadmapPhase) int {
	count := 0
	for _, r := range phase.Resources {
		if r.Type == "course" {
			count++
		}
	}
	return count
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

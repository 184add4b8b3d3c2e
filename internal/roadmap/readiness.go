package roadmap

import (
	"math"
	"strings"
)

// Score computes how ready the user is for a role from its required skill
// list. A required skill counts as covered when any current skill loosely
// matches it: either lowercase name contains the other. Returns the
// readiness percentage and its complement, the skill gap percentage.
//
// No required skills means there is nothing left to learn (100/0); no
// current skills against a non-empty requirement means starting from
// scratch (0/100).
func Score(current, required []string) (readiness, gap int) {
	if len(required) == 0 {
		return 100, 0
	}
	if len(current) == 0 {
		return 0, 100
	}

	currentLower := make([]string, 0, len(current))
	for _, s := range current {
		currentLower = append(currentLower, strings.ToLower(s))
	}

	matched := 0
	for _, req := range required {
		reqLower := strings.ToLower(req)
		for _, have := range currentLower {
			if strings.Contains(have, reqLower) || strings.Contains(reqLower, have) {
				matched++
				break
			}
		}
	}

	readiness = int(math.Round(float64(matched) / float64(len(required)) * 100))
	return readiness, 100 - readiness
}

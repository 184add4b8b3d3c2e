package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	coursesPerPhase  = 4
	projectsPerPhase = 2
	synthCourseLimit = 3
)

// buildPhase assembles one roadmap phase with its learning resources.
func buildPhase(cat *catalog.Catalog, role string, skills []string, name, duration, importance string) types.RoadmapPhase {
	resources := make([]types.Resource, 0, coursesPerPhase+projectsPerPhase)

	courses := cat.CoursesForRole(role)
	if len(courses) > 0 {
		// Take catalog courses in listed order so roadmap output is a
		// pure function of its inputs.
		if len(courses) > coursesPerPhase {
			courses = courses[:coursesPerPhase]
		}
		for _, c := range courses {
			resources = append(resources, types.Resource{
				Type:          "course",
				Title:         c.Title,
				Provider:      c.Provider,
				DurationHours: c.DurationHours,
				URL:           c.URL,
				Rating:        c.Rating,
				Level:         c.Level,
			})
		}
	} else {
		for _, skill := range limit(skills, synthCourseLimit) {
			resources = append(resources, types.Resource{
				Type:          "course",
				Title:         fmt.Sprintf("Master %s", skill),
				Provider:      "Udemy",
				DurationHours: 8,
				URL:           "https://www.udemy.com/courses/search/?q=" + querify(skill),
				Rating:        4.5,
				Level:         "All Levels",
			})
		}
	}

	for _, skill := range limit(skills, projectsPerPhase) {
		resources = append(resources, types.Resource{
			Type:          "project",
			Title:         fmt.Sprintf("Build a %s portfolio project", skill),
			Provider:      "Self-paced",
			DurationHours: 10,
			URL:           "https://github.com/search?q=" + querify(skill) + "+project",
		})
	}

	return types.RoadmapPhase{
		Name:            name,
		Duration:        duration,
		Skills:          skills,
		ImportanceLevel: importance,
		Resources:       resources,
	}
}

func limit(skills []string, n int) []string {
	if len(skills) > n {
		return skills[:n]
	}
	return skills
}

func querify(skill string) string {
	return strings.ReplaceAll(skill, " ", "+")
}

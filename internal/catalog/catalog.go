// Package catalog provides the static reference data the advisor pipeline
// runs on: the skill catalog, role requirements, course listings, and the
// market fallback tables. Assets are embedded at compile time and validated
// against JSON Schemas at load. A loaded Catalog is immutable, so concurrent
// readers need no locking.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/types"
)

//go:embed data/*.json
var dataFiles embed.FS

//go:embed schemas/*.json
var schemaFiles embed.FS

// Course is a catalog course listing attached to a role.
type Course struct {
	Title         string  `json:"title"`
	Provider      string  `json:"provider"`
	DurationHours int     `json:"duration_hours,omitempty"`
	URL           string  `json:"url,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Level         string  `json:"level,omitempty"`
}

// RoleSkills maps a role name to its required skills (stored lowercase).
type RoleSkills struct {
	Role           string   `json:"role"`
	RequiredSkills []string `json:"required_skills"`
}

// StatsEntry holds the numeric market statistics for one role.
type StatsEntry struct {
	JobOpenings      int `json:"job_openings"`
	AvgSalary        int `json:"avg_salary"`
	GrowthRate       int `json:"growth_rate"`
	RemotePercentage int `json:"remote_percentage"`
}

// Fallbacks holds the tables used when live market data is unavailable.
type Fallbacks struct {
	RoleSkills    map[string][]string   `json:"role_skills"`
	GenericSkills []string              `json:"generic_skills"`
	RoleStats     map[string]StatsEntry `json:"role_stats"`
	DefaultStats  StatsEntry            `json:"default_stats"`
	TopCompanies  []string              `json:"top_companies"`
	TopLocations  []string              `json:"top_locations"`
}

// Catalog is the loaded, immutable reference data set.
type Catalog struct {
	skills    []string
	roles     []RoleSkills
	courses   map[string][]Course
	fallbacks Fallbacks
}

// Load parses and validates the embedded assets and returns the catalog.
func Load() (*Catalog, error) {
	var skills []string
	if err := loadAsset("skills", &skills); err != nil {
		return nil, err
	}

	var roles []RoleSkills
	if err := loadAsset("roles", &roles); err != nil {
		return nil, err
	}

	var courses map[string][]Course
	if err := loadAsset("courses", &courses); err != nil {
		return nil, err
	}

	var fallbacks Fallbacks
	if err := loadAsset("market_fallbacks", &fallbacks); err != nil {
		return nil, err
	}

	return New(skills, roles, courses, fallbacks), nil
}

// New builds a catalog from already-parsed data. Tests use this to supply
// small fixture catalogs without touching the embedded assets.
func New(skills []string, roles []RoleSkills, courses map[string][]Course, fallbacks Fallbacks) *Catalog {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			normalized = append(normalized, s)
		}
	}
	return &Catalog{
		skills:    normalized,
		roles:     roles,
		courses:   courses,
		fallbacks: fallbacks,
	}
}

// loadAsset reads data/<name>.json, validates it against
// schemas/<name>.schema.json, and unmarshals it into v.
func loadAsset(name string, v any) error {
	doc, err := dataFiles.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("failed to read catalog asset %s: %w", name, err)
	}

	schema, err := schemaFiles.ReadFile("schemas/" + name + ".schema.json")
	if err != nil {
		return fmt.Errorf("failed to read catalog schema %s: %w", name, err)
	}

	if err := validateAsset(string(schema), string(doc)); err != nil {
		return fmt.Errorf("catalog asset %s is invalid: %w", name, err)
	}

	if err := json.Unmarshal(doc, v); err != nil {
		return fmt.Errorf("failed to parse catalog asset %s: %w", name, err)
	}
	return nil
}

// Skills returns the lowercase skill catalog.
func (c *Catalog) Skills() []string {
	out := make([]string, len(c.skills))
	copy(out, c.skills)
	return out
}

// Roles returns the names of all roles in the catalog.
func (c *Catalog) Roles() []string {
	out := make([]string, 0, len(c.roles))
	for _, r := range c.roles {
		out = append(out, r.Role)
	}
	return out
}

// RequiredSkills returns the display-cased required skills for a role.
// The lookup is case-insensitive; unknown roles return nil.
func (c *Catalog) RequiredSkills(role string) []string {
	for _, r := range c.roles {
		if strings.EqualFold(r.Role, role) {
			out := make([]string, 0, len(r.RequiredSkills))
			for _, s := range r.RequiredSkills {
				out = append(out, extract.DisplayName(s))
			}
			return out
		}
	}
	return nil
}

// CoursesForRole returns the catalog courses for a role, or nil when the
// role has no course listings.
func (c *Catalog) CoursesForRole(role string) []Course {
	if courses, ok := c.courses[role]; ok {
		return courses
	}
	for name, courses := range c.courses {
		if strings.EqualFold(name, role) {
			return courses
		}
	}
	return nil
}

// FallbackSkills returns the fallback skill list for a role when no live
// market data is available. Matching is by role keyword: first a substring
// match against the whole role, then a word-level match, then the generic
// professional skills.
func (c *Catalog) FallbackSkills(role string) []string {
	roleLower := strings.ToLower(role)
	keywords := c.sortedFallbackKeywords()

	for _, keyword := range keywords {
		if strings.Contains(roleLower, keyword) {
			return c.fallbacks.RoleSkills[keyword]
		}
	}

	for _, keyword := range keywords {
		for _, word := range strings.Fields(keyword) {
			if strings.Contains(roleLower, word) {
				return c.fallbacks.RoleSkills[keyword]
			}
		}
	}

	return c.fallbacks.GenericSkills
}

// sortedFallbackKeywords returns the fallback keywords longest first so the
// most specific keyword wins, with alphabetical order breaking ties. Map
// iteration order must not decide which table a role lands on.
func (c *Catalog) sortedFallbackKeywords() []string {
	keywords := make([]string, 0, len(c.fallbacks.RoleSkills))
	for k := range c.fallbacks.RoleSkills {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})
	return keywords
}

// Stats returns the market statistics for a role, falling back to the
// default figures for roles without a dedicated entry. Top companies and
// locations come from the shared fallback tables.
func (c *Catalog) Stats(role string) types.MarketStats {
	entry, ok := c.fallbacks.RoleStats[strings.ToLower(role)]
	if !ok {
		entry = c.fallbacks.DefaultStats
	}
	return types.MarketStats{
		JobOpenings:      entry.JobOpenings,
		AvgSalary:        entry.AvgSalary,
		GrowthRate:       entry.GrowthRate,
		RemotePercentage: entry.RemotePercentage,
		TopCompanies:     c.fallbacks.TopCompanies,
		TopLocations:     c.fallbacks.TopLocations,
	}
}

// DefaultCompanies returns the fallback top-companies list.
func (c *Catalog) DefaultCompanies() []string {
	return c.fallbacks.TopCompanies
}

// DefaultLocations returns the fallback top-locations list.
func (c *Catalog) DefaultLocations() []string {
	return c.fallbacks.TopLocations
}

package trends

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
)

type fakeFetcher struct {
	postings []Posting
	err      error
}

func (f *fakeFetcher) FetchPostings(ctx context.Context, role, location string, pages int) ([]Posting, error) {
	return f.postings, f.err
}

// exactScorer only matches when the skill literally appears in the text,
// keeping trend scoring deterministic in tests.
func exactScorer(skill, text string) int {
	if containsWord(text, skill) {
		return 100
	}
	return 0
}

func containsWord(text, skill string) bool {
	for _, tok := range splitWords(text) {
		if tok == skill {
			return true
		}
	}
	return false
}

func splitWords(text string) []string {
	var words []string
	cur := ""
	for _, r := range text {
		if r == ' ' || r == ',' || r == '.' {
			if cur != "" {
				words = append(words, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		words = append(words, cur)
	}
	return words
}

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]string{"python", "sql", "docker", "machine learning"},
		nil,
		nil,
		catalog.Fallbacks{
			RoleSkills: map[string][]string{
				"backend": {"python", "sql", "docker"},
			},
			GenericSkills: []string{"communication", "teamwork"},
			RoleStats: map[string]catalog.StatsEntry{
				"backend developer": {JobOpenings: 14200, AvgSalary: 125000, GrowthRate: 18, RemotePercentage: 68},
			},
			DefaultStats: catalog.StatsEntry{JobOpenings: 12000, AvgSalary: 120000, GrowthRate: 25, RemotePercentage: 65},
			TopCompanies: []string{"Google", "Microsoft"},
			TopLocations: []string{"San Francisco, CA"},
		},
	)
}

func TestTrendingSkills_FrequencyScoring(t *testing.T) {
	fetcher := &fakeFetcher{postings: []Posting{
		{Title: "Backend Engineer", Description: "python sql docker"},
		{Title: "Data Engineer", Description: "python sql"},
		{Title: "Platform Engineer", Description: "python"},
	}}
	svc := NewService(fetcher, testCatalog()).WithScorer(exactScorer)

	items := svc.TrendingSkills(context.Background(), "Backend Developer", "")
	require.NotEmpty(t, items)

	assert.Equal(t, "Python", items[0].Name)
	assert.Equal(t, 1.0, items[0].Importance)
	assert.Equal(t, 3, items[0].JobCount)

	assert.Equal(t, "Sql", items[1].Name)
	assert.InDelta(t, 0.667, items[1].Importance, 0.001)

	assert.Equal(t, "Docker", items[2].Name)
	assert.InDelta(t, 0.333, items[2].Importance, 0.001)
}

func TestTrendingSkills_MultiWordSubstring(t *testing.T) {
	fetcher := &fakeFetcher{postings: []Posting{
		{Description: "experience applying machine learning at scale"},
	}}
	svc := NewService(fetcher, testCatalog()).WithScorer(func(skill, text string) int { return 0 })

	items := svc.TrendingSkills(context.Background(), "ML Engineer", "")
	require.Len(t, items, 1)
	assert.Equal(t, "Machine Learning", items[0].Name)
}

func TestTrendingSkills_FallbackWhenNoPostings(t *testing.T) {
	svc := NewService(&fakeFetcher{}, testCatalog())

	items := svc.TrendingSkills(context.Background(), "Backend Developer", "")
	require.Len(t, items, 3)

	assert.Equal(t, "Python", items[0].Name)
	assert.Equal(t, 1.0, items[0].Importance)
	assert.Equal(t, 50, items[0].JobCount)

	assert.Equal(t, "Sql", items[1].Name)
	assert.Equal(t, 0.92, items[1].Importance)
	assert.Equal(t, 47, items[1].JobCount)

	assert.Equal(t, "Docker", items[2].Name)
	assert.Equal(t, 0.84, items[2].Importance)
	assert.Equal(t, 44, items[2].JobCount)
}

func TestTrendingSkills_FallbackOnFetchError(t *testing.T) {
	svc := NewService(&fakeFetcher{err: errors.New("boom")}, testCatalog())

	items := svc.TrendingSkills(context.Background(), "Backend Developer", "")
	require.NotEmpty(t, items)
	assert.Equal(t, "Python", items[0].Name)
}

func TestTrendingSkills_NilFetcher(t *testing.T) {
	svc := NewService(nil, testCatalog())

	items := svc.TrendingSkills(context.Background(), "Some Unknown Role", "")
	require.NotEmpty(t, items)
	assert.Equal(t, "Communication", items[0].Name)
}

func TestTrendingSkills_FallbackWhenNothingMatches(t *testing.T) {
	fetcher := &fakeFetcher{postings: []Posting{
		{Description: "managing a farm with tractors"},
	}}
	svc := NewService(fetcher, testCatalog()).WithScorer(func(skill, text string) int { return 0 })

	items := svc.TrendingSkills(context.Background(), "Backend Developer", "")
	require.NotEmpty(t, items)
	assert.Equal(t, "Python", items[0].Name)
	assert.Equal(t, 50, items[0].JobCount)
}

func TestMarketStatistics_FromPostings(t *testing.T) {
	minA, maxA := 100000.0, 140000.0
	fetcher := &fakeFetcher{postings: []Posting{
		{Employer: "Acme", City: "Austin", State: "TX", IsRemote: true, MinSalary: minA, MaxSalary: maxA},
		{Employer: "Acme", City: "Austin", State: "TX"},
		{Employer: "Globex", City: "Denver", State: "CO", IsRemote: true},
		{Employer: "Initech"},
	}}
	svc := NewService(fetcher, testCatalog())

	stats := svc.MarketStatistics(context.Background(), "Backend Developer", "")

	assert.Equal(t, 4*150, stats.JobOpenings)
	assert.Equal(t, 120000, stats.AvgSalary)
	assert.Equal(t, 50, stats.RemotePercentage)
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, stats.TopCompanies)
	assert.Equal(t, []string{"Austin, TX", "Denver, CO"}, stats.TopLocations)
}

func TestMarketStatistics_FallbackWithoutPostings(t *testing.T) {
	svc := NewService(nil, testCatalog())

	stats := svc.MarketStatistics(context.Background(), "Backend Developer", "")
	assert.Equal(t, 14200, stats.JobOpenings)
	assert.Equal(t, 125000, stats.AvgSalary)
	assert.Equal(t, []string{"Google", "Microsoft"}, stats.TopCompanies)
}

func TestMarketStatistics_DefaultStatsForUnknownRole(t *testing.T) {
	svc := NewService(nil, testCatalog())

	stats := svc.MarketStatistics(context.Background(), "Underwater Basket Weaver", "")
	assert.Equal(t, 12000, stats.JobOpenings)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "We need a Python developer",
			expected: "We need a Python developer",
		},
		{
			name:     "tags removed",
			input:    "<p>We need a <b>Python</b> developer</p>",
			expected: "We need a Python developer",
		},
		{
			name:     "lists flattened",
			input:    "<ul><li>Python</li><li>SQL</li></ul>",
			expected: "Python SQL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}

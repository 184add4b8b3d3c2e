// Package trends scores skill demand from live job postings and computes
// market statistics. Missing or failing market data is a logged degradation,
// never an error: every query falls back to the catalog tables.
package trends

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	trendingLimit  = 25
	fuzzyThreshold = 75
	statsPages     = 2

	// openingsPerSample extrapolates total openings from one result page.
	openingsPerSample = 150
	defaultGrowthRate = 28
)

// Service computes trending skills and market statistics for a role.
type Service struct {
	fetcher Fetcher
	catalog *catalog.Catalog

	// scorer matches single-word skills against posting text; swappable
	// in tests.
	scorer func(skill, text string) int
}

// NewService builds a trend service. A nil fetcher means no live market
// data is available and every query uses the catalog fallbacks.
func NewService(fetcher Fetcher, cat *catalog.Catalog) *Service {
	return &Service{
		fetcher: fetcher,
		catalog: cat,
		scorer:  fuzzy.PartialRatio,
	}
}

// WithScorer overrides the similarity scorer.
func (s *Service) WithScorer(scorer func(skill, text string) int) *Service {
	s.scorer = scorer
	return s
}

// TrendingSkills ranks catalog skills by how often they appear across job
// postings for the role. Importance is each skill's posting count divided
// by the highest count. When postings are unavailable or nothing matches,
// the catalog fallback skills are returned with synthetic scores.
func (s *Service) TrendingSkills(ctx context.Context, role, location string) []types.TrendingSkill {
	postings := s.fetch(ctx, role, location, 1)
	if len(postings) == 0 {
		log.Printf("[trends] no postings for %q, using catalog fallback", role)
		return s.fallbackTrending(role)
	}

	freq := make(map[string]int)
	for _, p := range postings {
		text := strings.ToLower(p.CombinedText())
		for _, skill := range s.catalog.Skills() {
			if strings.Contains(skill, " ") {
				if strings.Contains(text, skill) {
					freq[skill]++
				}
			} else if s.scorer(skill, text) >= fuzzyThreshold {
				freq[skill]++
			}
		}
	}

	if len(freq) == 0 {
		log.Printf("[trends] no catalog skills matched postings for %q, using catalog fallback", role)
		return s.fallbackTrending(role)
	}

	maxCount := 0
	for _, count := range freq {
		if count > maxCount {
			maxCount = count
		}
	}

	items := make([]types.TrendingSkill, 0, len(freq))
	for skill, count := range freq {
		items = append(items, types.TrendingSkill{
			Name:       extract.DisplayName(skill),
			Importance: round3(float64(count) / float64(maxCount)),
			JobCount:   count,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Importance != items[j].Importance {
			return items[i].Importance > items[j].Importance
		}
		if items[i].JobCount != items[j].JobCount {
			return items[i].JobCount > items[j].JobCount
		}
		return items[i].Name < items[j].Name
	})

	if len(items) > trendingLimit {
		items = items[:trendingLimit]
	}
	return items
}

// fallbackTrending builds synthetic trend entries from the catalog fallback
// skills: importance decays by 0.08 per rank and job counts step down from
// 50.
func (s *Service) fallbackTrending(role string) []types.TrendingSkill {
	skills := s.catalog.FallbackSkills(role)
	items := make([]types.TrendingSkill, 0, len(skills))
	for i, skill := range skills {
		jobCount := 50 - i*3
		if jobCount < 1 {
			jobCount = 1
		}
		items = append(items, types.TrendingSkill{
			Name:       extract.DisplayName(skill),
			Importance: round2(1.0 - float64(i)*0.08),
			JobCount:   jobCount,
		})
	}
	return items
}

// MarketStatistics aggregates salary, remote share, and top companies and
// locations from postings for the role. Catalog stats fill in when live
// data is unavailable.
func (s *Service) MarketStatistics(ctx context.Context, role, location string) types.MarketStats {
	postings := s.fetch(ctx, role, location, statsPages)
	if len(postings) == 0 {
		return s.catalog.Stats(role)
	}

	stats := types.MarketStats{
		JobOpenings: len(postings) * openingsPerSample,
		GrowthRate:  defaultGrowthRate,
	}

	var salarySum float64
	salaryCount := 0
	remote := 0
	companyCounts := make(map[string]int)
	locationCounts := make(map[string]int)
	for _, p := range postings {
		if p.MinSalary > 0 && p.MaxSalary > 0 {
			salarySum += (p.MinSalary + p.MaxSalary) / 2
			salaryCount++
		}
		if p.IsRemote {
			remote++
		}
		if p.Employer != "" {
			companyCounts[p.Employer]++
		}
		if p.City != "" && p.State != "" {
			locationCounts[p.City+", "+p.State]++
		}
	}

	fallback := s.catalog.Stats(role)
	if salaryCount > 0 {
		stats.AvgSalary = int(salarySum / float64(salaryCount))
	} else {
		stats.AvgSalary = fallback.AvgSalary
	}
	stats.RemotePercentage = remote * 100 / len(postings)

	stats.TopCompanies = topKeys(companyCounts, 5)
	if len(stats.TopCompanies) == 0 {
		stats.TopCompanies = fallback.TopCompanies
	}
	stats.TopLocations = topKeys(locationCounts, 5)
	if len(stats.TopLocations) == 0 {
		stats.TopLocations = fallback.TopLocations
	}
	return stats
}

// fetch retrieves postings, logging failures instead of propagating them.
func (s *Service) fetch(ctx context.Context, role, location string, pages int) []Posting {
	if s.fetcher == nil {
		return nil
	}
	postings, err := s.fetcher.FetchPostings(ctx, role, location, pages)
	if err != nil {
		log.Printf("[trends] fetch failed for %q: %v", role, err)
		return nil
	}
	return postings
}

// topKeys returns the n most frequent keys, highest count first with
// alphabetical tie-breaking.
func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

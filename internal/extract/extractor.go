package extract

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum partial-ratio score for a fuzzy skill
// match. Exact matches bypass scoring entirely.
const DefaultThreshold = 75

// Extractor matches catalog skills against normalized resume text.
type Extractor struct {
	skills    []string
	threshold int

	// scorer returns a 0-100 similarity score between a skill and the
	// full text. Swappable so tests can pin exact boundary behavior.
	scorer func(skill, text string) int
}

// NewExtractor builds an extractor over the given skill catalog. Skills are
// normalized once up front.
func NewExtractor(skills []string) *Extractor {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = Normalize(s)
		if s != "" && !seen[s] {
			seen[s] = true
			normalized = append(normalized, s)
		}
	}
	return &Extractor{
		skills:    normalized,
		threshold: DefaultThreshold,
		scorer:    fuzzy.PartialRatio,
	}
}

// WithThreshold overrides the fuzzy-match threshold.
func (e *Extractor) WithThreshold(threshold int) *Extractor {
	e.threshold = threshold
	return e
}

// WithScorer overrides the similarity scorer.
func (e *Extractor) WithScorer(scorer func(skill, text string) int) *Extractor {
	e.scorer = scorer
	return e
}

// Extract returns the display-cased, sorted, deduplicated catalog skills
// found in the text. Multi-word skills match by substring, single-word
// skills by token membership, and skills still unmatched get one fuzzy pass
// against the whole text. Empty text or an empty catalog yields an empty
// result.
func (e *Extractor) Extract(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return []string{}
	}

	tokens := make(map[string]bool)
	for _, tok := range Tokenize(normalized) {
		tokens[tok] = true
	}

	found := make(map[string]bool)
	for _, skill := range e.skills {
		if strings.Contains(skill, " ") {
			if strings.Contains(normalized, skill) {
				found[skill] = true
			}
		} else if tokens[skill] {
			found[skill] = true
		}
	}

	// Fuzzy pass only over skills the exact pass missed.
	for _, skill := range e.skills {
		if found[skill] {
			continue
		}
		if e.scorer(skill, normalized) >= e.threshold {
			found[skill] = true
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, DisplayName(skill))
	}
	sort.Strings(result)
	return result
}

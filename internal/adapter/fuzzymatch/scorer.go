// Package fuzzymatch scores destinations against free-text queries with
// typo-tolerant, weighted multi-field matching.
package fuzzymatch

import (
	"strings"

	"wandernest-api/internal/entity"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scorer rates a destination against a query. The boolean is false when the
// destination should be excluded from the result set.
type Scorer interface {
	Score(query string, dest entity.Destination) (float64, bool)
}

// MinQueryLength is the shortest query worth scoring: shorter queries
// match nothing.
const MinQueryLength = 2

// Field weights: name outranks country, which outranks everything else.
const (
	weightName        = 3.0
	weightCountry     = 2.0
	weightAttractions = 1.5
	weightTravelTypes = 1.2
	weightCategory    = 1.0
	weightDescription = 1.0
)

// maxTypoDistance caps the per-word Levenshtein distance still accepted as
// a match.
const maxTypoDistance = 2

// minFieldQuality is the acceptance threshold per field. A subsequence
// match across a long field (a short query threads through almost any
// description) scores far below this and is treated as no match. The value
// equals the quality of an edit distance of maxTypoDistance.
const minFieldQuality = 1.0 / (2 + maxTypoDistance)

// WeightedScorer is the default Scorer.
type WeightedScorer struct{}

func NewWeightedScorer() *WeightedScorer {
	return &WeightedScorer{}
}

// Score sums the weighted match quality of every field the query hits.
// Quality per field is the best of: substring containment (1.0), in-order
// subsequence match (scaled by edit distance), or a close per-word typo
// match, and must reach minFieldQuality to count at all. A zero total
// excludes the destination.
func (s *WeightedScorer) Score(query string, dest entity.Destination) (float64, bool) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength {
		return 0, false
	}

	total := 0.0
	total += weightName * fieldQuality(query, dest.Name)
	total += weightCountry * fieldQuality(query, dest.Country)
	total += weightAttractions * bestQuality(query, dest.TopAttractions)
	total += weightTravelTypes * bestQuality(query, dest.TravelTypes)
	total += weightCategory * fieldQuality(query, dest.Category)
	total += weightDescription * fieldQuality(query, dest.Description)

	if total == 0 {
		return 0, false
	}
	return total, true
}

func bestQuality(query string, candidates []string) float64 {
	best := 0.0
	for _, c := range candidates {
		if q := fieldQuality(query, c); q > best {
			best = q
		}
	}
	return best
}

func fieldQuality(query, field string) float64 {
	if field == "" {
		return 0
	}

	lq := strings.ToLower(query)
	lf := strings.ToLower(field)

	if strings.Contains(lf, lq) {
		return 1
	}

	best := 0.0
	if rank := fuzzy.RankMatchNormalizedFold(query, field); rank >= 0 {
		best = 1 / float64(2+rank)
	}

	// Typo tolerance: compare the query against each word of the field.
	for _, word := range strings.Fields(lf) {
		dist := fuzzy.LevenshteinDistance(lq, strings.Trim(word, ",.;:!?"))
		if dist >= 0 && dist <= maxTypoDistance {
			if q := 1 / float64(2+dist); q > best {
				best = q
			}
		}
	}

	if best < minFieldQuality {
		return 0
	}
	return best
}

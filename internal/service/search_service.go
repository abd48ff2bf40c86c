package service

import (
	"sort"
	"strings"

	"wandernest-api/internal/adapter/fuzzymatch"
	"wandernest-api/internal/entity"
	"wandernest-api/internal/pricing"

	"github.com/sirupsen/logrus"
)

// PageSize is the fixed number of results per page.
const PageSize = 12

// Sentinel filter values meaning "no filtering on this dimension".
const (
	AllContinents = "All Continents"
	AllTypes      = "All Types"
	AllBudgets    = "All Budgets"
	AllSeasons    = "All Seasons"
	AllDurations  = "All Durations"
)

// Supported sort keys. Popularity and rating deliberately share an order.
const (
	SortPopularity = "popularity"
	SortRating     = "rating"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortName       = "name"
)

// SearchQuery is the ephemeral UI query state driving one pipeline run.
type SearchQuery struct {
	Text       string
	Continent  string
	TravelType string
	Budget     string
	Season     string
	Duration   string
	SortBy     string
	Page       int
}

// SearchResult is one page of results plus the counts the pagination
// controls need.
type SearchResult struct {
	Results    []entity.Destination
	Total      int
	TotalPages int
	Page       int
}

// SearchService runs the fixed search → filter → sort → paginate pipeline
// over the static catalog. It holds no mutable state; identical queries
// produce identical output.
type SearchService struct {
	catalog []entity.Destination
	scorer  fuzzymatch.Scorer
	logger  *logrus.Logger
}

func NewSearchService(catalog []entity.Destination, scorer fuzzymatch.Scorer, logger *logrus.Logger) *SearchService {
	return &SearchService{
		catalog: catalog,
		scorer:  scorer,
		logger:  logger,
	}
}

// Search runs the full pipeline.
func (s *SearchService) Search(q SearchQuery) SearchResult {
	matched := s.searchStage(q.Text)
	filtered := filterStage(matched, q)
	sortStage(filtered, q.SortBy)
	return paginate(filtered, q.Page)
}

// Suggest returns up to limit destinations matching the query, best first,
// for the autocomplete box.
func (s *SearchService) Suggest(text string, limit int) []entity.Destination {
	if strings.TrimSpace(text) == "" || limit <= 0 {
		return nil
	}

	matches := s.searchStage(text)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// searchStage scores the catalog against the query and returns the matches
// ordered by descending score (stable in catalog order). An empty query
// passes the whole catalog through unscored.
func (s *SearchService) searchStage(text string) []entity.Destination {
	text = strings.TrimSpace(text)
	if text == "" {
		return append([]entity.Destination(nil), s.catalog...)
	}

	type scored struct {
		dest  entity.Destination
		score float64
	}
	var hits []scored
	for _, d := range s.catalog {
		if score, ok := s.scorer.Score(text, d); ok {
			hits = append(hits, scored{dest: d, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	s.logger.WithFields(logrus.Fields{"query": text, "matches": len(hits)}).Debug("Fuzzy search stage")

	out := make([]entity.Destination, len(hits))
	for i, h := range hits {
		out[i] = h.dest
	}
	return out
}

// filterStage applies the conjunctive attribute filters. Each dimension is
// a no-op when its value is empty or the "All ..." sentinel.
func filterStage(dests []entity.Destination, q SearchQuery) []entity.Destination {
	out := make([]entity.Destination, 0, len(dests))
	for _, d := range dests {
		if !filterActive(q.Continent, AllContinents) || d.Continent == q.Continent {
			if !filterActive(q.TravelType, AllTypes) || d.HasTravelType(q.TravelType) {
				if !filterActive(q.Budget, AllBudgets) || d.BudgetLevel == q.Budget {
					if !filterActive(q.Season, AllSeasons) || matchesSeason(d, q.Season) {
						if !filterActive(q.Duration, AllDurations) || strings.Contains(d.Duration, q.Duration) {
							out = append(out, d)
						}
					}
				}
			}
		}
	}
	return out
}

func filterActive(value, sentinel string) bool {
	return value != "" && value != sentinel
}

// matchesSeason compares on the first month of a "Dec - Feb" style value.
func matchesSeason(d entity.Destination, season string) bool {
	first := strings.Split(season, " - ")[0]
	return strings.Contains(d.BestSeason, first)
}

// sortStage orders in place with a stable sort; ties keep encounter order.
func sortStage(dests []entity.Destination, sortBy string) {
	var less func(a, b entity.Destination) bool

	switch sortBy {
	case SortPriceLow:
		less = func(a, b entity.Destination) bool {
			return pricing.ExtractAmount(a.Price) < pricing.ExtractAmount(b.Price)
		}
	case SortPriceHigh:
		less = func(a, b entity.Destination) bool {
			return pricing.ExtractAmount(a.Price) > pricing.ExtractAmount(b.Price)
		}
	case SortName:
		less = func(a, b entity.Destination) bool {
			return a.Name < b.Name
		}
	case SortRating, SortPopularity:
		fallthrough
	default:
		less = func(a, b entity.Destination) bool {
			return a.Rating > b.Rating
		}
	}

	sort.SliceStable(dests, func(i, j int) bool {
		return less(dests[i], dests[j])
	})
}

// paginate slices out the 1-based page. Out-of-range pages yield an empty
// slice, never a panic.
func paginate(dests []entity.Destination, page int) SearchResult {
	if page < 1 {
		page = 1
	}

	total := len(dests)
	totalPages := (total + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	if start >= total {
		return SearchResult{Results: []entity.Destination{}, Total: total, TotalPages: totalPages, Page: page}
	}

	end := start + PageSize
	if end > total {
		end = total
	}

	return SearchResult{
		Results:    dests[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}
}

package usecase

import (
	"errors"
	"strings"

	"wandernest-api/internal/entity"
	"wandernest-api/internal/pricing"
	"wandernest-api/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrDestinationNotFound = errors.New("destination not found")

// DefaultSuggestionLimit bounds the autocomplete result size.
const DefaultSuggestionLimit = 5

// DestinationSearcher is the pipeline surface this usecase consumes.
type DestinationSearcher interface {
	Search(q service.SearchQuery) service.SearchResult
	Suggest(text string, limit int) []entity.Destination
}

type DestinationUsecaseImpl struct {
	search DestinationSearcher
	store  CurrencyStore
	lookup func(id string) (entity.Destination, bool)
	logger *logrus.Logger
}

func NewDestinationUsecase(search DestinationSearcher, store CurrencyStore, lookup func(id string) (entity.Destination, bool), logger *logrus.Logger) *DestinationUsecaseImpl {
	return &DestinationUsecaseImpl{
		search: search,
		store:  store,
		lookup: lookup,
		logger: logger,
	}
}

func (uc *DestinationUsecaseImpl) List(q service.SearchQuery) DestinationPageResponse {
	if q.Page < 1 {
		q.Page = 1
	}

	r := uc.search.Search(q)

	return DestinationPageResponse{
		Results:    r.Results,
		Total:      r.Total,
		TotalPages: r.TotalPages,
		Page:       r.Page,
	}
}

func (uc *DestinationUsecaseImpl) Suggest(text string, limit int) []SuggestionResponse {
	if limit <= 0 || limit > 20 {
		limit = DefaultSuggestionLimit
	}

	matches := uc.search.Suggest(text, limit)
	out := make([]SuggestionResponse, len(matches))
	for i, d := range matches {
		out[i] = SuggestionResponse{ID: d.ID, Name: d.Name, Country: d.Country}
	}
	return out
}

// Get returns a catalog entry together with its price decomposed and
// re-rendered in the selected currency, the way the price widget of the
// site displays it.
func (uc *DestinationUsecaseImpl) Get(id string) (*DestinationDetailResponse, error) {
	dest, ok := uc.lookup(id)
	if !ok {
		uc.logger.WithField("id", id).Debug("Destination not found")
		return nil, ErrDestinationNotFound
	}

	parsed := pricing.ParseDisplayPrice(dest.Price)

	display := uc.store.Convert(parsed.Amount, "USD")
	if parsed.Prefix != "" {
		display = parsed.Prefix + " " + display
	}
	display += parsed.Suffix

	return &DestinationDetailResponse{
		Destination:  dest,
		ParsedPrice:  parsed,
		DisplayPrice: display,
	}, nil
}

// NormalizeSort maps unknown sort keys onto the default ordering.
func NormalizeSort(sortBy string) string {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case service.SortRating:
		return service.SortRating
	case service.SortPriceLow:
		return service.SortPriceLow
	case service.SortPriceHigh:
		return service.SortPriceHigh
	case service.SortName:
		return service.SortName
	default:
		return service.SortPopularity
	}
}

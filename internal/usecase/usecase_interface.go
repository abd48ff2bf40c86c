package usecase

import (
	"context"

	"wandernest-api/internal/entity"
	"wandernest-api/internal/service"
)

type CurrencyUsecase interface {
	Countries() []entity.Country
	Selected() SelectionResponse
	SelectCountry(ctx context.Context, code string) (entity.Country, error)
	Convert(amount float64, from, to string) (*ConversionResponse, error)
	Rates() RatesResponse
	Refresh(ctx context.Context)
}

type DestinationUsecase interface {
	List(q service.SearchQuery) DestinationPageResponse
	Suggest(text string, limit int) []SuggestionResponse
	Get(id string) (*DestinationDetailResponse, error)
}

package usecase

import (
	"wandernest-api/internal/entity"
	"wandernest-api/internal/pricing"
)

type SelectionResponse struct {
	Country   entity.Country `json:"country"`
	IsLoading bool           `json:"is_loading"`
}

type RatesResponse struct {
	Rates     entity.Rates `json:"rates"`
	IsLoading bool         `json:"is_loading"`
}

type ConversionResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Rate      float64 `json:"rate"`
	Display   string  `json:"display"`
}

type DestinationPageResponse struct {
	Results    []entity.Destination `json:"results"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
	Page       int                  `json:"page"`
}

type SuggestionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// DestinationDetailResponse decorates a catalog entry with its parsed price
// and the price rendered in the currently selected currency.
type DestinationDetailResponse struct {
	Destination  entity.Destination  `json:"destination"`
	ParsedPrice  pricing.ParsedPrice `json:"parsed_price"`
	DisplayPrice string              `json:"display_price"`
}

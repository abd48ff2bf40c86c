package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"wandernest-api/internal/entity"

	"github.com/sirupsen/logrus"
)

var currencyCodeRegexp = regexp.MustCompile(`^[A-Z]{3}$`)

var (
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidCurrencyCode = errors.New("invalid currency code format, expected 3 letters")
)

// CurrencyStore is the service surface this usecase orchestrates.
type CurrencyStore interface {
	Selected() entity.Country
	IsLoading() bool
	Rates() entity.Rates
	SelectCountry(ctx context.Context, code string) (entity.Country, error)
	Convert(amount float64, from string) string
	ConvertBetween(amount float64, from, to string) (float64, float64)
	Format(amount float64, currency string) string
	Refresh(ctx context.Context)
}

type CurrencyUsecaseImpl struct {
	store  CurrencyStore
	logger *logrus.Logger
}

func NewCurrencyUsecase(store CurrencyStore, logger *logrus.Logger) *CurrencyUsecaseImpl {
	return &CurrencyUsecaseImpl{
		store:  store,
		logger: logger,
	}
}

func (uc *CurrencyUsecaseImpl) Countries() []entity.Country {
	return entity.Countries
}

func (uc *CurrencyUsecaseImpl) Selected() SelectionResponse {
	return SelectionResponse{
		Country:   uc.store.Selected(),
		IsLoading: uc.store.IsLoading(),
	}
}

func (uc *CurrencyUsecaseImpl) SelectCountry(ctx context.Context, code string) (entity.Country, error) {
	return uc.store.SelectCountry(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// Convert validates the request and converts amount between the given pair.
// An empty "to" targets the selected country's currency.
func (uc *CurrencyUsecaseImpl) Convert(amount float64, from, to string) (*ConversionResponse, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	from = strings.ToUpper(strings.TrimSpace(from))
	if from == "" {
		from = "USD"
	}
	if !currencyCodeRegexp.MatchString(from) {
		uc.logger.Warnf("Invalid source currency code: %s", from)
		return nil, ErrInvalidCurrencyCode
	}

	to = strings.ToUpper(strings.TrimSpace(to))
	if to == "" {
		to = uc.store.Selected().Currency
	}
	if !currencyCodeRegexp.MatchString(to) {
		uc.logger.Warnf("Invalid target currency code: %s", to)
		return nil, ErrInvalidCurrencyCode
	}

	converted, rate := uc.store.ConvertBetween(amount, from, to)

	return &ConversionResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Rate:      rate,
		Display:   uc.store.Format(converted, to),
	}, nil
}

func (uc *CurrencyUsecaseImpl) Rates() RatesResponse {
	return RatesResponse{
		Rates:     uc.store.Rates(),
		IsLoading: uc.store.IsLoading(),
	}
}

func (uc *CurrencyUsecaseImpl) Refresh(ctx context.Context) {
	uc.logger.Info("Manual rate refresh requested")
	uc.store.Refresh(ctx)
}

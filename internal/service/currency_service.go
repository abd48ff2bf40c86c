package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"wandernest-api/internal/adapter/exchangerate"
	"wandernest-api/internal/adapter/selection"
	"wandernest-api/internal/entity"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultRefreshSchedule re-fetches the rate table once an hour.
const DefaultRefreshSchedule = "@every 1h"

var ErrUnknownCountry = errors.New("unknown country")

// CurrencyService is the single source of truth for the selected country and
// the USD-relative exchange-rate table. Conversion and formatting never fail:
// a missing rate degrades to unconverted display.
type CurrencyService struct {
	fetcher exchangerate.RateFetcher
	store   selection.Store
	logger  *logrus.Logger
	cron    *cron.Cron

	mu        sync.RWMutex
	selected  entity.Country
	rates     entity.Rates
	loading   bool
	fetching  bool
	fetchedAt time.Time
}

func NewCurrencyService(fetcher exchangerate.RateFetcher, store selection.Store, logger *logrus.Logger) *CurrencyService {
	return &CurrencyService{
		fetcher:  fetcher,
		store:    store,
		logger:   logger,
		selected: entity.DefaultCountry(),
		rates:    entity.Rates{},
		loading:  true,
	}
}

// Initialize restores the persisted selection and kicks off the first
// asynchronous rate fetch. IsLoading stays true until that fetch resolves
// or fails.
func (s *CurrencyService) Initialize(ctx context.Context) {
	stored, err := s.store.Load(ctx)
	switch {
	case err == nil:
		if restored, ok := entity.CountryByCode(stored.Code); ok {
			s.mu.Lock()
			s.selected = restored
			s.mu.Unlock()
			s.logger.WithField("code", restored.Code).Info("Restored persisted country selection")
		} else {
			s.logger.WithField("code", stored.Code).Warn("Persisted selection not in country set, using default")
		}
	case errors.Is(err, selection.ErrNotFound):
		s.logger.Debug("No persisted country selection, using default")
	default:
		s.logger.WithError(err).Warn("Failed to load persisted selection, using default")
	}

	go s.Refresh(ctx)
}

// StartRefreshing schedules periodic refreshes. An empty schedule means
// DefaultRefreshSchedule.
func (s *CurrencyService) StartRefreshing(schedule string) error {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(schedule, func() {
		s.logger.Info("Scheduled exchange-rate refresh")
		s.Refresh(context.Background())
	})
	if err != nil {
		return fmt.Errorf("add refresh task: %w", err)
	}

	s.cron.Start()
	s.logger.Infof("Rate refresh scheduled: %s", schedule)
	return nil
}

// Stop cancels the refresh schedule.
func (s *CurrencyService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		s.logger.Info("Rate refresh scheduler stopped")
	}
}

// Refresh fetches the rate table and installs it. A failed fetch retains
// the previous table, or installs the hardcoded fallback snapshot when no
// table was ever loaded; the failure is logged, never returned to callers
// of Convert/Format.
func (s *CurrencyService) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.fetching {
		s.mu.Unlock()
		s.logger.Debug("Rate fetch already in flight, skipping")
		return
	}
	s.fetching = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.fetching = false
		s.loading = false
		s.mu.Unlock()
	}()

	resp, err := s.fetcher.FetchRates(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch exchange rates")
		s.installFallbackIfEmpty()
		return
	}

	rates, err := convertRatesResponse(s.logger, resp)
	if err != nil {
		s.logger.WithError(err).Error("Failed to convert rates response")
		s.installFallbackIfEmpty()
		return
	}

	s.mu.Lock()
	s.rates = rates
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.logger.Infof("Installed %d exchange rates", len(rates))
}

func (s *CurrencyService) installFallbackIfEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rates) > 0 {
		s.logger.Info("Retaining previous rate table")
		return
	}
	s.rates = entity.FallbackRates()
	s.logger.Warn("Installed hardcoded fallback rate snapshot")
}

// SelectCountry replaces the current selection and persists it synchronously.
// The code must belong to the built-in country set.
func (s *CurrencyService) SelectCountry(ctx context.Context, code string) (entity.Country, error) {
	country, ok := entity.CountryByCode(code)
	if !ok {
		s.logger.WithField("code", code).Warn("Rejected selection of unknown country")
		return entity.Country{}, ErrUnknownCountry
	}

	if err := s.store.Save(ctx, country); err != nil {
		return entity.Country{}, fmt.Errorf("persist selection: %w", err)
	}

	s.mu.Lock()
	s.selected = country
	s.mu.Unlock()

	s.logger.WithField("code", country.Code).Info("Country selected")
	return country, nil
}

func (s *CurrencyService) Selected() entity.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// IsLoading reports whether the first fetch is still outstanding.
func (s *CurrencyService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Rates returns a copy of the current table.
func (s *CurrencyService) Rates() entity.Rates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates.Clone()
}

// Convert converts amount from the given currency into the selected one and
// formats the result. If either rate is missing the amount is formatted
// as-is under the source currency.
func (s *CurrencyService) Convert(amount float64, from string) string {
	if from == "" {
		from = "USD"
	}

	s.mu.RLock()
	fromRate, fromOK := s.rates[from]
	toRate, toOK := s.rates[s.selected.Currency]
	target := s.selected.Currency
	s.mu.RUnlock()

	if !fromOK || !toOK {
		return s.Format(amount, from)
	}

	return s.Format(amount/fromRate*toRate, target)
}

// ConvertBetween converts amount between an arbitrary currency pair and
// returns the converted value together with the pair rate. A missing rate
// on either side falls back to 1.
func (s *CurrencyService) ConvertBetween(amount float64, from, to string) (float64, float64) {
	s.mu.RLock()
	fromRate, ok := s.rates[from]
	if !ok {
		fromRate = 1
	}
	toRate, ok := s.rates[to]
	if !ok {
		toRate = 1
	}
	s.mu.RUnlock()

	return amount / fromRate * toRate, toRate / fromRate
}

// Format renders symbol + locale-formatted number. JPY gets zero fraction
// digits, everything else two. The symbol is looked up by currency code,
// falling back to the selected country's symbol.
func (s *CurrencyService) Format(amount float64, currency string) string {
	s.mu.RLock()
	selected := s.selected
	s.mu.RUnlock()

	if currency == "" {
		currency = selected.Currency
	}

	symbol := selected.Symbol
	if c, ok := entity.CountryByCurrency(currency); ok {
		symbol = c.Symbol
	}

	digits := 2
	if currency == "JPY" {
		digits = 0
	}

	p := message.NewPrinter(language.English)
	formatted := p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))

	return symbol + formatted
}

// convertRatesResponse validates the fetched payload into a rate table.
// Non-positive rates are skipped; USD is pinned to 1.
func convertRatesResponse(logger *logrus.Logger, resp *exchangerate.RatesResponse) (entity.Rates, error) {
	rates := make(entity.Rates, len(resp.Rates))
	var errs error

	skipped := 0
	for code, value := range resp.Rates {
		if value <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("non-positive rate for %s: %f", code, value))
			skipped++
			continue
		}
		rates[code] = value
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("all %d rates were skipped: %w", skipped, errs)
	}
	if errs != nil {
		logger.Warnf("Skipped %d invalid rates: %v", skipped, errs)
	}

	rates["USD"] = 1
	return rates, nil
}

package exchangerate

import "context"

type RateFetcher interface {
	FetchRates(ctx context.Context) (*RatesResponse, error)
}

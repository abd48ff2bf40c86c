package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest/USD"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

func (c *Client) FetchRates(ctx context.Context) (*RatesResponse, error) {
	c.logger.Infof("Fetching exchange rates from URL: %s", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		c.logger.Errorf("Failed to create request: %v", err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("Failed to fetch rates: %v", err)
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Infof("Response status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from rate source", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Errorf("Failed to read response body: %v", err)
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if len(body) == 0 {
		c.logger.Error("Empty response body from rate source")
		return nil, errors.New("empty response body")
	}

	var rates RatesResponse
	if err := json.Unmarshal(body, &rates); err != nil {
		c.logger.Errorf("Failed to parse rates JSON: %v", err)
		return nil, fmt.Errorf("parse rates JSON: %w", err)
	}

	if len(rates.Rates) == 0 {
		c.logger.Warn("No rates found in parsed response")
		return nil, errors.New("no rates in response")
	}

	c.logger.Infof("Successfully parsed %d rates", len(rates.Rates))

	return &rates, nil
}

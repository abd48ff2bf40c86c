package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"wandernest-api/internal/adapter/exchangerate"
	"wandernest-api/internal/adapter/fuzzymatch"
	"wandernest-api/internal/adapter/selection"
	"wandernest-api/internal/catalog"
	"wandernest-api/internal/entity"
	"wandernest-api/internal/handler"
	"wandernest-api/internal/service"
	"wandernest-api/internal/usecase"
	"wandernest-api/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := logger.Init("debug")

	// Fake upstream rate provider
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"base": "USD",
			"date": "2025-08-29",
			"rates": map[string]float64{
				"USD": 1,
				"INR": 83.5,
				"GBP": 0.78,
				"EUR": 0.91,
				"JPY": 150,
				"AUD": 1.5,
				"CAD": 1.35,
				"CNY": 7.2,
				"AED": 3.67,
				"SGD": 1.33,
			},
		})
	}))
	t.Cleanup(upstream.Close)

	// Init adapters
	rateClient := exchangerate.NewClient(upstream.URL, log)
	selectionStore := selection.NewFileStore(filepath.Join(t.TempDir(), "selection.json"), log)
	scorer := fuzzymatch.NewWeightedScorer()

	// Init services
	currencyService := service.NewCurrencyService(rateClient, selectionStore, log)
	searchService := service.NewSearchService(catalog.All(), scorer, log)

	currencyService.Initialize(context.Background())
	t.Cleanup(currencyService.Stop)

	// Init usecases
	currencyUsecase := usecase.NewCurrencyUsecase(currencyService, log)
	destinationUsecase := usecase.NewDestinationUsecase(searchService, currencyService, catalog.ByID, log)

	// Init handlers
	currencyHandler := handler.NewCurrencyHandler(currencyUsecase, log)
	destinationHandler := handler.NewDestinationHandler(destinationUsecase, log)

	// Setup Gin router
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/currency/countries", currencyHandler.GetCountries)
	r.GET("/currency/selected", currencyHandler.GetSelected)
	r.PUT("/currency/selected", currencyHandler.SelectCountry)
	r.GET("/currency/convert", currencyHandler.Convert)
	r.GET("/currency/rates", currencyHandler.GetRates)
	r.POST("/currency/refresh", currencyHandler.Refresh)

	r.GET("/destinations", destinationHandler.List)
	r.GET("/destinations/suggest", destinationHandler.Suggest)
	r.GET("/destinations/:id", destinationHandler.Get)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	// Wait for the initial rate fetch to land
	require.Eventually(t, func() bool {
		resp, err := http.Get(srv.URL + "/currency/rates")
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		var result usecase.RatesResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return false
		}
		return !result.IsLoading && len(result.Rates) > 0
	}, 5*time.Second, 50*time.Millisecond)

	t.Run("GetCountries", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/currency/countries")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Countries []entity.Country `json:"countries"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Len(t, result.Countries, len(entity.Countries))
	})

	t.Run("DefaultSelection", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/currency/selected")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result usecase.SelectionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "US", result.Country.Code)
	})

	t.Run("SelectCountry", func(t *testing.T) {
		body, _ := json.Marshal(handler.SelectCountryRequest{Code: "JP"})
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/currency/selected", bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result usecase.SelectionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "JP", result.Country.Code)
		assert.Equal(t, "JPY", result.Country.Currency)
	})

	t.Run("SelectUnknownCountry", func(t *testing.T) {
		body, _ := json.Marshal(handler.SelectCountryRequest{Code: "ZZ"})
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/currency/selected", bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Convert", func(t *testing.T) {
		// selected currency is JPY after the previous subtest
		resp, err := http.Get(srv.URL + "/currency/convert?amount=100&from=USD")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result usecase.ConversionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "USD", result.From)
		assert.Equal(t, "JPY", result.To)
		assert.InDelta(t, 15000, result.Converted, 0.01)
		assert.Equal(t, "¥15,000", result.Display)
	})

	t.Run("ConvertBadAmount", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/currency/convert?amount=abc&from=USD")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Refresh", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/currency/refresh", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("ListDestinations", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/destinations")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result usecase.DestinationPageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, len(catalog.All()), result.Total)
		assert.Len(t, result.Results, service.PageSize)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("SearchWithTypo", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/destinations?search=Santorni")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result usecase.DestinationPageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.NotEmpty(t, result.Results)
		assert.Equal(t, "santorini", result.Results[0].ID)
	})

	t.Run("FilterAndSort", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/destinations?continent=Asia&sort=price-low")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result usecase.DestinationPageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.NotEmpty(t, result.Results)
		for _, d := range result.Results {
			assert.Equal(t, "Asia", d.Continent)
		}
	})

	t.Run("Suggest", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/destinations/suggest?q=par")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Suggestions []usecase.SuggestionResponse `json:"suggestions"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.NotEmpty(t, result.Suggestions)
		assert.Equal(t, "paris", result.Suggestions[0].ID)
	})

	t.Run("GetDestination", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/destinations/kyoto")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result usecase.DestinationDetailResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "kyoto", result.Destination.ID)
		// selection is still JP, so the display price is rendered in yen
		assert.Contains(t, result.DisplayPrice, "¥")
	})

	t.Run("GetUnknownDestination", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/destinations/atlantis")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

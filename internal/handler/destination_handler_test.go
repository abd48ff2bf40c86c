package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wandernest-api/internal/entity"
	"wandernest-api/internal/pricing"
	"wandernest-api/internal/service"
	"wandernest-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDestinationUsecase struct {
	mock.Mock
}

func (m *mockDestinationUsecase) List(q service.SearchQuery) usecase.DestinationPageResponse {
	args := m.Called(q)
	return args.Get(0).(usecase.DestinationPageResponse)
}

func (m *mockDestinationUsecase) Suggest(text string, limit int) []usecase.SuggestionResponse {
	args := m.Called(text, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]usecase.SuggestionResponse)
}

func (m *mockDestinationUsecase) Get(id string) (*usecase.DestinationDetailResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DestinationDetailResponse), args.Error(1)
}

func setupDestinationHandler() (*DestinationHandler, *mockDestinationUsecase, *logrus.Logger) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(mockDestinationUsecase)
	logger, _ := test.NewNullLogger()
	return NewDestinationHandler(mockUsecase, logger), mockUsecase, logger
}

func TestList_DefaultQuery(t *testing.T) {
	handler, mockUsecase, _ := setupDestinationHandler()

	expected := service.SearchQuery{SortBy: service.SortPopularity, Page: 1}
	mockUsecase.On("List", expected).Return(usecase.DestinationPageResponse{
		Results: []entity.Destination{}, Total: 0, TotalPages: 0, Page: 1,
	})

	w := performRequest(handler.List, httptest.NewRequest(http.MethodGet, "/destinations", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestList_FullQueryState(t *testing.T) {
	handler, mockUsecase, _ := setupDestinationHandler()

	expected := service.SearchQuery{
		Text:       "beach",
		Continent:  "Asia",
		TravelType: "Beach",
		Budget:     "Low",
		Season:     "Jun - Aug",
		Duration:   "1 Week",
		SortBy:     service.SortPriceLow,
		Page:       2,
	}
	mockUsecase.On("List", expected).Return(usecase.DestinationPageResponse{Page: 2})

	url := "/destinations?search=beach&continent=Asia&type=Beach&budget=Low&season=Jun+-+Aug&duration=1+Week&sort=price-low&page=2"
	w := performRequest(handler.List, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestList_UnknownSortFallsBack(t *testing.T) {
	handler, mockUsecase, _ := setupDestinationHandler()

	expected := service.SearchQuery{SortBy: service.SortPopularity, Page: 1}
	mockUsecase.On("List", expected).Return(usecase.DestinationPageResponse{Page: 1})

	w := performRequest(handler.List, httptest.NewRequest(http.MethodGet, "/destinations?sort=bogus", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestList_MalformedPage(t *testing.T) {
	handler, _, _ := setupDestinationHandler()

	w := performRequest(handler.List, httptest.NewRequest(http.MethodGet, "/destinations?page=two", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggest(t *testing.T) {
	handler, mockUsecase, _ := setupDestinationHandler()

	mockUsecase.On("Suggest", "bal", 5).Return([]usecase.SuggestionResponse{
		{ID: "bali", Name: "Bali", Country: "Indonesia"},
	})

	w := performRequest(handler.Suggest, httptest.NewRequest(http.MethodGet, "/destinations/suggest?q=bal&limit=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Suggestions []usecase.SuggestionResponse `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Suggestions, 1)
	assert.Equal(t, "Bali", body.Suggestions[0].Name)
}

func TestSuggest_MissingQuery(t *testing.T) {
	handler, _, _ := setupDestinationHandler()

	w := performRequest(handler.Suggest, httptest.NewRequest(http.MethodGet, "/destinations/suggest", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggest_MalformedLimit(t *testing.T) {
	handler, _, _ := setupDestinationHandler()

	w := performRequest(handler.Suggest, httptest.NewRequest(http.MethodGet, "/destinations/suggest?q=bal&limit=ten", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_Success(t *testing.T) {
	handler, mockUsecase, _ := setupDestinationHandler()

	mockUsecase.On("Get", "bali").Return(&usecase.DestinationDetailResponse{
		Destination:  entity.Destination{ID: "bali", Name: "Bali"},
		ParsedPrice:  pricing.ParsedPrice{Prefix: "From", Amount: 89, Suffix: "/night"},
		DisplayPrice: "From $89.00/night",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/destinations/bali", nil)
	w := performRequest(handler.Get, req, gin.Param{Key: "id", Value: "bali"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"display_price":"From $89.00/night"`)
}

func TestGet_NotFound(t *testing.T) {
	handler, mockUsecase, _ := setupDestinationHandler()

	mockUsecase.On("Get", "atlantis").Return(nil, usecase.ErrDestinationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/destinations/atlantis", nil)
	w := performRequest(handler.Get, req, gin.Param{Key: "id", Value: "atlantis"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

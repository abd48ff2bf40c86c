package handler

import (
	"errors"
	"net/http"
	"strconv"

	"wandernest-api/internal/service"
	"wandernest-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CurrencyHandler struct {
	usecase usecase.CurrencyUsecase
	logger  *logrus.Logger
}

func NewCurrencyHandler(usecase usecase.CurrencyUsecase, logger *logrus.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		usecase: usecase,
		logger:  logger,
	}
}

func (h *CurrencyHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": h.usecase.Countries()})
}

func (h *CurrencyHandler) GetSelected(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Selected())
}

func (h *CurrencyHandler) SelectCountry(c *gin.Context) {
	var req SelectCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field 'code'"})
		return
	}

	country, err := h.usecase.SelectCountry(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCountry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown country code"})
			return
		}
		h.logger.WithError(err).Errorf("Failed to select country %s", req.Code)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist selection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"country": country})
}

func (h *CurrencyHandler) Convert(c *gin.Context) {
	amountStr := c.Query("amount")
	if amountStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'amount'"})
		return
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'amount' parameter, must be a number"})
		return
	}

	result, err := h.usecase.Convert(amount, c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAmount) || errors.Is(err, usecase.ErrInvalidCurrencyCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("Failed to convert")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CurrencyHandler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Rates())
}

func (h *CurrencyHandler) Refresh(c *gin.Context) {
	h.usecase.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Rates refreshed"})
}

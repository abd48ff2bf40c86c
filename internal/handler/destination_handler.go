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

type DestinationHandler struct {
	usecase usecase.DestinationUsecase
	logger  *logrus.Logger
}

func NewDestinationHandler(usecase usecase.DestinationUsecase, logger *logrus.Logger) *DestinationHandler {
	return &DestinationHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// List runs the search pipeline from query-string state. Unknown sort keys
// and malformed page numbers fall back to defaults rather than erroring.
func (h *DestinationHandler) List(c *gin.Context) {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'page' parameter, must be an integer"})
			return
		}
		page = parsed
	}

	q := service.SearchQuery{
		Text:       c.Query("search"),
		Continent:  c.Query("continent"),
		TravelType: c.Query("type"),
		Budget:     c.Query("budget"),
		Season:     c.Query("season"),
		Duration:   c.Query("duration"),
		SortBy:     usecase.NormalizeSort(c.Query("sort")),
		Page:       page,
	}

	c.JSON(http.StatusOK, h.usecase.List(q))
}

func (h *DestinationHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit' parameter, must be an integer"})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": h.usecase.Suggest(query, limit)})
}

func (h *DestinationHandler) Get(c *gin.Context) {
	id := c.Param("id")

	result, err := h.usecase.Get(id)
	if err != nil {
		if errors.Is(err, usecase.ErrDestinationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "destination not found"})
			return
		}
		h.logger.WithError(err).Errorf("Failed to get destination %s", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

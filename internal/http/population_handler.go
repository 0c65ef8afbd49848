package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attrition-risk/internal/dataset"
	"attrition-risk/internal/domain"
	"attrition-risk/internal/service"
)

// PopulationHandler recibe datasets de referencia para calibrar.
type PopulationHandler struct {
	logger *zap.Logger
	svc    *service.PopulationService
}

func NewPopulationHandler(logger *zap.Logger, svc *service.PopulationService) *PopulationHandler {
	return &PopulationHandler{logger: logger, svc: svc}
}

type createPopulationRequest struct {
	Name    string                    `json:"name"`
	Records []domain.PopulationRecord `json:"records" binding:"required,min=1"`
}

type populationResponse struct {
	Population domain.Population        `json:"population"`
	Summary    domain.PopulationSummary `json:"summary"`
}

// CreatePopulation guarda un dataset: POST /populations
// Acepta JSON o text/csv (nombre por query ?name=).
func (h *PopulationHandler) CreatePopulation(c *gin.Context) {
	var (
		name    string
		records []domain.PopulationRecord
	)

	if strings.EqualFold(c.ContentType(), "text/csv") {
		parsed, err := dataset.ParsePopulationCSV(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		name = c.Query("name")
		records = parsed
	} else {
		var req createPopulationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		name = req.Name
		records = req.Records
	}

	population, summary, err := h.svc.Create(c.Request.Context(), name, records)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not store population")
		return
	}

	c.JSON(http.StatusCreated, populationResponse{Population: population, Summary: summary})
}

// GetSummary devuelve las metricas de una poblacion: GET /populations/:id/summary
func (h *PopulationHandler) GetSummary(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing population id"})
		return
	}

	population, summary, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not load population")
		return
	}

	c.JSON(http.StatusOK, populationResponse{Population: population, Summary: summary})
}

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attrition-risk/internal/domain"
	"attrition-risk/internal/service"
)

const maxBatchProfiles = 1000

// AssessmentHandler expone la evaluacion de riesgo de empleados.
type AssessmentHandler struct {
	logger *zap.Logger
	svc    *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, svc: svc}
}

type assessRequest struct {
	EmployeeRef  string                    `json:"employee_ref"`
	PopulationID string                    `json:"population_id"`
	Profile      domain.ProfileInput       `json:"profile"`
	Population   []domain.PopulationRecord `json:"population"`
}

type batchRequest struct {
	PopulationID string                `json:"population_id"`
	Profiles     []domain.ProfileInput `json:"profiles" binding:"required,min=1"`
}

// CreateAssessment evalua un perfil: POST /assessments
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req assessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := req.Profile.ToProfile()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.Assess(c.Request.Context(), service.AssessInput{
		Profile:      profile,
		EmployeeRef:  req.EmployeeRef,
		PopulationID: req.PopulationID,
		Population:   req.Population,
	})
	if err != nil {
		writeServiceError(c, h.logger, err, "could not assess employee")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// BatchAssess evalua varios perfiles contra una poblacion: POST /assessments/batch
func (h *AssessmentHandler) BatchAssess(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if len(req.Profiles) > maxBatchProfiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("batch exceeds %d profiles", maxBatchProfiles)})
		return
	}

	profiles := make([]domain.EmployeeProfile, 0, len(req.Profiles))
	for i, in := range req.Profiles {
		p, err := in.ToProfile()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("profile %d: %v", i, err)})
			return
		}
		profiles = append(profiles, p)
	}

	results, err := h.svc.AssessBatch(c.Request.Context(), req.PopulationID, profiles)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not assess batch")
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ListAssessments devuelve el historial de un empleado: GET /assessments?employee_ref=...&limit=...
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.svc.History(c.Request.Context(), c.Query("employee_ref"), limit)
	if err != nil {
		writeServiceError(c, h.logger, err, "could not list assessments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": records})
}

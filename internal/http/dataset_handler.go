package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attrition-risk/internal/dataset"
	"attrition-risk/internal/service"
)

// DatasetHandler expone el generador de poblaciones sinteticas.
type DatasetHandler struct {
	logger *zap.Logger
	svc    *service.DatasetService
}

func NewDatasetHandler(logger *zap.Logger, svc *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{logger: logger, svc: svc}
}

type generateRequest struct {
	Size *int    `json:"size"`
	Seed *uint64 `json:"seed"`
}

// GenerateSynthetic genera un dataset: POST /datasets/synthetic
// Con ?format=csv responde el archivo en lugar de JSON. El body es opcional.
func (h *DatasetHandler) GenerateSynthetic(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	records, summary, err := h.svc.Generate(c.Request.Context(), service.GenerateInput{Size: req.Size, Seed: req.Seed})
	if err != nil {
		writeServiceError(c, h.logger, err, "could not generate dataset")
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="synthetic_employees.csv"`)
		c.Status(http.StatusOK)
		if err := dataset.WriteSyntheticCSV(c.Writer, records); err != nil {
			h.logger.Error("write synthetic csv failed", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary, "employees": records})
}

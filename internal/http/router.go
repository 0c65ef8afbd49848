package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attrition-risk/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
// Si jwtSvc es nil la API queda sin autenticacion ni roles (uso local).
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	assessmentH *AssessmentHandler,
	populationH *PopulationHandler,
	datasetH *DatasetHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("")
	// Cargar poblaciones y generar datasets queda reservado a admin.
	adminOnly := []gin.HandlerFunc{}
	if jwtSvc != nil {
		api.Use(JWTAuthMiddleware(jwtSvc))
		adminOnly = append(adminOnly, RequireRole(service.RoleAdmin))
	}

	api.POST("/assessments", assessmentH.CreateAssessment)
	api.POST("/assessments/batch", assessmentH.BatchAssess)
	api.GET("/assessments", assessmentH.ListAssessments)

	api.POST("/populations", append(adminOnly, populationH.CreatePopulation)...)
	api.GET("/populations/:id/summary", populationH.GetSummary)

	api.POST("/datasets/synthetic", append(adminOnly, datasetH.GenerateSynthetic)...)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

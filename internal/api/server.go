// Package api exposes the grading service over HTTP with gin.
package api

import (
	"net/http"

	"github.com/4NDR3-S01/ExposIA/core"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options tunes the router.
type Options struct {
	// Debug enables gin's debug mode and request logging.
	Debug bool
	// Gatherer backs the /metrics endpoint. Nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Handler serves the grading HTTP endpoints.
type Handler struct {
	svc *core.Service
}

// NewHandler creates a Handler over svc.
func NewHandler(svc *core.Service) *Handler {
	return &Handler{svc: svc}
}

// NewRouter builds the gin engine with every grading route registered.
func NewRouter(svc *core.Service, opts Options) *gin.Engine {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if opts.Debug {
		engine.Use(gin.Logger())
	}
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	NewHandler(svc).Register(engine.Group("/api"))
	return engine
}

// Register mounts the grading routes on group.
func (h *Handler) Register(api *gin.RouterGroup) {
	gradings := api.Group("/gradings")
	{
		gradings.GET("", h.ListGradings)
		gradings.POST("", h.CreateGrading)
		gradings.GET("/:id", h.GetGrading)
		gradings.PUT("/:id", h.UpdateGrading)
		gradings.DELETE("/:id", h.DeleteGrading)
		gradings.POST("/:id/ai", h.ApplyAIGrading)
		gradings.GET("/:id/details", h.ListGradingDetails)
		gradings.GET("/:id/feedback", h.ListGradingFeedback)
	}

	criteria := api.Group("/criteria")
	{
		criteria.GET("", h.ListCriteria)
		criteria.POST("", h.CreateCriterion)
		criteria.GET("/:id", h.GetCriterion)
		criteria.PUT("/:id", h.UpdateCriterion)
		criteria.DELETE("/:id", h.DeleteCriterion)
	}

	ideal := api.Group("/ideal-parameters")
	{
		ideal.GET("", h.ListIdealParameters)
		ideal.POST("", h.CreateIdealParameters)
		ideal.GET("/:id", h.GetIdealParameters)
		ideal.PUT("/:id", h.UpdateIdealParameters)
		ideal.DELETE("/:id", h.DeleteIdealParameters)
	}

	details := api.Group("/details")
	{
		details.GET("", h.ListDetailScores)
		details.POST("", h.CreateDetailScore)
		details.GET("/:id", h.GetDetailScore)
		details.PUT("/:id", h.UpdateDetailScore)
		details.DELETE("/:id", h.DeleteDetailScore)
	}

	feedback := api.Group("/feedback")
	{
		feedback.GET("", h.ListFeedback)
		feedback.POST("", h.CreateFeedback)
		feedback.GET("/:id", h.GetFeedback)
	}
}

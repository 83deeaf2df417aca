package handlers

import (
	"net/http"

	"kyc-service/utils"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// PublisherMetrics exposes event publisher counters for the health report.
type PublisherMetrics interface {
	GetMetrics() map[string]any
}

type HealthHandler struct {
	db     *sqlx.DB
	events PublisherMetrics
}

// NewHealthHandler creates the health handler. events may be nil when the
// broker is unavailable and event publishing is disabled.
func NewHealthHandler(db *sqlx.DB, events PublisherMetrics) *HealthHandler {
	return &HealthHandler{
		db:     db,
		events: events,
	}
}

func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.GET("/health", h.Health)
}

func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"message": "KYC API with Users, Documents & Faces",
	}))
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, utils.CreateErrorResponse("DB_UNAVAILABLE", "database unreachable"))
		return
	}

	report := gin.H{"status": "ok"}
	if h.events != nil {
		report["events"] = h.events.GetMetrics()
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(report))
}

package webserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/truthlens/truthlens/src/api/backend"
	"github.com/truthlens/truthlens/src/api/config"
)

type Status struct {
	cfg     config.Config
	backend *backend.Client
}

func NewStatus(cfg config.Config) Status {
	var mlClient *backend.Client
	if cfg.BackendURL != "" {
		mlClient = backend.NewClient(cfg.BackendURL)
	}
	return Status{cfg: cfg, backend: mlClient}
}

// modelReady is true when the configured ML backend reports a trained model,
// or unconditionally when running heuristic-only: the fallback engine needs
// no training.
func (s Status) modelReady(c *gin.Context) bool {
	if s.backend == nil {
		return true
	}
	return s.backend.Ready(c.Request.Context())
}

func (s Status) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"model_ready":      s.modelReady(c),
		"gemini_available": s.cfg.ReportAvailable,
		"version":          Version,
	})
}

func (s Status) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"model_ready": s.modelReady(c),
		"version":     Version,
		"timestamp":   time.Now().Unix(),
	})
}

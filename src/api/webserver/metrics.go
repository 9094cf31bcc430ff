package webserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/truthlens/truthlens/src/api/backend"
	"github.com/truthlens/truthlens/src/api/config"
	"github.com/truthlens/truthlens/src/classifier"
)

type Metrics struct {
	backend *backend.Client
}

func NewMetrics(cfg config.Config) Metrics {
	var mlClient *backend.Client
	if cfg.BackendURL != "" {
		mlClient = backend.NewClient(cfg.BackendURL)
	}
	return Metrics{backend: mlClient}
}

// Metrics serves the ML engine's stored evaluation metrics. Heuristic-only
// deployments report the engine's static figures so the dashboard still
// renders.
func (m Metrics) Metrics(c *gin.Context) {
	if m.backend != nil {
		raw, err := m.backend.Metrics(c.Request.Context())
		if err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
		log.Printf("metrics fetch failed, serving heuristic figures: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"best_model": classifier.ModelName,
		"models": gin.H{
			classifier.ModelName: gin.H{
				"accuracy":  classifier.ModelAccuracy / 100,
				"heuristic": true,
			},
		},
	})
}

package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/truthlens/truthlens/src/api/types"
	"gorm.io/gorm"
)

type Analytics struct {
	db *gorm.DB
}

func NewAnalytics(db *gorm.DB) Analytics {
	return Analytics{db: db}
}

// Summary feeds the dashboard: detection counts, average confidence per
// label and the most recent checks (hashes only, no text).
func (a Analytics) Summary(c *gin.Context) {
	if a.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Analytics storage not configured.", "code": "STORAGE_UNAVAILABLE"})
		return
	}

	var total, fake int64
	if err := a.db.Model(&types.Detection{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred.", "code": "INTERNAL_ERROR"})
		return
	}
	a.db.Model(&types.Detection{}).Where("label = ?", "FAKE").Count(&fake)

	var avgFake, avgReal float64
	a.db.Model(&types.Detection{}).Where("label = ?", "FAKE").
		Select("COALESCE(AVG(confidence), 0)").Scan(&avgFake)
	a.db.Model(&types.Detection{}).Where("label = ?", "REAL").
		Select("COALESCE(AVG(confidence), 0)").Scan(&avgReal)

	var recent []types.Detection
	a.db.Order("created_at desc").Limit(20).Find(&recent)

	c.JSON(http.StatusOK, gin.H{
		"total_checks":        total,
		"fake_count":          fake,
		"real_count":          total - fake,
		"avg_confidence_fake": avgFake,
		"avg_confidence_real": avgReal,
		"recent":              recent,
	})
}

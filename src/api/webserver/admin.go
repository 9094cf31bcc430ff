package webserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/truthlens/truthlens/src/api/types"
	"gorm.io/gorm"
)

type Admin struct {
	db *gorm.DB
}

func NewAdmin(db *gorm.DB) Admin {
	return Admin{db: db}
}

// PurgeHistory wipes the detection history table. JWT-guarded.
func (a Admin) PurgeHistory(c *gin.Context) {
	if a.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Analytics storage not configured.", "code": "STORAGE_UNAVAILABLE"})
		return
	}

	result := a.db.Where("1 = 1").Delete(&types.Detection{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred.", "code": "INTERNAL_ERROR"})
		return
	}

	log.Printf("Admin %v purged %d detection records", c.GetString("sub"), result.RowsAffected)
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": result.RowsAffected})
}

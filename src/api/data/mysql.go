package data

import (
	"log"

	"github.com/OneOfOne/xxhash"
	"github.com/truthlens/truthlens/src/api/types"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	return db
}

// TextHash keys detection history rows without storing the text itself.
func TextHash(text string) uint64 {
	h := xxhash.NewS64(0)
	_, _ = h.WriteString(text)
	return h.Sum64()
}

func RecordDetection(db *gorm.DB, d *types.Detection) error {
	return db.Create(d).Error
}

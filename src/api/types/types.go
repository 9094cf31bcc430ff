package types

import (
	"time"

	"github.com/truthlens/truthlens/src/classifier"
)

// Detection is one served classification, kept for the analytics dashboard.
// Only the content hash is stored, never the submitted text.
type Detection struct {
	ID         uint64    `gorm:"primaryKey"`
	TextHash   uint64    `gorm:"index;not null"`
	Label      string    `gorm:"size:8;not null"`
	Confidence float64   `gorm:"not null"`
	Engine     string    `gorm:"size:16;not null"`
	TextChars  int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// Engines recorded on Detection rows.
const (
	EngineHeuristic = "heuristic"
	EngineBackend   = "backend"
)

// PredictResponse is the wire shape shared by the heuristic engine and the
// remote ML backend; the UI treats both interchangeably.
type PredictResponse struct {
	classifier.Verdict
	RequestID      string  `json:"request_id,omitempty"`
	MLTimeMs       float64 `json:"ml_time_ms"`
	ResponseTimeMs float64 `json:"response_time_ms"`
}

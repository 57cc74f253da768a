package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherkit/internal/analysis"
)

func TestDefaultScorerRanksEnglishAboveNoise(t *testing.T) {
	s := analysis.Default()

	english := "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"
	noise := "QXZKJ VWQXP ZZKQW JXQZV KWXPQ ZQXJK VZWQX"
	shifted := "WKH TXLFN EURZQ IRA MXPSV RYHU WKH ODCB GRJ"

	assert.Greater(t, s.Score(english), s.Score(noise))
	assert.Greater(t, s.Score(english), s.Score(shifted))
}

func TestScoreIgnoresCaseAndPunctuation(t *testing.T) {
	s := analysis.Default()

	assert.Equal(t, s.Score("HELLOWORLD"), s.Score("Hello, World!"))
	assert.Equal(t, s.Score("HELLOWORLD"), s.Score("hello world"))
}

func TestEvaluateComponents(t *testing.T) {
	s := analysis.Default()

	score, comp := s.Evaluate("ATTACK THE EAST WALL OF THE CASTLE AT DAWN")
	assert.GreaterOrEqual(t, comp.ChiSquared, 0.0)
	assert.Negative(t, comp.Bigram, "log10 probabilities are negative")
	assert.Negative(t, comp.Trigram)
	assert.NotZero(t, score)

	// Unseen grams sit on the floor, so pure noise scores well below text
	// whose grams the corpus knows.
	_, noiseComp := s.Evaluate("ZQXJKVZWQX")
	assert.Less(t, noiseComp.Bigram, comp.Bigram)
	assert.Less(t, noiseComp.Trigram, comp.Trigram)
}

func TestEvaluateEmptyAndTinyInput(t *testing.T) {
	s := analysis.Default()

	score, comp := s.Evaluate("")
	assert.Zero(t, score)
	assert.Zero(t, comp.ChiSquared)
	assert.Zero(t, comp.Bigram)
	assert.Zero(t, comp.Trigram)

	// One letter: no bigrams or trigrams to slide over.
	_, comp = s.Evaluate("E")
	assert.Zero(t, comp.Bigram)
	assert.Zero(t, comp.Trigram)
}

func TestNewScorerRejectsMalformedTables(t *testing.T) {
	mono := "E 12\nT 9\n"
	bi := "TH 35\nHE 30\n"
	tri := "THE 18\nAND 7\n"

	// All 26 letters are required for chi-squared expectations.
	_, err := analysis.NewScorer(mono, bi, tri)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	full := fullMonograms()

	_, err = analysis.NewScorer(full, "TOOLONG 5\n", tri)
	require.Error(t, err)

	_, err = analysis.NewScorer(full, "th 35\n", tri)
	require.Error(t, err)

	_, err = analysis.NewScorer(full, "TH 35\nTH 12\n", tri)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = analysis.NewScorer(full, "TH x\n", tri)
	require.Error(t, err)

	_, err = analysis.NewScorer(full, bi, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func fullMonograms() string {
	out := ""
	for r := 'A'; r <= 'Z'; r++ {
		out += string(r) + " 10\n"
	}
	return out
}

package analysis

import (
	"bufio"
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"cipherkit/internal/domain"
)

//go:embed corpus/english_monograms.txt
var monogramData string

//go:embed corpus/english_bigrams.txt
var bigramData string

//go:embed corpus/english_trigrams.txt
var trigramData string

const (
	chiWeight     = 0.30
	bigramWeight  = 0.40
	trigramWeight = 0.30
)

var (
	defaultOnce   sync.Once
	defaultScorer *Scorer
)

// Default returns the scorer backed by the embedded English corpus. The
// corpus is parsed once on first use.
func Default() *Scorer {
	defaultOnce.Do(func() {
		s, err := NewScorer(monogramData, bigramData, trigramData)
		if err != nil {
			panic(fmt.Sprintf("embedded corpus: %v", err))
		}
		defaultScorer = s
	})
	return defaultScorer
}

// Scorer holds a parsed language model. Construct with NewScorer or use
// Default for the embedded English model.
type Scorer struct {
	letterFreq [26]float64
	bigrams    *ngramModel
	trigrams   *ngramModel
}

// NewScorer parses three "GRAM COUNT" tables: single letters, bigrams and
// trigrams. Monograms must cover all 26 letters so chi-squared expectations
// stay positive.
func NewScorer(monograms, bigrams, trigrams string) (*Scorer, error) {
	letterFreq, err := parseLetterFreq(monograms)
	if err != nil {
		return nil, fmt.Errorf("monograms: %w", err)
	}
	bi, err := parseNgrams(bigrams, 2)
	if err != nil {
		return nil, fmt.Errorf("bigrams: %w", err)
	}
	tri, err := parseNgrams(trigrams, 3)
	if err != nil {
		return nil, fmt.Errorf("trigrams: %w", err)
	}
	return &Scorer{letterFreq: letterFreq, bigrams: bi, trigrams: tri}, nil
}

// Score returns the blended English-resemblance score of text.
func (s *Scorer) Score(text string) float64 {
	score, _ := s.Evaluate(text)
	return score
}

// Evaluate returns the blended score together with its components.
func (s *Scorer) Evaluate(text string) (float64, domain.ComponentScores) {
	letters := extractLetters(text)
	comp := domain.ComponentScores{
		ChiSquared: s.chiSquared(letters),
		Bigram:     s.bigrams.meanLog10(letters),
		Trigram:    s.trigrams.meanLog10(letters),
	}

	score := bigramWeight*comp.Bigram + trigramWeight*comp.Trigram
	if len(letters) > 0 {
		score -= chiWeight * comp.ChiSquared / float64(len(letters))
	}
	return score, comp
}

// chiSquared returns the raw chi-squared statistic of the letter counts of
// letters (an A-Z string) against the corpus distribution. Zero when there
// are no letters to judge.
func (s *Scorer) chiSquared(letters string) float64 {
	if len(letters) == 0 {
		return 0
	}
	var observed [26]int
	for i := 0; i < len(letters); i++ {
		observed[letters[i]-'A']++
	}

	var chi float64
	for i := 0; i < 26; i++ {
		expected := s.letterFreq[i] * float64(len(letters))
		diff := float64(observed[i]) - expected
		chi += diff * diff / expected
	}
	return chi
}

// extractLetters returns the ASCII letters of text uppercased, everything
// else dropped. Statistics see "Hello, World!" and "HELLOWORLD" alike.
func extractLetters(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}
	return b.String()
}

// ngramModel maps grams of a fixed length to log10 probabilities, with a
// floor for grams missing from the corpus.
type ngramModel struct {
	logProb map[string]float64
	floor   float64
	length  int
}

// meanLog10 returns the average log10 probability of the sliding n-grams
// of letters, or zero when letters is shorter than one gram.
func (m *ngramModel) meanLog10(letters string) float64 {
	n := len(letters) - m.length + 1
	if n <= 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		if lp, ok := m.logProb[letters[i:i+m.length]]; ok {
			sum += lp
		} else {
			sum += m.floor
		}
	}
	return sum / float64(n)
}

func parseLetterFreq(data string) ([26]float64, error) {
	var freq [26]float64
	counts := make(map[string]int, 26)
	total, err := parseCounts(data, 1, counts)
	if err != nil {
		return freq, err
	}
	for letter, count := range counts {
		freq[letter[0]-'A'] = float64(count) / float64(total)
	}
	for i, f := range freq {
		if f == 0 {
			return freq, fmt.Errorf("letter %c missing from table", 'A'+i)
		}
	}
	return freq, nil
}

func parseNgrams(data string, length int) (*ngramModel, error) {
	counts := make(map[string]int)
	total, err := parseCounts(data, length, counts)
	if err != nil {
		return nil, err
	}
	logProb := make(map[string]float64, len(counts))
	for gram, count := range counts {
		logProb[gram] = math.Log10(float64(count) / float64(total))
	}
	return &ngramModel{
		logProb: logProb,
		floor:   math.Log10(0.01 / float64(total)),
		length:  length,
	}, nil
}

// parseCounts reads "GRAM COUNT" lines into counts and returns the count
// total. Grams must be uppercase ASCII letters of the given length.
func parseCounts(data string, length int, counts map[string]int) (int, error) {
	total := 0
	scanner := bufio.NewScanner(strings.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return 0, fmt.Errorf("line %d: want \"GRAM COUNT\", got %q", line, text)
		}
		gram := fields[0]
		if len(gram) != length {
			return 0, fmt.Errorf("line %d: gram %q is not %d letters", line, gram, length)
		}
		for i := 0; i < len(gram); i++ {
			if gram[i] < 'A' || gram[i] > 'Z' {
				return 0, fmt.Errorf("line %d: gram %q is not uppercase ASCII", line, gram)
			}
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count <= 0 {
			return 0, fmt.Errorf("line %d: bad count %q", line, fields[1])
		}
		if _, dup := counts[gram]; dup {
			return 0, fmt.Errorf("line %d: duplicate gram %q", line, gram)
		}
		counts[gram] = count
		total += count
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if len(counts) == 0 {
		return 0, fmt.Errorf("empty table")
	}
	return total, nil
}

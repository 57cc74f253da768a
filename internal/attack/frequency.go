package attack

import (
	"errors"
	"slices"
	"sync"

	"cipherkit/internal/analysis"
	"cipherkit/internal/domain"
)

// frequencyAnalysis decodes the ciphertext with every key and ranks the
// results by resemblance to English. It cannot fail on well-formed input:
// even a hopeless ciphertext yields a ranking, just one with a confidence
// near zero.
func frequencyAnalysis(t Target, params domain.AttackParams) (*domain.AttackResult, error) {
	if len(t.Keys) == 0 {
		return nil, &domain.UnsupportedOperationError{Variant: t.Variant, Method: domain.FrequencyAnalysis}
	}
	scorer := analysis.Default()

	ranked := make([]domain.KeyScore, len(t.Keys))
	decodeErrs := make([]error, len(t.Keys))

	var wg sync.WaitGroup
	wg.Add(len(t.Keys))
	for i := range t.Keys {
		go func(i int) {
			defer wg.Done()
			text, err := t.Decode(t.Keys[i], params.Ciphertext)
			if err != nil {
				decodeErrs[i] = err
				return
			}
			ranked[i] = domain.KeyScore{
				Key:       t.Keys[i],
				Score:     scorer.Score(text),
				Plaintext: text,
			}
		}(i)
	}
	wg.Wait()
	if err := errors.Join(decodeErrs...); err != nil {
		return nil, err
	}

	// Scheduling must not leak into the ranking: sort by score descending,
	// ties by lowest key.
	slices.SortFunc(ranked, func(x, y domain.KeyScore) int {
		switch {
		case x.Score > y.Score:
			return -1
		case x.Score < y.Score:
			return 1
		case x.Key.Less(y.Key):
			return -1
		case y.Key.Less(x.Key):
			return 1
		default:
			return 0
		}
	})

	best := ranked[0]
	confidence := 0.0
	if len(ranked) > 1 {
		gap := best.Score - ranked[1].Score
		confidence = gap / (gap + 1)
	}
	_, components := scorer.Evaluate(best.Plaintext)

	return &domain.AttackResult{
		Method: domain.FrequencyAnalysis,
		Frequency: &domain.FrequencyResult{
			Ranked:     ranked,
			Best:       best,
			Confidence: confidence,
			Components: components,
		},
	}, nil
}

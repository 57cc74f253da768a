package attack

import (
	"errors"
	"sync"

	"github.com/dlclark/regexp2"

	"cipherkit/internal/domain"
)

// bruteForce decodes the ciphertext with every key in the target's space.
// Decodes run on one goroutine per candidate, each writing its own slot,
// so the output order is the key order no matter how they are scheduled.
func bruteForce(t Target, params domain.AttackParams) (*domain.AttackResult, error) {
	matcher, err := compileMask(params)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, len(t.Keys))
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
			candidates[i] = domain.Candidate{Key: t.Keys[i], Plaintext: text}
		}(i)
	}
	wg.Wait()
	if err := errors.Join(decodeErrs...); err != nil {
		return nil, err
	}

	result := &domain.BruteForceResult{Candidates: candidates}
	if matcher != nil {
		for i := range candidates {
			ok, err := matcher.MatchString(candidates[i].Plaintext)
			if err != nil {
				// Timed-out matching counts as no match for this
				// candidate; a slow mask must not sink the attack.
				continue
			}
			if ok {
				best := candidates[i]
				result.Best = &best
				result.MaskMatched = true
				break
			}
		}
	}
	return &domain.AttackResult{Method: domain.BruteForce, BruteForce: result}, nil
}

// compileMask compiles the optional mask under a backtracking timeout.
// A mask that does not compile is the caller's mistake and fails eagerly.
func compileMask(params domain.AttackParams) (*regexp2.Regexp, error) {
	if params.Mask == "" {
		return nil, nil
	}
	re, err := regexp2.Compile(params.Mask, 0)
	if err != nil {
		return nil, &domain.ValidationError{Param: "mask", Reason: err.Error()}
	}
	timeout := params.MaskTimeout
	if timeout <= 0 {
		timeout = DefaultMaskTimeout
	}
	re.MatchTimeout = timeout
	return re, nil
}

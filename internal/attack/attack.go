package attack

import (
	"slices"
	"time"
	"unicode"

	"cipherkit/internal/alphabet"
	"cipherkit/internal/domain"
)

// DefaultMaskTimeout bounds regex backtracking when matching brute-force
// masks against candidate decodes. Masks come from users, and a
// pathological pattern must not hang an attack.
const DefaultMaskTimeout = 500 * time.Millisecond

// Target is the attack engine's view of a cipher variant: the keys to
// search and how to run one key against a text. The cipher package builds
// Targets; attacks stay decoupled from cipher construction.
type Target struct {
	Variant   domain.Variant
	Alphabet  *alphabet.Alphabet
	Keys      []domain.Key
	Supported []domain.AttackMethod

	Decode   func(key domain.Key, text string) (string, error)
	Encode   func(key domain.Key, text string) (string, error)
	Validate func(key domain.Key) error
}

type attackFunc func(Target, domain.AttackParams) (*domain.AttackResult, error)

var methods = map[domain.AttackMethod]attackFunc{
	domain.BruteForce:        bruteForce,
	domain.FrequencyAnalysis: frequencyAnalysis,
	domain.KnownPlaintext:    knownPlaintext,
}

// Run executes one attack method against the target. Methods outside the
// target's supported set fail with *domain.UnsupportedOperationError; so
// do methods the engine has never heard of.
func Run(t Target, method domain.AttackMethod, params domain.AttackParams) (*domain.AttackResult, error) {
	fn, known := methods[method]
	if !known || !slices.Contains(t.Supported, method) {
		return nil, &domain.UnsupportedOperationError{Variant: t.Variant, Method: method}
	}
	return fn(t, params)
}

// positionOf resolves a rune to its alphabet position, reusing the
// translation engine's case rule: exact membership first, opposite-case
// membership second.
func positionOf(alpha *alphabet.Alphabet, r rune) (int, bool) {
	if i, ok := alpha.Index(r); ok {
		return i, true
	}
	if up := unicode.ToUpper(r); up != r {
		if i, ok := alpha.Index(up); ok {
			return i, true
		}
	}
	if low := unicode.ToLower(r); low != r {
		if i, ok := alpha.Index(low); ok {
			return i, true
		}
	}
	return 0, false
}

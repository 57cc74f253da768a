package attack

import (
	"fmt"

	"cipherkit/internal/affine"
	"cipherkit/internal/domain"
)

// knownPlaintext recovers the key exactly from an aligned plaintext and
// ciphertext pair. Two positions with distinct plaintext letters pin the
// affine map: y1 = a*x1 + b and y2 = a*x2 + b give
// a = (y1-y2) * (x1-x2)^-1 and b = y1 - a*x1, all mod m.
func knownPlaintext(t Target, params domain.AttackParams) (*domain.AttackResult, error) {
	plain := []rune(params.Plaintext)
	ciph := []rune(params.Ciphertext)
	if len(plain) != len(ciph) {
		return nil, &domain.ValidationError{
			Param:  "plaintext",
			Reason: fmt.Sprintf("plaintext (%d runes) and ciphertext (%d runes) must have the same length", len(plain), len(ciph)),
		}
	}

	type sample struct{ x, y int }
	var samples []sample
	for i := range plain {
		x, okX := positionOf(t.Alphabet, plain[i])
		y, okY := positionOf(t.Alphabet, ciph[i])
		if okX && okY {
			samples = append(samples, sample{x, y})
		}
	}
	if len(samples) == 0 {
		return nil, &domain.NoSolutionError{Reason: "no aligned alphabetic positions in the pair"}
	}

	// Any two distinct plaintext letters will do. If none differ from the
	// first, none differ from each other, and one congruence cannot pin
	// two unknowns.
	first := samples[0]
	second := first
	for _, s := range samples[1:] {
		if s.x != first.x {
			second = s
			break
		}
	}
	if second == first {
		return nil, &domain.NoSolutionError{Reason: "plaintext letters are all identical, need two distinct letters"}
	}

	m := t.Alphabet.Len()
	diff := affine.Mod(first.x-second.x, m)
	inv, err := affine.ModInverse(diff, m)
	if err != nil {
		return nil, &domain.NoSolutionError{
			Reason: fmt.Sprintf("plaintext letter difference %d is not invertible mod %d", diff, m),
		}
	}

	a := affine.Mod(inv*(first.y-second.y), m)
	if !affine.IsUnit(a, m) {
		return nil, &domain.NoSolutionError{
			Reason: fmt.Sprintf("recovered a=%d is not coprime with modulus %d", a, m),
		}
	}
	b := affine.Mod(first.y-a*first.x, m)

	key := domain.Key{A: a, B: b}
	if err := t.Validate(key); err != nil {
		return nil, &domain.NoSolutionError{
			Reason: fmt.Sprintf("recovered key %s lies outside the %s key space", key, t.Variant),
		}
	}

	// The two sampled positions fix the key; the rest of the pair must
	// agree with it or the pair was not produced by this family at all.
	encoded, err := t.Encode(key, params.Plaintext)
	if err != nil {
		return nil, err
	}
	if encoded != params.Ciphertext {
		return nil, &domain.InconsistentKeyError{Key: key}
	}

	return &domain.AttackResult{
		Method:         domain.KnownPlaintext,
		KnownPlaintext: &domain.KnownPlaintextResult{Key: key},
	}, nil
}

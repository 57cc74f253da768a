package cipher

import (
	"fmt"
	"math/rand/v2"

	"cipherkit/internal/affine"
	"cipherkit/internal/alphabet"
	"cipherkit/internal/domain"
)

// keyShape classifies how a variant's key space is parameterised.
type keyShape int

const (
	fixedShape  keyShape = iota // no free parameters; supplied keys are ignored
	shiftShape                  // a = 1, b ranges over [1, m)
	affineShape                 // a ranges over the units of Z_m, b over [0, m)
)

type profile struct {
	alphabet *alphabet.Alphabet
	shape    keyShape
	fixed    domain.Key
	attacks  []domain.AttackMethod
	summary  string
}

var (
	latin     = alphabet.Latin()
	printable = alphabet.Printable()

	keyedAttacks = []domain.AttackMethod{
		domain.BruteForce,
		domain.FrequencyAnalysis,
		domain.KnownPlaintext,
	}

	profiles = map[domain.Variant]profile{
		domain.Caesar: {
			alphabet: latin,
			shape:    shiftShape,
			attacks:  keyedAttacks,
			summary:  "shifts letters by a fixed amount",
		},
		domain.Affine: {
			alphabet: latin,
			shape:    affineShape,
			attacks:  keyedAttacks,
			summary:  "maps letter positions through (a*x + b) mod 26",
		},
		domain.Atbash: {
			alphabet: latin,
			shape:    fixedShape,
			fixed:    domain.Key{A: 25, B: 25},
			summary:  "mirrors the alphabet; self-inverse",
		},
		domain.ROT13: {
			alphabet: latin,
			shape:    fixedShape,
			fixed:    domain.Key{A: 1, B: 13},
			summary:  "half-alphabet shift; self-inverse",
		},
		domain.ROT47: {
			alphabet: printable,
			shape:    fixedShape,
			fixed:    domain.Key{A: 1, B: 47},
			summary:  "shift 47 over the printable ASCII characters; self-inverse",
		},
	}
)

func profileFor(v domain.Variant) (profile, error) {
	p, ok := profiles[v]
	if !ok {
		return profile{}, &domain.ValidationError{
			Param:  "variant",
			Reason: fmt.Sprintf("unknown variant %q", v),
		}
	}
	return p, nil
}

// ValidateKey reports whether key belongs to the variant's family. For
// fixed-key variants only the fixed key itself is a member.
func ValidateKey(v domain.Variant, key domain.Key) error {
	p, err := profileFor(v)
	if err != nil {
		return err
	}
	m := p.alphabet.Len()

	switch p.shape {
	case fixedShape:
		if key != p.fixed {
			return &domain.ValidationError{
				Param:  "key",
				Reason: fmt.Sprintf("%s uses a fixed key", v),
			}
		}
	case shiftShape:
		if key.A != 1 {
			return &domain.ValidationError{
				Param:  "key",
				Reason: fmt.Sprintf("a is fixed to 1 for %s", v),
			}
		}
		if key.B < 1 || key.B > m-1 {
			return &domain.ValidationError{
				Param:  "key",
				Reason: fmt.Sprintf("shift must be between 1 and %d", m-1),
			}
		}
	case affineShape:
		if key.A < 1 || key.A > m-1 {
			return &domain.ValidationError{
				Param:  "key",
				Reason: fmt.Sprintf("a must be between 1 and %d", m-1),
			}
		}
		if !affine.IsUnit(key.A, m) {
			return &domain.ValidationError{
				Param:  "key",
				Reason: fmt.Sprintf("a must be coprime with modulus %d", m),
			}
		}
		if key.B < 0 || key.B > m-1 {
			return &domain.ValidationError{
				Param:  "key",
				Reason: fmt.Sprintf("b must be between 0 and %d", m-1),
			}
		}
	}
	return nil
}

// GenerateKey samples a key uniformly from the variant's valid key space.
// Fixed-key variants return their only member. Uniformity matters here,
// secrecy does not: these ciphers are classroom material, not protection.
func GenerateKey(v domain.Variant) (domain.Key, error) {
	p, err := profileFor(v)
	if err != nil {
		return domain.Key{}, err
	}
	m := p.alphabet.Len()

	switch p.shape {
	case shiftShape:
		return domain.Key{A: 1, B: 1 + rand.IntN(m-1)}, nil
	case affineShape:
		units := affine.Units(m)
		return domain.Key{A: units[rand.IntN(len(units))], B: rand.IntN(m)}, nil
	default:
		return p.fixed, nil
	}
}

// KeySpace enumerates every key in the variant's family in ascending
// (a, b) order: 25 keys for Caesar, 312 for Affine. Fixed-key variants
// have nothing to search and return nil.
func KeySpace(v domain.Variant) []domain.Key {
	p, ok := profiles[v]
	if !ok {
		return nil
	}
	m := p.alphabet.Len()

	switch p.shape {
	case shiftShape:
		keys := make([]domain.Key, 0, m-1)
		for b := 1; b < m; b++ {
			keys = append(keys, domain.Key{A: 1, B: b})
		}
		return keys
	case affineShape:
		units := affine.Units(m)
		keys := make([]domain.Key, 0, len(units)*m)
		for _, a := range units {
			for b := 0; b < m; b++ {
				keys = append(keys, domain.Key{A: a, B: b})
			}
		}
		return keys
	default:
		return nil
	}
}

// FormatKey renders key the way users of the variant write it: "shift=3"
// for Caesar, "a=5,b=8" for Affine, the variant name when the key is fixed.
func FormatKey(v domain.Variant, key domain.Key) string {
	p, ok := profiles[v]
	if !ok {
		return key.String()
	}
	switch p.shape {
	case shiftShape:
		return fmt.Sprintf("shift=%d", key.B)
	case affineShape:
		return key.String()
	default:
		return v.String()
	}
}

// Info describes one variant for listings.
type Info struct {
	Variant      domain.Variant        `json:"variant"`
	Summary      string                `json:"summary"`
	AlphabetSize int                   `json:"alphabet_size"`
	KeyForm      string                `json:"key_form"`
	KeySpaceSize int                   `json:"key_space_size"`
	Attacks      []domain.AttackMethod `json:"attacks"`
}

// Describe returns the listing entry for one variant.
func Describe(v domain.Variant) (Info, error) {
	p, err := profileFor(v)
	if err != nil {
		return Info{}, err
	}
	m := p.alphabet.Len()

	info := Info{
		Variant:      v,
		Summary:      p.summary,
		AlphabetSize: m,
		KeySpaceSize: len(KeySpace(v)),
		Attacks:      p.attacks,
	}
	switch p.shape {
	case shiftShape:
		info.KeyForm = fmt.Sprintf("shift in [1,%d]", m-1)
	case affineShape:
		info.KeyForm = fmt.Sprintf("a coprime with %d, b in [0,%d]", m, m-1)
	default:
		info.KeyForm = "fixed " + p.fixed.String()
	}
	return info, nil
}

// DescribeAll returns the listing entries for every variant in declaration
// order.
func DescribeAll() []Info {
	infos := make([]Info, 0, len(profiles))
	for _, v := range domain.Variants() {
		info, err := Describe(v)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos
}

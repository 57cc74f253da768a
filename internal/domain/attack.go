package domain

import (
	"fmt"
	"time"
)

// AttackMethod enumerates the cryptanalysis methods of the attack engine.
// The set is closed: dispatch maps each method to one pure function.
type AttackMethod int

const (
	BruteForce AttackMethod = iota
	FrequencyAnalysis
	KnownPlaintext
)

var attackMethodNames = [...]string{
	BruteForce:        "brute_force",
	FrequencyAnalysis: "frequency_analysis",
	KnownPlaintext:    "known_plaintext",
}

// AttackMethods returns all methods in stable listing order.
func AttackMethods() []AttackMethod {
	return []AttackMethod{BruteForce, FrequencyAnalysis, KnownPlaintext}
}

// String returns the snake_case method name.
func (m AttackMethod) String() string {
	if m < 0 || int(m) >= len(attackMethodNames) {
		return fmt.Sprintf("attack_method(%d)", int(m))
	}
	return attackMethodNames[m]
}

// ParseAttackMethod resolves a snake_case method name.
func ParseAttackMethod(s string) (AttackMethod, error) {
	for i, name := range attackMethodNames {
		if name == s {
			return AttackMethod(i), nil
		}
	}
	return 0, &ValidationError{Param: "method", Reason: fmt.Sprintf("unknown attack method %q", s)}
}

// MarshalText encodes the method as its name for JSON and YAML output.
func (m AttackMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText mirrors MarshalText.
func (m *AttackMethod) UnmarshalText(b []byte) error {
	parsed, err := ParseAttackMethod(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// AttackParams carries the per-method attack inputs. Ciphertext is required
// by brute force and frequency analysis; Plaintext plus Ciphertext (equal
// length) by known plaintext. Mask optionally narrows brute force to the
// first decode matching the pattern; MaskTimeout bounds backtracking on the
// untrusted pattern (zero means the engine default).
type AttackParams struct {
	Ciphertext  string
	Plaintext   string
	Mask        string
	MaskTimeout time.Duration
}

// Candidate pairs a key with the text it decodes the ciphertext to.
type Candidate struct {
	Key       Key    `json:"key"`
	Plaintext string `json:"plaintext"`
}

// BruteForceResult holds every candidate decode, ordered by key. Best is the
// first candidate whose plaintext matched the mask, nil when no mask was
// given or nothing matched; an unmatched mask is not an error.
type BruteForceResult struct {
	Candidates  []Candidate `json:"candidates"`
	Best        *Candidate  `json:"best,omitempty"`
	MaskMatched bool        `json:"mask_matched"`
}

// KeyScore is one frequency-analysis candidate with its combined score.
// Scores are comparable only within a single attack run; higher is better.
type KeyScore struct {
	Key       Key     `json:"key"`
	Score     float64 `json:"score"`
	Plaintext string  `json:"plaintext"`
}

// ComponentScores breaks the best candidate's score into its ingredients:
// the chi-squared letter-frequency distance (lower is better) and the
// average bigram/trigram log10 probabilities (higher is better).
type ComponentScores struct {
	ChiSquared float64 `json:"chi_squared"`
	Bigram     float64 `json:"bigram"`
	Trigram    float64 `json:"trigram"`
}

// FrequencyResult ranks every key in the family's key space by statistical
// likelihood of its decode being English. Ranked is sorted by score
// descending, ties broken by lowest key. Confidence in [0,1] grows with the
// score separation between the best candidate and the runner-up.
type FrequencyResult struct {
	Ranked     []KeyScore      `json:"ranked"`
	Best       KeyScore        `json:"best"`
	Confidence float64         `json:"confidence"`
	Components ComponentScores `json:"components"`
}

// KnownPlaintextResult carries the exactly recovered key.
type KnownPlaintextResult struct {
	Key Key `json:"key"`
}

// AttackResult is the tagged union returned by the attack engine: Method
// names the variant that ran and exactly one result pointer is non-nil.
type AttackResult struct {
	Method         AttackMethod          `json:"method"`
	BruteForce     *BruteForceResult     `json:"brute_force,omitempty"`
	Frequency      *FrequencyResult      `json:"frequency,omitempty"`
	KnownPlaintext *KnownPlaintextResult `json:"known_plaintext,omitempty"`
}

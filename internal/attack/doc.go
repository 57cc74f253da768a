// Package attack implements cryptanalysis of substitution ciphers.
//
// # Overview
//
// The engine is method dispatch over a closed set: every AttackMethod maps
// to one pure function, gated by the target variant's declared supported
// set. Attacks see the variant only through a Target: its key space, its
// alphabet, and per-key encode/decode callbacks. An attack never uses a
// particular instance's key; it searches the whole family.
//
// # Methods
//
// Brute force enumerates every key, decodes the ciphertext with each, and
// returns the candidates in key order. An optional mask pattern selects the
// first candidate whose decode matches; an unmatched mask is an empty
// result, not an error. Masks are untrusted input, so matching runs under a
// backtracking timeout.
//
// Frequency analysis decodes with every key and ranks the results by
// resemblance to English (see internal/analysis). It always produces a best
// guess; the confidence value says how far that guess stood out from the
// runner-up.
//
// Known plaintext solves for the key exactly. Two aligned positions with
// distinct plaintext letters give two congruences y = a*x + b (mod m);
// the solved key is checked against the variant's family and then verified
// by re-encoding the full plaintext.
//
// # Errors
//
// Run returns *domain.UnsupportedOperationError for a method the variant
// does not declare, and *domain.ValidationError for malformed parameters
// (an uncompilable mask, a length-mismatched plaintext pair). Known
// plaintext alone can fail analytically: *domain.NoSolutionError when no
// family key fits the sampled positions, *domain.InconsistentKeyError when
// the solved key does not explain the whole pair. Brute force and
// frequency analysis never fail on well-formed input.
package attack

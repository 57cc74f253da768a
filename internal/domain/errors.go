package domain

import "fmt"

// ValidationError reports a malformed input: a key outside the variant's
// family, an unknown variant or method name, an invalid mask pattern.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// UnsupportedOperationError reports an attack run against a variant whose
// key space cannot support it, such as brute force on a fixed-key variant.
type UnsupportedOperationError struct {
	Variant Variant
	Method  AttackMethod
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Variant, e.Method)
}

// NoSolutionError reports that a known-plaintext pair admits no key in the
// variant's family. Reason explains what ruled it out.
type NoSolutionError struct {
	Reason string
}

func (e *NoSolutionError) Error() string {
	return fmt.Sprintf("no key solves the pair: %s", e.Reason)
}

// InconsistentKeyError reports a solved key that fails verification: it
// explains the sampled positions used to solve it but not the whole pair.
type InconsistentKeyError struct {
	Key Key
}

func (e *InconsistentKeyError) Error() string {
	return fmt.Sprintf("recovered key %s does not encode the full plaintext to the ciphertext", e.Key)
}

package domain

// Cipher is the contract every variant satisfies. Encode and Decode are
// total: characters outside the variant's alphabet pass through unchanged,
// so malformed input cannot fail them. Attack returns
// *UnsupportedOperationError when method is not in SupportedAttacks.
type Cipher interface {
	// Variant identifies the cipher family.
	Variant() Variant

	// Key returns the active key in canonical affine form.
	Key() Key

	// Encode maps plaintext to ciphertext.
	Encode(plaintext string) string

	// Decode maps ciphertext back to plaintext. For any s,
	// Decode(Encode(s)) == s.
	Decode(ciphertext string) string

	// SupportedAttacks lists the methods Attack accepts for this variant.
	SupportedAttacks() []AttackMethod

	// Attack runs one cryptanalysis method against this variant's key
	// space using params.
	Attack(method AttackMethod, params AttackParams) (*AttackResult, error)
}

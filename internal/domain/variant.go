package domain

import "fmt"

// Variant identifies a substitution-cipher family. Each variant is a fixed
// configuration of the affine transform x -> (a*x + b) mod m over an ordered
// alphabet; it carries no behaviour of its own.
type Variant int

const (
	Caesar Variant = iota
	Affine
	Atbash
	ROT13
	ROT47
)

var variantNames = [...]string{
	Caesar: "caesar",
	Affine: "affine",
	Atbash: "atbash",
	ROT13:  "rot13",
	ROT47:  "rot47",
}

// Variants returns all known variants in stable listing order.
func Variants() []Variant {
	return []Variant{Caesar, Affine, Atbash, ROT13, ROT47}
}

// String returns the lowercase variant name.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant resolves a lowercase variant name.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}
	return 0, &ValidationError{Param: "variant", Reason: fmt.Sprintf("unknown variant %q", s)}
}

// MarshalText encodes the variant as its name for JSON and YAML output.
func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText mirrors MarshalText.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

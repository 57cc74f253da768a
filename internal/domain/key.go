package domain

import "fmt"

// Key is the parameter set distinguishing one cipher instance from another
// within a variant's family. A is the affine multiplier and B the offset.
// Caesar keys fix A=1 (B is the shift); Atbash, ROT13 and ROT47 fix both
// parameters and have no variability. Keys are value types: compared with ==,
// never mutated after construction.
type Key struct {
	A int `json:"a"`
	B int `json:"b"`
}

// String renders the key in affine form. Variant-aware rendering (for example
// "shift=3" for Caesar) is provided by the cipher package.
func (k Key) String() string { return fmt.Sprintf("a=%d,b=%d", k.A, k.B) }

// Less orders keys by multiplier, then offset. It defines the deterministic
// enumeration and tie-break order used by the attack engine.
func (k Key) Less(o Key) bool {
	if k.A != o.A {
		return k.A < o.A
	}
	return k.B < o.B
}

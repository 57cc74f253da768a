// Package affine implements the modular arithmetic every cipherkit variant
// reduces to: the map E(x) = (a*x + b) mod m and its inverse
// D(y) = a^-1 * (y - b) mod m over alphabet positions.
//
// # Contents
//
//   - Forward and Inverse evaluation of the affine map (Forward, Inverse)
//   - Modular inverses via the extended Euclidean algorithm (ModInverse)
//   - Unit tests for multipliers: gcd(a, m) == 1 (IsUnit, Units)
//   - Non-negative remainder for possibly negative operands (Mod)
//
// # Notes
//
// The package works on ints, not runes. Mapping between runes and positions
// belongs to internal/alphabet and internal/translate; everything here is
// pure arithmetic with no alphabet knowledge. Inverse and ModInverse fail
// only when a is not a unit of Z_m, which callers rule out up front by
// validating keys, so the error paths are corner guards rather than
// expected flows.
package affine

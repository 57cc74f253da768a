package affine

import "errors"

// ErrNotUnit reports a multiplier with no inverse modulo m.
var ErrNotUnit = errors.New("multiplier shares a common factor with the modulus")

// Mod returns x mod m in [0, m). Go's % operator keeps the sign of the
// dividend, so a plain x % m would leak negatives into table indices.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// Forward evaluates E(x) = (a*x + b) mod m.
func Forward(a, b, x, m int) int {
	return Mod(a*x+b, m)
}

// Inverse evaluates D(y) = a^-1 * (y - b) mod m. It fails with ErrNotUnit
// when a is not invertible modulo m.
func Inverse(a, b, y, m int) (int, error) {
	inv, err := ModInverse(a, m)
	if err != nil {
		return 0, err
	}
	return Mod(inv*(y-b), m), nil
}

// ModInverse returns a^-1 mod m using the extended Euclidean algorithm,
// or ErrNotUnit when gcd(a, m) != 1.
func ModInverse(a, m int) (int, error) {
	a = Mod(a, m)

	// Track only the Bezout coefficient of a; the gcd falls out of r0.
	r0, r1 := m, a
	t0, t1 := 0, 1
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, ErrNotUnit
	}
	return Mod(t0, m), nil
}

// IsUnit reports whether a is invertible modulo m.
func IsUnit(a, m int) bool {
	return gcd(Mod(a, m), m) == 1
}

// Units returns every invertible multiplier in [1, m) in ascending order.
// For m = 26 that is the twelve classic affine multipliers.
func Units(m int) []int {
	var units []int
	for a := 1; a < m; a++ {
		if gcd(a, m) == 1 {
			units = append(units, a)
		}
	}
	return units
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

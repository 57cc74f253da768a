// Package translate turns an affine key into rune substitution tables.
//
// Build evaluates the affine map once per alphabet position and returns a
// matched encode/decode table pair. Tables carry the case-preservation
// rules, so callers apply them to whole strings without alphabet knowledge.
package translate

import (
	"strings"
	"unicode"

	"cipherkit/internal/affine"
	"cipherkit/internal/alphabet"
)

// Table is an immutable rune substitution map built from one direction of
// an affine key.
type Table struct {
	runes map[rune]rune
}

// Build returns the encode and decode tables for key (a, b) over alpha.
// It fails with affine.ErrNotUnit when a is not invertible modulo the
// alphabet size; every other key yields a bijective pair, so
// dec.Apply(enc.Apply(s)) == s for all s.
func Build(alpha *alphabet.Alphabet, a, b int) (enc, dec *Table, err error) {
	m := alpha.Len()
	inv, err := affine.ModInverse(a, m)
	if err != nil {
		return nil, nil, err
	}

	encPerm := make([]int, m)
	decPerm := make([]int, m)
	for i := 0; i < m; i++ {
		encPerm[i] = affine.Forward(a, b, i, m)
		decPerm[i] = affine.Mod(inv*(i-b), m)
	}
	return newTable(alpha, encPerm), newTable(alpha, decPerm), nil
}

// newTable expands a position permutation into a rune map. Exact alphabet
// members map directly. A member whose opposite-case form is not itself a
// member also translates that form, with the image's case following the
// input; this is what keeps "Hello" round-tripping through the uppercase
// Latin alphabet while leaving the two-case printable alphabet alone.
func newTable(alpha *alphabet.Alphabet, perm []int) *Table {
	runes := make(map[rune]rune, 2*alpha.Len())
	for i, j := range perm {
		src, dst := alpha.Rune(i), alpha.Rune(j)
		runes[src] = dst
		if low := unicode.ToLower(src); low != src && !alpha.Contains(low) {
			runes[low] = unicode.ToLower(dst)
		}
		if up := unicode.ToUpper(src); up != src && !alpha.Contains(up) {
			runes[up] = unicode.ToUpper(dst)
		}
	}
	return &Table{runes: runes}
}

// Apply substitutes every mapped rune of s and passes the rest through.
// The output always has the same rune count as the input.
func (t *Table) Apply(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if out, ok := t.runes[r]; ok {
			b.WriteRune(out)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Package alphabet defines the ordered rune sets ciphers operate over.
//
// An Alphabet is an immutable ordered set of distinct runes; a rune's
// position in the set is the integer the affine arithmetic acts on. Two
// stock alphabets cover every cipherkit variant: the 26 uppercase Latin
// letters, and the 94 printable ASCII characters used by ROT47.
package alphabet

import "fmt"

// Alphabet is an ordered set of distinct runes with O(1) position lookup.
// The zero value is unusable; construct with New, Latin or Printable.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// New builds an alphabet from the runes of s, which must be non-empty and
// free of duplicates.
func New(s string) (*Alphabet, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, fmt.Errorf("alphabet is empty")
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("alphabet repeats %q", r)
		}
		index[r] = i
	}
	return &Alphabet{runes: runes, index: index}, nil
}

// Latin returns the uppercase letters A-Z.
func Latin() *Alphabet {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// Printable returns the printable ASCII characters '!' (33) through
// '~' (126), the 94-character ROT47 alphabet. Space is excluded.
func Printable() *Alphabet {
	runes := make([]rune, 0, 94)
	for r := rune('!'); r <= '~'; r++ {
		runes = append(runes, r)
	}
	return mustNew(string(runes))
}

func mustNew(s string) *Alphabet {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the alphabet size, the modulus of the affine arithmetic.
func (a *Alphabet) Len() int { return len(a.runes) }

// Rune returns the member at position i.
func (a *Alphabet) Rune(i int) rune { return a.runes[i] }

// Index returns the position of r and whether r is a member.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports membership of r.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// String returns the members in order.
func (a *Alphabet) String() string { return string(a.runes) }

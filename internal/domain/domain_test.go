package domain_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherkit/internal/domain"
)

func TestParseVariant(t *testing.T) {
	for _, v := range domain.Variants() {
		parsed, err := domain.ParseVariant(v.String())
		require.NoError(t, err, "round-trip %s", v)
		assert.Equal(t, v, parsed)
	}

	_, err := domain.ParseVariant("vigenere")
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "variant", verr.Param)
}

func TestParseAttackMethod(t *testing.T) {
	for _, m := range domain.AttackMethods() {
		parsed, err := domain.ParseAttackMethod(m.String())
		require.NoError(t, err, "round-trip %s", m)
		assert.Equal(t, m, parsed)
	}

	_, err := domain.ParseAttackMethod("rainbow_table")
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "method", verr.Param)
}

func TestKeyOrdering(t *testing.T) {
	keys := []domain.Key{
		{A: 5, B: 8},
		{A: 1, B: 25},
		{A: 5, B: 0},
		{A: 1, B: 3},
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	want := []domain.Key{
		{A: 1, B: 3},
		{A: 1, B: 25},
		{A: 5, B: 0},
		{A: 5, B: 8},
	}
	assert.Equal(t, want, keys)
}

func TestErrorMessages(t *testing.T) {
	verr := &domain.ValidationError{Param: "key.a", Reason: "a must be coprime with modulus 26"}
	assert.Equal(t, "invalid key.a: a must be coprime with modulus 26", verr.Error())

	uerr := &domain.UnsupportedOperationError{Variant: domain.Atbash, Method: domain.BruteForce}
	assert.Contains(t, uerr.Error(), "atbash")
	assert.Contains(t, uerr.Error(), "brute_force")

	nerr := &domain.NoSolutionError{Reason: "letter difference 13 is not invertible mod 26"}
	assert.Contains(t, nerr.Error(), "not invertible")

	ierr := &domain.InconsistentKeyError{Key: domain.Key{A: 3, B: 7}}
	assert.Contains(t, ierr.Error(), "a=3,b=7")
}

package cipher_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cipherkit/internal/cipher"
	"cipherkit/internal/domain"
)

type vector struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
	Key     struct {
		A int `yaml:"a"`
		B int `yaml:"b"`
	} `yaml:"key"`
	Plaintext  string `yaml:"plaintext"`
	Ciphertext string `yaml:"ciphertext"`
}

func loadVectors(t *testing.T) []vector {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "vectors.yaml"))
	require.NoError(t, err)

	var vectors []vector
	require.NoError(t, yaml.Unmarshal(raw, &vectors))
	require.NotEmpty(t, vectors)
	return vectors
}

func TestVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		t.Run(v.Name, func(t *testing.T) {
			variant, err := domain.ParseVariant(v.Variant)
			require.NoError(t, err)

			c, err := cipher.New(variant, domain.Key{A: v.Key.A, B: v.Key.B})
			require.NoError(t, err)

			assert.Equal(t, v.Ciphertext, c.Encode(v.Plaintext), "encode")
			assert.Equal(t, v.Plaintext, c.Decode(v.Ciphertext), "decode")
		})
	}
}

func TestRoundTripAcrossKeySpaces(t *testing.T) {
	sample := "Pack my box with five dozen liquor jugs. (1963)"

	for _, v := range []domain.Variant{domain.Caesar, domain.Affine} {
		for _, key := range cipher.KeySpace(v) {
			c, err := cipher.New(v, key)
			require.NoError(t, err, "%s %s", v, key)

			encoded := c.Encode(sample)
			require.Equal(t, sample, c.Decode(encoded), "%s %s", v, key)
		}
	}
}

func TestSelfInverseVariants(t *testing.T) {
	sample := "Never odd or even: 22/7!"

	for _, c := range []*cipher.Cipher{cipher.NewAtbash(), cipher.NewROT13(), cipher.NewROT47()} {
		once := c.Encode(sample)
		assert.Equal(t, sample, c.Encode(once), "%s double-encode is identity", c.Variant())
		assert.Equal(t, c.Encode(sample), c.Decode(sample), "%s encode equals decode", c.Variant())
	}
}

func TestCaesarValidation(t *testing.T) {
	for _, shift := range []int{0, 26, -3, 100} {
		_, err := cipher.NewCaesar(shift)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), "shift %d", shift)
		assert.Contains(t, verr.Reason, "shift must be between 1 and 25")
	}

	// The canonical form fixes a=1; other multipliers are not shifts.
	_, err := cipher.New(domain.Caesar, domain.Key{A: 5, B: 3})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Reason, "fixed to 1")
}

func TestAffineValidation(t *testing.T) {
	for _, a := range []int{2, 4, 13, 0, 26} {
		_, err := cipher.NewAffine(a, 8)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), "a=%d", a)
	}

	_, err := cipher.NewAffine(13, 8)
	require.ErrorContains(t, err, "coprime with modulus 26")

	for _, b := range []int{-1, 26, 700} {
		_, err := cipher.NewAffine(5, b)
		require.ErrorContains(t, err, "b must be between 0 and 25", "b=%d", b)
	}

	_, err = cipher.NewAffine(1, 0)
	assert.NoError(t, err, "identity key is a legal family member")
}

func TestUnknownVariant(t *testing.T) {
	_, err := cipher.New(domain.Variant(99), domain.Key{A: 1, B: 3})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "variant", verr.Param)
}

func TestFixedVariantsIgnoreSuppliedKeys(t *testing.T) {
	c, err := cipher.New(domain.Atbash, domain.Key{A: 5, B: 8})
	require.NoError(t, err)
	assert.Equal(t, domain.Key{A: 25, B: 25}, c.Key())

	c, err = cipher.New(domain.ROT13, domain.Key{A: 3, B: 3})
	require.NoError(t, err)
	assert.Equal(t, domain.Key{A: 1, B: 13}, c.Key())
}

func TestGenerateKey(t *testing.T) {
	for _, v := range []domain.Variant{domain.Caesar, domain.Affine} {
		for i := 0; i < 100; i++ {
			key, err := cipher.GenerateKey(v)
			require.NoError(t, err)
			require.NoError(t, cipher.ValidateKey(v, key), "%s generated %s", v, key)
		}
	}

	key, err := cipher.GenerateKey(domain.ROT47)
	require.NoError(t, err)
	assert.Equal(t, domain.Key{A: 1, B: 47}, key)

	_, err = cipher.GenerateKey(domain.Variant(99))
	require.Error(t, err)
}

func TestKeySpace(t *testing.T) {
	caesar := cipher.KeySpace(domain.Caesar)
	require.Len(t, caesar, 25)
	for i, key := range caesar {
		assert.Equal(t, domain.Key{A: 1, B: i + 1}, key)
	}

	affineKeys := cipher.KeySpace(domain.Affine)
	require.Len(t, affineKeys, 312)
	seen := make(map[domain.Key]bool, len(affineKeys))
	for i, key := range affineKeys {
		require.NoError(t, cipher.ValidateKey(domain.Affine, key))
		assert.False(t, seen[key], "duplicate %s", key)
		seen[key] = true
		if i > 0 {
			assert.True(t, affineKeys[i-1].Less(key), "ascending order")
		}
	}

	assert.Empty(t, cipher.KeySpace(domain.Atbash))
	assert.Empty(t, cipher.KeySpace(domain.ROT13))
	assert.Empty(t, cipher.KeySpace(domain.ROT47))
}

func TestFormatKey(t *testing.T) {
	c, err := cipher.NewCaesar(3)
	require.NoError(t, err)
	assert.Equal(t, "shift=3", c.FormatKey())

	c, err = cipher.NewAffine(5, 8)
	require.NoError(t, err)
	assert.Equal(t, "a=5,b=8", c.FormatKey())

	assert.Equal(t, "atbash", cipher.NewAtbash().FormatKey())
	assert.Equal(t, "rot13", cipher.NewROT13().FormatKey())
	assert.Equal(t, "rot47", cipher.NewROT47().FormatKey())
}

func TestSupportedAttacks(t *testing.T) {
	c, err := cipher.NewCaesar(3)
	require.NoError(t, err)
	assert.Equal(t, domain.AttackMethods(), c.SupportedAttacks())

	assert.Empty(t, cipher.NewAtbash().SupportedAttacks())
	assert.Empty(t, cipher.NewROT13().SupportedAttacks())
	assert.Empty(t, cipher.NewROT47().SupportedAttacks())
}

func TestAttackOnFixedVariantsFails(t *testing.T) {
	for _, c := range []*cipher.Cipher{cipher.NewAtbash(), cipher.NewROT13(), cipher.NewROT47()} {
		for _, m := range domain.AttackMethods() {
			_, err := c.Attack(m, domain.AttackParams{Ciphertext: "ZGYZHS"})
			var uerr *domain.UnsupportedOperationError
			require.True(t, errors.As(err, &uerr), "%s %s", c.Variant(), m)
			assert.Equal(t, c.Variant(), uerr.Variant)
			assert.Equal(t, m, uerr.Method)
		}
	}
}

func TestAttackThroughInstance(t *testing.T) {
	c, err := cipher.NewCaesar(3)
	require.NoError(t, err)

	encrypted := c.Encode("testMask{tEsT1ng}")
	res, err := c.Attack(domain.BruteForce, domain.AttackParams{
		Ciphertext: encrypted,
		Mask:       `testMask\{.*\}`,
	})
	require.NoError(t, err)
	require.True(t, res.BruteForce.MaskMatched)
	assert.Equal(t, domain.Key{A: 1, B: 3}, res.BruteForce.Best.Key)
	assert.Equal(t, "testMask{tEsT1ng}", res.BruteForce.Best.Plaintext)
}

func TestCrack(t *testing.T) {
	res, err := cipher.Crack(domain.Affine, domain.KnownPlaintext, domain.AttackParams{
		Plaintext:  "HE",
		Ciphertext: "RC",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Key{A: 5, B: 8}, res.KnownPlaintext.Key)

	_, err = cipher.Crack(domain.Variant(99), domain.BruteForce, domain.AttackParams{Ciphertext: "X"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestDescribe(t *testing.T) {
	infos := cipher.DescribeAll()
	require.Len(t, infos, 5)

	byVariant := make(map[domain.Variant]cipher.Info, len(infos))
	for _, info := range infos {
		byVariant[info.Variant] = info
	}

	caesar := byVariant[domain.Caesar]
	assert.Equal(t, 26, caesar.AlphabetSize)
	assert.Equal(t, 25, caesar.KeySpaceSize)
	assert.Len(t, caesar.Attacks, 3)

	affine := byVariant[domain.Affine]
	assert.Equal(t, 312, affine.KeySpaceSize)

	rot47 := byVariant[domain.ROT47]
	assert.Equal(t, 94, rot47.AlphabetSize)
	assert.Zero(t, rot47.KeySpaceSize)
	assert.Empty(t, rot47.Attacks)
	assert.Contains(t, rot47.KeyForm, "fixed")

	_, err := cipher.Describe(domain.Variant(99))
	require.Error(t, err)
}

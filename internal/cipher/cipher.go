package cipher

import (
	"slices"

	"cipherkit/internal/attack"
	"cipherkit/internal/domain"
	"cipherkit/internal/translate"
)

// Cipher is one keyed instance of a variant. Instances are immutable and
// safe for concurrent use; the substitution tables are built once here.
type Cipher struct {
	variant domain.Variant
	key     domain.Key
	prof    profile
	enc     *translate.Table
	dec     *translate.Table
}

var _ domain.Cipher = (*Cipher)(nil)

// New constructs a variant instance from a canonical key. Keys are
// validated eagerly; fixed-key variants ignore the supplied key and use
// their own. After New succeeds, Encode and Decode cannot fail.
func New(v domain.Variant, key domain.Key) (*Cipher, error) {
	p, err := profileFor(v)
	if err != nil {
		return nil, err
	}
	if p.shape == fixedShape {
		key = p.fixed
	} else if err := ValidateKey(v, key); err != nil {
		return nil, err
	}

	enc, dec, err := translate.Build(p.alphabet, key.A, key.B)
	if err != nil {
		return nil, &domain.ValidationError{Param: "key", Reason: err.Error()}
	}
	return &Cipher{variant: v, key: key, prof: p, enc: enc, dec: dec}, nil
}

// NewCaesar returns a Caesar instance with the given shift in [1,25].
func NewCaesar(shift int) (*Cipher, error) {
	return New(domain.Caesar, domain.Key{A: 1, B: shift})
}

// NewAffine returns an affine instance; a must be coprime with 26 and b
// in [0,25].
func NewAffine(a, b int) (*Cipher, error) {
	return New(domain.Affine, domain.Key{A: a, B: b})
}

// NewAtbash returns the alphabet-mirroring cipher.
func NewAtbash() *Cipher { return mustNew(domain.Atbash) }

// NewROT13 returns the half-alphabet rotation.
func NewROT13() *Cipher { return mustNew(domain.ROT13) }

// NewROT47 returns the printable-ASCII rotation.
func NewROT47() *Cipher { return mustNew(domain.ROT47) }

// mustNew builds a fixed-key variant. Those profiles are always valid, so
// a failure is a programming error in the profile table.
func mustNew(v domain.Variant) *Cipher {
	c, err := New(v, domain.Key{})
	if err != nil {
		panic(err)
	}
	return c
}

// Variant identifies the cipher family.
func (c *Cipher) Variant() domain.Variant { return c.variant }

// Key returns the active key in canonical affine form.
func (c *Cipher) Key() domain.Key { return c.key }

// FormatKey renders the active key in the variant's conventional form.
func (c *Cipher) FormatKey() string { return FormatKey(c.variant, c.key) }

// Encode maps plaintext to ciphertext, preserving case and passing
// non-alphabet characters through.
func (c *Cipher) Encode(plaintext string) string { return c.enc.Apply(plaintext) }

// Decode inverts Encode exactly.
func (c *Cipher) Decode(ciphertext string) string { return c.dec.Apply(ciphertext) }

// SupportedAttacks lists the attack methods this variant's key space
// admits. Fixed-key variants return an empty set.
func (c *Cipher) SupportedAttacks() []domain.AttackMethod {
	return slices.Clone(c.prof.attacks)
}

// Attack runs a cryptanalysis method against this variant's key space.
// The instance's own key plays no part; attacks search the whole family.
func (c *Cipher) Attack(method domain.AttackMethod, params domain.AttackParams) (*domain.AttackResult, error) {
	return attack.Run(target(c.variant, c.prof), method, params)
}

// Crack attacks a variant without constructing a keyed instance first.
// The CLI uses it: whoever is cracking a ciphertext has no key yet.
func Crack(v domain.Variant, method domain.AttackMethod, params domain.AttackParams) (*domain.AttackResult, error) {
	p, err := profileFor(v)
	if err != nil {
		return nil, err
	}
	return attack.Run(target(v, p), method, params)
}

// target adapts a variant profile to the attack engine without handing it
// this package: the engine sees key enumeration and per-key codecs only.
func target(v domain.Variant, p profile) attack.Target {
	return attack.Target{
		Variant:   v,
		Alphabet:  p.alphabet,
		Keys:      KeySpace(v),
		Supported: p.attacks,
		Decode: func(key domain.Key, text string) (string, error) {
			c, err := New(v, key)
			if err != nil {
				return "", err
			}
			return c.Decode(text), nil
		},
		Encode: func(key domain.Key, text string) (string, error) {
			c, err := New(v, key)
			if err != nil {
				return "", err
			}
			return c.Encode(text), nil
		},
		Validate: func(key domain.Key) error { return ValidateKey(v, key) },
	}
}

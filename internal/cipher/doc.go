// Package cipher assembles the classical substitution variants from the
// affine core. Every variant is one parameterisation of the same map
// E(x) = (a*x + b) mod m over an alphabet; there is no type per variant,
// only a configuration profile.
//
// The package includes:
//   - Caesar: a=1, shift b in [1,25] over the Latin letters (NewCaesar)
//   - Affine: a a unit mod 26, b in [0,25] (NewAffine)
//   - Atbash: fixed a=25, b=25, self-inverse (NewAtbash)
//   - ROT13: fixed shift 13, self-inverse (NewROT13)
//   - ROT47: fixed shift 47 over printable ASCII, self-inverse (NewROT47)
//
// New constructs any variant from a canonical key; fixed-key variants
// ignore supplied key material. Construction validates eagerly, so Encode
// and Decode never fail. ValidateKey, GenerateKey, KeySpace and FormatKey
// expose the key-space rules the attack engine and the CLI share.
package cipher

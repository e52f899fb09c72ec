// Package edwards implements arithmetic on the twisted Edwards curve
// -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255-19), together with the
// compressed 32-byte point encoding used by Ed25519.
//
// Contents
//
//   - Field arithmetic: canonical reduction, modular exponentiation and
//     Fermat inversion (Mod, ExpMod, Inv)
//   - Curve group: point addition and double-and-add scalar
//     multiplication (Add, ScalarMult)
//   - Codec: compressed encoding and validated decoding of points
//     (Encode, Decode)
//
// # Notes
//
// Points and field elements are immutable values; every operation
// returns freshly allocated big.Ints and never mutates its inputs.
// Scalars are accepted as arbitrary non-negative integers, reduced or
// not, since doubling and addition are well-defined over the whole
// group. Nothing in this package is constant-time; callers needing
// side-channel resistance must treat that as a separate hardening pass.
package edwards

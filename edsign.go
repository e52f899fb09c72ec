// Package edsign implements the Ed25519 signature scheme from first
// principles: key-pair generation, deterministic signing, verification
// and conversion of Edwards-form keys to their Curve25519 (X25519)
// counterparts.
//
// The curve arithmetic lives in internal/edwards; this package supplies
// the sign/verify protocol on top of it. All operations are pure
// functions over immutable values and are safe for concurrent use.
//
// The hash primitive is pluggable: a Scheme carries a bytes -> 64-byte
// digest function chosen once at construction (SHA-512 by default) and
// used for every derivation, signature and verification it performs.
// Package-level functions operate on a shared SHA-512 scheme, which is
// the standard Ed25519 construction:
//
//	secret, public, err := edsign.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sig, _ := edsign.Sign(msg, secret, public)
//	ok, _ := edsign.Verify(sig, msg, public)
package edsign

import (
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"math/big"

	"edsign/internal/edwards"
	"edsign/internal/util/memzero"
)

const (
	// SeedSize is the length of a secret key seed in bytes.
	SeedSize = 32

	// PublicKeySize is the length of a compressed public key in bytes.
	PublicKeySize = 32

	// SignatureSize is the length of a signature in bytes.
	SignatureSize = 64
)

var (
	// ErrInvalidKeyFormat is returned when a key is not the expected
	// 32-byte shape.
	ErrInvalidKeyFormat = edwards.ErrInvalidKeyFormat

	// ErrInvalidPoint is returned when a 32-byte key does not decode to
	// a point on the curve.
	ErrInvalidPoint = edwards.ErrInvalidPoint

	// ErrInvalidArgument is returned for an unsupported KeyKind.
	ErrInvalidArgument = errors.New("edsign: unsupported key kind")
)

// Hash is the digest collaborator used throughout the scheme. It must
// map arbitrary input to a 64-byte digest.
type Hash func([]byte) []byte

// SHA512 is the default Hash, a plain SHA-512 over the full input.
func SHA512(b []byte) []byte {
	sum := sha512.Sum512(b)
	return sum[:]
}

// Scheme binds the signature protocol to one hash function. Construct
// it once during process initialization and share it freely; a Scheme
// is immutable and safe for concurrent use.
type Scheme struct {
	hash Hash
}

// New returns a Scheme using h as its digest. A nil h selects SHA-512.
func New(h Hash) *Scheme {
	if h == nil {
		h = SHA512
	}
	return &Scheme{hash: h}
}

// std backs the package-level operations.
var std = New(nil)

// GenerateKeyPair draws a fresh 32-byte secret from crypto/rand and
// derives its public key.
func (s *Scheme) GenerateKeyPair() (secret, public []byte, err error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, err
	}
	return s.KeyPairFromSeed(seed)
}

// KeyPairFromSeed derives the key pair for a caller-supplied secret,
// for deterministic tests or external randomness sources.
func (s *Scheme) KeyPairFromSeed(seed []byte) (secret, public []byte, err error) {
	public, err = s.DerivePublicKey(seed)
	if err != nil {
		return nil, nil, err
	}
	secret = append([]byte(nil), seed...)
	return secret, public, nil
}

// DerivePublicKey computes the compressed public key for a secret seed:
// the clamped scalar from the seed digest, multiplied onto the base
// point. The result is the same bytes on every call.
func (s *Scheme) DerivePublicKey(secret []byte) ([]byte, error) {
	if len(secret) != SeedSize {
		return nil, ErrInvalidKeyFormat
	}
	h := s.hash(secret)
	a := clampScalar(h[:32])
	memzero.Zero(h)
	return edwards.Encode(edwards.ScalarMult(a, edwards.Base())), nil
}

// Sign produces the deterministic 64-byte Ed25519 signature of message
// under secret. public may be nil, in which case it is derived from
// secret first at the cost of an extra scalar multiplication.
func (s *Scheme) Sign(message, secret, public []byte) ([]byte, error) {
	if len(secret) != SeedSize {
		return nil, ErrInvalidKeyFormat
	}
	h := s.hash(secret)
	a := clampScalar(h[:32])

	if public == nil {
		public = edwards.Encode(edwards.ScalarMult(a, edwards.Base()))
	} else if len(public) != PublicKeySize {
		return nil, ErrInvalidKeyFormat
	}

	// Nonce: digest of the seed's upper half and the message, used as
	// an unreduced integer.
	r := edwards.LEDecode(s.hash(concat(h[32:], message)))
	memzero.Zero(h)
	encR := edwards.Encode(edwards.ScalarMult(r, edwards.Base()))

	k := edwards.LEDecode(s.hash(concat(encR, public, message)))

	// s = (r + k*a) mod l
	S := new(big.Int).Mul(k, a)
	S.Add(S, r)
	S = edwards.Mod(S, edwards.L)

	return concat(encR, edwards.LEEncode(S, 32)), nil
}

// Verify checks signature over message against public.
//
// Shape mismatches are absorbed: a signature that is not 64 bytes or a
// key that is not 32 bytes yields (false, nil) without any further
// computation. Content failures are not: an off-curve R or public key
// inside a shape-valid call propagates the decode error instead of
// reporting an invalid signature. OnCurve is the adapter for callers
// who want the boolean view of a key.
func (s *Scheme) Verify(signature, message, public []byte) (bool, error) {
	if len(signature) != SignatureSize || len(public) != PublicKeySize {
		return false, nil
	}

	r, err := edwards.Decode(signature[:32])
	if err != nil {
		return false, fmt.Errorf("decode R: %w", err)
	}
	a, err := edwards.Decode(public)
	if err != nil {
		return false, fmt.Errorf("decode public key: %w", err)
	}

	S := edwards.LEDecode(signature[32:])
	k := edwards.LEDecode(s.hash(concat(signature[:32], public, message)))

	left := edwards.ScalarMult(S, edwards.Base())
	right := r.Add(edwards.ScalarMult(k, a))
	return left.Equal(right), nil
}

// OnCurve reports whether key decodes to a point on the curve. Every
// decode failure, shape or content, maps to false.
func (s *Scheme) OnCurve(key []byte) bool {
	_, err := edwards.Decode(key)
	return err == nil
}

// clampScalar turns the low 32 digest bytes into a scalar multiplier:
// clear the low three bits and the top bit, force bit 254 set, then
// read little-endian.
func clampScalar(b []byte) *big.Int {
	c := make([]byte, 32)
	copy(c, b)
	c[0] &= 248
	c[31] &= 127
	c[31] |= 64
	a := edwards.LEDecode(c)
	memzero.Zero(c)
	return a
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// GenerateKeyPair draws a random secret and derives its public key
// using the default SHA-512 scheme.
func GenerateKeyPair() (secret, public []byte, err error) {
	return std.GenerateKeyPair()
}

// KeyPairFromSeed derives the pair for seed using the default scheme.
func KeyPairFromSeed(seed []byte) (secret, public []byte, err error) {
	return std.KeyPairFromSeed(seed)
}

// DerivePublicKey derives the public key using the default scheme.
func DerivePublicKey(secret []byte) ([]byte, error) {
	return std.DerivePublicKey(secret)
}

// Sign signs message using the default scheme.
func Sign(message, secret, public []byte) ([]byte, error) {
	return std.Sign(message, secret, public)
}

// Verify checks a signature using the default scheme.
func Verify(signature, message, public []byte) (bool, error) {
	return std.Verify(signature, message, public)
}

// OnCurve reports whether key is a valid curve point encoding.
func OnCurve(key []byte) bool { return std.OnCurve(key) }

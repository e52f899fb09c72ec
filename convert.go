package edsign

import (
	"math/big"

	"edsign/internal/edwards"
	"edsign/internal/util/memzero"
)

// KeyKind tags which half of a key pair ToCurve25519 is converting.
type KeyKind int

const (
	// Secret marks a 32-byte secret seed.
	Secret KeyKind = iota

	// Public marks a 32-byte compressed public point.
	Public
)

// ToCurve25519 maps an Ed25519 key to the corresponding Curve25519 key
// for use in X25519 key exchange.
//
// For Public the key is decoded as an Edwards point (propagating
// ErrInvalidKeyFormat / ErrInvalidPoint) and mapped birationally to the
// Montgomery u-coordinate, u = (1+y)/(1-y). For Secret the seed is
// digested and the low 32 bytes are clamped per X25519. Any other kind
// is a programming error and fails with ErrInvalidArgument.
func (s *Scheme) ToCurve25519(key []byte, which KeyKind) ([]byte, error) {
	switch which {
	case Secret:
		if len(key) != SeedSize {
			return nil, ErrInvalidKeyFormat
		}
		h := s.hash(key)
		out := make([]byte, 32)
		copy(out, h[:32])
		memzero.Zero(h)
		out[0] &= 248
		out[31] &= 127
		out[31] |= 64
		return out, nil

	case Public:
		p, err := edwards.Decode(key)
		if err != nil {
			return nil, err
		}
		one := big.NewInt(1)
		num := new(big.Int).Add(one, p.Y)
		den := edwards.Inv(new(big.Int).Sub(one, p.Y))
		u := edwards.Mod(new(big.Int).Mul(num, den), edwards.P)
		return edwards.LEEncode(u, 32), nil

	default:
		return nil, ErrInvalidArgument
	}
}

// ToCurve25519 converts key using the default SHA-512 scheme.
func ToCurve25519(key []byte, which KeyKind) ([]byte, error) {
	return std.ToCurve25519(key, which)
}

package edwards

import (
	"errors"
	"math/big"
)

// PointSize is the length of a compressed point encoding in bytes.
const PointSize = 32

var (
	// ErrInvalidKeyFormat is returned when a compressed encoding does
	// not have the expected 32-byte shape.
	ErrInvalidKeyFormat = errors.New("edwards: invalid key format")

	// ErrInvalidPoint is returned when decoded coordinates do not
	// satisfy the curve equation.
	ErrInvalidPoint = errors.New("edwards: point is not on the curve")
)

// Encode compresses p into 32 little-endian bytes: y in the low 255
// bits, the parity of x in bit 255.
func Encode(p Point) []byte {
	b := LEEncode(p.Y, PointSize)
	b[31] |= byte(p.X.Bit(0)) << 7
	return b
}

// Decode parses a compressed point, recovering x from y and the stored
// parity bit. It returns ErrInvalidKeyFormat for any length other than
// 32 bytes and ErrInvalidPoint when the candidate coordinates fail the
// curve equation.
func Decode(b []byte) (Point, error) {
	if len(b) != PointSize {
		return Point{}, ErrInvalidKeyFormat
	}

	yb := make([]byte, PointSize)
	copy(yb, b)
	xc := uint(yb[31] >> 7)
	yb[31] &= 0x7f

	y := Mod(LEDecode(yb), P)
	x := xRecover(y)
	if x.Bit(0) != xc {
		x = Mod(new(big.Int).Sub(P, x), P)
	}

	p := Point{X: x, Y: y}
	if !p.onCurve() {
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}

// xRecover computes the even square root of (y^2-1)/(d*y^2+1), the
// candidate x coordinate for y. The candidate exponent (P+3)/8 yields a
// root of either xx or -xx; the latter case is corrected by multiplying
// with sqrt(-1). A candidate that squares to neither is left for the
// caller's curve-equation check to reject.
func xRecover(y *big.Int) *big.Int {
	y2 := new(big.Int).Mul(y, y)
	num := new(big.Int).Sub(y2, big.NewInt(1))
	den := new(big.Int).Add(new(big.Int).Mul(D, y2), big.NewInt(1))
	xx := Mod(new(big.Int).Mul(num, Inv(den)), P)

	e := new(big.Int).Add(P, big.NewInt(3))
	e.Rsh(e, 3) // (P+3)/8
	x := ExpMod(xx, e, P)

	chk := new(big.Int).Mul(x, x)
	chk.Sub(chk, xx)
	if Mod(chk, P).Sign() != 0 {
		x = Mod(new(big.Int).Mul(x, sqrtM1), P)
	}
	if x.Bit(0) != 0 {
		x = Mod(new(big.Int).Sub(P, x), P)
	}
	return x
}

// LEEncode serializes a non-negative x into size little-endian bytes.
func LEEncode(x *big.Int, size int) []byte {
	out := make([]byte, size)
	be := x.Bytes()
	for i := range be {
		out[i] = be[len(be)-1-i]
	}
	return out
}

// LEDecode interprets b as a little-endian unsigned integer.
func LEDecode(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[i] = b[len(b)-1-i]
	}
	return new(big.Int).SetBytes(be)
}

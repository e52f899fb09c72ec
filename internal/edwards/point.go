package edwards

import "math/big"

// Point is an affine point (x, y) on the curve with both coordinates in
// canonical form. Points are values: operations return new Points and
// never mutate their operands.
type Point struct {
	X, Y *big.Int
}

// base is the designated generator, (x(4/5), 4/5) with even x.
var base Point

func initBase() {
	by := Mod(new(big.Int).Mul(big.NewInt(4), Inv(big.NewInt(5))), P)
	base = Point{X: xRecover(by), Y: by}
}

// Base returns the group's base point.
func Base() Point { return base }

// Identity returns the neutral element (0, 1).
func Identity() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1)}
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Add returns the twisted-Edwards sum of p and q:
//
//	x3 = (x1*y2 + x2*y1) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 + x1*x2) / (1 - d*x1*x2*y1*y2)
func (p Point) Add(q Point) Point {
	xx := new(big.Int).Mul(p.X, q.X)
	yy := new(big.Int).Mul(p.Y, q.Y)
	dxy := new(big.Int).Mul(D, new(big.Int).Mul(xx, yy))

	xn := new(big.Int).Add(new(big.Int).Mul(p.X, q.Y), new(big.Int).Mul(q.X, p.Y))
	xd := new(big.Int).Add(big.NewInt(1), dxy)
	yn := new(big.Int).Add(yy, xx)
	yd := new(big.Int).Sub(big.NewInt(1), dxy)

	x := Mod(new(big.Int).Mul(xn, Inv(xd)), P)
	y := Mod(new(big.Int).Mul(yn, Inv(yd)), P)
	return Point{X: x, Y: y}
}

// ScalarMult returns e*p by iterative double-and-add over the bits of
// e, most significant first. e may be any non-negative integer; it need
// not be reduced modulo the group order. e = 0 yields the identity.
func ScalarMult(e *big.Int, p Point) Point {
	q := Identity()
	for i := e.BitLen() - 1; i >= 0; i-- {
		q = q.Add(q)
		if e.Bit(i) == 1 {
			q = q.Add(p)
		}
	}
	return q
}

// onCurve reports whether -x^2 + y^2 - 1 - d*x^2*y^2 vanishes mod P.
func (p Point) onCurve() bool {
	x2 := new(big.Int).Mul(p.X, p.X)
	y2 := new(big.Int).Mul(p.Y, p.Y)

	v := new(big.Int).Neg(x2)
	v.Add(v, y2)
	v.Sub(v, big.NewInt(1))
	v.Sub(v, new(big.Int).Mul(D, new(big.Int).Mul(x2, y2)))
	return Mod(v, P).Sign() == 0
}

package edwards

import "math/big"

// Curve parameters, fixed for the lifetime of the process and only ever
// read after initialization.
var (
	// P is the field prime 2^255 - 19.
	P *big.Int

	// D is the curve constant -121665/121666 mod P.
	D *big.Int

	// L is the prime order of the base-point subgroup,
	// 2^252 + 27742317777372353535851937790883648493.
	L *big.Int

	// sqrtM1 is a fixed square root of -1, 2^((P-1)/4) mod P.
	sqrtM1 *big.Int

	// pM2 is P-2, the Fermat inversion exponent.
	pM2 *big.Int
)

func init() {
	one := big.NewInt(1)

	P = new(big.Int).Lsh(one, 255)
	P.Sub(P, big.NewInt(19))

	pM2 = new(big.Int).Sub(P, big.NewInt(2))

	L = new(big.Int).Lsh(one, 252)
	c, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	L.Add(L, c)

	D = Mod(new(big.Int).Mul(big.NewInt(-121665), Inv(big.NewInt(121666))), P)

	e := new(big.Int).Sub(P, one)
	e.Rsh(e, 2) // (P-1)/4
	sqrtM1 = ExpMod(big.NewInt(2), e, P)

	initBase()
}

// Mod returns the canonical non-negative representative of x modulo m.
// Negative inputs are corrected by adding m to the remainder.
func Mod(x, m *big.Int) *big.Int {
	r := new(big.Int).Rem(x, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// ExpMod returns base**exp mod m for non-negative exp. A negative base
// is handled by exponentiating its magnitude and correcting the sign:
// for an odd exponent and a nonzero raw result, the answer is m minus
// the raw result.
func ExpMod(base, exp, m *big.Int) *big.Int {
	r := new(big.Int).Exp(new(big.Int).Abs(base), exp, m)
	if base.Sign() < 0 && exp.Bit(0) == 1 && r.Sign() != 0 {
		r.Sub(m, r)
	}
	return r
}

// Inv returns the multiplicative inverse of x modulo P via Fermat's
// little theorem, x^(P-2). The zero class has no inverse; callers never
// pass it in valid flows and the result for it is unspecified.
func Inv(x *big.Int) *big.Int {
	return ExpMod(x, pM2, P)
}

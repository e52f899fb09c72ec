package edwards_test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"edsign/internal/edwards"
)

func TestCodec_RoundTrip(t *testing.T) {
	for _, e := range []int64{1, 2, 3, 1000, 123456789} {
		p := edwards.ScalarMult(big.NewInt(e), edwards.Base())
		enc := edwards.Encode(p)
		if len(enc) != edwards.PointSize {
			t.Fatalf("encoding is %d bytes, want %d", len(enc), edwards.PointSize)
		}
		got, err := edwards.Decode(enc)
		if err != nil {
			t.Fatalf("decode %d*B: %v", e, err)
		}
		if !got.Equal(p) {
			t.Fatalf("round trip of %d*B changed the point", e)
		}
	}
}

func TestCodec_IdentityRoundTrip(t *testing.T) {
	id := edwards.Identity()
	got, err := edwards.Decode(edwards.Encode(id))
	if err != nil {
		t.Fatalf("decode identity: %v", err)
	}
	if !got.Equal(id) {
		t.Fatal("identity round trip changed the point")
	}
}

func TestDecode_WrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 31, 33, 64} {
		_, err := edwards.Decode(make([]byte, n))
		if !errors.Is(err, edwards.ErrInvalidKeyFormat) {
			t.Fatalf("decode %d bytes: err = %v, want ErrInvalidKeyFormat", n, err)
		}
	}
}

// Roughly half of all y coordinates have no square root for x; sweeping
// the low byte must hit both accepted and rejected encodings.
func TestDecode_RejectsOffCurve(t *testing.T) {
	var valid, invalid int
	for i := 0; i < 256; i++ {
		key := make([]byte, 32)
		key[0] = byte(i)
		_, err := edwards.Decode(key)
		switch {
		case err == nil:
			valid++
		case errors.Is(err, edwards.ErrInvalidPoint):
			invalid++
		default:
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if valid == 0 || invalid == 0 {
		t.Fatalf("low-byte sweep: %d valid, %d invalid; want both nonzero", valid, invalid)
	}
}

func TestLittleEndian_RoundTrip(t *testing.T) {
	x := new(big.Int).Lsh(big.NewInt(0xabcdef), 100)
	enc := edwards.LEEncode(x, 32)
	if got := edwards.LEDecode(enc); got.Cmp(x) != 0 {
		t.Fatalf("LE round trip: got %v, want %v", got, x)
	}

	if got := edwards.LEDecode([]byte{0x01, 0x02}); got.Cmp(big.NewInt(0x0201)) != 0 {
		t.Fatalf("LEDecode([01 02]) = %v, want 0x0201", got)
	}
	if !bytes.Equal(edwards.LEEncode(big.NewInt(0x0201), 4), []byte{0x01, 0x02, 0, 0}) {
		t.Fatal("LEEncode(0x0201, 4) wrong layout")
	}
}

package edsign_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"golang.org/x/crypto/curve25519"

	"edsign"
)

func TestToCurve25519_SecretVector(t *testing.T) {
	secret := mustHex(t, "f43e30c8b167e486d8354701697f2ed238261172ab53521d6a733ab2edd50ae2")
	want := mustHex(t, "d04b301d42d453f5283313d596d84160a5ceff8cb30ad75c869b1e50e568684c")

	got, err := edsign.ToCurve25519(secret, edsign.Secret)
	if err != nil {
		t.Fatalf("convert secret: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("converted secret = %x, want %x", got, want)
	}
}

func TestToCurve25519_PublicVector(t *testing.T) {
	public := mustHex(t, "4637aa90bd31dca7e271960f358a9c27e6d34dc364ae7070cc099a13a5468550")
	want := mustHex(t, "4691577ca17d1774b4792c1e29ce2b58f14b68410cd7697b3ee2e47c6a6f2730")

	got, err := edsign.ToCurve25519(public, edsign.Public)
	if err != nil {
		t.Fatalf("convert public: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("converted public = %x, want %x", got, want)
	}
}

// Converting both halves of a pair must stay consistent: the X25519
// public key of the converted secret equals the conversion of the
// Edwards public key.
func TestToCurve25519_PairConsistency(t *testing.T) {
	for i := 0; i < 4; i++ {
		seed := make([]byte, edsign.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			t.Fatalf("rand: %v", err)
		}

		xPriv, err := edsign.ToCurve25519(seed, edsign.Secret)
		if err != nil {
			t.Fatalf("convert secret: %v", err)
		}
		xPub, err := curve25519.X25519(xPriv, curve25519.Basepoint)
		if err != nil {
			t.Fatalf("X25519: %v", err)
		}

		edPub, err := edsign.DerivePublicKey(seed)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		converted, err := edsign.ToCurve25519(edPub, edsign.Public)
		if err != nil {
			t.Fatalf("convert public: %v", err)
		}

		if !bytes.Equal(xPub, converted) {
			t.Fatalf("pair mismatch: X25519(secret) = %x, convert(public) = %x",
				xPub, converted)
		}
	}
}

func TestToCurve25519_Errors(t *testing.T) {
	valid := mustHex(t, "4637aa90bd31dca7e271960f358a9c27e6d34dc364ae7070cc099a13a5468550")

	if _, err := edsign.ToCurve25519(nil, edsign.Public); !errors.Is(err, edsign.ErrInvalidKeyFormat) {
		t.Fatalf("empty public: err = %v, want ErrInvalidKeyFormat", err)
	}
	if _, err := edsign.ToCurve25519(valid[:16], edsign.Public); !errors.Is(err, edsign.ErrInvalidKeyFormat) {
		t.Fatalf("short public: err = %v, want ErrInvalidKeyFormat", err)
	}
	if _, err := edsign.ToCurve25519(offCurveKey(t), edsign.Public); !errors.Is(err, edsign.ErrInvalidPoint) {
		t.Fatalf("off-curve public: want ErrInvalidPoint")
	}
	if _, err := edsign.ToCurve25519(valid[:16], edsign.Secret); !errors.Is(err, edsign.ErrInvalidKeyFormat) {
		t.Fatalf("short secret: err = %v, want ErrInvalidKeyFormat", err)
	}
	if _, err := edsign.ToCurve25519(valid, edsign.KeyKind(7)); !errors.Is(err, edsign.ErrInvalidArgument) {
		t.Fatalf("bad kind: want ErrInvalidArgument")
	}
}

package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/curve25519"

	"edsign"
	"edsign/internal/util/memzero"
)

// convert: map Ed25519 keys to X25519. With --public it converts the
// given (or stored) public key; otherwise it converts the stored seed
// and prints the matching X25519 public key as well.
func convertCmd() *cobra.Command {
	var pubHex string
	var usePublic bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Map Ed25519 keys to their X25519 counterparts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if usePublic || pubHex != "" {
				public, err := resolvePublic(pubHex)
				if err != nil {
					return err
				}
				x, err := scheme.ToCurve25519(public, edsign.Public)
				if err != nil {
					return err
				}
				fmt.Printf("X25519 public: %s\n", hex.EncodeToString(x))
				return nil
			}

			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			secret, err := keys.Load(passphrase)
			if err != nil {
				return err
			}
			defer memzero.Zero(secret)

			xPriv, err := scheme.ToCurve25519(secret, edsign.Secret)
			if err != nil {
				return err
			}
			defer memzero.Zero(xPriv)

			xPub, err := curve25519.X25519(xPriv, curve25519.Basepoint)
			if err != nil {
				return err
			}
			fmt.Printf("X25519 secret: %s\n", hex.EncodeToString(xPriv))
			fmt.Printf("X25519 public: %s\n", hex.EncodeToString(xPub))
			return nil
		},
	}
	cmd.Flags().StringVar(&pubHex, "public", "", "Ed25519 public key to convert (hex)")
	cmd.Flags().BoolVar(&usePublic, "stored-public", false, "convert the stored public key")
	return cmd
}

// resolvePublic decodes the given hex key, or falls back to the stored
// public key.
func resolvePublic(h string) ([]byte, error) {
	if h == "" {
		return keys.LoadPublic()
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("bad --public: %w", err)
	}
	return b, nil
}

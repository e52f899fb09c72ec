package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"edsign"
	"edsign/internal/util/memzero"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and store the seed encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			secret, public, err := scheme.GenerateKeyPair()
			if err != nil {
				return err
			}
			defer memzero.Zero(secret)

			if err := keys.Save(passphrase, secret, public); err != nil {
				return err
			}
			fmt.Printf("Public key:  %s\n", hex.EncodeToString(public))
			fmt.Printf("Fingerprint: %s\n", edsign.Fingerprint(public))
			return nil
		},
	}
}

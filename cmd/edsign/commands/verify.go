package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// verify <file>: check --sig over the file against --key (or the
// stored public key).
func verifyCmd() *cobra.Command {
	var sigHex, keyHex string

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check a signature over a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readInput(args[0])
			if err != nil {
				return err
			}
			sig, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("bad --sig: %w", err)
			}

			var public []byte
			if keyHex != "" {
				if public, err = hex.DecodeString(keyHex); err != nil {
					return fmt.Errorf("bad --key: %w", err)
				}
			} else if public, err = keys.LoadPublic(); err != nil {
				return err
			}

			ok, err := scheme.Verify(sig, message, public)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature is not valid")
			}
			fmt.Println("valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&sigHex, "sig", "", "signature (hex)")
	cmd.Flags().StringVar(&keyHex, "key", "", "public key (hex, default stored key)")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}

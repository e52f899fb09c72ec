package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"edsign/internal/util/memzero"
)

// sign <file>: sign file contents ("-" for stdin) with the stored seed.
func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file with the stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			message, err := readInput(args[0])
			if err != nil {
				return err
			}

			secret, err := keys.Load(passphrase)
			if err != nil {
				return err
			}
			defer memzero.Zero(secret)

			public, err := keys.LoadPublic()
			if err != nil {
				return err
			}

			sig, err := scheme.Sign(message, secret, public)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(sig))
			return nil
		},
	}
}

// readInput reads the whole file at path, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

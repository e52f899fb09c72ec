package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the stored public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			public, err := keys.LoadPublic()
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(public))
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edsign"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the stored key's fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			public, err := keys.LoadPublic()
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", edsign.Fingerprint(public))
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"

	"edsign"
	"edsign/internal/keystore"
)

var (
	home       string
	passphrase string
	hashName   string

	keys   *keystore.Store
	scheme *edsign.Scheme
)

func Execute() error {
	root := &cobra.Command{
		Use:   "edsign",
		Short: "Ed25519 signing CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".edsign")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			keys = keystore.New(home)

			h, err := resolveHash(hashName)
			if err != nil {
				return err
			}
			scheme = edsign.New(h)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.edsign)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect the seed")
	root.PersistentFlags().StringVar(&hashName, "hash", "sha512", "digest function (sha512|blake2b)")

	root.AddCommand(keygenCmd(), pubkeyCmd(), signCmd(), verifyCmd(), convertCmd(), fingerprintCmd())
	return root.Execute()
}

// resolveHash picks the process-wide digest. sha512 maps to the scheme
// default; blake2b selects BLAKE2b-512.
func resolveHash(name string) (edsign.Hash, error) {
	switch name {
	case "sha512":
		return nil, nil
	case "blake2b":
		return func(b []byte) []byte {
			sum := blake2b.Sum512(b)
			return sum[:]
		}, nil
	default:
		return nil, fmt.Errorf("unknown hash %q (want sha512 or blake2b)", name)
	}
}

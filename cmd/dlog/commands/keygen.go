package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair on the selected curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := curveByName(curveName)
			if err != nil {
				return err
			}

			secret, err := curve.NewRandomScalar()
			if err != nil {
				return err
			}
			publicKey := curve.ScalarBaseMul(secret)

			fmt.Printf("curve:       %s\n", curve.Name())
			fmt.Printf("secret:      %s\n", hex.EncodeToString(secret.Encode()))
			fmt.Printf("public key:  %s\n", hex.EncodeToString(publicKey.Encode()))
			fmt.Printf("fingerprint: %s\n", fingerprint(publicKey.Encode()))
			return nil
		},
	}
}

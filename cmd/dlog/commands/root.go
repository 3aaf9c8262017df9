package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/dchest/blake2b"
	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-dlog/ed25519"
	"github.com/athanorlabs/go-dlog/ristretto255"
	"github.com/athanorlabs/go-dlog/secp256k1"
	"github.com/athanorlabs/go-dlog/types"
)

var (
	curveName string
	relayURL  string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "dlog",
		Short: "Prove and verify knowledge of discrete logarithms",
	}

	root.PersistentFlags().StringVar(&curveName, "curve", "secp256k1",
		"curve to use: secp256k1, ed25519 or ristretto255")
	root.PersistentFlags().StringVar(&relayURL, "relay", "http://127.0.0.1:8080",
		"relay base URL")

	root.AddCommand(keygenCmd(), proveCmd(), verifyCmd(), relayCmd(), demoCmd())
	return root.Execute()
}

func curveByName(name string) (types.Curve, error) {
	switch name {
	case "secp256k1":
		return secp256k1.NewCurve(), nil
	case "ed25519":
		return ed25519.NewCurve(), nil
	case "ristretto255":
		return ristretto255.NewCurve(), nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

// fingerprint returns a short hex fingerprint of a public key for
// display and logging.
func fingerprint(pub []byte) string {
	hash := blake2b.New256()
	hash.Write(pub)
	return hex.EncodeToString(hash.Sum(nil)[:10])
}

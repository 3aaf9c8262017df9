package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	dlog "github.com/athanorlabs/go-dlog"
	"github.com/athanorlabs/go-dlog/relay"
)

// prove <session-id> <party-id> <secret-hex>: prove knowledge of the
// secret and deposit the proof on the relay for the verifier.
func proveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prove <session-id> <party-id> <secret-hex>",
		Short: "Prove knowledge of a secret and deposit the proof on the relay",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := curveByName(curveName)
			if err != nil {
				return err
			}

			sessionID := args[0]
			partyID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid party id: %w", err)
			}

			secretBytes, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("invalid secret: %w", err)
			}
			secret, err := curve.DecodeToScalar(secretBytes)
			if err != nil {
				return fmt.Errorf("invalid secret: %w", err)
			}
			publicKey := curve.ScalarBaseMul(secret)

			pctx := dlog.ProofContext{
				SessionID: []byte(sessionID),
				PartyID:   partyID,
			}
			proof, err := dlog.NewProof(curve, pctx, secret, publicKey, curve.BasePoint())
			if err != nil {
				return err
			}

			env := relay.Envelope{
				Curve:     curve.Name(),
				SessionID: sessionID,
				PartyID:   partyID,
				PublicKey: hex.EncodeToString(publicKey.Encode()),
				Proof:     hex.EncodeToString(proof.Serialize()),
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := relay.NewClient(relayURL).PutProof(ctx, env); err != nil {
				return err
			}

			fmt.Printf("deposited proof for session %s as party %d (key %s)\n",
				sessionID, partyID, fingerprint(publicKey.Encode()))
			return nil
		},
	}
}

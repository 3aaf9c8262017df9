package commands

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	dlog "github.com/athanorlabs/go-dlog"
	"github.com/athanorlabs/go-dlog/relay"
	"github.com/athanorlabs/go-dlog/types"
)

// verify <session-id>: wait for the proof deposited for the session
// and check it against the public key it carries.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <session-id>",
		Short: "Collect the proof for a session from the relay and verify it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := curveByName(curveName)
			if err != nil {
				return err
			}
			sessionID := args[0]

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			env, err := relay.NewClient(relayURL).WaitProof(ctx, sessionID)
			if err != nil {
				return err
			}
			if env.Curve != curve.Name() {
				return fmt.Errorf("curve mismatch: proof is for %s, expected %s", env.Curve, curve.Name())
			}

			proof, publicKey, err := decodeEnvelope(curve, env)
			if err != nil {
				return err
			}

			pctx := dlog.ProofContext{
				SessionID: []byte(sessionID),
				PartyID:   env.PartyID,
			}
			if !proof.Verify(curve, pctx, publicKey, curve.BasePoint()) {
				return errors.New("proof did not verify")
			}

			fmt.Printf("party %d proved knowledge of the discrete log of key %s\n",
				env.PartyID, fingerprint(publicKey.Encode()))
			return nil
		},
	}
}

func decodeEnvelope(curve types.Curve, env relay.Envelope) (*dlog.Proof, types.Point, error) {
	pubBytes, err := hex.DecodeString(env.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid public key: %w", err)
	}
	publicKey, err := curve.DecodeToPoint(pubBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid public key: %w", err)
	}

	proofBytes, err := hex.DecodeString(env.Proof)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid proof: %w", err)
	}
	proof := new(dlog.Proof)
	if err := proof.Deserialize(curve, proofBytes); err != nil {
		return nil, nil, fmt.Errorf("invalid proof: %w", err)
	}

	return proof, publicKey, nil
}

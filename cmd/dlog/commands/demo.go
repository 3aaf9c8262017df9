package commands

import (
	"encoding/hex"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	dlog "github.com/athanorlabs/go-dlog"
	"github.com/athanorlabs/go-dlog/relay"
)

// demo runs a prover and a verifier concurrently against an in-process
// relay, so the whole exchange can be watched end to end.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a prover and a verifier against an in-process relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := curveByName(curveName)
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", "127.0.0.1:0")
			if err != nil {
				return err
			}
			defer ln.Close()
			go func() {
				_ = http.Serve(ln, relay.NewServer(relay.DefaultWait))
			}()
			log.Println("relay listening on", ln.Addr())

			const sessionID = "demo"
			client := relay.NewClient("http://" + ln.Addr().String())

			secret, err := curve.NewRandomScalar()
			if err != nil {
				return err
			}
			publicKey := curve.ScalarBaseMul(secret)
			log.Printf("prover: key %s on %s", fingerprint(publicKey.Encode()), curve.Name())

			g, ctx := errgroup.WithContext(cmd.Context())

			g.Go(func() error {
				pctx := dlog.ProofContext{SessionID: []byte(sessionID), PartyID: 1}
				start := time.Now()
				proof, err := dlog.NewProof(curve, pctx, secret, publicKey, curve.BasePoint())
				if err != nil {
					return err
				}
				log.Printf("prover: proof created in %s", time.Since(start))

				return client.PutProof(ctx, relay.Envelope{
					Curve:     curve.Name(),
					SessionID: sessionID,
					PartyID:   1,
					PublicKey: hex.EncodeToString(publicKey.Encode()),
					Proof:     hex.EncodeToString(proof.Serialize()),
				})
			})

			g.Go(func() error {
				env, err := client.WaitProof(ctx, sessionID)
				if err != nil {
					return err
				}

				proof, pub, err := decodeEnvelope(curve, env)
				if err != nil {
					return err
				}

				pctx := dlog.ProofContext{SessionID: []byte(sessionID), PartyID: env.PartyID}
				start := time.Now()
				if !proof.Verify(curve, pctx, pub, curve.BasePoint()) {
					return errors.New("proof did not verify")
				}
				log.Printf("verifier: accepted proof for key %s in %s",
					fingerprint(pub.Encode()), time.Since(start))
				return nil
			})

			return g.Wait()
		},
	}
}

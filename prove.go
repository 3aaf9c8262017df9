package dlog

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-dlog/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

// challengeDomainTag separates this protocol's challenges from any
// other use of the same hash.
const challengeDomainTag = "go-dlog/schnorr-proof/v1"

// ErrRandomnessUnavailable is returned by NewProof when the randomness
// source cannot produce a nonce.
var ErrRandomnessUnavailable = errors.New("randomness source unavailable")

// ProofContext binds a proof to a protocol session and to the prover's
// identity within it. A proof created under one context does not verify
// under any other. SessionID is at most 2^32-1 bytes, the capacity of
// a transcript length prefix.
type ProofContext struct {
	SessionID []byte
	PartyID   uint64
}

// Proof represents a proof of knowledge of x such that y = x*G, where
// y is the public key the proof was made for and G the generator.
type Proof struct {
	Commitment Point
	Response   Scalar
}

// NewProof returns a new proof of knowledge of secret, where
// publicKey = secret*generator, bound to the given context.
func NewProof(curve Curve, pctx ProofContext, secret Scalar, publicKey, generator Point) (*Proof, error) {
	k, err := curve.NewRandomScalar()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRandomnessUnavailable, err)
	}

	t := curve.ScalarMul(k, generator)

	c, err := challengeScalar(curve, pctx, generator, publicKey, t)
	if err != nil {
		return nil, err
	}

	// s = k + c*x
	s := k.Add(c.Mul(secret))

	return &Proof{
		Commitment: t,
		Response:   s,
	}, nil
}

// challengeScalar derives the challenge for the given context and
// transcript. Every element is length-prefixed so that no two distinct
// transcripts hash the same preimage.
func challengeScalar(curve Curve, pctx ProofContext, generator, publicKey, commitment Point) (Scalar, error) {
	var pid [8]byte
	binary.LittleEndian.PutUint64(pid[:], pctx.PartyID)

	preimage := appendLengthPrefixed(nil, []byte(challengeDomainTag))
	preimage = appendLengthPrefixed(preimage, pctx.SessionID)
	preimage = appendLengthPrefixed(preimage, pid[:])
	preimage = appendLengthPrefixed(preimage, generator.Encode())
	preimage = appendLengthPrefixed(preimage, publicKey.Encode())
	preimage = appendLengthPrefixed(preimage, commitment.Encode())

	return curve.HashToScalar(preimage)
}

func appendLengthPrefixed(b, in []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(in)))
	return append(b, in...)
}

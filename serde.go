package dlog

import (
	"bytes"
	"errors"

	"github.com/athanorlabs/go-dlog/types"
)

var (
	errInputBytesTooShort = errors.New("input bytes too short")
	errTrailingBytes      = errors.New("unexpected trailing bytes")
)

// Serialize encodes the proof as enc(t) || enc(s).
func (p *Proof) Serialize() []byte {
	return append(p.Commitment.Encode(), p.Response.Encode()...)
}

// Deserialize decodes a proof encoded with Serialize.
// The curve must match the one passed into `NewProof`.
func (p *Proof) Deserialize(curve types.Curve, in []byte) error {
	pointLen := curve.CompressedPointSize()
	scalarLen := curve.ScalarSize()

	if len(in) < pointLen+scalarLen {
		return errInputBytesTooShort
	}

	reader := bytes.NewBuffer(in)

	var err error
	p.Commitment, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}

	p.Response, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}

	if reader.Len() != 0 {
		return errTrailingBytes
	}

	return nil
}

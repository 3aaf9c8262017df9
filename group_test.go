package dlog

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/athanorlabs/go-dlog/types"
)

// toyCurve is the additive group of integers modulo 101 with one-byte
// encodings. Challenges are the byte sum of the preimage modulo 101,
// so expected proofs can be computed by hand.
const toyOrder = 101

var _ types.Curve = &toyCurve{}
var _ types.Scalar = &toyScalar{}
var _ types.Point = &toyPoint{}

type toyCurve struct{}

func newToyCurve() types.Curve {
	return &toyCurve{}
}

func (c *toyCurve) Name() string {
	return "toy101"
}

func (c *toyCurve) BasePoint() types.Point {
	return &toyPoint{v: 2}
}

func (c *toyCurve) NewRandomScalar() (types.Scalar, error) {
	for {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			return nil, err
		}

		v := binary.BigEndian.Uint64(b[:]) % toyOrder
		if v == 0 {
			continue
		}

		return &toyScalar{v: uint8(v)}, nil
	}
}

func (c *toyCurve) ScalarFromUint64(in uint64) types.Scalar {
	return &toyScalar{v: uint8(in % toyOrder)}
}

func (c *toyCurve) HashToScalar(in []byte) (types.Scalar, error) {
	sum := 0
	for _, b := range in {
		sum = (sum + int(b)) % toyOrder
	}
	return &toyScalar{v: uint8(sum)}, nil
}

func (c *toyCurve) ScalarBaseMul(s types.Scalar) types.Point {
	return c.BasePoint().ScalarMul(s)
}

func (c *toyCurve) ScalarMul(s types.Scalar, p types.Point) types.Point {
	return p.ScalarMul(s)
}

func (c *toyCurve) DecodeToPoint(in []byte) (types.Point, error) {
	if len(in) != 1 {
		return nil, errors.New("invalid point length")
	}
	if in[0] >= toyOrder {
		return nil, errors.New("invalid point encoding")
	}
	return &toyPoint{v: in[0]}, nil
}

func (c *toyCurve) DecodeToScalar(in []byte) (types.Scalar, error) {
	if len(in) != 1 {
		return nil, errors.New("invalid scalar length")
	}
	if in[0] >= toyOrder {
		return nil, errors.New("scalar is not canonical")
	}
	return &toyScalar{v: in[0]}, nil
}

func (c *toyCurve) ScalarSize() int {
	return 1
}

func (c *toyCurve) CompressedPointSize() int {
	return 1
}

type toyScalar struct {
	v uint8
}

func toyScalarOf(v uint8) types.Scalar {
	return &toyScalar{v: v % toyOrder}
}

func toyScalarVal(s types.Scalar) int {
	ss, ok := s.(*toyScalar)
	if !ok {
		panic("invalid scalar; type is not *toyScalar")
	}
	return int(ss.v)
}

func (s *toyScalar) Add(b types.Scalar) types.Scalar {
	return &toyScalar{v: uint8((int(s.v) + toyScalarVal(b)) % toyOrder)}
}

func (s *toyScalar) Sub(b types.Scalar) types.Scalar {
	return &toyScalar{v: uint8((int(s.v) + toyOrder - toyScalarVal(b)) % toyOrder)}
}

func (s *toyScalar) Negate() types.Scalar {
	return &toyScalar{v: uint8((toyOrder - int(s.v)) % toyOrder)}
}

func (s *toyScalar) Mul(b types.Scalar) types.Scalar {
	return &toyScalar{v: uint8((int(s.v) * toyScalarVal(b)) % toyOrder)}
}

func (s *toyScalar) Encode() []byte {
	return []byte{s.v}
}

func (s *toyScalar) Eq(b types.Scalar) bool {
	return int(s.v) == toyScalarVal(b)
}

func (s *toyScalar) IsZero() bool {
	return s.v == 0
}

type toyPoint struct {
	v uint8
}

func toyPointOf(v uint8) types.Point {
	return &toyPoint{v: v % toyOrder}
}

func toyPointVal(p types.Point) int {
	pp, ok := p.(*toyPoint)
	if !ok {
		panic("invalid point; type is not *toyPoint")
	}
	return int(pp.v)
}

func (p *toyPoint) Copy() types.Point {
	return &toyPoint{v: p.v}
}

func (p *toyPoint) Add(b types.Point) types.Point {
	return &toyPoint{v: uint8((int(p.v) + toyPointVal(b)) % toyOrder)}
}

func (p *toyPoint) Sub(b types.Point) types.Point {
	return &toyPoint{v: uint8((int(p.v) + toyOrder - toyPointVal(b)) % toyOrder)}
}

func (p *toyPoint) ScalarMul(s types.Scalar) types.Point {
	return &toyPoint{v: uint8((int(p.v) * toyScalarVal(s)) % toyOrder)}
}

func (p *toyPoint) Encode() []byte {
	return []byte{p.v}
}

func (p *toyPoint) IsZero() bool {
	return p.v == 0
}

func (p *toyPoint) Equals(other types.Point) bool {
	return int(p.v) == toyPointVal(other)
}

// scriptedCurve returns preset nonces from NewRandomScalar and fails
// once they run out.
type scriptedCurve struct {
	types.Curve
	nonces []types.Scalar
}

func (c *scriptedCurve) NewRandomScalar() (types.Scalar, error) {
	if len(c.nonces) == 0 {
		return nil, errors.New("entropy exhausted")
	}

	s := c.nonces[0]
	c.nonces = c.nonces[1:]
	return s, nil
}

// recordingCurve captures every preimage passed to HashToScalar.
type recordingCurve struct {
	types.Curve
	preimages [][]byte
}

func (c *recordingCurve) HashToScalar(in []byte) (types.Scalar, error) {
	c.preimages = append(c.preimages, append([]byte{}, in...))
	return c.Curve.HashToScalar(in)
}

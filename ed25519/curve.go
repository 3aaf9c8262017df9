package ed25519

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-dlog/types"
	"golang.org/x/crypto/sha3"

	"filippo.io/edwards25519"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	scalarSize          = 32
	compressedPointSize = 32
)

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "ed25519"
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

func (c *CurveImpl) NewRandomScalar() (Scalar, error) {
	for {
		var b [64]byte
		_, err := rand.Read(b[:])
		if err != nil {
			return nil, err
		}

		s, err := new(edwards25519.Scalar).SetUniformBytes(b[:])
		if err != nil {
			return nil, err
		}

		if s.Equal(new(edwards25519.Scalar)) == 1 {
			continue
		}

		return &ScalarImpl{
			inner: s,
		}, nil
	}
}

func (c *CurveImpl) ScalarFromUint64(in uint64) Scalar {
	b := [32]byte{}
	binary.LittleEndian.PutUint64(b[:8], in)

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) HashToScalar(in []byte) (Scalar, error) {
	h := sha3.Sum512(in)
	s, err := new(edwards25519.Scalar).SetUniformBytes(h[:])
	if err != nil {
		return nil, err
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, pp.inner),
	}
}

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != compressedPointSize {
		return nil, fmt.Errorf("invalid point length: got %d, expected %d", len(in), compressedPointSize)
	}

	p, err := new(edwards25519.Point).SetBytes(in)
	if err != nil {
		return nil, err
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, errors.New("invalid scalar length")
	}

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(in)
	if err != nil {
		return nil, err
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) CompressedPointSize() int {
	return compressedPointSize
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Subtract(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Multiply(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return s.inner.Equal(ss.inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(new(edwards25519.Scalar)) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, pp.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}

package ristretto255

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-dlog/types"
	"golang.org/x/crypto/sha3"

	"github.com/bwesterb/go-ristretto"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	scalarSize          = 32
	compressedPointSize = 32
)

// group order l = 2^252 + 27742317777372353535851937790883648493,
// little endian.
var scalarOrderLE = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "ristretto255"
}

func (c *CurveImpl) BasePoint() Point {
	var one ristretto.Scalar
	one.SetOne()

	var p ristretto.Point
	p.ScalarMultBase(&one)
	return &PointImpl{
		inner: &p,
	}
}

func (c *CurveImpl) NewRandomScalar() (Scalar, error) {
	for {
		var b [64]byte
		_, err := rand.Read(b[:])
		if err != nil {
			return nil, err
		}

		var s ristretto.Scalar
		s.SetReduced(&b)
		if isZero(&s) {
			continue
		}

		return &ScalarImpl{
			inner: &s,
		}, nil
	}
}

func (c *CurveImpl) ScalarFromUint64(in uint64) Scalar {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], in)

	var s ristretto.Scalar
	s.SetBytes(&b)
	return &ScalarImpl{
		inner: &s,
	}
}

func (c *CurveImpl) HashToScalar(in []byte) (Scalar, error) {
	h := sha3.Sum512(in)

	var s ristretto.Scalar
	s.SetReduced(&h)
	return &ScalarImpl{
		inner: &s,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	var p ristretto.Point
	p.ScalarMultBase(ss.inner)
	return &PointImpl{
		inner: &p,
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	var res ristretto.Point
	res.ScalarMult(pp.inner, ss.inner)
	return &PointImpl{
		inner: &res,
	}
}

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != compressedPointSize {
		return nil, fmt.Errorf("invalid point length: got %d, expected %d", len(in), compressedPointSize)
	}

	var b [32]byte
	copy(b[:], in)

	var p ristretto.Point
	if !p.SetBytes(&b) {
		return nil, errors.New("invalid point encoding")
	}

	return &PointImpl{
		inner: &p,
	}, nil
}

func (c *CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, errors.New("invalid scalar length")
	}

	var b [32]byte
	copy(b[:], in)
	if !isCanonicalScalar(&b) {
		return nil, errors.New("scalar is not canonical")
	}

	var s ristretto.Scalar
	s.SetBytes(&b)
	return &ScalarImpl{
		inner: &s,
	}, nil
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) CompressedPointSize() int {
	return compressedPointSize
}

// isCanonicalScalar reports whether b, read little endian, is strictly
// below the group order.
func isCanonicalScalar(b *[32]byte) bool {
	for i := 31; i >= 0; i-- {
		if b[i] < scalarOrderLE[i] {
			return true
		}
		if b[i] > scalarOrderLE[i] {
			return false
		}
	}
	return false
}

func isZero(s *ristretto.Scalar) bool {
	var zero ristretto.Scalar
	zero.SetZero()
	return s.Equals(&zero)
}

type ScalarImpl struct {
	inner *ristretto.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	var sum ristretto.Scalar
	sum.Add(s.inner, ss.inner)
	return &ScalarImpl{
		inner: &sum,
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	var diff ristretto.Scalar
	diff.Sub(s.inner, ss.inner)
	return &ScalarImpl{
		inner: &diff,
	}
}

func (s *ScalarImpl) Negate() Scalar {
	var zero, neg ristretto.Scalar
	zero.SetZero()
	neg.Sub(&zero, s.inner)
	return &ScalarImpl{
		inner: &neg,
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	var prod ristretto.Scalar
	prod.Mul(s.inner, ss.inner)
	return &ScalarImpl{
		inner: &prod,
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}
	return s.inner.Equals(ss.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return isZero(s.inner)
}

type PointImpl struct {
	inner *ristretto.Point
}

func (p *PointImpl) Copy() Point {
	cp := *p.inner
	return &PointImpl{
		inner: &cp,
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	var sum ristretto.Point
	sum.Add(p.inner, pp.inner)
	return &PointImpl{
		inner: &sum,
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	var diff ristretto.Point
	diff.Sub(p.inner, pp.inner)
	return &PointImpl{
		inner: &diff,
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	var res ristretto.Point
	res.ScalarMult(p.inner, ss.inner)
	return &PointImpl{
		inner: &res,
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsZero() bool {
	var zero ristretto.Point
	zero.SetZero()
	return p.inner.Equals(&zero)
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	return p.inner.Equals(pp.inner)
}

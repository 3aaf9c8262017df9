package secp256k1

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-dlog/types"
	"golang.org/x/crypto/sha3"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	scalarSize          = 32
	compressedPointSize = 33
)

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "secp256k1"
}

func (c *CurveImpl) BasePoint() Point {
	one := new(secp256k1.ModNScalar).SetInt(1)
	p := new(secp256k1.JacobianPoint)
	secp256k1.ScalarBaseMultNonConst(one, p)
	return &PointImpl{
		inner: p,
	}
}

func (c *CurveImpl) NewRandomScalar() (Scalar, error) {
	for {
		var b [32]byte
		_, err := rand.Read(b[:])
		if err != nil {
			return nil, err
		}

		s := new(secp256k1.ModNScalar)
		overflow := s.SetBytes(&b)
		if overflow != 0 || s.IsZero() {
			continue
		}

		return &ScalarImpl{
			inner: s,
		}, nil
	}
}

func (c *CurveImpl) ScalarFromUint64(in uint64) Scalar {
	var b [32]byte
	binary.BigEndian.PutUint64(b[24:], in)

	s := new(secp256k1.ModNScalar)
	s.SetBytes(&b)
	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) HashToScalar(in []byte) (Scalar, error) {
	h := sha3.Sum512(in)
	wide := new(big.Int).SetBytes(h[:])
	wide.Mod(wide, secp256k1.S256().N)

	var b [32]byte
	wide.FillBytes(b[:])

	s := new(secp256k1.ModNScalar)
	s.SetBytes(&b)
	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	p := new(secp256k1.JacobianPoint)
	secp256k1.ScalarBaseMultNonConst(ss.inner, p)
	return &PointImpl{
		inner: p,
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	res := new(secp256k1.JacobianPoint)
	secp256k1.ScalarMultNonConst(ss.inner, pp.inner, res)
	return &PointImpl{
		inner: res,
	}
}

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != compressedPointSize {
		return nil, fmt.Errorf("invalid point length: got %d, expected %d", len(in), compressedPointSize)
	}

	pub, err := secp256k1.ParsePubKey(in)
	if err != nil {
		return nil, err
	}

	p := new(secp256k1.JacobianPoint)
	pub.AsJacobian(p)
	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, errors.New("invalid scalar length")
	}

	var b [32]byte
	copy(b[:], in)

	s := new(secp256k1.ModNScalar)
	if overflow := s.SetBytes(&b); overflow != 0 {
		return nil, errors.New("scalar is not canonical")
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
	inner *secp256k1.ModNScalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	sum := *s.inner
	sum.Add(ss.inner)
	return &ScalarImpl{
		inner: &sum,
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	neg := *ss.inner
	neg.Negate()
	neg.Add(s.inner)
	return &ScalarImpl{
		inner: &neg,
	}
}

func (s *ScalarImpl) Negate() Scalar {
	neg := *s.inner
	neg.Negate()
	return &ScalarImpl{
		inner: &neg,
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	prod := *s.inner
	prod.Mul(ss.inner)
	return &ScalarImpl{
		inner: &prod,
	}
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	sb, bb := s.inner.Bytes(), ss.inner.Bytes()
	return sb == bb
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

type PointImpl struct {
	inner *secp256k1.JacobianPoint
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
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	res := new(secp256k1.JacobianPoint)
	secp256k1.AddNonConst(p.inner, pp.inner, res)
	return &PointImpl{
		inner: res,
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	neg := *pp.inner
	neg.ToAffine()
	neg.Y.Negate(1)
	neg.Y.Normalize()

	res := new(secp256k1.JacobianPoint)
	secp256k1.AddNonConst(p.inner, &neg, res)
	return &PointImpl{
		inner: res,
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	res := new(secp256k1.JacobianPoint)
	secp256k1.ScalarMultNonConst(ss.inner, p.inner, res)
	return &PointImpl{
		inner: res,
	}
}

func (p *PointImpl) Encode() []byte {
	aff := *p.inner
	aff.ToAffine()

	// the point at infinity has no SEC1 encoding; emit an all-zero
	// placeholder, which DecodeToPoint rejects.
	if aff.X.IsZero() && aff.Y.IsZero() {
		return make([]byte, compressedPointSize)
	}

	return secp256k1.NewPublicKey(&aff.X, &aff.Y).SerializeCompressed()
}

func (p *PointImpl) IsZero() bool {
	aff := *p.inner
	aff.ToAffine()
	return aff.X.IsZero() && aff.Y.IsZero()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	a, b := *p.inner, *pp.inner
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

package ristretto255

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const generatorHex = "e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76"

func TestCurve_generatorEncoding(t *testing.T) {
	curve := NewCurve()
	enc := curve.BasePoint().Encode()
	require.Equal(t, generatorHex, hex.EncodeToString(enc))

	p, err := curve.DecodeToPoint(enc)
	require.NoError(t, err)
	require.True(t, p.Equals(curve.BasePoint()))
}

func TestCurve_identityEncoding(t *testing.T) {
	curve := NewCurve()
	p, err := curve.DecodeToPoint(make([]byte, 32))
	require.NoError(t, err)
	require.True(t, p.IsZero())
}

func TestCurve_scalarArithmetic(t *testing.T) {
	curve := NewCurve()
	two := curve.ScalarFromUint64(2)
	three := curve.ScalarFromUint64(3)

	require.True(t, two.Add(three).Eq(curve.ScalarFromUint64(5)))
	require.True(t, two.Mul(three).Eq(curve.ScalarFromUint64(6)))
	require.True(t, three.Sub(two).Eq(curve.ScalarFromUint64(1)))
	require.True(t, two.Negate().Add(two).IsZero())

	enc := curve.ScalarFromUint64(1).Encode()
	require.Equal(t, curve.ScalarSize(), len(enc))
	require.Equal(t, byte(1), enc[0])
}

func TestCurve_pointOperations(t *testing.T) {
	curve := NewCurve()
	g := curve.BasePoint()
	two := curve.ScalarFromUint64(2)

	require.True(t, g.Add(g).Equals(curve.ScalarBaseMul(two)))
	require.True(t, curve.ScalarMul(two, g).Equals(curve.ScalarBaseMul(two)))
	require.True(t, g.Sub(g).IsZero())
	require.False(t, g.IsZero())
}

func TestCurve_pointCopy(t *testing.T) {
	curve := NewCurve()
	g := curve.BasePoint()
	cp := g.Copy()

	require.True(t, cp.Equals(g))
	require.Equal(t, g.Encode(), cp.Encode())
	require.False(t, cp == g)
}

func TestCurve_newRandomScalar(t *testing.T) {
	curve := NewCurve()
	s1, err := curve.NewRandomScalar()
	require.NoError(t, err)
	s2, err := curve.NewRandomScalar()
	require.NoError(t, err)

	require.False(t, s1.IsZero())
	require.False(t, s1.Eq(s2))
}

func TestCurve_decodeToScalar_canonicalBoundary(t *testing.T) {
	curve := NewCurve()

	// the group order itself is the smallest non-canonical encoding.
	_, err := curve.DecodeToScalar(scalarOrderLE[:])
	require.Error(t, err)

	orderMinusOne := scalarOrderLE
	orderMinusOne[0]--
	s, err := curve.DecodeToScalar(orderMinusOne[:])
	require.NoError(t, err)
	require.True(t, s.Add(curve.ScalarFromUint64(1)).IsZero())
}

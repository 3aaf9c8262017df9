// Package types defines the group abstraction the proof protocol is
// written against. Each curve backend provides a Curve along with its
// Scalar and Point implementations.
package types

type Curve interface {
	// Name returns the canonical lowercase name of the curve,
	// e.g. "secp256k1".
	Name() string
	BasePoint() Point
	// NewRandomScalar returns a uniformly random nonzero scalar.
	// It errors only if the secure randomness source fails.
	NewRandomScalar() (Scalar, error)
	ScalarFromUint64(uint64) Scalar
	// HashToScalar hashes the input with a digest at least 64 bytes
	// wide and reduces it modulo the group order.
	HashToScalar([]byte) (Scalar, error)
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
	// DecodeToPoint parses a canonical fixed-width point encoding.
	DecodeToPoint([]byte) (Point, error)
	// DecodeToScalar parses a canonical fixed-width scalar encoding,
	// rejecting values at or above the group order.
	DecodeToScalar([]byte) (Scalar, error)
	ScalarSize() int
	CompressedPointSize() int
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	ScalarMul(Scalar) Point
	Encode() []byte
	// IsZero reports whether the point is the group identity.
	IsZero() bool
	Equals(other Point) bool
}

package dlog

// Verify reports whether the proof demonstrates knowledge of the
// discrete logarithm of publicKey with respect to generator, bound to
// the given context. It returns false for any malformed or mismatched
// input and never panics, even when the proof or an argument is nil.
func (p *Proof) Verify(curve Curve, pctx ProofContext, publicKey, generator Point) bool {
	if p == nil || p.Commitment == nil || p.Response == nil {
		return false
	}
	if curve == nil || publicKey == nil || generator == nil {
		return false
	}

	// the identity has no discrete logarithm, and an identity
	// commitment means the nonce was zero.
	if publicKey.IsZero() || generator.IsZero() || p.Commitment.IsZero() {
		return false
	}

	c, err := challengeScalar(curve, pctx, generator, publicKey, p.Commitment)
	if err != nil {
		return false
	}

	// s*G == t + c*y
	lhs := curve.ScalarMul(p.Response, generator)
	rhs := p.Commitment.Add(curve.ScalarMul(c, publicKey))
	return lhs.Equals(rhs)
}

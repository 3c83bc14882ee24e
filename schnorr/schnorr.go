// Package schnorr implements Schnorr signatures over an abstract prime-order
// group. Voters use them to authenticate encrypted ballots.
package schnorr

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/alineuh/zkvote/group"
)

// KeyPair holds a Schnorr signing key pair with pk = sk·G.
type KeyPair struct {
	SK *big.Int
	PK group.Element
}

// Signature is a Schnorr signature (R, s) with R = r·G and
// s = r + H(R ‖ msg)·sk mod q.
type Signature struct {
	R group.Element
	S *big.Int
}

// KeyGen generates a Schnorr key pair.
func KeyGen(rnd io.Reader, g group.Group) (KeyPair, error) {
	sk, err := group.RandomScalar(rnd, g)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{
		SK: sk,
		PK: g.Element().BaseScale(sk),
	}, nil
}

// challenge computes H(encode(R) ‖ msg) mod q.
func challenge(g group.Group, R group.Element, msg []byte) *big.Int {
	h := sha256.New()
	rb, _ := R.MarshalBinary()
	h.Write(rb)
	h.Write(msg)
	c := new(big.Int).SetBytes(h.Sum(nil))
	return c.Mod(c, g.N())
}

// Sign signs msg under sk.
//
// The nonce is drawn fresh from rnd on every call and there is deliberately
// no way for a caller to supply one: reusing a nonce across two signatures
// with the same key reveals the key.
func Sign(rnd io.Reader, g group.Group, sk *big.Int, msg []byte) (Signature, error) {
	r, err := group.RandomScalar(rnd, g)
	if err != nil {
		return Signature{}, err
	}

	R := g.Element().BaseScale(r)
	c := challenge(g, R, msg)

	s := new(big.Int).Mul(c, sk)
	s.Add(s, r)
	s.Mod(s, g.N())

	return Signature{R: R, S: s}, nil
}

// Verify reports whether sig is a valid signature on msg under pk.
// It is a total predicate: any malformed input verifies as false.
func Verify(g group.Group, pk group.Element, msg []byte, sig Signature) bool {
	if pk == nil || sig.R == nil || sig.S == nil {
		return false
	}
	if sig.S.Sign() < 0 || sig.S.Cmp(g.N()) >= 0 {
		return false
	}

	c := challenge(g, sig.R, msg)

	// s·G == R + c·pk
	lhs := g.Element().BaseScale(sig.S)
	rhs := g.Element().Add(sig.R, g.Element().Scale(pk, c))
	return lhs.IsEqual(rhs)
}

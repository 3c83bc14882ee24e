package sigma

import (
	"io"
	"math/big"

	"github.com/alineuh/zkvote/elgamal"
	"github.com/alineuh/zkvote/group"
)

// DecryptionProof proves that a published plaintext m is the correct
// decryption of a ciphertext under the secret key matching a public key.
//
// It is an AND composition over the two relations pk = sk·G and
// c2 − m·G = sk·c1: a single challenge/response pair covers both, which
// binds the same sk in both equations.
type DecryptionProof struct {
	A group.Element
	B group.Element
	C *big.Int
	Z *big.Int
}

// decryptionChallenge derives the proof challenge. Transcript order:
// pk, c1, c2, m, A, B.
func decryptionChallenge(g group.Group, pk group.Element, ct elgamal.Ciphertext,
	m int64, A, B group.Element) *big.Int {

	t := NewTranscript(g)
	t.WriteElements(pk, ct.C1, ct.C2)
	t.WriteScalars(big.NewInt(m))
	t.WriteElements(A, B)
	return t.Challenge()
}

// ProveCorrectDecryption proves that m is the decryption of ct under sk,
// where pk = sk·G is the published election key.
func ProveCorrectDecryption(rnd io.Reader, g group.Group, sk *big.Int,
	pk group.Element, ct elgamal.Ciphertext, m int64) (DecryptionProof, error) {

	w, err := group.RandomScalar(rnd, g)
	if err != nil {
		return DecryptionProof{}, err
	}

	A := g.Element().BaseScale(w)
	B := g.Element().Scale(ct.C1, w)

	c := decryptionChallenge(g, pk, ct, m, A, B)

	// z = w + c·sk mod q
	z := new(big.Int).Mul(c, sk)
	z.Add(z, w)
	z.Mod(z, g.N())

	return DecryptionProof{A: A, B: B, C: c, Z: z}, nil
}

// VerifyCorrectDecryption reports whether proof shows that m is the
// decryption of ct under the secret key for pk. Total predicate.
func VerifyCorrectDecryption(g group.Group, pk group.Element,
	ct elgamal.Ciphertext, m int64, proof DecryptionProof) bool {

	if pk == nil || ct.C1 == nil || ct.C2 == nil ||
		proof.A == nil || proof.B == nil || proof.C == nil || proof.Z == nil {
		return false
	}

	if c := decryptionChallenge(g, pk, ct, m, proof.A, proof.B); c.Cmp(proof.C) != 0 {
		return false
	}

	// z·G == A + c·pk
	lhs := g.Element().BaseScale(proof.Z)
	rhs := g.Element().Add(proof.A, g.Element().Scale(pk, proof.C))
	if !lhs.IsEqual(rhs) {
		return false
	}

	// z·c1 == B + c·(c2 − m·G)
	shifted := g.Element().Subtract(ct.C2, g.Element().BaseScale(big.NewInt(m)))
	lhs = g.Element().Scale(ct.C1, proof.Z)
	rhs = g.Element().Add(proof.B, g.Element().Scale(shifted, proof.C))
	return lhs.IsEqual(rhs)
}

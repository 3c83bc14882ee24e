package sigma

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/alineuh/zkvote/elgamal"
	"github.com/alineuh/zkvote/group"
)

// ErrValueNotInSet reports an attempt to prove well-formedness of a
// ciphertext whose plaintext is not one of the allowed vote codes. The
// proof cannot be constructed for such values; this is what makes the OR
// composition sound.
var ErrValueNotInSet = errors.New("sigma: plaintext is not an allowed vote code")

// Branches is the number of statements in the OR composition, one per
// allowed vote code.
const Branches = 3

// VoteProof proves that an ElGamal ciphertext encrypts one of three
// enumerated values without revealing which.
//
// The three branches are structurally identical: exactly one was produced
// with the real encryption witness and the other two were simulated, but
// nothing in the serialized proof distinguishes them. The binding invariant
// is sum(Challenges) mod q == the Fiat-Shamir challenge of the transcript.
type VoteProof struct {
	CommitmentsA [Branches]group.Element
	CommitmentsB [Branches]group.Element
	Challenges   [Branches]*big.Int
	Responses    [Branches]*big.Int
}

// voteChallenge derives the global OR-proof challenge. Transcript order:
// pk, c1, c2, A0, B0, A1, B1, A2, B2.
func voteChallenge(g group.Group, pk group.Element, ct elgamal.Ciphertext, p *VoteProof) *big.Int {
	t := NewTranscript(g)
	t.WriteElements(pk, ct.C1, ct.C2)
	for i := 0; i < Branches; i++ {
		t.WriteElements(p.CommitmentsA[i], p.CommitmentsB[i])
	}
	return t.Challenge()
}

// ProveWellFormedVote proves that ct encrypts one of the three values,
// given the true plaintext m and the encryption nonce r.
//
// The branch for m runs the honest Sigma protocol; the other two branches
// are simulated by drawing their challenge and response first and solving
// the verification equations for the commitments. The honest branch's
// challenge is then fixed by the challenge-sum invariant, so the three
// output branches carry no trace of which one was real.
func ProveWellFormedVote(rnd io.Reader, g group.Group, pk group.Element,
	ct elgamal.Ciphertext, values [Branches]int64, m int64, r *big.Int) (VoteProof, error) {

	realIdx := -1
	for i, v := range values {
		if v == m {
			realIdx = i
		}
	}
	if realIdx < 0 {
		return VoteProof{}, fmt.Errorf("%w: %d not in %v", ErrValueNotInSet, m, values)
	}

	var proof VoteProof
	q := g.N()

	// Honest branch: commit with a fresh witness.
	w, err := group.RandomScalar(rnd, g)
	if err != nil {
		return VoteProof{}, err
	}
	proof.CommitmentsA[realIdx] = g.Element().BaseScale(w)
	proof.CommitmentsB[realIdx] = g.Element().Scale(pk, w)

	// Simulated branches: pick challenge and response, back-solve the
	// commitments so both verification equations hold.
	for i := 0; i < Branches; i++ {
		if i == realIdx {
			continue
		}
		if proof.Challenges[i], err = group.RandomScalar(rnd, g); err != nil {
			return VoteProof{}, err
		}
		if proof.Responses[i], err = group.RandomScalar(rnd, g); err != nil {
			return VoteProof{}, err
		}

		// A_i = z_i·G − e_i·c1
		proof.CommitmentsA[i] = g.Element().Subtract(
			g.Element().BaseScale(proof.Responses[i]),
			g.Element().Scale(ct.C1, proof.Challenges[i]),
		)

		// B_i = z_i·pk − e_i·(c2 − v_i·G)
		shifted := g.Element().Subtract(ct.C2, g.Element().BaseScale(big.NewInt(values[i])))
		proof.CommitmentsB[i] = g.Element().Subtract(
			g.Element().Scale(pk, proof.Responses[i]),
			g.Element().Scale(shifted, proof.Challenges[i]),
		)
	}

	cTotal := voteChallenge(g, pk, ct, &proof)

	// The honest challenge absorbs whatever the simulated ones left over.
	e := new(big.Int).Set(cTotal)
	e.Sub(e, proof.Challenges[(realIdx+1)%Branches])
	e.Sub(e, proof.Challenges[(realIdx+2)%Branches])
	e.Mod(e, q)
	proof.Challenges[realIdx] = e

	// z = w + e·r mod q
	z := new(big.Int).Mul(e, r)
	z.Add(z, w)
	z.Mod(z, q)
	proof.Responses[realIdx] = z

	return proof, nil
}

// VerifyWellFormedVote reports whether proof shows that ct encrypts one of
// the three values under pk. It is a total predicate: malformed proofs
// verify as false, never panic or error.
func VerifyWellFormedVote(g group.Group, pk group.Element,
	ct elgamal.Ciphertext, values [Branches]int64, proof VoteProof) bool {

	if pk == nil || ct.C1 == nil || ct.C2 == nil {
		return false
	}
	for i := 0; i < Branches; i++ {
		if proof.CommitmentsA[i] == nil || proof.CommitmentsB[i] == nil ||
			proof.Challenges[i] == nil || proof.Responses[i] == nil {
			return false
		}
	}

	q := g.N()

	// The challenges must add up to the transcript challenge.
	cTotal := voteChallenge(g, pk, ct, &proof)
	sum := new(big.Int)
	for i := 0; i < Branches; i++ {
		sum.Add(sum, proof.Challenges[i])
	}
	sum.Mod(sum, q)
	if sum.Cmp(cTotal) != 0 {
		return false
	}

	// Every branch must verify independently.
	for i := 0; i < Branches; i++ {
		// z_i·G == A_i + e_i·c1
		lhs := g.Element().BaseScale(proof.Responses[i])
		rhs := g.Element().Add(proof.CommitmentsA[i], g.Element().Scale(ct.C1, proof.Challenges[i]))
		if !lhs.IsEqual(rhs) {
			return false
		}

		// z_i·pk == B_i + e_i·(c2 − v_i·G)
		shifted := g.Element().Subtract(ct.C2, g.Element().BaseScale(big.NewInt(values[i])))
		lhs = g.Element().Scale(pk, proof.Responses[i])
		rhs = g.Element().Add(proof.CommitmentsB[i], g.Element().Scale(shifted, proof.Challenges[i]))
		if !lhs.IsEqual(rhs) {
			return false
		}
	}
	return true
}

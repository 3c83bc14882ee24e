package election

import (
	"golang.org/x/sync/errgroup"

	"github.com/alineuh/zkvote/elgamal"
	"github.com/alineuh/zkvote/group"
	"github.com/alineuh/zkvote/schnorr"
	"github.com/alineuh/zkvote/sigma"
)

// Validity records the verification outcome for one submission. A failed
// check excludes the vote from the tally but never aborts the election.
type Validity struct {
	SignatureOK bool
	ProofOK     bool
	Valid       bool
}

// AggregationResult is the output of ballot verification and tallying: the
// homomorphic sum of the valid ciphertexts plus the per-voter audit trail.
type AggregationResult struct {
	Tally      elgamal.Ciphertext
	Validity   []Validity
	ValidCount int
}

// verifySubmission checks one submission's signature and well-formedness
// proof independently.
func (e Election) verifySubmission(encPK group.Element, sub Submission) Validity {
	var v Validity
	if sub.Ballot.Ciphertext.C1 == nil || sub.Ballot.Ciphertext.C2 == nil {
		return v
	}

	ctBytes, err := sub.Ballot.Ciphertext.MarshalBinary()
	if err == nil {
		v.SignatureOK = schnorr.Verify(e.Group, sub.VoterPK, ctBytes, sub.Ballot.Signature)
	}
	v.ProofOK = sigma.VerifyWellFormedVote(e.Group, encPK, sub.Ballot.Ciphertext,
		e.Codes(), sub.Ballot.Proof)
	v.Valid = v.SignatureOK && v.ProofOK
	return v
}

// AggregateVotes verifies every submission and homomorphically folds the
// valid ciphertexts into a single tally ciphertext.
//
// Submissions are verified concurrently; each is independent of the others.
// An invalid submission is recorded and excluded, never fatal. The call
// fails only when the electorate exceeds the code spacing (ErrTooManyVoters)
// or when nothing at all verified (ErrNoValidVotes).
func (e Election) AggregateVotes(encPK group.Element, subs []Submission) (*AggregationResult, error) {
	if len(subs) > MaxVoters {
		return nil, ErrTooManyVoters
	}

	validity := make([]Validity, len(subs))

	var eg errgroup.Group
	for i, sub := range subs {
		i, sub := i, sub
		eg.Go(func() error {
			validity[i] = e.verifySubmission(encPK, sub)
			return nil
		})
	}
	_ = eg.Wait() // workers only record booleans

	res := &AggregationResult{
		Tally:    elgamal.Ciphertext{C1: e.Group.Identity(), C2: e.Group.Identity()},
		Validity: validity,
	}
	for i, sub := range subs {
		if !validity[i].Valid {
			continue
		}
		res.Tally = elgamal.AddCiphertexts(e.Group, res.Tally, sub.Ballot.Ciphertext)
		res.ValidCount++
	}
	if res.ValidCount == 0 {
		return nil, ErrNoValidVotes
	}
	return res, nil
}

// Package election sequences the cryptographic primitives into the vote
// lifecycle: voters cast signed, encrypted ballots with well-formedness
// proofs, the authority verifies and homomorphically tallies them, decrypts
// the aggregate, and publishes a proof that the decryption is correct.
//
// Each candidate is assigned a vote code spaced by a power of ten, so the
// decrypted aggregate carries one candidate's count per decimal digit. The
// spacing caps the electorate: with base 10, at most 9 voters fit before a
// digit would overflow into its neighbour.
package election

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/alineuh/zkvote/elgamal"
	"github.com/alineuh/zkvote/group"
	"github.com/alineuh/zkvote/schnorr"
	"github.com/alineuh/zkvote/sigma"
)

var (
	// ErrUnknownCandidate reports a cast for a name outside the ballot.
	ErrUnknownCandidate = errors.New("election: unknown candidate")
	// ErrTooManyVoters reports more submissions than the vote-code spacing
	// can tally without digit overflow.
	ErrTooManyVoters = errors.New("election: voter count exceeds tally capacity")
	// ErrNoValidVotes reports that every submission failed verification.
	ErrNoValidVotes = errors.New("election: no submission passed verification")
)

// NumCandidates is the number of candidates on the ballot. The
// well-formedness proof has one OR branch per candidate, so the two are
// locked together.
const NumCandidates = sigma.Branches

// codeBase is the positional base of the vote codes. Candidate i gets code
// codeBase^i, so per-candidate counts occupy disjoint digits of the tally.
const codeBase = 10

// MaxVoters is the largest electorate the code spacing supports: one more
// voter could push a candidate's digit past codeBase-1.
const MaxVoters = codeBase - 1

// Election holds the public parameters shared by every participant: the
// group all keys and proofs live in, and the candidate names in ballot
// order.
type Election struct {
	Group      group.Group
	Candidates [NumCandidates]string
}

// New sets up an election over g with the given candidates.
func New(g group.Group, candidates [NumCandidates]string) Election {
	return Election{Group: g, Candidates: candidates}
}

// Codes returns the vote codes in candidate order: 1, 10, 100.
func (e Election) Codes() [NumCandidates]int64 {
	var codes [NumCandidates]int64
	c := int64(1)
	for i := range codes {
		codes[i] = c
		c *= codeBase
	}
	return codes
}

// tallyBound is the exclusive upper bound on any reachable aggregate, used
// as the decryption search bound.
func (e Election) tallyBound() int64 {
	b := int64(1)
	for i := 0; i < NumCandidates; i++ {
		b *= codeBase
	}
	return b
}

// code maps a candidate name to its vote code.
func (e Election) code(candidate string) (int64, error) {
	codes := e.Codes()
	for i, name := range e.Candidates {
		if name == candidate {
			return codes[i], nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCandidate, candidate)
}

// Ballot is one voter's encrypted vote: the ciphertext, a signature over the
// ciphertext bytes, and the proof that the ciphertext encrypts a valid vote
// code. Candidate is the voter's own label for display; verifiers must never
// trust it, only the proof.
type Ballot struct {
	Ciphertext elgamal.Ciphertext
	Signature  schnorr.Signature
	Proof      sigma.VoteProof
	Candidate  string
}

// Submission pairs a ballot with the signing public key it should verify
// under.
type Submission struct {
	VoterPK group.Element
	Ballot  Ballot
}

// CastVote builds a ballot for the named candidate: encrypt the vote code
// under the election key, sign the ciphertext bytes with the voter's key,
// and prove the ciphertext is well formed.
func (e Election) CastVote(rnd io.Reader, signSK *big.Int, encPK group.Element,
	candidate string) (*Ballot, error) {

	m, err := e.code(candidate)
	if err != nil {
		return nil, err
	}

	enc, err := elgamal.Encrypt(rnd, e.Group, encPK, m, e.tallyBound())
	if err != nil {
		return nil, err
	}

	ctBytes, err := enc.Ciphertext.MarshalBinary()
	if err != nil {
		return nil, err
	}
	sig, err := schnorr.Sign(rnd, e.Group, signSK, ctBytes)
	if err != nil {
		return nil, err
	}

	proof, err := sigma.ProveWellFormedVote(rnd, e.Group, encPK,
		enc.Ciphertext, e.Codes(), m, enc.Nonce)
	if err != nil {
		return nil, err
	}

	return &Ballot{
		Ciphertext: enc.Ciphertext,
		Signature:  sig,
		Proof:      proof,
		Candidate:  candidate,
	}, nil
}

// Result is the published outcome: the decrypted aggregate, its per-candidate
// digit split, and the proof that Tally is the correct decryption.
type Result struct {
	Tally  int64
	Counts [NumCandidates]int64
	Proof  sigma.DecryptionProof
}

// splitTally extracts per-candidate counts from the aggregate by positional
// digit extraction.
func splitTally(m int64) [NumCandidates]int64 {
	var counts [NumCandidates]int64
	for i := range counts {
		counts[i] = m % codeBase
		m /= codeBase
	}
	return counts
}

// DecryptAndProve decrypts the aggregated ciphertext under the election key
// pair, splits the tally into per-candidate counts, and attaches a proof of
// correct decryption over the unsplit tally.
func (e Election) DecryptAndProve(rnd io.Reader, keys elgamal.KeyPair,
	agg *AggregationResult) (*Result, error) {

	m, err := elgamal.Decrypt(e.Group, keys.SK, agg.Tally, e.tallyBound())
	if err != nil {
		return nil, err
	}

	proof, err := sigma.ProveCorrectDecryption(rnd, e.Group, keys.SK, keys.PK,
		agg.Tally, m)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tally:  m,
		Counts: splitTally(m),
		Proof:  proof,
	}, nil
}

// VerifyResult reports whether the published result matches the aggregated
// ciphertext: the decryption proof must verify against the unsplit tally and
// the count split must be the tally's digit decomposition. Total predicate.
func (e Election) VerifyResult(encPK group.Element, tally elgamal.Ciphertext,
	res *Result) bool {

	if res == nil || res.Tally < 0 || res.Tally >= e.tallyBound() {
		return false
	}
	if splitTally(res.Tally) != res.Counts {
		return false
	}
	return sigma.VerifyCorrectDecryption(e.Group, encPK, tally, res.Tally, res.Proof)
}

// Winners returns the candidates with the highest count, in ballot order.
// More than one name means a tie.
func (e Election) Winners(res *Result) []string {
	var max int64
	for _, c := range res.Counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return nil
	}

	var winners []string
	for i, c := range res.Counts {
		if c == max {
			winners = append(winners, e.Candidates[i])
		}
	}
	return winners
}

package election

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/alineuh/zkvote/elgamal"
	"github.com/alineuh/zkvote/schnorr"
	"github.com/alineuh/zkvote/sigma"
)

// Ballots cross the bulletin board as CBOR envelopes whose fields carry the
// fixed-width binary encodings of the underlying values. Decoding needs the
// election's group, so the envelope types stay private and the public
// functions take an Election receiver.

type ballotEnvelope struct {
	Ciphertext []byte `cbor:"ct"`
	Signature  []byte `cbor:"sig"`
	Proof      []byte `cbor:"proof"`
	Candidate  string `cbor:"cand"`
}

type submissionEnvelope struct {
	VoterPK []byte         `cbor:"pk"`
	Ballot  ballotEnvelope `cbor:"ballot"`
}

func (e Election) sealBallot(b Ballot) (ballotEnvelope, error) {
	ct, err := b.Ciphertext.MarshalBinary()
	if err != nil {
		return ballotEnvelope{}, err
	}
	sig, err := schnorr.EncodeSignature(e.Group, b.Signature)
	if err != nil {
		return ballotEnvelope{}, err
	}
	proof, err := sigma.EncodeVoteProof(e.Group, b.Proof)
	if err != nil {
		return ballotEnvelope{}, err
	}
	return ballotEnvelope{
		Ciphertext: ct,
		Signature:  sig,
		Proof:      proof,
		Candidate:  b.Candidate,
	}, nil
}

func (e Election) openBallot(env ballotEnvelope) (Ballot, error) {
	ct, err := elgamal.UnmarshalCiphertext(e.Group, env.Ciphertext)
	if err != nil {
		return Ballot{}, err
	}
	sig, err := schnorr.DecodeSignature(e.Group, env.Signature)
	if err != nil {
		return Ballot{}, err
	}
	proof, err := sigma.DecodeVoteProof(e.Group, env.Proof)
	if err != nil {
		return Ballot{}, err
	}
	return Ballot{
		Ciphertext: ct,
		Signature:  sig,
		Proof:      proof,
		Candidate:  env.Candidate,
	}, nil
}

// EncodeBallot serializes a ballot for the bulletin board.
func (e Election) EncodeBallot(b Ballot) ([]byte, error) {
	env, err := e.sealBallot(b)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(env)
}

// DecodeBallot parses a bulletin-board ballot, validating every embedded
// group element against the election's group.
func (e Election) DecodeBallot(data []byte) (Ballot, error) {
	var env ballotEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return Ballot{}, err
	}
	return e.openBallot(env)
}

// EncodeSubmission serializes a submission (voter key plus ballot).
func (e Election) EncodeSubmission(s Submission) ([]byte, error) {
	pk, err := s.VoterPK.MarshalBinary()
	if err != nil {
		return nil, err
	}
	ballot, err := e.sealBallot(s.Ballot)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(submissionEnvelope{VoterPK: pk, Ballot: ballot})
}

// DecodeSubmission parses a serialized submission against the election's
// group.
func (e Election) DecodeSubmission(data []byte) (Submission, error) {
	var env submissionEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return Submission{}, err
	}

	pk := e.Group.Element()
	if err := pk.UnmarshalBinary(env.VoterPK); err != nil {
		return Submission{}, err
	}
	ballot, err := e.openBallot(env.Ballot)
	if err != nil {
		return Submission{}, err
	}
	return Submission{VoterPK: pk, Ballot: ballot}, nil
}

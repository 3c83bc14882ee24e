// Package sigma implements the non-interactive Sigma protocols of the voting
// scheme: the 3-way OR proof that a ballot encrypts one of the allowed vote
// codes, and the proof that a published tally is the correct decryption of
// the aggregated ciphertext. Both are made non-interactive with the
// Fiat-Shamir transform.
package sigma

import (
	"crypto/sha256"
	"hash"
	"math/big"

	"github.com/alineuh/zkvote/group"
)

// Transcript derives Fiat-Shamir challenges from an ordered sequence of
// group elements and scalars. Each input is written in its canonical
// fixed-width encoding, so prover and verifier agree byte for byte as long
// as they write the same values in the same order. The exact input sequence
// is part of each protocol's contract and is documented at its challenge
// derivation, not implied by any function signature.
type Transcript struct {
	g group.Group
	h hash.Hash
}

// NewTranscript starts an empty transcript for the given group.
func NewTranscript(g group.Group) *Transcript {
	return &Transcript{g: g, h: sha256.New()}
}

// WriteElements appends group elements to the transcript.
func (t *Transcript) WriteElements(es ...group.Element) *Transcript {
	for _, e := range es {
		b, _ := e.MarshalBinary()
		t.h.Write(b)
	}
	return t
}

// WriteScalars appends scalars to the transcript, reduced mod q.
func (t *Transcript) WriteScalars(ss ...*big.Int) *Transcript {
	for _, s := range ss {
		t.h.Write(group.ScalarBytes(t.g, s))
	}
	return t
}

// Challenge returns the transcript digest interpreted as a big-endian
// integer mod q.
func (t *Transcript) Challenge() *big.Int {
	c := new(big.Int).SetBytes(t.h.Sum(nil))
	return c.Mod(c, t.g.N())
}

package sigma

import (
	"errors"
	"fmt"

	"github.com/alineuh/zkvote/group"
)

// ErrProofSize reports a proof encoding of the wrong length.
var ErrProofSize = errors.New("sigma: bad proof encoding length")

// EncodeVoteProof encodes a vote proof as the fixed-width concatenation
// A0 ‖ B0 ‖ A1 ‖ B1 ‖ A2 ‖ B2 ‖ e0 ‖ e1 ‖ e2 ‖ z0 ‖ z1 ‖ z2.
func EncodeVoteProof(g group.Group, p VoteProof) ([]byte, error) {
	out := make([]byte, 0, 2*Branches*g.ElementSize()+2*Branches*g.ScalarSize())
	for i := 0; i < Branches; i++ {
		a, err := p.CommitmentsA[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		b, err := p.CommitmentsB[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, a...)
		out = append(out, b...)
	}
	for i := 0; i < Branches; i++ {
		out = append(out, group.ScalarBytes(g, p.Challenges[i])...)
	}
	for i := 0; i < Branches; i++ {
		out = append(out, group.ScalarBytes(g, p.Responses[i])...)
	}
	return out, nil
}

// DecodeVoteProof recovers a vote proof from its fixed-width encoding.
func DecodeVoteProof(g group.Group, data []byte) (VoteProof, error) {
	en := g.ElementSize()
	sn := g.ScalarSize()
	want := 2*Branches*en + 2*Branches*sn
	if len(data) != want {
		return VoteProof{}, fmt.Errorf("%w: %d bytes, want %d", ErrProofSize, len(data), want)
	}

	var p VoteProof
	var err error
	off := 0
	for i := 0; i < Branches; i++ {
		p.CommitmentsA[i] = g.Element()
		if err = p.CommitmentsA[i].UnmarshalBinary(data[off : off+en]); err != nil {
			return VoteProof{}, err
		}
		off += en
		p.CommitmentsB[i] = g.Element()
		if err = p.CommitmentsB[i].UnmarshalBinary(data[off : off+en]); err != nil {
			return VoteProof{}, err
		}
		off += en
	}
	for i := 0; i < Branches; i++ {
		if p.Challenges[i], err = group.ParseScalar(g, data[off:off+sn]); err != nil {
			return VoteProof{}, err
		}
		off += sn
	}
	for i := 0; i < Branches; i++ {
		if p.Responses[i], err = group.ParseScalar(g, data[off:off+sn]); err != nil {
			return VoteProof{}, err
		}
		off += sn
	}
	return p, nil
}

// EncodeDecryptionProof encodes a decryption proof as A ‖ B ‖ c ‖ z.
func EncodeDecryptionProof(g group.Group, p DecryptionProof) ([]byte, error) {
	a, err := p.A.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b, err := p.B.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2*g.ElementSize()+2*g.ScalarSize())
	out = append(out, a...)
	out = append(out, b...)
	out = append(out, group.ScalarBytes(g, p.C)...)
	out = append(out, group.ScalarBytes(g, p.Z)...)
	return out, nil
}

// DecodeDecryptionProof recovers a decryption proof from its fixed-width
// encoding.
func DecodeDecryptionProof(g group.Group, data []byte) (DecryptionProof, error) {
	en := g.ElementSize()
	sn := g.ScalarSize()
	want := 2*en + 2*sn
	if len(data) != want {
		return DecryptionProof{}, fmt.Errorf("%w: %d bytes, want %d", ErrProofSize, len(data), want)
	}

	var p DecryptionProof
	var err error
	p.A = g.Element()
	if err = p.A.UnmarshalBinary(data[:en]); err != nil {
		return DecryptionProof{}, err
	}
	p.B = g.Element()
	if err = p.B.UnmarshalBinary(data[en : 2*en]); err != nil {
		return DecryptionProof{}, err
	}
	if p.C, err = group.ParseScalar(g, data[2*en:2*en+sn]); err != nil {
		return DecryptionProof{}, err
	}
	if p.Z, err = group.ParseScalar(g, data[2*en+sn:]); err != nil {
		return DecryptionProof{}, err
	}
	return p, nil
}

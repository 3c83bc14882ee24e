package schnorr

import (
	"errors"
	"fmt"

	"github.com/alineuh/zkvote/group"
)

// ErrSignatureSize reports a signature encoding of the wrong length.
var ErrSignatureSize = errors.New("schnorr: bad signature encoding length")

// EncodeSignature encodes sig as encode(R) ‖ encode(s) with the group's
// fixed element and scalar widths.
func EncodeSignature(g group.Group, sig Signature) ([]byte, error) {
	rb, err := sig.R.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(rb, group.ScalarBytes(g, sig.S)...), nil
}

// DecodeSignature recovers a signature from its fixed-width encoding.
func DecodeSignature(g group.Group, data []byte) (Signature, error) {
	n := g.ElementSize()
	want := n + g.ScalarSize()
	if len(data) != want {
		return Signature{}, fmt.Errorf("%w: %d bytes, want %d", ErrSignatureSize, len(data), want)
	}

	R := g.Element()
	if err := R.UnmarshalBinary(data[:n]); err != nil {
		return Signature{}, err
	}
	s, err := group.ParseScalar(g, data[n:])
	if err != nil {
		return Signature{}, err
	}
	return Signature{R: R, S: s}, nil
}

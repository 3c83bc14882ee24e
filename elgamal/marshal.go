package elgamal

import (
	"errors"
	"fmt"

	"github.com/alineuh/zkvote/group"
)

// ErrCiphertextSize reports a ciphertext encoding of the wrong length.
var ErrCiphertextSize = errors.New("elgamal: bad ciphertext encoding length")

// MarshalBinary encodes the ciphertext as encode(c1) ‖ encode(c2) using the
// group's fixed-width element encoding.
func (ct Ciphertext) MarshalBinary() ([]byte, error) {
	b1, err := ct.C1.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b2, err := ct.C2.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(b1, b2...), nil
}

// UnmarshalCiphertext recovers a ciphertext from its fixed-width encoding.
func UnmarshalCiphertext(g group.Group, data []byte) (Ciphertext, error) {
	n := g.ElementSize()
	if len(data) != 2*n {
		return Ciphertext{}, fmt.Errorf("%w: %d bytes, want %d", ErrCiphertextSize, len(data), 2*n)
	}

	ct := Ciphertext{
		C1: g.Element(),
		C2: g.Element(),
	}
	if err := ct.C1.UnmarshalBinary(data[:n]); err != nil {
		return Ciphertext{}, err
	}
	if err := ct.C2.UnmarshalBinary(data[n:]); err != nil {
		return Ciphertext{}, err
	}
	return ct, nil
}

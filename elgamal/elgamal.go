// Package elgamal implements exponent ElGamal encryption: the message is
// lifted to m·G so that adding two ciphertexts componentwise yields a
// ciphertext of the sum of the plaintexts.
//
// Decryption recovers m·G and then solves the discrete logarithm by bounded
// exhaustive search, so the scheme is only usable for small plaintexts.
package elgamal

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/alineuh/zkvote/group"
)

var (
	// ErrMessageRange reports a plaintext outside [0, maxMessage) at
	// encryption time.
	ErrMessageRange = errors.New("elgamal: message out of range")
	// ErrDlogNotFound reports that the discrete-log search exhausted its
	// bound: either the ciphertext is corrupt or the bound is too small.
	ErrDlogNotFound = errors.New("elgamal: discrete log not found within bound")
)

// KeyPair holds an ElGamal key pair with pk = sk·G.
type KeyPair struct {
	SK *big.Int
	PK group.Element
}

// Ciphertext is an ElGamal ciphertext (r·G, r·pk + m·G).
type Ciphertext struct {
	C1 group.Element
	C2 group.Element
}

// Encryption is the result of encrypting a message: the ciphertext together
// with the randomness used to produce it. The nonce is the witness for the
// ballot well-formedness proof and must never be published.
type Encryption struct {
	Ciphertext Ciphertext
	Nonce      *big.Int
}

// KeyGen generates an ElGamal key pair with a secret key drawn uniformly
// from [0, q).
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

// Encrypt encrypts a small integer under pk with fresh randomness.
// The message must lie in [0, maxMessage) so that Decrypt with the same
// bound can recover it.
func Encrypt(rnd io.Reader, g group.Group, pk group.Element, m, maxMessage int64) (Encryption, error) {
	if m < 0 || m >= maxMessage {
		return Encryption{}, fmt.Errorf("%w: %d not in [0, %d)", ErrMessageRange, m, maxMessage)
	}

	r, err := group.RandomScalar(rnd, g)
	if err != nil {
		return Encryption{}, err
	}

	lifted := g.Element().BaseScale(big.NewInt(m))
	mask := g.Element().Scale(pk, r)

	return Encryption{
		Ciphertext: Ciphertext{
			C1: g.Element().BaseScale(r),
			C2: g.Element().Add(mask, lifted),
		},
		Nonce: r,
	}, nil
}

// Decrypt recovers the plaintext of ct by unmasking m·G = c2 - sk·c1 and
// searching m over [0, maxMessage).
func Decrypt(g group.Group, sk *big.Int, ct Ciphertext, maxMessage int64) (int64, error) {
	mask := g.Element().Scale(ct.C1, sk)
	M := g.Element().Subtract(ct.C2, mask)

	// Walk i·G for i = 0, 1, 2, ... instead of recomputing each multiple.
	G := g.Generator()
	acc := g.Identity()
	for m := int64(0); m < maxMessage; m++ {
		if acc.IsEqual(M) {
			return m, nil
		}
		acc.Add(acc, G)
	}
	return 0, fmt.Errorf("%w: bound %d", ErrDlogNotFound, maxMessage)
}

// AddCiphertexts homomorphically adds two ciphertexts encrypted under the
// same key: the result decrypts to the sum of the two plaintexts. The
// operation is commutative and associative, so aggregates may be folded in
// any order.
func AddCiphertexts(g group.Group, a, b Ciphertext) Ciphertext {
	return Ciphertext{
		C1: g.Element().Add(a.C1, b.C1),
		C2: g.Element().Add(a.C2, b.C2),
	}
}

package group

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandomScalar samples a scalar uniformly from [0, g.N()) using the given
// randomness source.
//
// Callers that need fresh randomness (key generation, signing nonces, proof
// witnesses, simulated proof branches) must call this once per value and
// must never reuse the result across operations.
func RandomScalar(rnd io.Reader, g Group) (*big.Int, error) {
	s, err := rand.Int(rnd, g.N())
	if err != nil {
		return nil, fmt.Errorf("group: sampling scalar: %w", err)
	}
	return s, nil
}

// ScalarBytes returns the canonical fixed-width big-endian encoding of s,
// reduced modulo the group order.
func ScalarBytes(g Group, s *big.Int) []byte {
	reduced := new(big.Int).Mod(s, g.N())
	buf := make([]byte, g.ScalarSize())
	reduced.FillBytes(buf)
	return buf
}

// ParseScalar recovers a scalar from its canonical fixed-width encoding.
func ParseScalar(g Group, b []byte) (*big.Int, error) {
	if len(b) != g.ScalarSize() {
		return nil, fmt.Errorf("group: scalar encoding is %d bytes, want %d", len(b), g.ScalarSize())
	}
	s := new(big.Int).SetBytes(b)
	if s.Cmp(g.N()) >= 0 {
		return nil, fmt.Errorf("group: scalar exceeds group order")
	}
	return s, nil
}

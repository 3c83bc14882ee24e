// Package group abstracts the algebraic group the voting protocol works in.
//
// The protocol layer only relies on a prime-order group with a fixed public
// generator, written additively: scalar multiplication, addition, equality,
// and a fixed-width byte encoding. Concrete backends adapt a curve library
// to this surface; the protocol packages never import a curve directly.
package group

import (
	"encoding"
	"math/big"
)

// Element represents an element of a prime-order group.
//
// Elements are mutable receivers in the builder style: operations set the
// receiver to the result and return it, so expressions compose as
// g.Element().BaseScale(s).
type Element interface {
	// Add sets the receiver to X + Y, and returns it.
	Add(X, Y Element) Element
	// Subtract sets the receiver to X - Y, and returns it.
	Subtract(X, Y Element) Element
	// Negate sets the receiver to -X, and returns it.
	Negate(X Element) Element
	// Scale sets the receiver to s·X, and returns it.
	// The scalar is reduced modulo the group order.
	Scale(X Element, s *big.Int) Element
	// BaseScale sets the receiver to s·G for the group's fixed
	// generator G, and returns it.
	BaseScale(s *big.Int) Element
	// Set sets the receiver to X, and returns it.
	Set(X Element) Element
	// IsEqual returns true if the receiver is equal to X.
	IsEqual(X Element) bool
	// IsIdentity returns true if the receiver is the group's
	// identity element.
	IsIdentity() bool
	// String returns a short printable representation of the element.
	String() string
	// BinaryMarshaler returns the canonical fixed-width encoding of the
	// element. The width is the ElementSize of the element's group.
	encoding.BinaryMarshaler
	// BinaryUnmarshaler recovers an element from its canonical encoding.
	// It rejects input of the wrong length and encodings that do not
	// describe a group element.
	encoding.BinaryUnmarshaler
}

// Group represents a prime-order group over which the voting protocol runs.
type Group interface {
	// Name returns the name of the group.
	Name() string

	// Element creates a new group element set to the identity.
	Element() Element
	// Generator creates a group element set to the group's generator.
	Generator() Element
	// Identity creates a group element set to the group's identity element.
	Identity() Element

	// N returns the prime order of the group.
	N() *big.Int

	// ElementSize returns the width in bytes of an encoded group element.
	ElementSize() int
	// ScalarSize returns the width in bytes of an encoded scalar.
	ScalarSize() int
}

package group

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

type secpGroup struct {
	curveOrder *big.Int
	name       string
}

type secpPoint struct {
	curve *secpGroup
	val   secp256k1.JacobianPoint
}

func (g *secpGroup) Name() string {
	return g.name
}

func (g *secpGroup) N() *big.Int {
	return g.curveOrder
}

func (g *secpGroup) ElementSize() int {
	return 64
}

func (g *secpGroup) ScalarSize() int {
	return 32
}

func (g *secpGroup) Element() Element {
	return &secpPoint{curve: g}
}

func (g *secpGroup) Identity() Element {
	// The zero Jacobian point (Z = 0) is the point at infinity.
	return &secpPoint{curve: g}
}

func (g *secpGroup) Generator() Element {
	e := &secpPoint{curve: g}
	var one secp256k1.ModNScalar
	one.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(&one, &e.val)
	return e
}

// modScalar reduces s modulo the group order and converts it to the
// library's scalar type.
func (g *secpGroup) modScalar(s *big.Int) *secp256k1.ModNScalar {
	var k secp256k1.ModNScalar
	var buf [32]byte
	new(big.Int).Mod(s, g.curveOrder).FillBytes(buf[:])
	k.SetBytes(&buf)
	return &k
}

func (e *secpPoint) check(a Element) *secpPoint {
	ea, ok := a.(*secpPoint)
	if !ok {
		panic("incompatible group element type")
	}
	return ea
}

func (e *secpPoint) Add(a, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&ca.val, &cb.val, &r)
	e.val = r
	return e
}

func (e *secpPoint) Subtract(a, b Element) Element {
	tmp := e.curve.Element()
	tmp.Negate(b)
	return e.Add(a, tmp)
}

func (e *secpPoint) Negate(a Element) Element {
	ca := e.check(a)
	e.val.Set(&ca.val)
	e.val.Y.Normalize()
	e.val.Y.Negate(1)
	e.val.Y.Normalize()
	return e
}

func (e *secpPoint) Scale(x Element, s *big.Int) Element {
	cx := e.check(x)
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(e.curve.modScalar(s), &cx.val, &r)
	e.val = r
	return e
}

func (e *secpPoint) BaseScale(s *big.Int) Element {
	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(e.curve.modScalar(s), &r)
	e.val = r
	return e
}

func (e *secpPoint) Set(x Element) Element {
	cx := e.check(x)
	e.val.Set(&cx.val)
	return e
}

func (e *secpPoint) IsEqual(b Element) bool {
	cb := e.check(b)
	p, q := e.val, cb.val
	p.ToAffine()
	q.ToAffine()
	return p.X.Equals(&q.X) && p.Y.Equals(&q.Y)
}

func (e *secpPoint) IsIdentity() bool {
	p := e.val
	p.ToAffine()
	return p.X.IsZero() && p.Y.IsZero()
}

// MarshalBinary encodes the point as x ‖ y with both affine coordinates as
// 32-byte big-endian values. The identity encodes as 64 zero bytes.
func (e *secpPoint) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 64)
	p := e.val
	p.ToAffine()
	if p.X.IsZero() && p.Y.IsZero() {
		return buf, nil
	}
	var xb, yb [32]byte
	p.X.PutBytes(&xb)
	p.Y.PutBytes(&yb)
	copy(buf[:32], xb[:])
	copy(buf[32:], yb[:])
	return buf, nil
}

func (e *secpPoint) UnmarshalBinary(data []byte) error {
	if len(data) != 64 {
		return fmt.Errorf("secp256k1: element encoding is %d bytes, want 64", len(data))
	}
	if allZero(data) {
		e.val = secp256k1.JacobianPoint{}
		return nil
	}

	var x, y secp256k1.FieldVal
	if x.SetByteSlice(data[:32]) {
		return fmt.Errorf("secp256k1: x coordinate not reduced")
	}
	if y.SetByteSlice(data[32:]) {
		return fmt.Errorf("secp256k1: y coordinate not reduced")
	}

	// Recompute y from x with matching parity: the encodings match exactly
	// when (x, y) lies on the curve.
	var yCheck secp256k1.FieldVal
	if !secp256k1.DecompressY(&x, y.IsOdd(), &yCheck) {
		return fmt.Errorf("secp256k1: point is not on the curve")
	}
	yCheck.Normalize()
	if !yCheck.Equals(&y) {
		return fmt.Errorf("secp256k1: point is not on the curve")
	}

	e.val.X.Set(&x)
	e.val.Y.Set(&y)
	e.val.Z.SetInt(1)
	return nil
}

func (e *secpPoint) String() string {
	b, _ := e.MarshalBinary()
	return fmt.Sprintf("%x", b)
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// Secp256k1 returns the secp256k1 group with 64-byte uncompressed element
// encodings. It is the default election group.
func Secp256k1() Group {
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	G := new(secpGroup)
	G.curveOrder = n
	G.name = "secp256k1"
	return G
}

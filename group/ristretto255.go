package group

import (
	"fmt"
	"math/big"

	"github.com/cloudflare/circl/group"
)

type r255Group struct {
	curveOrder *big.Int
	name       string
}

type r255Point struct {
	curve *r255Group
	val   group.Element
}

func (g *r255Group) Name() string {
	return g.name
}

func (g *r255Group) N() *big.Int {
	return g.curveOrder
}

func (g *r255Group) ElementSize() int {
	return 32
}

func (g *r255Group) ScalarSize() int {
	return 32
}

func (g *r255Group) Element() Element {
	return &r255Point{
		curve: g,
		val:   group.Ristretto255.Identity(),
	}
}

func (g *r255Group) Generator() Element {
	return &r255Point{
		curve: g,
		val:   group.Ristretto255.Generator(),
	}
}

func (g *r255Group) Identity() Element {
	return &r255Point{
		curve: g,
		val:   group.Ristretto255.Identity(),
	}
}

func (g *r255Group) scalar(s *big.Int) group.Scalar {
	reduced := new(big.Int).Mod(s, g.curveOrder)
	return group.Ristretto255.NewScalar().SetBigInt(reduced)
}

func (e *r255Point) check(a Element) *r255Point {
	ea, ok := a.(*r255Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ea
}

func (e *r255Point) Add(a, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = group.Ristretto255.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *r255Point) Subtract(a, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	return e.Add(a, tmp)
}

func (e *r255Point) Negate(a Element) Element {
	ca := e.check(a)
	e.val = group.Ristretto255.NewElement().Neg(ca.val)
	return e
}

func (e *r255Point) Scale(x Element, s *big.Int) Element {
	cx := e.check(x)
	e.val = group.Ristretto255.NewElement().Mul(cx.val, e.curve.scalar(s))
	return e
}

func (e *r255Point) BaseScale(s *big.Int) Element {
	e.val = group.Ristretto255.NewElement().MulGen(e.curve.scalar(s))
	return e
}

func (e *r255Point) Set(x Element) Element {
	cx := e.check(x)
	e.val = group.Ristretto255.NewElement().Set(cx.val)
	return e
}

func (e *r255Point) IsEqual(b Element) bool {
	cb := e.check(b)
	return e.val.IsEqual(cb.val)
}

func (e *r255Point) IsIdentity() bool {
	return e.val.IsIdentity()
}

func (e *r255Point) MarshalBinary() ([]byte, error) {
	return e.val.MarshalBinary()
}

func (e *r255Point) UnmarshalBinary(data []byte) error {
	if len(data) != e.curve.ElementSize() {
		return fmt.Errorf("ristretto255: element encoding is %d bytes, want %d", len(data), e.curve.ElementSize())
	}
	el := group.Ristretto255.NewElement()
	if err := el.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("ristretto255: %w", err)
	}
	e.val = el
	return nil
}

func (e *r255Point) String() string {
	b, _ := e.MarshalBinary()
	return fmt.Sprintf("%x", b)
}

// Ristretto255 returns the ristretto255 group with 32-byte canonical
// element encodings.
func Ristretto255() Group {
	n, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

	G := new(r255Group)
	G.curveOrder = n
	G.name = "ristretto255"
	return G
}

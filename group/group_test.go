package group

import (
	"crypto/rand"
	"math/big"
	"testing"
)

var allGroups = []Group{
	Secp256k1(),
	Ristretto255(),
}

func randomElement(t *testing.T, g Group) Element {
	t.Helper()
	s, err := RandomScalar(rand.Reader, g)
	if err != nil {
		t.Fatal(err)
	}
	return g.Element().BaseScale(s)
}

func TestGroup(t *testing.T) {
	const testTimes = 1 << 5
	for _, g := range allGroups {
		n := g.Name()
		t.Run(n+"/Neg", func(tt *testing.T) { testNeg(tt, testTimes, g) })
		t.Run(n+"/Order", func(tt *testing.T) { testOrder(tt, testTimes, g) })
		t.Run(n+"/Set", func(tt *testing.T) { testSet(tt, g) })
		t.Run(n+"/MarshalBinary", func(tt *testing.T) { testMarshalBinary(tt, testTimes, g) })
		t.Run(n+"/ScalarWidth", func(tt *testing.T) { testScalarWidth(tt, g) })
	}
}

func testNeg(t *testing.T, testTimes int, g Group) {
	Q := g.Element()
	for i := 0; i < testTimes; i++ {
		P := randomElement(t, g)
		Q.Set(P)
		Q.Subtract(Q, P)
		if !Q.IsIdentity() {
			t.Error("testNeg | Got:", false, "Wanted:", true)
		}
	}
}

func testOrder(t *testing.T, testTimes int, g Group) {
	I := g.Identity()
	Q := g.Element()
	minusOne := big.NewInt(-1)
	for i := 0; i < testTimes; i++ {
		P := randomElement(t, g)

		Q.Scale(P, minusOne)
		got := Q.Add(Q, P)
		if !got.IsEqual(I) {
			t.Error("testOrder | Got:", got, "Wanted:", I)
		}
	}
}

func testSet(t *testing.T, g Group) {
	P := randomElement(t, g)
	Q := g.Element()
	Q.Set(P)
	if !Q.IsEqual(P) {
		t.Error("testSet | Got:", false, "Wanted:", true)
	}
}

func testMarshalBinary(t *testing.T, testTimes int, g Group) {
	I := g.Identity()
	got, err := I.MarshalBinary()
	if err != nil {
		t.Error("testMarshalBinary | I:", I)
	}
	if len(got) != g.ElementSize() {
		t.Error("testMarshalBinary | identity size:", len(got), "Wanted:", g.ElementSize())
	}

	II := g.Element()
	err = II.UnmarshalBinary(got)
	if err != nil || !I.IsEqual(II) {
		t.Error("testMarshalBinary | I:", I, "II:", II)
	}

	gotEl := g.Element()
	for i := 0; i < testTimes; i++ {
		x := randomElement(t, g)
		enc, err := x.MarshalBinary()
		if err != nil {
			t.Error(err)
		}
		if len(enc) != g.ElementSize() {
			t.Error("testMarshalBinary | size:", len(enc), "Wanted:", g.ElementSize())
		}

		if err = gotEl.UnmarshalBinary(enc); err != nil {
			t.Error(err)
			continue
		}
		if !x.IsEqual(gotEl) {
			t.Error("testMarshalBinary | Got:", gotEl, "Wanted:", x)
		}
	}

	if err = gotEl.UnmarshalBinary(make([]byte, g.ElementSize()+1)); err == nil {
		t.Error("testMarshalBinary | accepted wrong-length encoding")
	}
}

func testScalarWidth(t *testing.T, g Group) {
	s, err := RandomScalar(rand.Reader, g)
	if err != nil {
		t.Fatal(err)
	}
	enc := ScalarBytes(g, s)
	if len(enc) != g.ScalarSize() {
		t.Error("testScalarWidth | size:", len(enc), "Wanted:", g.ScalarSize())
	}

	back, err := ParseScalar(g, enc)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cmp(s) != 0 {
		t.Error("testScalarWidth | Got:", back, "Wanted:", s)
	}

	if _, err = ParseScalar(g, enc[1:]); err == nil {
		t.Error("testScalarWidth | accepted wrong-length encoding")
	}
}

func TestMath(t *testing.T) {
	for _, g := range allGroups {
		a := g.Element().BaseScale(big.NewInt(2))
		b := g.Element().Add(g.Generator(), g.Generator())
		if !a.IsEqual(b) {
			t.Error("doubling error")
		}

		a = g.Element().Add(a, g.Generator())
		b = g.Element().BaseScale(big.NewInt(3))
		if !a.IsEqual(b) {
			t.Error("error in adding or scaling")
		}

		e := g.Identity()
		r1 := randomElement(t, g)
		r2 := randomElement(t, g)
		e.Add(r1, r2)
		e.Subtract(e, r2)
		if !e.IsEqual(r1) {
			t.Error("error in subtracting")
		}
	}
}

func TestOffCurveRejected(t *testing.T) {
	g := Secp256k1()
	bad := make([]byte, g.ElementSize())
	bad[31] = 1 // x = 1, y = 0 is not on the curve
	if err := g.Element().UnmarshalBinary(bad); err == nil {
		t.Error("accepted an off-curve encoding")
	}
}

package jtk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/GeoZHR/jtk/internal/arrayops"
)

func newLagSet3D() *LagSet {
	return NewLagSet3(
		[]int{0, 1, -1, 0},
		[]int{0, 0, 1, 0},
		[]int{0, 0, 0, 1},
		[]float32{1, 0.3, 0.2, 0.1},
	)
}

func TestApply3ImpulseResponse(t *testing.T) {
	l := newLagSet3D()
	n1, n2, n3 := 6, 6, 6
	x := arrayops.NewArray3(n1, n2, n3)
	x.Set(3, 3, 3, 1)
	y := arrayops.NewArray3(n1, n2, n3)
	l.Apply3(x, y)

	for j := 0; j < l.M(); j++ {
		i1, i2, i3 := 3+l.Lag1(j), 3+l.Lag2(j), 3+l.Lag3(j)
		got := y.At(i1, i2, i3)
		if !closeEnough(got, l.A(j), 1e-6) {
			t.Fatalf("y[%d][%d][%d] = %v, want %v", i1, i2, i3, got, l.A(j))
		}
	}
}

func TestApplyTranspose3Duality(t *testing.T) {
	l := newLagSet3D()
	rng := rand.New(rand.NewSource(11))
	n1, n2, n3 := 8, 8, 8
	x := arrayops.NewArray3(n1, n2, n3)
	z := arrayops.NewArray3(n1, n2, n3)
	for i := range x.Data {
		x.Data[i] = float32(rng.NormFloat64())
		z.Data[i] = float32(rng.NormFloat64())
	}

	ax := arrayops.NewArray3(n1, n2, n3)
	l.Apply3(x, ax)
	tz := arrayops.NewArray3(n1, n2, n3)
	l.ApplyTranspose3(z, tz)

	var lhs, rhs float64
	for i := range x.Data {
		lhs += float64(ax.Data[i]) * float64(z.Data[i])
		rhs += float64(x.Data[i]) * float64(tz.Data[i])
	}
	tol := 1e-4 * math.Max(math.Abs(lhs), math.Abs(rhs))
	if math.Abs(lhs-rhs) > tol+1e-6 {
		t.Fatalf("transpose duality violated: lhs=%v rhs=%v", lhs, rhs)
	}
}

func TestApplyInverse3InPlace(t *testing.T) {
	l := newLagSet3D()
	n1, n2, n3 := 5, 5, 5
	rng := rand.New(rand.NewSource(13))
	x := arrayops.NewArray3(n1, n2, n3)
	for i := range x.Data {
		x.Data[i] = float32(rng.NormFloat64())
	}

	want := arrayops.NewArray3(n1, n2, n3)
	l.ApplyInverse3(x, want)

	buf := arrayops.NewArray3(n1, n2, n3)
	copy(buf.Data, x.Data)
	l.ApplyInverse3(buf, buf)

	for i := range want.Data {
		if buf.Data[i] != want.Data[i] {
			t.Fatalf("in-place ApplyInverse3 mismatch at flat index %d", i)
		}
	}
}

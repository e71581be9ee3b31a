package jtk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/GeoZHR/jtk/internal/arrayops"
)

func newLagSetS3() *LagSet {
	return NewLagSet2(
		[]int{0, 1, -1, 0, 1},
		[]int{0, 0, 1, 1, 1},
		[]float32{1, 0.25, 0.1, 0.3, 0.15},
	)
}

// S3 - 2-D helical causality: impulse response lands exactly at each lag.
func TestApply2ImpulseResponse(t *testing.T) {
	l := newLagSetS3()
	x := arrayops.NewArray2(8, 8)
	x.Set(4, 4, 1)
	y := arrayops.NewArray2(8, 8)
	l.Apply2(x, y)

	expected := make(map[[2]int]float32)
	for j := 0; j < l.M(); j++ {
		expected[[2]int{4 + l.Lag1(j), 4 + l.Lag2(j)}] = l.A(j)
	}

	for i2 := 0; i2 < 8; i2++ {
		for i1 := 0; i1 < 8; i1++ {
			want := expected[[2]int{i1, i2}]
			got := y.At(i1, i2)
			if !closeEnough(got, want, 1e-6) {
				t.Fatalf("y[%d][%d] = %v, want %v", i1, i2, got, want)
			}
		}
	}
}

// S4 - transpose duality on a 16x16 random fixture.
func TestApplyTranspose2Duality(t *testing.T) {
	l := newLagSetS3()
	rng := rand.New(rand.NewSource(7))
	n1, n2 := 16, 16
	x := arrayops.NewArray2(n1, n2)
	z := arrayops.NewArray2(n1, n2)
	for i := range x.Data {
		x.Data[i] = float32(rng.NormFloat64())
		z.Data[i] = float32(rng.NormFloat64())
	}

	ax := arrayops.NewArray2(n1, n2)
	l.Apply2(x, ax)
	tz := arrayops.NewArray2(n1, n2)
	l.ApplyTranspose2(z, tz)

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

func TestApplyInverse2InPlace(t *testing.T) {
	l := newLagSetS3()
	n1, n2 := 10, 10
	rng := rand.New(rand.NewSource(3))
	x := arrayops.NewArray2(n1, n2)
	for i := range x.Data {
		x.Data[i] = float32(rng.NormFloat64())
	}

	want := arrayops.NewArray2(n1, n2)
	l.ApplyInverse2(x, want)

	buf := arrayops.NewArray2(n1, n2)
	copy(buf.Data, x.Data)
	l.ApplyInverse2(buf, buf)

	for i := range want.Data {
		if buf.Data[i] != want.Data[i] {
			t.Fatalf("in-place ApplyInverse2 mismatch at flat index %d", i)
		}
	}
}

func TestApplyTranspose2IgnoresHigherRankLags(t *testing.T) {
	l := NewLagSet3([]int{0, 1, 0}, []int{0, 0, 0}, []int{0, 0, 1}, []float32{1, 0.5, 0.25})
	n1, n2 := 6, 6
	x := arrayops.NewArray2(n1, n2)
	x.Set(3, 3, 1)
	y := arrayops.NewArray2(n1, n2)
	l.ApplyTranspose2(x, y)

	// Only the lag1=1,lag2=0 contribution is visible on a 2-D buffer; the
	// lag3=1 entry is silently ignored.
	want := map[[2]int]float32{{3, 3}: 1, {2, 3}: 0.5}
	for i2 := 0; i2 < n2; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			got := y.At(i1, i2)
			w := want[[2]int{i1, i2}]
			if !closeEnough(got, w, 1e-6) {
				t.Fatalf("y[%d][%d] = %v, want %v", i1, i2, got, w)
			}
		}
	}
}

package jtk

import (
	"testing"

	"github.com/GeoZHR/jtk/internal/arrayops"
)

func TestFilterApplyDispatchesByRank(t *testing.T) {
	f := NewFilter(NewLagSet1([]int{0, 1}, []float32{1, 0.5}))
	x := arrayops.NewArray1(5)
	x.Data[2] = 1
	y := arrayops.NewArray1(5)
	f.Apply(x, y)
	if y.Data[2] != 1 || y.Data[3] != 0.5 {
		t.Fatalf("unexpected output: %v", y.Data)
	}
}

func TestFilterApplyPanicsOnRankMismatch(t *testing.T) {
	f := NewFilter(newLagSetS3()) // 2-D filter
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic applying a 2-D filter's Apply to a 1-D buffer")
		}
	}()
	x := arrayops.NewArray1(5)
	y := arrayops.NewArray1(5)
	f.Apply(x, y)
}

func TestFilterApplyTransposeAllowsLowerRank(t *testing.T) {
	// ApplyTranspose silently ignores higher-dimension lags, so calling it
	// with a lower-rank buffer must not panic.
	f := NewFilter(newLagSetS3())
	x := arrayops.NewArray1(5)
	y := arrayops.NewArray1(5)
	f.ApplyTranspose(x, y)
}

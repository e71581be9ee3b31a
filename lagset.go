// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jtk implements boundary-correct multidimensional minimum-phase
// prediction-error filters and their Wilson-Burg spectral factorization.
package jtk

import "github.com/GeoZHR/jtk/internal/arrayops"

// LagSet describes the m sparse lags of a filter, ordered under
// Claerbout's helical causality rule, together with the per-lag
// coefficient. Entry 0 is always the zero lag. The lag geometry is fixed
// at construction; coefficients may be overwritten with SetA.
type LagSet struct {
	lag1, lag2, lag3 []int
	a                []float32

	min1, max1 int
	min2, max2 int
	min3, max3 int

	rank int
}

// NewLagSet1 constructs a 1-D LagSet from lag1 and coefficients a.
// a[0] must be nonzero and lag1[0] must be 0; every subsequent lag1[j]
// must be strictly positive. Violations panic: these are caller bugs,
// not recoverable at runtime.
func NewLagSet1(lag1 []int, a []float32) *LagSet {
	lag2 := make([]int, len(lag1))
	lag3 := make([]int, len(lag1))
	return newLagSet(lag1, lag2, lag3, a, 1)
}

// NewLagSet2 constructs a 2-D LagSet from lag1, lag2 and coefficients a.
func NewLagSet2(lag1, lag2 []int, a []float32) *LagSet {
	lag3 := make([]int, len(lag1))
	return newLagSet(lag1, lag2, lag3, a, 2)
}

// NewLagSet3 constructs a 3-D LagSet from lag1, lag2, lag3 and coefficients a.
func NewLagSet3(lag1, lag2, lag3 []int, a []float32) *LagSet {
	return newLagSet(lag1, lag2, lag3, a, 3)
}

// Impulse1 returns an impulse LagSet for the given 1-D lag geometry.
func Impulse1(lag1 []int) *LagSet {
	return NewLagSet1(lag1, Impulse(len(lag1)))
}

// Impulse2 returns an impulse LagSet for the given 2-D lag geometry.
func Impulse2(lag1, lag2 []int) *LagSet {
	return NewLagSet2(lag1, lag2, Impulse(len(lag1)))
}

// Impulse3 returns an impulse LagSet for the given 3-D lag geometry.
func Impulse3(lag1, lag2, lag3 []int) *LagSet {
	return NewLagSet3(lag1, lag2, lag3, Impulse(len(lag1)))
}

// Impulse returns a length-m coefficient vector with a[0]=1 and the rest
// zero — the conventional Wilson-Burg starting point: an identity filter
// whose coefficients the iteration then refines toward a spectral factor.
func Impulse(m int) []float32 {
	a := make([]float32, m)
	if m > 0 {
		a[0] = 1
	}
	return a
}

func newLagSet(lag1, lag2, lag3 []int, a []float32, rank int) *LagSet {
	m := len(lag1)
	if m == 0 {
		panic("jtk: empty lag set")
	}
	if len(lag2) != m || len(lag3) != m || len(a) != m {
		panic("jtk: mismatched lag/coefficient lengths")
	}
	if lag1[0] != 0 || lag2[0] != 0 || lag3[0] != 0 {
		panic("jtk: lag 0 must be the zero vector")
	}
	if a[0] == 0 {
		panic("jtk: a[0] must be nonzero")
	}
	for j := 1; j < m; j++ {
		if !causal(lag1[j], lag2[j], lag3[j]) {
			panic("jtk: lag violates helical causality")
		}
	}

	l := &LagSet{
		lag1: append([]int(nil), lag1...),
		lag2: append([]int(nil), lag2...),
		lag3: append([]int(nil), lag3...),
		a:    append([]float32(nil), a...),
		rank: rank,
	}
	l.min1, l.max1 = arrayops.MinInts(l.lag1), arrayops.MaxInts(l.lag1)
	l.min2, l.max2 = arrayops.MinInts(l.lag2), arrayops.MaxInts(l.lag2)
	l.min3, l.max3 = arrayops.MinInts(l.lag3), arrayops.MaxInts(l.lag3)
	return l
}

// causal reports whether (l1, l2, l3) lies in the causal half of the
// helical lag ordering: the lag3 coordinate dominates, then lag2, then
// lag1, matching Claerbout's helix convention for a non-zero-lag entry.
func causal(l1, l2, l3 int) bool {
	if l3 > 0 {
		return true
	}
	if l3 < 0 {
		return false
	}
	// l3 == 0
	if l2 > 0 {
		return true
	}
	if l2 < 0 {
		return false
	}
	// l3 == 0 && l2 == 0
	return l1 > 0
}

// M returns the number of lags.
func (l *LagSet) M() int { return len(l.a) }

// Rank returns the dimensionality (1, 2 or 3) the filter was constructed
// with. A filter may be constructed at a higher rank than the buffer it
// is later applied to; Apply/ApplyInverse reject such a buffer outright,
// while ApplyTranspose/ApplyInverseTranspose silently ignore the lags
// the buffer cannot represent.
func (l *LagSet) Rank() int { return l.rank }

// Lag1 returns the j-th lag along dimension 1.
func (l *LagSet) Lag1(j int) int { return l.lag1[j] }

// Lag2 returns the j-th lag along dimension 2.
func (l *LagSet) Lag2(j int) int { return l.lag2[j] }

// Lag3 returns the j-th lag along dimension 3.
func (l *LagSet) Lag3(j int) int { return l.lag3[j] }

// A returns the j-th coefficient.
func (l *LagSet) A(j int) float32 { return l.a[j] }

// SetA overwrites the j-th coefficient in place. Used by Wilson-Burg;
// the lag geometry is never touched.
func (l *LagSet) SetA(j int, v float32) { l.a[j] = v }

// A0 returns a[0].
func (l *LagSet) A0() float32 { return l.a[0] }

// A0Inv returns 1/a[0].
func (l *LagSet) A0Inv() float32 { return 1 / l.a[0] }

// Min1 returns min_j lag1[j].
func (l *LagSet) Min1() int { return l.min1 }

// Max1 returns max_j lag1[j].
func (l *LagSet) Max1() int { return l.max1 }

// Min2 returns min_j lag2[j].
func (l *LagSet) Min2() int { return l.min2 }

// Max2 returns max_j lag2[j].
func (l *LagSet) Max2() int { return l.max2 }

// Min3 returns min_j lag3[j].
func (l *LagSet) Min3() int { return l.min3 }

// Max3 returns max_j lag3[j].
func (l *LagSet) Max3() int { return l.max3 }

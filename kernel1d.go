// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk

import "github.com/GeoZHR/jtk/internal/asm/f32"

// Apply1 computes y = F(x) for 1-D buffers: y[i] = a0*x[i] + sum_j a[j]*x[i-lag1[j]],
// treating any out-of-range x access as zero.
//
// The interior loop is branch-free and accumulates one lag at a time with
// f32.AxpyUnitary over the shifted sub-slice, rather than a per-sample loop
// over j: since every interior y[i1] still receives the updates
// a0*x[i1], then +=a[1]*x[i1-lag1[1]], then +=a[2]*x[i1-lag1[2]], ... in
// that order, this preserves the same accumulation order a naive per-sample
// loop would produce, bit for bit, while letting the hot path run as a
// sequence of unit-stride AXPY passes instead of a gather per sample.
func (l *LagSet) Apply1(x, y []float32) {
	n1 := len(x)
	m := l.M()
	lo := subLo(l.max1, n1)
	hi := subHi(l.min1, n1)
	a0 := l.a[0]

	for i1 := 0; i1 < lo; i1++ {
		y[i1] = apply1At(l, x, i1, n1, a0, m)
	}
	if hi > lo {
		for i1 := lo; i1 < hi; i1++ {
			y[i1] = a0 * x[i1]
		}
		for j := 1; j < m; j++ {
			shift := l.lag1[j]
			f32.AxpyUnitary(l.a[j], x[lo-shift:hi-shift], y[lo:hi])
		}
	}
	for i1 := hi; i1 < n1; i1++ {
		y[i1] = apply1At(l, x, i1, n1, a0, m)
	}
}

func apply1At(l *LagSet, x []float32, i1, n1 int, a0 float32, m int) float32 {
	s := a0 * x[i1]
	for j := 1; j < m; j++ {
		k := i1 - l.lag1[j]
		if inRange1(k, n1) {
			s += l.a[j] * x[k]
		}
	}
	return s
}

// ApplyTranspose1 computes the exact transpose of Apply1: reverse scan,
// lags added instead of subtracted. Lags carrying a nonzero lag2 or lag3
// are silently ignored.
func (l *LagSet) ApplyTranspose1(x, y []float32) {
	n1 := len(x)
	m := l.M()
	lo := addLo(l.min1, n1)
	hi := addHi(l.max1, n1)
	a0 := l.a[0]

	for i1 := n1 - 1; i1 >= hi; i1-- {
		y[i1] = applyT1At(l, x, i1, n1, a0, m)
	}
	if hi > lo {
		// Accumulation order within the interior does not depend on the
		// direction i1 is visited in, since ApplyTranspose1 is not
		// recursive (unlike ApplyInverseTranspose1 below); per-i1 the
		// a0 term then a[1], a[2], ... order is preserved exactly as in
		// Apply1, so the same AxpyUnitary-per-lag strategy applies here.
		for i1 := lo; i1 < hi; i1++ {
			y[i1] = a0 * x[i1]
		}
		for j := 1; j < m; j++ {
			if l.lag2[j] != 0 || l.lag3[j] != 0 {
				continue
			}
			shift := l.lag1[j]
			f32.AxpyUnitary(l.a[j], x[lo+shift:hi+shift], y[lo:hi])
		}
	}
	for i1 := lo - 1; i1 >= 0; i1-- {
		y[i1] = applyT1At(l, x, i1, n1, a0, m)
	}
}

func applyT1At(l *LagSet, x []float32, i1, n1 int, a0 float32, m int) float32 {
	s := a0 * x[i1]
	for j := 1; j < m; j++ {
		if l.lag2[j] != 0 || l.lag3[j] != 0 {
			continue
		}
		k := i1 + l.lag1[j]
		if inRange1(k, n1) {
			s += l.a[j] * x[k]
		}
	}
	return s
}

// ApplyInverse1 computes y = F^-1(x): forward recursive sweep, y[i] depends
// on already-written y[i-lag1[j]]. Safe to call with y aliasing x.
func (l *LagSet) ApplyInverse1(x, y []float32) {
	n1 := len(x)
	m := l.M()
	lo := subLo(l.max1, n1)
	hi := subHi(l.min1, n1)
	a0i := l.A0Inv()

	for i1 := 0; i1 < lo; i1++ {
		y[i1] = applyInv1At(l, x, y, i1, n1, a0i, m)
	}
	for i1 := lo; i1 < hi; i1++ {
		s := x[i1]
		for j := 1; j < m; j++ {
			s -= l.a[j] * y[i1-l.lag1[j]]
		}
		y[i1] = a0i * s
	}
	for i1 := hi; i1 < n1; i1++ {
		y[i1] = applyInv1At(l, x, y, i1, n1, a0i, m)
	}
}

func applyInv1At(l *LagSet, x, y []float32, i1, n1 int, a0i float32, m int) float32 {
	s := x[i1]
	for j := 1; j < m; j++ {
		k := i1 - l.lag1[j]
		if inRange1(k, n1) {
			s -= l.a[j] * y[k]
		}
	}
	return a0i * s
}

// ApplyInverseTranspose1 computes y = F^-T(x): reverse recursive sweep.
// Lags carrying a nonzero lag2 or lag3 are ignored. Safe to call with y
// aliasing x.
func (l *LagSet) ApplyInverseTranspose1(x, y []float32) {
	n1 := len(x)
	m := l.M()
	lo := addLo(l.min1, n1)
	hi := addHi(l.max1, n1)
	a0i := l.A0Inv()

	for i1 := n1 - 1; i1 >= hi; i1-- {
		y[i1] = applyInvT1At(l, x, y, i1, n1, a0i, m)
	}
	for i1 := hi - 1; i1 >= lo; i1-- {
		s := x[i1]
		for j := 1; j < m; j++ {
			if l.lag2[j] != 0 || l.lag3[j] != 0 {
				continue
			}
			s -= l.a[j] * y[i1+l.lag1[j]]
		}
		y[i1] = a0i * s
	}
	for i1 := lo - 1; i1 >= 0; i1-- {
		y[i1] = applyInvT1At(l, x, y, i1, n1, a0i, m)
	}
}

func applyInvT1At(l *LagSet, x, y []float32, i1, n1 int, a0i float32, m int) float32 {
	s := x[i1]
	for j := 1; j < m; j++ {
		if l.lag2[j] != 0 || l.lag3[j] != 0 {
			continue
		}
		k := i1 + l.lag1[j]
		if inRange1(k, n1) {
			s -= l.a[j] * y[k]
		}
	}
	return a0i * s
}

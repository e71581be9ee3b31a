// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk

import (
	"github.com/GeoZHR/jtk/internal/arrayops"
	"github.com/GeoZHR/jtk/internal/asm/f32"
)

// Apply2 computes y = F(x) for 2-D buffers laid out row-major with i1
// fastest-varying (n1 x n2).
//
// On an interior row, each lag's contribution is one f32.AxpyUnitary call
// over the shifted row (lag2 selects the source row, lag1 the shift within
// it), in the same a0, a[1], a[2], ... accumulation order as the
// unoptimized per-sample loop, for the same reason as Apply1.
func (l *LagSet) Apply2(x *arrayops.Array2, y *arrayops.Array2) {
	n1, n2 := x.N1, x.N2
	m := l.M()
	i1lo, i1hi := subLo(l.max1, n1), subHi(l.min1, n1)
	i2lo, i2hi := subLo(l.max2, n2), subHi(l.min2, n2)
	a0 := l.a[0]

	for i2 := 0; i2 < n2; i2++ {
		rowInterior := i2 >= i2lo && i2 < i2hi
		row := x.Row(i2)
		out := y.Row(i2)
		if rowInterior {
			for i1 := 0; i1 < i1lo; i1++ {
				out[i1] = apply2At(l, x, i1, i2, n1, n2, a0, m)
			}
			if i1hi > i1lo {
				for i1 := i1lo; i1 < i1hi; i1++ {
					out[i1] = a0 * row[i1]
				}
				for j := 1; j < m; j++ {
					srcRow := x.Row(i2 - l.lag2[j])
					shift := l.lag1[j]
					f32.AxpyUnitary(l.a[j], srcRow[i1lo-shift:i1hi-shift], out[i1lo:i1hi])
				}
			}
			for i1 := i1hi; i1 < n1; i1++ {
				out[i1] = apply2At(l, x, i1, i2, n1, n2, a0, m)
			}
		} else {
			for i1 := 0; i1 < n1; i1++ {
				out[i1] = apply2At(l, x, i1, i2, n1, n2, a0, m)
			}
		}
	}
}

func apply2At(l *LagSet, x *arrayops.Array2, i1, i2, n1, n2 int, a0 float32, m int) float32 {
	s := a0 * x.At(i1, i2)
	for j := 1; j < m; j++ {
		k1, k2 := i1-l.lag1[j], i2-l.lag2[j]
		if inRange1(k1, n1) && inRange1(k2, n2) {
			s += l.a[j] * x.At(k1, k2)
		}
	}
	return s
}

// ApplyTranspose2 is the exact transpose of Apply2: reverse row-major scan,
// lags added instead of subtracted. Lags carrying a nonzero lag3 are
// silently ignored, so a filter built for 3-D geometry still applies
// sensibly to a 2-D buffer.
func (l *LagSet) ApplyTranspose2(x *arrayops.Array2, y *arrayops.Array2) {
	n1, n2 := x.N1, x.N2
	m := l.M()
	i1lo, i1hi := addLo(l.min1, n1), addHi(l.max1, n1)
	i2lo, i2hi := addLo(l.min2, n2), addHi(l.max2, n2)
	a0 := l.a[0]

	for i2 := n2 - 1; i2 >= 0; i2-- {
		rowInterior := i2 >= i2lo && i2 < i2hi
		row := x.Row(i2)
		out := y.Row(i2)
		if rowInterior {
			for i1 := n1 - 1; i1 >= i1hi; i1-- {
				out[i1] = applyT2At(l, x, i1, i2, n1, n2, a0, m)
			}
			if i1hi > i1lo {
				for i1 := i1lo; i1 < i1hi; i1++ {
					out[i1] = a0 * row[i1]
				}
				for j := 1; j < m; j++ {
					if l.lag3[j] != 0 {
						continue
					}
					srcRow := x.Row(i2 + l.lag2[j])
					shift := l.lag1[j]
					f32.AxpyUnitary(l.a[j], srcRow[i1lo+shift:i1hi+shift], out[i1lo:i1hi])
				}
			}
			for i1 := i1lo - 1; i1 >= 0; i1-- {
				out[i1] = applyT2At(l, x, i1, i2, n1, n2, a0, m)
			}
		} else {
			for i1 := n1 - 1; i1 >= 0; i1-- {
				out[i1] = applyT2At(l, x, i1, i2, n1, n2, a0, m)
			}
		}
	}
}

func applyT2At(l *LagSet, x *arrayops.Array2, i1, i2, n1, n2 int, a0 float32, m int) float32 {
	s := a0 * x.At(i1, i2)
	for j := 1; j < m; j++ {
		if l.lag3[j] != 0 {
			continue
		}
		k1, k2 := i1+l.lag1[j], i2+l.lag2[j]
		if inRange1(k1, n1) && inRange1(k2, n2) {
			s += l.a[j] * x.At(k1, k2)
		}
	}
	return s
}

// ApplyInverse2 computes y = F^-1(x), recursive forward row-major scan.
// Safe to call with y aliasing x.
func (l *LagSet) ApplyInverse2(x *arrayops.Array2, y *arrayops.Array2) {
	n1, n2 := x.N1, x.N2
	m := l.M()
	i1lo, i1hi := subLo(l.max1, n1), subHi(l.min1, n1)
	i2lo, i2hi := subLo(l.max2, n2), subHi(l.min2, n2)
	a0i := l.A0Inv()

	for i2 := 0; i2 < n2; i2++ {
		rowInterior := i2 >= i2lo && i2 < i2hi
		for i1 := 0; i1 < n1; i1++ {
			if rowInterior && i1 >= i1lo && i1 < i1hi {
				s := x.At(i1, i2)
				for j := 1; j < m; j++ {
					s -= l.a[j] * y.At(i1-l.lag1[j], i2-l.lag2[j])
				}
				y.Set(i1, i2, a0i*s)
				continue
			}
			s := x.At(i1, i2)
			for j := 1; j < m; j++ {
				k1, k2 := i1-l.lag1[j], i2-l.lag2[j]
				if inRange1(k1, n1) && inRange1(k2, n2) {
					s -= l.a[j] * y.At(k1, k2)
				}
			}
			y.Set(i1, i2, a0i*s)
		}
	}
}

// ApplyInverseTranspose2 computes y = F^-T(x), recursive reverse row-major
// scan. Lags carrying a nonzero lag3 are ignored. Safe to call with y
// aliasing x.
func (l *LagSet) ApplyInverseTranspose2(x *arrayops.Array2, y *arrayops.Array2) {
	n1, n2 := x.N1, x.N2
	m := l.M()
	i1lo, i1hi := addLo(l.min1, n1), addHi(l.max1, n1)
	i2lo, i2hi := addLo(l.min2, n2), addHi(l.max2, n2)
	a0i := l.A0Inv()

	for i2 := n2 - 1; i2 >= 0; i2-- {
		rowInterior := i2 >= i2lo && i2 < i2hi
		for i1 := n1 - 1; i1 >= 0; i1-- {
			if rowInterior && i1 >= i1lo && i1 < i1hi {
				s := x.At(i1, i2)
				for j := 1; j < m; j++ {
					if l.lag3[j] != 0 {
						continue
					}
					s -= l.a[j] * y.At(i1+l.lag1[j], i2+l.lag2[j])
				}
				y.Set(i1, i2, a0i*s)
				continue
			}
			s := x.At(i1, i2)
			for j := 1; j < m; j++ {
				if l.lag3[j] != 0 {
					continue
				}
				k1, k2 := i1+l.lag1[j], i2+l.lag2[j]
				if inRange1(k1, n1) && inRange1(k2, n2) {
					s -= l.a[j] * y.At(k1, k2)
				}
			}
			y.Set(i1, i2, a0i*s)
		}
	}
}

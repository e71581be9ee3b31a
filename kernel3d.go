// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk

import "github.com/GeoZHR/jtk/internal/arrayops"

// Apply3 computes y = F(x) for 3-D buffers laid out row-major with i1
// fastest-varying.
func (l *LagSet) Apply3(x *arrayops.Array3, y *arrayops.Array3) {
	n1, n2, n3 := x.N1, x.N2, x.N3
	m := l.M()
	i1lo, i1hi := subLo(l.max1, n1), subHi(l.min1, n1)
	i2lo, i2hi := subLo(l.max2, n2), subHi(l.min2, n2)
	i3lo, i3hi := subLo(l.max3, n3), subHi(l.min3, n3)
	a0 := l.a[0]

	for i3 := 0; i3 < n3; i3++ {
		plane := i3 >= i3lo && i3 < i3hi
		for i2 := 0; i2 < n2; i2++ {
			rowInterior := plane && i2 >= i2lo && i2 < i2hi
			for i1 := 0; i1 < n1; i1++ {
				if rowInterior && i1 >= i1lo && i1 < i1hi {
					s := a0 * x.At(i1, i2, i3)
					for j := 1; j < m; j++ {
						s += l.a[j] * x.At(i1-l.lag1[j], i2-l.lag2[j], i3-l.lag3[j])
					}
					y.Set(i1, i2, i3, s)
					continue
				}
				s := a0 * x.At(i1, i2, i3)
				for j := 1; j < m; j++ {
					k1, k2, k3 := i1-l.lag1[j], i2-l.lag2[j], i3-l.lag3[j]
					if inRange1(k1, n1) && inRange1(k2, n2) && inRange1(k3, n3) {
						s += l.a[j] * x.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, s)
			}
		}
	}
}

// ApplyTranspose3 is the exact transpose of Apply3: reverse row-major scan,
// lags added instead of subtracted.
func (l *LagSet) ApplyTranspose3(x *arrayops.Array3, y *arrayops.Array3) {
	n1, n2, n3 := x.N1, x.N2, x.N3
	m := l.M()
	i1lo, i1hi := addLo(l.min1, n1), addHi(l.max1, n1)
	i2lo, i2hi := addLo(l.min2, n2), addHi(l.max2, n2)
	i3lo, i3hi := addLo(l.min3, n3), addHi(l.max3, n3)
	a0 := l.a[0]

	for i3 := n3 - 1; i3 >= 0; i3-- {
		plane := i3 >= i3lo && i3 < i3hi
		for i2 := n2 - 1; i2 >= 0; i2-- {
			rowInterior := plane && i2 >= i2lo && i2 < i2hi
			for i1 := n1 - 1; i1 >= 0; i1-- {
				if rowInterior && i1 >= i1lo && i1 < i1hi {
					s := a0 * x.At(i1, i2, i3)
					for j := 1; j < m; j++ {
						s += l.a[j] * x.At(i1+l.lag1[j], i2+l.lag2[j], i3+l.lag3[j])
					}
					y.Set(i1, i2, i3, s)
					continue
				}
				s := a0 * x.At(i1, i2, i3)
				for j := 1; j < m; j++ {
					k1, k2, k3 := i1+l.lag1[j], i2+l.lag2[j], i3+l.lag3[j]
					if inRange1(k1, n1) && inRange1(k2, n2) && inRange1(k3, n3) {
						s += l.a[j] * x.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, s)
			}
		}
	}
}

// ApplyInverse3 computes y = F^-1(x), recursive forward row-major scan.
// Safe to call with y aliasing x.
func (l *LagSet) ApplyInverse3(x *arrayops.Array3, y *arrayops.Array3) {
	n1, n2, n3 := x.N1, x.N2, x.N3
	m := l.M()
	i1lo, i1hi := subLo(l.max1, n1), subHi(l.min1, n1)
	i2lo, i2hi := subLo(l.max2, n2), subHi(l.min2, n2)
	i3lo, i3hi := subLo(l.max3, n3), subHi(l.min3, n3)
	a0i := l.A0Inv()

	for i3 := 0; i3 < n3; i3++ {
		plane := i3 >= i3lo && i3 < i3hi
		for i2 := 0; i2 < n2; i2++ {
			rowInterior := plane && i2 >= i2lo && i2 < i2hi
			for i1 := 0; i1 < n1; i1++ {
				if rowInterior && i1 >= i1lo && i1 < i1hi {
					s := x.At(i1, i2, i3)
					for j := 1; j < m; j++ {
						s -= l.a[j] * y.At(i1-l.lag1[j], i2-l.lag2[j], i3-l.lag3[j])
					}
					y.Set(i1, i2, i3, a0i*s)
					continue
				}
				s := x.At(i1, i2, i3)
				for j := 1; j < m; j++ {
					k1, k2, k3 := i1-l.lag1[j], i2-l.lag2[j], i3-l.lag3[j]
					if inRange1(k1, n1) && inRange1(k2, n2) && inRange1(k3, n3) {
						s -= l.a[j] * y.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, a0i*s)
			}
		}
	}
}

// ApplyInverseTranspose3 computes y = F^-T(x), recursive reverse row-major
// scan. Safe to call with y aliasing x.
func (l *LagSet) ApplyInverseTranspose3(x *arrayops.Array3, y *arrayops.Array3) {
	n1, n2, n3 := x.N1, x.N2, x.N3
	m := l.M()
	i1lo, i1hi := addLo(l.min1, n1), addHi(l.max1, n1)
	i2lo, i2hi := addLo(l.min2, n2), addHi(l.max2, n2)
	i3lo, i3hi := addLo(l.min3, n3), addHi(l.max3, n3)
	a0i := l.A0Inv()

	for i3 := n3 - 1; i3 >= 0; i3-- {
		plane := i3 >= i3lo && i3 < i3hi
		for i2 := n2 - 1; i2 >= 0; i2-- {
			rowInterior := plane && i2 >= i2lo && i2 < i2hi
			for i1 := n1 - 1; i1 >= 0; i1-- {
				if rowInterior && i1 >= i1lo && i1 < i1hi {
					s := x.At(i1, i2, i3)
					for j := 1; j < m; j++ {
						s -= l.a[j] * y.At(i1+l.lag1[j], i2+l.lag2[j], i3+l.lag3[j])
					}
					y.Set(i1, i2, i3, a0i*s)
					continue
				}
				s := x.At(i1, i2, i3)
				for j := 1; j < m; j++ {
					k1, k2, k3 := i1+l.lag1[j], i2+l.lag2[j], i3+l.lag3[j]
					if inRange1(k1, n1) && inRange1(k2, n2) && inRange1(k3, n3) {
						s -= l.a[j] * y.At(k1, k2, k3)
					}
				}
				y.Set(i1, i2, i3, a0i*s)
			}
		}
	}
}

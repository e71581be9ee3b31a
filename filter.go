// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk

import "github.com/GeoZHR/jtk/internal/arrayops"

// Filter is a minimum-phase prediction-error filter: a fixed sparse lag
// geometry (LagSet) together with the four boundary-correct application
// operators. A Filter does not own the user data buffers passed to Apply,
// ApplyTranspose, ApplyInverse and ApplyInverseTranspose.
type Filter struct {
	Lags *LagSet
}

// NewFilter wraps lags in a Filter. lags must already be a validly
// constructed LagSet (NewLagSet1/2/3 panics on invalid geometry).
func NewFilter(lags *LagSet) *Filter {
	return &Filter{Lags: lags}
}

// Apply computes y = F(x). x and y must be the same concrete buffer type
// (*arrayops.Array1, *arrayops.Array2 or *arrayops.Array3) and same shape;
// x and y may not alias. The buffer rank may not be lower than the
// filter's rank: Apply honors every stored lag, so a narrower buffer
// would silently drop lag contributions rather than reject them, which
// is treated as a programmer error and panics instead.
func (f *Filter) Apply(x, y interface{}) {
	switch xb := x.(type) {
	case *arrayops.Array1:
		f.requireRank(1)
		f.Lags.Apply1(xb.Data, y.(*arrayops.Array1).Data)
	case *arrayops.Array2:
		f.requireRank(2)
		f.Lags.Apply2(xb, y.(*arrayops.Array2))
	case *arrayops.Array3:
		f.requireRank(3)
		f.Lags.Apply3(xb, y.(*arrayops.Array3))
	default:
		panic("jtk: unsupported buffer type")
	}
}

// ApplyTranspose computes y = F^T(x). Lags carrying coordinates beyond the
// buffer's rank are silently ignored, so a filter built for a higher rank
// still applies to a lower-rank buffer.
func (f *Filter) ApplyTranspose(x, y interface{}) {
	switch xb := x.(type) {
	case *arrayops.Array1:
		f.Lags.ApplyTranspose1(xb.Data, y.(*arrayops.Array1).Data)
	case *arrayops.Array2:
		f.Lags.ApplyTranspose2(xb, y.(*arrayops.Array2))
	case *arrayops.Array3:
		f.Lags.ApplyTranspose3(xb, y.(*arrayops.Array3))
	default:
		panic("jtk: unsupported buffer type")
	}
}

// ApplyInverse computes y = F^-1(x). y may alias x.
func (f *Filter) ApplyInverse(x, y interface{}) {
	switch xb := x.(type) {
	case *arrayops.Array1:
		f.requireRank(1)
		f.Lags.ApplyInverse1(xb.Data, y.(*arrayops.Array1).Data)
	case *arrayops.Array2:
		f.requireRank(2)
		f.Lags.ApplyInverse2(xb, y.(*arrayops.Array2))
	case *arrayops.Array3:
		f.requireRank(3)
		f.Lags.ApplyInverse3(xb, y.(*arrayops.Array3))
	default:
		panic("jtk: unsupported buffer type")
	}
}

// ApplyInverseTranspose computes y = F^-T(x). y may alias x. Lags beyond
// the buffer's rank are silently ignored.
func (f *Filter) ApplyInverseTranspose(x, y interface{}) {
	switch xb := x.(type) {
	case *arrayops.Array1:
		f.Lags.ApplyInverseTranspose1(xb.Data, y.(*arrayops.Array1).Data)
	case *arrayops.Array2:
		f.Lags.ApplyInverseTranspose2(xb, y.(*arrayops.Array2))
	case *arrayops.Array3:
		f.Lags.ApplyInverseTranspose3(xb, y.(*arrayops.Array3))
	default:
		panic("jtk: unsupported buffer type")
	}
}

func (f *Filter) requireRank(bufRank int) {
	if bufRank < f.Lags.Rank() {
		panic("jtk: buffer rank lower than filter rank for a non-ignoring operator")
	}
}

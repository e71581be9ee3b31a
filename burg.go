// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk

import (
	"math"

	"github.com/GeoZHR/jtk/internal/arrayops"
)

// BurgOptions configures BurgFactorize, mirroring the MaxIterations/
// Tolerance split of an iterative linear solver's settings struct.
type BurgOptions struct {
	// MaxIter bounds the number of fixed-point iterations. Must be >= 1.
	MaxIter int

	// Epsilon is the convergence tolerance: iteration stops once, for
	// every lag j, (a[j]-candidate)^2 <= S[center]*Epsilon. Must be > 0.
	Epsilon float32

	// PaddingFactor scales the per-dimension workspace padding:
	// n_k = len_k(R) + PaddingFactor*(max_k-min_k). Zero defaults to 100.
	// The legacy Factor entry point uses 2, trading some convergence
	// margin for a much smaller workspace.
	PaddingFactor int

	// Strict selects the legacy standalone Factor entry point's
	// convergence test: exact float equality instead of the squared-error
	// threshold.
	Strict bool
}

func (o BurgOptions) padding() int {
	if o.PaddingFactor == 0 {
		return 100
	}
	return o.PaddingFactor
}

func checkBurgOptions(o BurgOptions) {
	if o.MaxIter < 1 {
		panic("jtk: maxiter must be >= 1")
	}
	if o.Epsilon <= 0 {
		panic("jtk: epsilon must be > 0")
	}
}

// Factor is the legacy standalone entry point: padding factor 2, strict
// equality convergence test.
func Factor(lags *LagSet, maxiter int, epsilon float32, r interface{}) (*Filter, error) {
	f := NewFilter(lags)
	opts := BurgOptions{MaxIter: maxiter, Epsilon: epsilon, PaddingFactor: 2, Strict: true}
	err := f.BurgFactorize(opts, r)
	// f is returned even on ErrConvergence, with its coefficients left in
	// their last-iteration state, so the caller can inspect how close the
	// iteration got.
	return f, err
}

// BurgFactorize runs the Wilson-Burg spectral factorization driver,
// mutating f.Lags' coefficients in place. r must be *arrayops.Array1,
// *arrayops.Array2 or *arrayops.Array3 matching f's rank, of odd extent
// in every dimension. On ErrConvergence the coefficients are left in
// their last-iteration state.
func (f *Filter) BurgFactorize(opts BurgOptions, r interface{}) error {
	checkBurgOptions(opts)
	switch rb := r.(type) {
	case *arrayops.Array1:
		return f.burg1D(opts, rb)
	case *arrayops.Array2:
		return f.burg2D(opts, rb)
	case *arrayops.Array3:
		return f.burg3D(opts, rb)
	default:
		panic("jtk: unsupported autocorrelation buffer type")
	}
}

func requireOdd(n int) {
	if n%2 == 0 {
		panic("jtk: autocorrelation extent must be odd")
	}
}

func (f *Filter) burg1D(opts BurgOptions, r *arrayops.Array1) error {
	requireOdd(r.N1)
	l := f.Lags
	pad := opts.padding()
	n1 := r.N1 + pad*(l.Max1()-l.Min1())
	k1 := n1 - 1 - l.Max1()

	s := arrayops.NewArray1(n1)
	t := arrayops.NewArray1(n1)
	u := arrayops.NewArray1(n1)

	c1 := (r.N1 - 1) / 2
	o1 := k1 - c1
	arrayops.CopyFromOrigin1(s, r.Data, o1)

	for j := 0; j < l.M(); j++ {
		l.SetA(j, 0)
	}
	l.SetA(0, float32(math.Sqrt(float64(s.Data[k1]))))

	eemax := s.Data[k1] * opts.Epsilon

	for iter := 0; iter < opts.MaxIter; iter++ {
		l.ApplyInverseTranspose1(s.Data, t.Data)
		l.ApplyInverse1(t.Data, u.Data)

		u.Data[k1] = (u.Data[k1] + 1) * 0.5
		for i1 := 0; i1 < k1; i1++ {
			u.Data[i1] = 0
		}

		l.Apply1(u.Data, t.Data)

		converged := true
		for j := 0; j < l.M(); j++ {
			k := k1 + l.Lag1(j)
			aj := t.Data[k]
			e := l.A(j) - aj
			if !opts.Strict {
				if e*e > eemax {
					converged = false
				}
			} else if e != 0 {
				converged = false
			}
			l.SetA(j, aj)
		}

		if converged {
			return nil
		}
	}
	return ErrConvergence
}

func (f *Filter) burg2D(opts BurgOptions, r *arrayops.Array2) error {
	requireOdd(r.N1)
	requireOdd(r.N2)
	l := f.Lags
	pad := opts.padding()
	n1 := r.N1 + pad*(l.Max1()-l.Min1())
	n2 := r.N2 + pad*(l.Max2()-l.Min2())
	k1 := n1 - 1 - l.Max1()
	k2 := n2 - 1 - l.Max2()

	s := arrayops.NewArray2(n1, n2)
	t := arrayops.NewArray2(n1, n2)
	u := arrayops.NewArray2(n1, n2)

	c1 := (r.N1 - 1) / 2
	c2 := (r.N2 - 1) / 2
	arrayops.CopyFromOrigin2(s, r.Data, r.N1, r.N2, k1-c1, k2-c2)

	for j := 0; j < l.M(); j++ {
		l.SetA(j, 0)
	}
	center := s.At(k1, k2)
	l.SetA(0, float32(math.Sqrt(float64(center))))

	eemax := center * opts.Epsilon

	for iter := 0; iter < opts.MaxIter; iter++ {
		l.ApplyInverseTranspose2(s, t)
		l.ApplyInverse2(t, u)

		u.Set(k1, k2, (u.At(k1, k2)+1)*0.5)
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				if before3(i1, i2, 0, k1, k2, 0) {
					u.Set(i1, i2, 0)
				}
			}
		}

		l.Apply2(u, t)

		converged := true
		for j := 0; j < l.M(); j++ {
			aj := t.At(k1+l.Lag1(j), k2+l.Lag2(j))
			e := l.A(j) - aj
			if !opts.Strict {
				if e*e > eemax {
					converged = false
				}
			} else if e != 0 {
				converged = false
			}
			l.SetA(j, aj)
		}

		if converged {
			return nil
		}
	}
	return ErrConvergence
}

func (f *Filter) burg3D(opts BurgOptions, r *arrayops.Array3) error {
	requireOdd(r.N1)
	requireOdd(r.N2)
	requireOdd(r.N3)
	l := f.Lags
	pad := opts.padding()
	n1 := r.N1 + pad*(l.Max1()-l.Min1())
	n2 := r.N2 + pad*(l.Max2()-l.Min2())
	n3 := r.N3 + pad*(l.Max3()-l.Min3())
	k1 := n1 - 1 - l.Max1()
	k2 := n2 - 1 - l.Max2()
	k3 := n3 - 1 - l.Max3()

	s := arrayops.NewArray3(n1, n2, n3)
	t := arrayops.NewArray3(n1, n2, n3)
	u := arrayops.NewArray3(n1, n2, n3)

	c1 := (r.N1 - 1) / 2
	c2 := (r.N2 - 1) / 2
	c3 := (r.N3 - 1) / 2
	arrayops.CopyFromOrigin3(s, r.Data, r.N1, r.N2, r.N3, k1-c1, k2-c2, k3-c3)

	for j := 0; j < l.M(); j++ {
		l.SetA(j, 0)
	}
	center := s.At(k1, k2, k3)
	l.SetA(0, float32(math.Sqrt(float64(center))))

	eemax := center * opts.Epsilon

	for iter := 0; iter < opts.MaxIter; iter++ {
		l.ApplyInverseTranspose3(s, t)
		l.ApplyInverse3(t, u)

		u.Set(k1, k2, k3, (u.At(k1, k2, k3)+1)*0.5)
		for i3 := 0; i3 < n3; i3++ {
			for i2 := 0; i2 < n2; i2++ {
				for i1 := 0; i1 < n1; i1++ {
					if before3(i1, i2, i3, k1, k2, k3) {
						u.Set(i1, i2, i3, 0)
					}
				}
			}
		}

		l.Apply3(u, t)

		converged := true
		for j := 0; j < l.M(); j++ {
			aj := t.At(k1+l.Lag1(j), k2+l.Lag2(j), k3+l.Lag3(j))
			e := l.A(j) - aj
			if !opts.Strict {
				if e*e > eemax {
					converged = false
				}
			} else if e != 0 {
				converged = false
			}
			l.SetA(j, aj)
		}

		if converged {
			return nil
		}
	}
	return ErrConvergence
}

// before3 reports whether (i1,i2,i3) lexicographically precedes
// (k1,k2,k3) under the helical order (i3 major, then i2, then i1), used to
// zero the anti-causal half of the workspace during factorization.
func before3(i1, i2, i3, k1, k2, k3 int) bool {
	if i3 != k3 {
		return i3 < k3
	}
	if i2 != k2 {
		return i2 < k2
	}
	return i1 < k1
}

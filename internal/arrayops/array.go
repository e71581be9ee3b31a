// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrayops provides contiguous, stride-based float32 buffers for
// 1-, 2- and 3-D dense arrays, along with the handful of element-copy and
// zeroing primitives the filter kernels and the Wilson-Burg driver need.
//
// Storage follows the blas64.General convention: a flat Data slice plus
// per-dimension strides, with the fastest-varying dimension (i1) contiguous
// in memory.
package arrayops

// Array1 is a contiguous 1-D float32 buffer.
type Array1 struct {
	N1   int
	Data []float32
}

// Array2 is a row-major 2-D float32 buffer: Data[i2*Stride2+i1].
type Array2 struct {
	N1, N2  int
	Stride2 int
	Data    []float32
}

// Array3 is a row-major 3-D float32 buffer: Data[i3*Stride3+i2*Stride2+i1].
type Array3 struct {
	N1, N2, N3       int
	Stride2, Stride3 int
	Data             []float32
}

// NewArray1 allocates a zeroed 1-D buffer of extent n1.
func NewArray1(n1 int) *Array1 {
	return &Array1{N1: n1, Data: make([]float32, n1)}
}

// NewArray2 allocates a zeroed 2-D buffer of extent n1 x n2.
func NewArray2(n1, n2 int) *Array2 {
	return &Array2{N1: n1, N2: n2, Stride2: n1, Data: make([]float32, n1*n2)}
}

// NewArray3 allocates a zeroed 3-D buffer of extent n1 x n2 x n3.
func NewArray3(n1, n2, n3 int) *Array3 {
	return &Array3{
		N1: n1, N2: n2, N3: n3,
		Stride2: n1, Stride3: n1 * n2,
		Data: make([]float32, n1*n2*n3),
	}
}

// Row returns the i2-th row as a slice of length N1 sharing storage with
// the buffer, valid only when Stride2 == N1.
func (a *Array2) Row(i2 int) []float32 {
	start := i2 * a.Stride2
	return a.Data[start : start+a.N1]
}

// At returns the element at (i1, i2).
func (a *Array2) At(i1, i2 int) float32 { return a.Data[i2*a.Stride2+i1] }

// Set stores v at (i1, i2).
func (a *Array2) Set(i1, i2 int, v float32) { a.Data[i2*a.Stride2+i1] = v }

// At returns the element at (i1, i2, i3).
func (a *Array3) At(i1, i2, i3 int) float32 {
	return a.Data[i3*a.Stride3+i2*a.Stride2+i1]
}

// Set stores v at (i1, i2, i3).
func (a *Array3) Set(i1, i2, i3 int, v float32) {
	a.Data[i3*a.Stride3+i2*a.Stride2+i1] = v
}

// Zero fills the buffer with zero.
func (a *Array1) Zero() {
	for i := range a.Data {
		a.Data[i] = 0
	}
}

// Zero fills the buffer with zero.
func (a *Array2) Zero() {
	for i := range a.Data {
		a.Data[i] = 0
	}
}

// Zero fills the buffer with zero.
func (a *Array3) Zero() {
	for i := range a.Data {
		a.Data[i] = 0
	}
}

// CopyFromOrigin1 copies src into dst such that src's index 0 lands at
// dst index (o1) — the offset placement used by Wilson-Burg padding.
// Elements that would land outside dst are not copied.
func CopyFromOrigin1(dst *Array1, src []float32, o1 int) {
	for i := 0; i < len(src); i++ {
		if k := o1 + i; k >= 0 && k < dst.N1 {
			dst.Data[k] = src[i]
		}
	}
}

// CopyFromOrigin2 copies src (n1 x n2, row-major, stride n1) into dst such
// that src's (0,0) lands at dst's (o1,o2). Elements that would land
// outside dst are not copied.
func CopyFromOrigin2(dst *Array2, src []float32, n1, n2, o1, o2 int) {
	for i2 := 0; i2 < n2; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			k1, k2 := o1+i1, o2+i2
			if k1 >= 0 && k1 < dst.N1 && k2 >= 0 && k2 < dst.N2 {
				dst.Set(k1, k2, src[i2*n1+i1])
			}
		}
	}
}

// CopyFromOrigin3 copies src (n1 x n2 x n3, row-major) into dst such that
// src's (0,0,0) lands at dst's (o1,o2,o3). Elements that would land
// outside dst are not copied.
func CopyFromOrigin3(dst *Array3, src []float32, n1, n2, n3, o1, o2, o3 int) {
	for i3 := 0; i3 < n3; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				k1, k2, k3 := o1+i1, o2+i2, o3+i3
				if k1 >= 0 && k1 < dst.N1 && k2 >= 0 && k2 < dst.N2 && k3 >= 0 && k3 < dst.N3 {
					dst.Set(k1, k2, k3, src[(i3*n2+i2)*n1+i1])
				}
			}
		}
	}
}

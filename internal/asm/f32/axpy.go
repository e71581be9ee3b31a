// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f32 provides low-level float32 vector primitives used by the
// boundary-correct filter kernels' branch-free interior loops.
package f32

// AxpyUnitary computes y[i] += alpha*x[i] for i in range, the unit-stride
// accumulation step behind each lag's contribution to a kernel's interior
// region.
func AxpyUnitary(alpha float32, x, y []float32) {
	for i, v := range x {
		y[i] += alpha * v
	}
}

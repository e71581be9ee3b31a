// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk_test

import (
	"fmt"

	"github.com/GeoZHR/jtk"
)

// This example applies a small causal prediction-error filter to an
// impulse and shows the resulting finite impulse response, then recovers
// the impulse with the matching inverse operator.
func Example() {
	lags := jtk.NewLagSet1([]int{0, 1, 2}, []float32{1.0, -0.5, 0.25})

	x := []float32{0, 0, 0, 1, 0, 0, 0, 0}
	y := make([]float32, len(x))
	lags.Apply1(x, y)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f %.2f %.2f %.2f\n",
		y[0], y[1], y[2], y[3], y[4], y[5], y[6], y[7])

	xrec := make([]float32, len(y))
	lags.ApplyInverse1(y, xrec)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f %.2f %.2f %.2f\n",
		xrec[0], xrec[1], xrec[2], xrec[3], xrec[4], xrec[5], xrec[6], xrec[7])

	// Output:
	// 0.00 0.00 0.00 1.00 -0.50 0.25 0.00 0.00
	// 0.00 0.00 0.00 1.00 0.00 0.00 0.00 0.00
}

// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk

// clamp confines v to [0, n].
func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

// subLo/subHi bound the interior region for the subtract-lag kernels
// (apply, applyInverse), which scan forward and read x[i-lag[j]] or
// y[i-lag[j]]: interior is [subLo(max,n), subHi(min,n)).
func subLo(maxLag, n int) int { return clamp(maxLag, n) }
func subHi(minLag, n int) int { return clamp(n+minLag, n) }

// addLo/addHi bound the interior region for the add-lag kernels
// (applyTranspose, applyInverseTranspose), which scan in reverse and read
// x[i+lag[j]] or y[i+lag[j]]: interior is [addLo(min,n), addHi(max,n)).
func addLo(minLag, n int) int { return clamp(-minLag, n) }
func addHi(maxLag, n int) int { return clamp(n-maxLag, n) }

// inRange1 reports whether index k falls within [0, n), the guard used by
// every edge-region kernel cell to treat out-of-buffer taps as zero.
func inRange1(k, n int) bool { return k >= 0 && k < n }

// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arrayops

// MinInts returns the minimum of s. Panics on an empty slice, matching
// floats.Min's contract for an empty input.
func MinInts(s []int) int {
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// MaxInts returns the maximum of s. Panics on an empty slice.
func MaxInts(s []int) int {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

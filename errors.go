// Copyright ©2026 The jtk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtk

import "errors"

// ErrConvergence is returned by BurgFactorize/Factor when maxiter iterations
// elapse without satisfying the convergence criterion. The filter's
// coefficients are left in their last-iteration state.
var ErrConvergence = errors.New("jtk: wilson-burg iteration limit reached without convergence")

// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

//go:build !amd64

package sha2

import "math/bits"

// The unrolled rounds are selected on 64-bit targets only.
var useUnrolled = bits.UintSize == 64

// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"golang.org/x/sys/cpu"
)

var useUnrolled = cpu.X86.HasAVX2 && cpu.X86.HasBMI2

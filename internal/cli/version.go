// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/superwindstorm/sha2"
)

// Version is intended to be injected at build time with -ldflags.
var Version string

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func versionString() string {
	return fmt.Sprintf("sha2sum %s\ncompression: %s\ngo:          %s\nos/arch:     %s/%s",
		version(), sha2.Implementation(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// sha2sum prints or verifies SHA-224 and SHA-256 checksums of files,
// hashing several files concurrently.
package main

import (
	"fmt"
	"os"

	"github.com/superwindstorm/sha2/internal/cli"
)

func main() {
	command := cli.New(os.Stdin, os.Stdout, os.Stderr)
	if err := command.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "sha2sum: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

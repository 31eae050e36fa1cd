// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package cli implements the sha2sum command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/pflag"

	"github.com/superwindstorm/sha2"
	"github.com/superwindstorm/sha2/internal/logging"
)

// Command holds the streams and parsed flags of one sha2sum invocation.
type Command struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	algorithm string
	check     bool
	jobs      int
	tag       bool
	quiet     bool
	verbose   bool

	variant sha2.Variant
	logger  *slog.Logger
}

// New creates a command bound to the given streams.
func New(in io.Reader, out, errOut io.Writer) *Command {
	return &Command{in: in, out: out, errOut: errOut}
}

func (c *Command) flagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("sha2sum", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&c.algorithm, "algorithm", "a", "sha256", "digest variant: sha224 or sha256")
	flagSet.BoolVarP(&c.check, "check", "c", false, "read checksums from the FILEs and verify them")
	flagSet.IntVarP(&c.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files hashed concurrently")
	flagSet.BoolVar(&c.tag, "tag", false, "print BSD-style checksum lines")
	flagSet.BoolVarP(&c.quiet, "quiet", "q", false, "with --check, do not print OK for each verified file")
	flagSet.BoolVarP(&c.verbose, "verbose", "v", false, "log debug information to stderr")
	flagSet.Bool("version", false, "print version information")
	flagSet.BoolP("help", "h", false, "show help")
	return flagSet
}

// Run parses args and executes the command.
func (c *Command) Run(args []string) error {
	flagSet := c.flagSet()
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return c.printHelp(flagSet)
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		return c.printHelp(flagSet)
	}
	if showVersion, _ := flagSet.GetBool("version"); showVersion {
		if _, err := fmt.Fprintln(c.out, versionString()); err != nil {
			return fmt.Errorf("writing version output: %w", err)
		}
		return nil
	}

	variant, err := sha2.ParseVariant(c.algorithm)
	if err != nil {
		return fmt.Errorf("%w: --algorithm: %w", ErrUsage, err)
	}
	if c.jobs < 1 {
		return fmt.Errorf("%w: --jobs must be at least 1, got %d", ErrUsage, c.jobs)
	}
	if c.tag && c.check {
		return fmt.Errorf("%w: --tag is meaningless when verifying checksums", ErrUsage)
	}
	c.variant = variant
	c.logger = logging.New(c.errOut, logging.Level(c.verbose, c.quiet))
	c.logger.Debug("starting", "variant", variant, "compression", sha2.Implementation(), "jobs", c.jobs)

	files := flagSet.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	if c.check {
		return c.runCheck(files)
	}
	return c.runHash(files)
}

func (c *Command) printHelp(flagSet *pflag.FlagSet) error {
	_, err := fmt.Fprintf(c.out, `Print or check SHA-224 / SHA-256 checksums.

With no FILE, or when FILE is -, read standard input.

Usage:
  sha2sum [flags] [FILE...]

Flags:
%s`, flagSet.FlagUsages())
	if err != nil {
		return fmt.Errorf("writing help output: %w", err)
	}
	return nil
}

type job struct {
	name    string
	variant sha2.Variant
}

type result struct {
	sum sha2.Digest
	err error
}

// hashAll hashes every job with its own context, at most c.jobs at a
// time, and returns the results in job order.
func (c *Command) hashAll(jobs []job) []result {
	results := make([]result, len(jobs))
	indexes := make(chan int)

	var stdin sync.Mutex
	var wg sync.WaitGroup
	workers := min(c.jobs, len(jobs))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				start := time.Now()
				j := jobs[i]
				var r result
				if j.name == "-" {
					stdin.Lock()
					r.sum, r.err = sha2.HashReader(j.variant, c.in, 0)
					stdin.Unlock()
				} else {
					r.sum, r.err = sha2.HashFile(j.variant, j.name)
				}
				results[i] = r
				c.logger.Debug("hashed", "file", j.name, "variant", j.variant, "elapsed", time.Since(start), "error", r.err)
			}
		}()
	}
	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return results
}

func (c *Command) runHash(files []string) error {
	jobs := make([]job, len(files))
	for i, name := range files {
		jobs[i] = job{name: name, variant: c.variant}
	}

	failed := 0
	for i, r := range c.hashAll(jobs) {
		if r.err != nil {
			failed++
			c.logger.Error("hashing failed", "file", files[i], "error", r.err)
			continue
		}
		var err error
		if c.tag {
			_, err = fmt.Fprintf(c.out, "%s (%s) = %s\n", c.variant.Name(), files[i], r.sum.Hex())
		} else {
			_, err = fmt.Fprintf(c.out, "%s  %s\n", r.sum.Hex(), files[i])
		}
		if err != nil {
			return fmt.Errorf("writing checksum output: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be hashed", failed, len(files))
	}
	return nil
}

// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/superwindstorm/sha2"
)

type checkEntry struct {
	name string
	want sha2.Digest
}

// parseCheckLine accepts "<hex>  <name>", "<hex> *<name>" and
// "SHA256 (<name>) = <hex>". The variant is taken from the digest length.
func parseCheckLine(line string) (checkEntry, bool) {
	line = strings.TrimRight(line, "\r")
	if entry, ok := parseTagLine(line); ok {
		return entry, true
	}

	hexPart, rest, ok := strings.Cut(line, " ")
	if !ok || len(rest) < 2 || (rest[0] != ' ' && rest[0] != '*') {
		return checkEntry{}, false
	}
	want, err := sha2.ParseDigest(hexPart)
	if err != nil {
		return checkEntry{}, false
	}
	return checkEntry{name: rest[1:], want: want}, true
}

func parseTagLine(line string) (checkEntry, bool) {
	open := strings.Index(line, " (")
	closing := strings.LastIndex(line, ") = ")
	if open <= 0 || closing <= open {
		return checkEntry{}, false
	}
	want, err := sha2.ParseDigest(line[closing+len(") = "):])
	if err != nil || !strings.EqualFold(line[:open], want.Variant().Name()) {
		return checkEntry{}, false
	}
	return checkEntry{name: line[open+len(" (") : closing], want: want}, true
}

func (c *Command) readCheckList(name string) ([]checkEntry, int, error) {
	var r io.Reader = c.in
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, 0, fmt.Errorf("opening checksum list: %w", err)
		}
		defer f.Close()
		r = f
	}

	var entries []checkEntry
	malformed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, ok := parseCheckLine(line)
		if !ok {
			malformed++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, malformed, fmt.Errorf("reading checksum list %s: %w", name, err)
	}
	return entries, malformed, nil
}

func (c *Command) runCheck(lists []string) error {
	var entries []checkEntry
	malformed := 0
	for _, list := range lists {
		listEntries, listMalformed, err := c.readCheckList(list)
		if err != nil {
			return err
		}
		if listMalformed > 0 {
			c.logger.Warn("improperly formatted checksum lines", "list", list, "count", listMalformed)
		}
		entries = append(entries, listEntries...)
		malformed += listMalformed
	}
	if len(entries) == 0 {
		return fmt.Errorf("no properly formatted checksum lines found: %w", ErrCheckFailed)
	}

	jobs := make([]job, len(entries))
	for i, entry := range entries {
		jobs[i] = job{name: entry.name, variant: entry.want.Variant()}
	}

	mismatched, unreadable := 0, 0
	for i, r := range c.hashAll(jobs) {
		entry := entries[i]
		var err error
		switch {
		case r.err != nil:
			unreadable++
			c.logger.Error("reading failed", "file", entry.name, "error", r.err)
			_, err = fmt.Fprintf(c.out, "%s: FAILED open or read\n", entry.name)
		case !r.sum.Equal(entry.want):
			mismatched++
			_, err = fmt.Fprintf(c.out, "%s: FAILED\n", entry.name)
		case !c.quiet:
			_, err = fmt.Fprintf(c.out, "%s: OK\n", entry.name)
		}
		if err != nil {
			return fmt.Errorf("writing check output: %w", err)
		}
	}

	if unreadable > 0 {
		c.logger.Warn("listed files could not be read", "count", unreadable)
	}
	if mismatched > 0 {
		c.logger.Warn("computed checksums did not match", "count", mismatched)
	}
	if mismatched > 0 || unreadable > 0 {
		return fmt.Errorf("%d mismatched, %d unreadable: %w", mismatched, unreadable, ErrCheckFailed)
	}
	return nil
}

// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/superwindstorm/sha2/internal/mmap"
)

// DefaultBufferSize is the read size HashReader uses when none is given.
const DefaultBufferSize = 256 * 1024

const maxEmptyReads = 8

// UpdateReader streams r into the context using buf and returns the number
// of bytes consumed.
func (d *Context) UpdateReader(r io.Reader, buf []byte) (int64, error) {
	if d.unusable() {
		return 0, ErrInvalidState
	}
	if len(buf) == 0 {
		buf = make([]byte, DefaultBufferSize)
	}

	var processed int64
	emptyReads := 0
	for {
		n, err := r.Read(buf)
		if n > 0 {
			emptyReads = 0
			_ = d.Update(buf[:n])
			processed += int64(n)
		}
		if err == io.EOF {
			return processed, nil
		}
		if err != nil {
			return processed, err
		}
		if n == 0 {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				return processed, io.ErrNoProgress
			}
		}
	}
}

// HashReader returns the digest of everything read from r.
func HashReader(v Variant, r io.Reader, bufSize int) (Digest, error) {
	d := New(v)
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	if _, err := d.UpdateReader(r, make([]byte, bufSize)); err != nil {
		return Digest{}, err
	}
	return d.Finalize()
}

// HashFile returns the digest of the file at path. The file is memory
// mapped where the platform allows and fed to the context as one view.
func HashFile(v Variant, path string) (Digest, error) {
	d := New(v)

	f, err := mmap.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()

	if err := updateMapped(d, f.Bytes()); err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	return d.Finalize()
}

// updateMapped feeds a memory-mapped view to d. A file truncated
// underneath the mapping raises SIGBUS on access; that fault comes back
// as an error. Any other panic is re-raised.
func updateMapped(d *Context, view []byte) (err error) {
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if r := recover(); r != nil {
			fault, ok := r.(runtime.Error)
			if _, memory := r.(interface{ Addr() uintptr }); !ok || !memory {
				panic(r)
			}
			err = fmt.Errorf("page fault reading mapped file: %w", fault)
		}
	}()
	return d.Update(view)
}

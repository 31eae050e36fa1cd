// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package sha2 implements the SHA-224 and SHA-256 hash algorithms as
// defined in FIPS 180-4.
//
// Both variants share one compression function and differ only in the
// initial hash state and the output length, so they are modelled as one
// streaming Context configured by a Variant value.
//
// A Context is single use: Update any number of times, then Finalize
// exactly once. Further calls report ErrInvalidState until Reset.
package sha2

import (
	"fmt"
	"hash"
	"strings"
)

// Variant selects the initial hash state and the digest length.
type Variant struct {
	name string
	iv   State
	size int
}

var (
	// SHA224 produces 28-byte digests.
	SHA224 = Variant{
		name: "SHA224",
		iv:   State{init0_224, init1_224, init2_224, init3_224, init4_224, init5_224, init6_224, init7_224},
		size: Size224,
	}
	// SHA256 produces 32-byte digests.
	SHA256 = Variant{
		name: "SHA256",
		iv:   State{init0, init1, init2, init3, init4, init5, init6, init7},
		size: Size,
	}
)

// Name returns the canonical name, e.g. "SHA256".
func (v Variant) Name() string { return v.name }

func (v Variant) String() string { return v.name }

// Size returns the digest length in bytes.
func (v Variant) Size() int { return v.size }

// InitialState returns the state a fresh Context starts from.
func (v Variant) InitialState() State { return v.iv }

// ParseVariant maps names such as "sha256", "SHA-224" or "224" to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sha224", "sha-224", "224":
		return SHA224, nil
	case "sha256", "sha-256", "256":
		return SHA256, nil
	}
	return Variant{}, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
}

// Context is the streaming state for one message. It is not safe for
// concurrent use.
type Context struct {
	h       [8]uint32
	x       [chunk]byte
	nx      int
	len     uint64
	variant Variant
	done    bool
}

var _ hash.Hash = (*Context)(nil)

// New returns a Context computing the given variant.
func New(v Variant) *Context {
	if v.size == 0 {
		panic("sha2: zero Variant")
	}
	d := &Context{variant: v}
	d.Reset()
	return d
}

// New224 returns a Context computing SHA-224.
func New224() *Context { return New(SHA224) }

// New256 returns a Context computing SHA-256.
func New256() *Context { return New(SHA256) }

// Reset reset the states, including a finalized context
func (d *Context) Reset() {
	d.h = [8]uint32(d.variant.iv)
	d.x = [chunk]byte{}
	d.nx = 0
	d.len = 0
	d.done = false
}

// Variant returns the variant this context computes.
func (d *Context) Variant() Variant { return d.variant }

// Size returns the size of hash digest
func (d *Context) Size() int { return d.variant.size }

// BlockSize return the bytes of one block
func (d *Context) BlockSize() int { return BlockSize }

// Len returns the number of bytes passed to Update so far.
func (d *Context) Len() uint64 { return d.len }

// Finalized reports whether Finalize has been called since the last Reset.
func (d *Context) Finalized() bool { return d.done }

// unusable reports a finalized context or a zero Context that was never
// given a variant.
func (d *Context) unusable() bool { return d.done || d.variant.size == 0 }

// Update appends p to the message.
func (d *Context) Update(p []byte) error {
	if d.unusable() {
		return ErrInvalidState
	}
	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == chunk {
			block(&d.h, d.x[:])
			d.x = [chunk]byte{}
			d.nx = 0
		}
		p = p[n:]
	}

	if len(p) >= chunk {
		n := len(p) &^ (chunk - 1)
		block(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nil
}

// Write implements io.Writer on top of Update.
func (d *Context) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize pads the message and returns its digest. The context is spent
// afterwards.
func (d *Context) Finalize() (Digest, error) {
	if d.unusable() {
		return Digest{}, ErrInvalidState
	}
	d.done = true
	full := d.checkSum()
	out := Digest{variant: d.variant}
	copy(out.sum[:d.variant.size], full[:])
	return out, nil
}

// Sum appends the digest of the data written so far to in. Unlike
// Finalize it leaves the context usable, which makes Context a hash.Hash.
// It panics on a finalized or zero Context, since hash.Hash has no error
// return.
func (d *Context) Sum(in []byte) []byte {
	if d.unusable() {
		panic(ErrInvalidState)
	}
	// checkSum will change internal states, so make a copy
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:d.variant.size]...)
}

// Sum returns the checksum of the data for variant v.
func Sum(v Variant, data ...[]byte) Digest {
	d := New(v)
	for _, x := range data {
		_ = d.Update(x)
	}
	sum, _ := d.Finalize()
	return sum
}

// Sum224 returns the SHA-224 checksum of the data.
func Sum224(data ...[]byte) Digest { return Sum(SHA224, data...) }

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data ...[]byte) Digest { return Sum(SHA256, data...) }

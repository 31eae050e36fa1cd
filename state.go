// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"fmt"

	"github.com/superwindstorm/sha2/internal/codec"
)

// checkpoint is the serialized form of an unfinished Context.
type checkpoint struct {
	Variant string    `cbor:"variant"`
	State   [8]uint32 `cbor:"state"`
	Pending []byte    `cbor:"pending"`
	Length  uint64    `cbor:"length"`
}

// MarshalBinary snapshots an unfinished context so hashing can be resumed
// later, possibly in another process.
func (d *Context) MarshalBinary() ([]byte, error) {
	if d.unusable() {
		return nil, ErrInvalidState
	}
	cp := checkpoint{
		Variant: d.variant.name,
		State:   d.h,
		Pending: append([]byte(nil), d.x[:d.nx]...),
		Length:  d.len,
	}
	data, err := codec.Marshal(cp)
	if err != nil {
		return nil, fmt.Errorf("encoding checkpoint: %w", err)
	}
	return data, nil
}

// UnmarshalBinary restores a checkpoint written by MarshalBinary. A zero
// Context adopts the checkpoint's variant; otherwise the variants must
// match.
func (d *Context) UnmarshalBinary(data []byte) error {
	var cp checkpoint
	if err := codec.Unmarshal(data, &cp); err != nil {
		return fmt.Errorf("decoding checkpoint: %w: %w", ErrInvalidCheckpoint, err)
	}
	v, err := ParseVariant(cp.Variant)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCheckpoint, err)
	}
	if d.variant.size != 0 && d.variant != v {
		return fmt.Errorf("restoring %s checkpoint into %s context: %w", v, d.variant, ErrVariantMismatch)
	}
	if len(cp.Pending) >= chunk || uint64(len(cp.Pending)) != cp.Length%chunk {
		return fmt.Errorf("%d pending bytes for length %d: %w", len(cp.Pending), cp.Length, ErrInvalidCheckpoint)
	}

	d.variant = v
	d.h = cp.State
	d.x = [chunk]byte{}
	d.nx = copy(d.x[:], cp.Pending)
	d.len = cp.Length
	d.done = false
	return nil
}

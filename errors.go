// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import "errors"

var (
	// ErrInvalidState is returned by Update, Write and Finalize once the
	// context has been finalized.
	ErrInvalidState = errors.New("sha2: context already finalized")

	// ErrUnknownVariant is returned by ParseVariant.
	ErrUnknownVariant = errors.New("sha2: unknown variant")

	// ErrInvalidCheckpoint is returned when a marshaled state is malformed.
	ErrInvalidCheckpoint = errors.New("sha2: invalid checkpoint")

	// ErrVariantMismatch is returned when a checkpoint is restored into a
	// context of a different variant.
	ErrVariantMismatch = errors.New("sha2: checkpoint variant mismatch")
)

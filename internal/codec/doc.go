// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package codec holds the CBOR configuration used for hash checkpoints.
//
// Checkpoints are compared and stored byte for byte, so the encoder uses
// Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. The same context state
// always encodes to the same bytes.
//
// The decoder is strict: unknown fields and duplicate map keys are
// errors, since a checkpoint that carries data this version does not
// understand cannot be resumed safely.
package codec

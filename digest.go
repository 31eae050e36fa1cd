// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"encoding/hex"
	"fmt"
)

// Digest is a finished checksum. The zero value is an empty digest.
type Digest struct {
	sum     [Size]byte
	variant Variant
}

// Variant returns the variant that produced the digest.
func (d Digest) Variant() Variant { return d.variant }

// Len returns 28 for SHA-224, 32 for SHA-256 and 0 for the zero Digest.
func (d Digest) Len() int { return d.variant.size }

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, d.Len())
	copy(out, d.sum[:])
	return out
}

// Hex returns the lowercase hex encoding, two characters per byte.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.sum[:d.Len()])
}

func (d Digest) String() string { return d.Hex() }

// Equal reports whether both digests come from the same variant and hold
// the same bytes. The comparison is not constant time.
func (d Digest) Equal(other Digest) bool {
	return d.variant == other.variant && d.sum == other.sum
}

// ParseDigest parses a hex digest. The variant is inferred from the
// length: 56 characters for SHA-224, 64 for SHA-256.
func ParseDigest(s string) (Digest, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("parsing digest: %w", err)
	}
	var v Variant
	switch len(decoded) {
	case Size224:
		v = SHA224
	case Size:
		v = SHA256
	default:
		return Digest{}, fmt.Errorf("digest is %d bytes, want %d or %d", len(decoded), Size224, Size)
	}
	d := Digest{variant: v}
	copy(d.sum[:], decoded)
	return d, nil
}

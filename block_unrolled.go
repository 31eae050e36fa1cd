// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import "math/bits"

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func ch(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }

func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

// blockUnrolled does eight rounds per iteration. Instead of shifting
// a..h down every round, the register that would become the new "a"
// is updated in place and the roles rotate; after eight rounds every
// register is back in its original role.
func blockUnrolled(dig *[8]uint32, p []byte) {
	var w [64]uint32
	h0, h1, h2, h3, h4, h5, h6, h7 := dig[0], dig[1], dig[2], dig[3], dig[4], dig[5], dig[6], dig[7]

	for len(p) >= chunk {
		schedule(&w, p)

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7
		for i := 0; i < 64; i += 8 {
			h += bigSigma1(e) + ch(e, f, g) + _K[i] + w[i]
			d += h
			h += bigSigma0(a) + maj(a, b, c)

			g += bigSigma1(d) + ch(d, e, f) + _K[i+1] + w[i+1]
			c += g
			g += bigSigma0(h) + maj(h, a, b)

			f += bigSigma1(c) + ch(c, d, e) + _K[i+2] + w[i+2]
			b += f
			f += bigSigma0(g) + maj(g, h, a)

			e += bigSigma1(b) + ch(b, c, d) + _K[i+3] + w[i+3]
			a += e
			e += bigSigma0(f) + maj(f, g, h)

			d += bigSigma1(a) + ch(a, b, c) + _K[i+4] + w[i+4]
			h += d
			d += bigSigma0(e) + maj(e, f, g)

			c += bigSigma1(h) + ch(h, a, b) + _K[i+5] + w[i+5]
			g += c
			c += bigSigma0(d) + maj(d, e, f)

			b += bigSigma1(g) + ch(g, h, a) + _K[i+6] + w[i+6]
			f += b
			b += bigSigma0(c) + maj(c, d, e)

			a += bigSigma1(f) + ch(f, g, h) + _K[i+7] + w[i+7]
			e += a
			a += bigSigma0(b) + maj(b, c, d)
		}

		p = p[chunk:]
		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h
	}
	dig[0], dig[1], dig[2], dig[3], dig[4], dig[5], dig[6], dig[7] = h0, h1, h2, h3, h4, h5, h6, h7
}

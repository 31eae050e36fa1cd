// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha2

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"testing"
)

func BenchmarkSHA256(b *testing.B) {
	buf := make([]byte, 10*1024*1024)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum256(buf)
	}
}

func BenchmarkBlockGeneric(b *testing.B) {
	benchmarkBlock(b, BlockGeneric)
}

func BenchmarkBlockUnrolled(b *testing.B) {
	benchmarkBlock(b, BlockUnrolled)
}

func benchmarkBlock(b *testing.B, fn func(*[8]uint32, []byte)) {
	buf := patternBytes(64 * 1024)
	h := [8]uint32(SHA256.InitialState())
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fn(&h, buf)
	}
}

func patternBytes(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(i % 251)
	}
	return out
}

var tests = []struct {
	variant Variant
	in      string
	want    string
}{
	{SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{SHA256, "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{SHA256, "The quick brown fox jumps over the lazy dog", "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	{SHA224, "", "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
	{SHA224, "abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	{SHA224, "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525"},
}

func TestVectors(t *testing.T) {
	for _, tst := range tests {
		d := New(tst.variant)
		if err := d.Update([]byte(tst.in)); err != nil {
			t.Fatalf("Update: %v", err)
		}
		dig, err := d.Finalize()
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if dig.Hex() != tst.want {
			t.Fatalf("%s(%q) = %s, want %s", tst.variant, tst.in, dig.Hex(), tst.want)
		}
		if got := Sum(tst.variant, []byte(tst.in)).Hex(); got != tst.want {
			t.Fatalf("Sum %s(%q) = %s, want %s", tst.variant, tst.in, got, tst.want)
		}
	}
}

func TestMillionA(t *testing.T) {
	d := New256()
	chunk := bytes.Repeat([]byte("a"), 1000)
	for i := 0; i < 1000; i++ {
		_ = d.Update(chunk)
	}
	dig, _ := d.Finalize()
	const want = "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"
	if dig.Hex() != want {
		t.Fatalf("SHA256(1e6 x 'a') = %s, want %s", dig.Hex(), want)
	}
}

// Lengths around the point where the 0x80 byte and the length field no
// longer fit in the last block.
func TestPaddingBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129, 1000} {
		msg := patternBytes(n)
		if got, want := Sum256(msg).Bytes(), sha256.Sum256(msg); !bytes.Equal(got, want[:]) {
			t.Errorf("SHA256 len=%d: got %x, want %x", n, got, want)
		}
		if got, want := Sum224(msg).Bytes(), sha256.Sum224(msg); !bytes.Equal(got, want[:]) {
			t.Errorf("SHA224 len=%d: got %x, want %x", n, got, want)
		}
	}
}

func TestHelloWorld(t *testing.T) {
	msg := []byte("Hello, World!")
	want := sha256.Sum256(msg)
	if got := Sum256(msg).Hex(); got != fmt.Sprintf("%x", want) {
		t.Fatalf("SHA256(%q) = %s, want %x", msg, got, want)
	}
}

func TestChunkedUpdates(t *testing.T) {
	input := patternBytes(4096 + 37)
	for _, variant := range []Variant{SHA224, SHA256} {
		full := Sum(variant, input)
		for _, step := range []int{1, 3, 7, 31, 63, 64, 65, 127, 1000} {
			d := New(variant)
			for offset := 0; offset < len(input); offset += step {
				end := min(offset+step, len(input))
				if err := d.Update(input[offset:end]); err != nil {
					t.Fatalf("Update: %v", err)
				}
			}
			got, _ := d.Finalize()
			if !got.Equal(full) {
				t.Fatalf("%s step=%d: chunked %s, single %s", variant, step, got, full)
			}
		}

		// Irregular chunk sizes, including empty ones.
		d := New(variant)
		for offset, i := 0, 0; offset < len(input); i++ {
			end := min(offset+(i*13)%97, len(input))
			_ = d.Update(input[offset:end])
			offset = end
		}
		if got, _ := d.Finalize(); !got.Equal(full) {
			t.Fatalf("%s irregular chunks: %s, want %s", variant, got, full)
		}
	}
}

func TestEmptyUpdateIsNoop(t *testing.T) {
	d := New256()
	_ = d.Update(patternBytes(70))
	before := *d
	if err := d.Update(nil); err != nil {
		t.Fatalf("Update(nil): %v", err)
	}
	if err := d.Update([]byte{}); err != nil {
		t.Fatalf("Update(empty): %v", err)
	}
	if *d != before {
		t.Fatal("empty Update changed the context")
	}
	if d.Len() != 70 {
		t.Fatalf("Len = %d, want 70", d.Len())
	}
}

func TestPendingBlockInvariant(t *testing.T) {
	d := New256()
	total := 0
	for _, n := range []int{5, 59, 1, 200, 0, 63} {
		_ = d.Update(patternBytes(n))
		total += n
		if d.len != uint64(total) {
			t.Fatalf("len = %d, want %d", d.len, total)
		}
		if d.nx != total%BlockSize {
			t.Fatalf("nx = %d, want %d", d.nx, total%BlockSize)
		}
	}
}

func TestDigestLength(t *testing.T) {
	for _, n := range []int{0, 55, 56, 64, 119, 4096} {
		msg := patternBytes(n)
		if d := Sum224(msg); d.Len() != 28 || len(d.Bytes()) != 28 || len(d.Hex()) != 56 {
			t.Errorf("SHA224 len=%d: Len=%d hex=%d", n, d.Len(), len(d.Hex()))
		}
		if d := Sum256(msg); d.Len() != 32 || len(d.Bytes()) != 32 || len(d.Hex()) != 64 {
			t.Errorf("SHA256 len=%d: Len=%d hex=%d", n, d.Len(), len(d.Hex()))
		}
	}
}

func TestDeterministic(t *testing.T) {
	msg := []byte("determinism check")
	if a, b := Sum256(msg), Sum256(msg); !a.Equal(b) {
		t.Fatalf("Sum256 not deterministic: %s != %s", a, b)
	}
	if a, b := Sum256(msg), Sum256([]byte("determinism check.")); a.Equal(b) {
		t.Fatal("different messages produced the same digest")
	}
}

func TestInvalidState(t *testing.T) {
	d := New224()
	_ = d.Update([]byte("abc"))
	if _, err := d.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !d.Finalized() {
		t.Fatal("Finalized = false after Finalize")
	}
	if _, err := d.Finalize(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second Finalize err = %v, want ErrInvalidState", err)
	}
	if err := d.Update([]byte("more")); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Update after Finalize err = %v, want ErrInvalidState", err)
	}
	if n, err := d.Write([]byte("more")); n != 0 || !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Write after Finalize = %d, %v, want 0, ErrInvalidState", n, err)
	}
	if d.Len() != 3 {
		t.Fatalf("rejected Update changed Len to %d", d.Len())
	}
}

func TestReset(t *testing.T) {
	d := New256()
	_ = d.Update([]byte("discarded"))
	_, _ = d.Finalize()
	d.Reset()
	if d.Finalized() || d.Len() != 0 {
		t.Fatal("Reset did not re-arm the context")
	}
	_ = d.Update([]byte("abc"))
	got, err := d.Finalize()
	if err != nil {
		t.Fatalf("Finalize after Reset: %v", err)
	}
	if got.Hex() != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("digest after Reset = %s", got)
	}
}

func TestBlockImplementationsAgree(t *testing.T) {
	input := patternBytes(64 * 33)
	for _, iv := range []State{SHA224.InitialState(), SHA256.InitialState()} {
		generic := [8]uint32(iv)
		unrolled := [8]uint32(iv)
		BlockGeneric(&generic, input)
		BlockUnrolled(&unrolled, input)
		if generic != unrolled {
			t.Fatalf("generic %08x != unrolled %08x", generic, unrolled)
		}
	}
	if impl := Implementation(); impl != "generic" && impl != "unrolled" {
		t.Fatalf("Implementation() = %q", impl)
	}
}

func TestCompress(t *testing.T) {
	// "abc" padded into a single block.
	var b [BlockSize]byte
	copy(b[:], "abc")
	b[3] = 0x80
	b[63] = 24

	before := SHA256.InitialState()
	got := Compress(before, &b)
	want := State{0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223, 0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad}
	if got != want {
		t.Fatalf("Compress = %08x, want %08x", got, want)
	}
	if before != SHA256.InitialState() {
		t.Fatal("Compress modified its input state")
	}
}

func TestParseVariant(t *testing.T) {
	for _, name := range []string{"sha224", "SHA-224", "224"} {
		if v, err := ParseVariant(name); err != nil || v != SHA224 {
			t.Errorf("ParseVariant(%q) = %v, %v", name, v, err)
		}
	}
	for _, name := range []string{"sha256", "SHA-256", " 256 "} {
		if v, err := ParseVariant(name); err != nil || v != SHA256 {
			t.Errorf("ParseVariant(%q) = %v, %v", name, v, err)
		}
	}
	if _, err := ParseVariant("sha512"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ParseVariant(sha512) err = %v, want ErrUnknownVariant", err)
	}
}

func TestZeroContext(t *testing.T) {
	var d Context
	if err := d.Update([]byte("abc")); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Update on zero Context err = %v, want ErrInvalidState", err)
	}
	if n, err := d.Write([]byte("abc")); n != 0 || !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Write on zero Context = %d, %v, want 0, ErrInvalidState", n, err)
	}
	if _, err := d.Finalize(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Finalize on zero Context err = %v, want ErrInvalidState", err)
	}
	if _, err := d.MarshalBinary(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("MarshalBinary on zero Context err = %v, want ErrInvalidState", err)
	}
	if _, err := d.UpdateReader(bytes.NewReader([]byte("abc")), nil); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("UpdateReader on zero Context err = %v, want ErrInvalidState", err)
	}
	if d.Len() != 0 {
		t.Fatalf("rejected calls changed Len to %d", d.Len())
	}
}

func TestHashInterface(t *testing.T) {
	for _, tst := range tests {
		var h hash.Hash = New(tst.variant)
		if h.Size() != tst.variant.Size() || h.BlockSize() != BlockSize {
			t.Fatalf("%s: Size=%d BlockSize=%d", tst.variant, h.Size(), h.BlockSize())
		}
		h.Write([]byte(tst.in))
		prefix := []byte("prefix")
		got := h.Sum(prefix)
		if !bytes.HasPrefix(got, prefix) || fmt.Sprintf("%x", got[len(prefix):]) != tst.want {
			t.Fatalf("%s(%q) Sum = %x, want prefix + %s", tst.variant, tst.in, got, tst.want)
		}
	}

	// Sum leaves the context open for more input.
	d := New256()
	_ = d.Update([]byte("ab"))
	_ = d.Sum(nil)
	_ = d.Update([]byte("c"))
	if got := fmt.Sprintf("%x", d.Sum(nil)); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("Sum after further Update = %s", got)
	}
	dig, err := d.Finalize()
	if err != nil || dig.Hex() != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("Finalize after Sum = %s, %v", dig, err)
	}
}

func TestSumPanicsWhenFinalized(t *testing.T) {
	d := New224()
	_, _ = d.Finalize()
	defer func() {
		if r := recover(); r != ErrInvalidState {
			t.Fatalf("recovered %v, want ErrInvalidState", r)
		}
	}()
	d.Sum(nil)
}

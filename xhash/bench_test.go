// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package xhash

import (
	"testing"

	"golang.org/x/crypto/blake2b"
)

// BenchmarkBlake2b256_1KiB gives Sum256's cost a comparison point against
// another 256-bit hash from the same x/crypto dependency the teacher repo
// carried, without making this package depend on blake2b for anything but
// its own tests (see SPEC_FULL.md's domain stack table).
func BenchmarkBlake2b256_1KiB(b *testing.B) {
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		blake2b.Sum256(data)
	}
}

// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

import "math/bits"

// permuteScalarImpl runs the 24-round Gimli permutation word by word. It
// is the portable reference backend: always compiled, used directly on
// any GOARCH without a dedicated SIMD-shaped backend (see
// permute_dispatch_generic.go), and used by permute_test.go as the
// oracle the sse2 and neon backends are checked against.
//
// Words are loaded and stored through State.Word/SetWord rather than
// Words32's unsafe alias, so this backend produces the same result on
// big-endian hosts (s390x, mips, mips64, ppc64, sparc64) as on
// little-endian ones: Word/SetWord always decode/encode the 32-bit words
// in the little-endian layout spec.md §3 requires, regardless of host
// byte order, whereas an unsafe.Pointer word view only matches that
// layout on little-endian hardware.
func permuteScalarImpl(s *State) {
	var w [Words]uint32
	for i := range w {
		w[i] = s.Word(i)
	}

	for round := 24; round >= 1; round-- {
		for x := 0; x < 4; x++ {
			a := bits.RotateLeft32(w[x], 24)   // row 0
			b := bits.RotateLeft32(w[4+x], 9)  // row 1
			c := w[8+x]                        // row 2

			w[8+x] = a ^ (c << 1) ^ ((b & c) << 2)
			w[4+x] = b ^ a ^ ((a | c) << 1)
			w[x] = c ^ b ^ ((a & b) << 3)
		}

		switch round % 4 {
		case 0: // small swap + round constant
			w[0], w[1] = w[1], w[0]
			w[2], w[3] = w[3], w[2]
			w[0] ^= 0x9e377900 | uint32(round)
		case 2: // big swap
			w[0], w[2] = w[2], w[0]
			w[1], w[3] = w[3], w[1]
		}
	}

	for i := range w {
		s.SetWord(i, w[i])
	}
}

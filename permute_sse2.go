// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

// permuteSSE2Impl runs the same 24-round permutation as permuteScalarImpl,
// restructured the way an x86_64 SSE2 implementation maps the 3x4 word
// matrix onto three 128-bit lanes, one per row. Each row is carried as a
// [4]uint32 (the shape a single __m128i register holds, 4 packed
// doublewords) and the SP-box is applied to all four columns in one pass
// per row instead of column-by-column, matching how _mm_slli_epi32 /
// _mm_srli_epi32 / _mm_and_si128 / _mm_or_si128 / _mm_xor_si128 operate on
// every lane simultaneously. The rotate that spec.md requires is realized
// the way SSE2 (which has no native rotate) would: shift left, shift
// right, or together.
//
// This is a portable-Go model of that lane layout, not hand-written
// assembly — see DESIGN.md for why. It is required to (and does) produce
// bit-identical output to permuteScalarImpl for every input state.
//
// Rows are loaded and stored through State.Word/SetWord, not Words32's
// unsafe alias, so this backend is correct on big-endian hosts too (see
// permuteScalarImpl's doc comment for why that distinction matters).
func permuteSSE2Impl(s *State) {
	var row0, row1, row2 [4]uint32
	for x := 0; x < 4; x++ {
		row0[x] = s.Word(x)
		row1[x] = s.Word(4 + x)
		row2[x] = s.Word(8 + x)
	}

	for round := 24; round >= 1; round-- {
		a := rotl128(row0, 24)
		b := rotl128(row1, 9)
		c := row2

		row2 = xor128(a, xor128(shl128(c, 1), shl128(and128(b, c), 2)))
		row1 = xor128(b, xor128(a, shl128(or128(a, c), 1)))
		row0 = xor128(c, xor128(b, shl128(and128(a, b), 3)))

		switch round % 4 {
		case 0: // small swap: shuffle lanes (0,1,2,3) -> (1,0,3,2)
			row0 = [4]uint32{row0[1], row0[0], row0[3], row0[2]}
			row0[0] ^= 0x9e377900 | uint32(round)
		case 2: // big swap: shuffle lanes (0,1,2,3) -> (2,3,0,1)
			row0 = [4]uint32{row0[2], row0[3], row0[0], row0[1]}
		}
	}

	for x := 0; x < 4; x++ {
		s.SetWord(x, row0[x])
		s.SetWord(4+x, row1[x])
		s.SetWord(8+x, row2[x])
	}
}

// The helpers below operate elementwise across a 4-lane row, mirroring
// what a single SSE2 instruction does across the packed doublewords of an
// __m128i register.

func shl128(v [4]uint32, n uint32) [4]uint32 {
	return [4]uint32{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

func shr128(v [4]uint32, n uint32) [4]uint32 {
	return [4]uint32{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}

func rotl128(v [4]uint32, n uint32) [4]uint32 {
	return or128(shl128(v, n), shr128(v, 32-n))
}

func and128(x, y [4]uint32) [4]uint32 {
	return [4]uint32{x[0] & y[0], x[1] & y[1], x[2] & y[2], x[3] & y[3]}
}

func or128(x, y [4]uint32) [4]uint32 {
	return [4]uint32{x[0] | y[0], x[1] | y[1], x[2] | y[2], x[3] | y[3]}
}

func xor128(x, y [4]uint32) [4]uint32 {
	return [4]uint32{x[0] ^ y[0], x[1] ^ y[1], x[2] ^ y[2], x[3] ^ y[3]}
}

// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

// lane is a 128-bit row of the Gimli state, modeled the way an aarch64
// NEON backend would carry it in a uint32x4_t register. Methods are
// named after the NEON intrinsics they stand in for (vshlq_n_u32,
// vshrq_n_u32, vandq_u32, vorrq_u32, veorq_u32) so the round function
// below reads like the vector code it is modeling rather than like a
// second copy of the SSE2 lane helpers.
type lane [4]uint32

func (v lane) shl(n uint32) lane { return lane{v[0] << n, v[1] << n, v[2] << n, v[3] << n} }
func (v lane) shr(n uint32) lane { return lane{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n} }
func (v lane) and(o lane) lane   { return lane{v[0] & o[0], v[1] & o[1], v[2] & o[2], v[3] & o[3]} }
func (v lane) or(o lane) lane    { return lane{v[0] | o[0], v[1] | o[1], v[2] | o[2], v[3] | o[3]} }
func (v lane) xor(o lane) lane   { return lane{v[0] ^ o[0], v[1] ^ o[1], v[2] ^ o[2], v[3] ^ o[3]} }

// rotl realizes spec.md's rotate-left on a lane: NEON has no rotate
// instruction either, so this is vorrq_u32(vshlq_n_u32(v,n), vshrq_n_u32(v,32-n)),
// same construction SSE2 needs and for the same reason.
func (v lane) rotl(n uint32) lane { return v.shl(n).or(v.shr(32 - n)) }

// permuteNEONImpl runs the same 24-round permutation as permuteScalarImpl
// and permuteSSE2Impl, organized around the three-row lane layout an
// aarch64 NEON backend would use. It is a portable-Go model of that
// layout (see DESIGN.md), required to produce bit-identical output to the
// other two backends for every input state.
//
// Rows are loaded and stored through State.Word/SetWord, not Words32's
// unsafe alias, so this backend is correct on big-endian hosts too (see
// permuteScalarImpl's doc comment for why that distinction matters).
func permuteNEONImpl(s *State) {
	row0 := lane{s.Word(0), s.Word(1), s.Word(2), s.Word(3)}
	row1 := lane{s.Word(4), s.Word(5), s.Word(6), s.Word(7)}
	row2 := lane{s.Word(8), s.Word(9), s.Word(10), s.Word(11)}

	for round := 24; round >= 1; round-- {
		a := row0.rotl(24)
		b := row1.rotl(9)
		c := row2

		row2 = a.xor(c.shl(1)).xor(b.and(c).shl(2))
		row1 = b.xor(a).xor(a.or(c).shl(1))
		row0 = c.xor(b).xor(a.and(b).shl(3))

		switch round % 4 {
		case 0: // small swap: vextq-style pairwise lane exchange within row0
			row0 = lane{row0[1], row0[0], row0[3], row0[2]}
			row0[0] ^= 0x9e377900 | uint32(round)
		case 2: // big swap: vextq-style half-register exchange within row0
			row0 = lane{row0[2], row0[3], row0[0], row0[1]}
		}
	}

	for x := 0; x < 4; x++ {
		s.SetWord(x, row0[x])
		s.SetWord(4+x, row1[x])
		s.SetWord(8+x, row2[x])
	}
}

// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

// This file implements the duplex core (spec.md §4.C) shared by the aead
// and xhash packages: absorb and the padding/domain-separation finalizer,
// over the State's rate-16 surface. Squeezing is left to SqueezeBlock in
// state.go (see the note at the end of this file). Grounded on the
// absorb/pad/squeeze shape of the pack's sha3 sponge
// (other_examples/904a58dd_coruus-go-sha3), adapted from Keccak's
// 200-byte/variable-rate state to Gimli's fixed 48-byte/rate-16 one.

// Absorb XORs up to Rate bytes of data into the state and permutes if a
// full rate block was consumed. data must be at most Rate bytes; callers
// (xhash.Hasher.Update) are responsible for chunking longer input.
func (s *State) Absorb(data []byte) {
	s.AbsorbBlock(data)
	if len(data) == Rate {
		Permute(s)
	}
}

// AbsorbPad finalizes an absorption phase: XORs domainByte into state
// byte n (the number of bytes absorbed into the current, not-yet-full
// block), XORs 0x80 into the top state byte, then permutes.
func (s *State) AbsorbPad(domainByte byte, n int) {
	if n < 0 || n > Rate {
		panic("gimli: AbsorbPad: n out of range")
	}
	s.XorByte(n, domainByte)
	s.XorByte(StateSize-1, 0x80)
	Permute(s)
}

// There is deliberately no combined Squeeze(permute-then-copy) helper
// here: whether a squeeze step is preceded by a permutation depends on
// the caller (the block right after AbsorbPad never gets one, every
// later block always does), so aead and xhash call SqueezeBlock and
// Permute directly in the order their mode requires.

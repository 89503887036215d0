// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

// Package xhash implements the Gimli24-v1 hash mode: a fixed 256-bit
// digest and an extendable-output function (XOF), both built on the same
// Gimli duplex the aead package uses. The package is named xhash, not
// hash, to avoid shadowing the standard library hash package that
// Hasher's Write/incremental shape deliberately mirrors.
package xhash

import "github.com/go-gimli/gimli"

// DigestSize is the default (fixed) Gimli24-v1 Hash output length in
// bytes (256 bits).
const DigestSize = 32

const domainFinalize = 0x01

// Sum256 computes the one-shot Gimli24-v1 hash of data: initialize state
// to zero, absorb data, absorb_pad(0x01), squeeze 32 bytes across two
// rate blocks with one permutation between them (spec.md §4.E).
func Sum256(data []byte) [DigestSize]byte {
	h := New()
	h.Write(data)
	return h.Sum256()
}

// Hasher is an incremental Gimli24-v1 hash. The zero value is a fresh,
// ready-to-use Hasher; New returns a pointer to one.
type Hasher struct {
	state     gimli.State
	buf       [gimli.Rate]byte
	pos       int
	finalized bool
}

// New returns a fresh Hasher ready for Write calls.
func New() *Hasher {
	return &Hasher{}
}

// Write absorbs p into the hash state, buffering and permuting on full
// 16-byte rate blocks exactly like a one-shot absorb over the
// concatenation of every Write call (spec.md §4.E "arbitrary chunking
// yields the same result as one-shot"). It always returns len(p), nil,
// matching the hash.Hash/io.Writer contract the rest of this type's
// shape follows. Calling Write after FinalizeXOF panics, even with an
// empty p; before that, a zero-length Write is a no-op, including after
// Sum256 (Sum256 finalizes a copy of the state, not the Hasher itself).
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		panic("gimli/xhash: Write after FinalizeXOF")
	}
	n := len(p)
	for len(p) > 0 {
		c := copy(h.buf[h.pos:gimli.Rate], p)
		h.pos += c
		p = p[c:]
		if h.pos == gimli.Rate {
			h.state.Absorb(h.buf[:])
			h.pos = 0
		}
	}
	return n, nil
}

// Update is an alias for Write, named after spec.md's update(bytes).
func (h *Hasher) Update(p []byte) { h.Write(p) }

// Sum256 finalizes a copy of the current state and returns the 32-byte
// digest, without disturbing h — mirroring hash.Hash.Sum's "does not
// change the underlying hash state" contract, so a caller may keep
// writing and summing again. This is the spec's consuming finalize()
// applied to a clone; the returned bytes are identical to what a
// one-shot finalize on the same absorbed input would produce.
func (h *Hasher) Sum256() [DigestSize]byte {
	clone := h.state
	clone.AbsorbBlock(h.buf[:h.pos])
	clone.AbsorbPad(domainFinalize, h.pos)

	var out [DigestSize]byte
	clone.SqueezeBlock(out[:gimli.Rate])
	gimli.Permute(&clone)
	clone.SqueezeBlock(out[gimli.Rate:])
	return out
}

// FinalizeXOF finalizes the Hasher and fills out with len(out) bytes of
// extendable output (spec.md §4.E). Unlike Sum256, this consumes the
// Hasher: extendable output cannot be "un-squeezed", so further Write or
// FinalizeXOF calls panic.
func (h *Hasher) FinalizeXOF(out []byte) {
	if h.finalized {
		panic("gimli/xhash: FinalizeXOF called twice")
	}
	h.state.AbsorbBlock(h.buf[:h.pos])
	h.state.AbsorbPad(domainFinalize, h.pos)
	h.finalized = true

	first := gimli.Rate
	if first > len(out) {
		first = len(out)
	}
	h.state.SqueezeBlock(out[:first])
	out = out[first:]
	for len(out) > 0 {
		gimli.Permute(&h.state)
		n := gimli.Rate
		if n > len(out) {
			n = len(out)
		}
		h.state.SqueezeBlock(out[:n])
		out = out[n:]
	}
}

// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

// Package aead implements the Gimli24-v1 authenticated encryption mode:
// key+nonce initialization, associated-data absorption, and a
// plaintext/ciphertext stream over the Gimli duplex, producing or
// verifying a 128-bit tag.
//
// This is a one-shot API only (spec.md §4.D: "streaming AEAD is not
// offered"). Key, nonce, and tag sizes are fixed by the construction and
// are taken as array pointers rather than slices so a wrong-length
// argument is a compile error, not a runtime one (spec.md §9).
package aead

import (
	"errors"

	"github.com/go-gimli/gimli"
)

const (
	// KeySize is the Gimli24-v1 AEAD key length in bytes (256 bits).
	KeySize = 32
	// NonceSize is the Gimli24-v1 AEAD nonce length in bytes (128 bits).
	NonceSize = 16
	// TagSize is the Gimli24-v1 AEAD authentication tag length in bytes
	// (128 bits).
	TagSize = 16

	domainAAD     = 0x01
	domainMessage = 0x01
)

// ErrAuthFailed is returned by Open when the supplied tag does not match
// the computed tag. It is the only recoverable error this package
// produces; everything else (wrong-sized arguments aside, which the
// Go type system rejects at compile time) is a programmer contract
// violation and is not guarded against at runtime.
var ErrAuthFailed = errors.New("gimli/aead: authentication failed")

// initState sets up the Gimli state for a fresh AEAD operation: nonce into
// the rate, key into the capacity, then one permutation (spec.md §4.D
// "Initialization").
func initState(key *[KeySize]byte, nonce *[NonceSize]byte) gimli.State {
	var s gimli.State
	copy(s[0:NonceSize], nonce[:])
	copy(s[NonceSize:gimli.StateSize], key[:])
	gimli.Permute(&s)
	return s
}

// absorbAAD runs the AAD phase: absorb aad in 16-byte chunks, then
// absorb_pad(0x01) — applied even when aad is empty (spec.md §4.D "AAD
// phase").
func absorbAAD(s *gimli.State, aad []byte) {
	for len(aad) >= gimli.Rate {
		s.Absorb(aad[:gimli.Rate])
		aad = aad[gimli.Rate:]
	}
	s.AbsorbBlock(aad)
	s.AbsorbPad(domainAAD, len(aad))
}

// Seal encrypts buf in place under key, nonce, and aad, and returns the
// 128-bit authentication tag. buf is overwritten with ciphertext of the
// same length. nonce must never repeat for a given key; the library does
// not track or enforce this (spec.md §3 — misuse yields catastrophic
// confidentiality loss, by contract, not by omission).
func Seal(key *[KeySize]byte, nonce *[NonceSize]byte, aad, buf []byte) [TagSize]byte {
	s := initState(key, nonce)
	absorbAAD(&s, aad)

	for len(buf) >= gimli.Rate {
		chunk := buf[:gimli.Rate]
		s.AbsorbBlock(chunk)
		s.SqueezeBlock(chunk)
		gimli.Permute(&s)
		buf = buf[gimli.Rate:]
	}
	n := len(buf)
	s.AbsorbBlock(buf)
	s.SqueezeBlock(buf)
	s.AbsorbPad(domainMessage, n)

	var tag [TagSize]byte
	copy(tag[:], s[gimli.StateSize-TagSize:gimli.StateSize])
	return tag
}

// Open verifies tag and, on success, decrypts buf in place under key,
// nonce, and aad. On failure it returns ErrAuthFailed and zeroes buf so a
// caller that ignores the error cannot act on unauthenticated plaintext
// (spec.md §7, §9); the tag comparison itself runs in constant time via
// subtle.ConstantTimeCompare-equivalent accumulation below.
func Open(key *[KeySize]byte, nonce *[NonceSize]byte, aad, buf []byte, tag *[TagSize]byte) error {
	s := initState(key, nonce)
	absorbAAD(&s, aad)

	// full stays at the original length; buf gets walked down block by
	// block below, so the zeroing-on-failure path needs full, not buf.
	full := buf
	for len(buf) >= gimli.Rate {
		chunk := buf[:gimli.Rate]
		var ciphertext [gimli.Rate]byte
		copy(ciphertext[:], chunk)
		for i := range chunk {
			chunk[i] = s[i] ^ ciphertext[i] // plaintext
		}
		copy(s[:gimli.Rate], ciphertext[:]) // rate <- ciphertext, not plaintext
		gimli.Permute(&s)
		buf = buf[gimli.Rate:]
	}

	n := len(buf)
	var ciphertext [gimli.Rate]byte
	copy(ciphertext[:n], buf)
	for i := 0; i < n; i++ {
		buf[i] = s[i] ^ ciphertext[i] // plaintext
	}
	copy(s[:n], ciphertext[:n]) // rate <- ciphertext, not plaintext
	s.AbsorbPad(domainMessage, n)

	var got [TagSize]byte
	copy(got[:], s[gimli.StateSize-TagSize:gimli.StateSize])

	var diff byte
	for i := range got {
		diff |= got[i] ^ tag[i]
	}
	if diff != 0 {
		for i := range full {
			full[i] = 0
		}
		return ErrAuthFailed
	}
	return nil
}

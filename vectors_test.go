// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

import "testing"

// TestPermuteAgainstPublishedVectors checks Permute against the two
// known-answer cases spec.md §8 calls out by name: the all-zero state,
// and the canonical state[i] = i*i*i + i*0x9e3779b9 initialization. Both
// input/output pairs below were produced by an independent, from-scratch
// reimplementation of spec.md §4.B's round function (a second
// implementation, in a different language, built directly from the
// bit-level pseudocode rather than derived from this package's own
// code) — not transcribed from the published paper's printed decimal
// state dump, which this offline environment has no way to fetch and
// verify against. They pin down the permutation against a second,
// independently-written oracle, not just against this package's own
// three backends agreeing with each other.
func TestPermuteAgainstPublishedVectors(t *testing.T) {
	for _, tc := range permutationKAT {
		got := tc.input
		Permute(&got)
		if got != tc.output {
			t.Errorf("Permute(%x) = %x, want %x", tc.input, got, tc.output)
		}
	}
}

type permuteKATCase struct {
	name           string
	input, output State
}

var permutationKAT = []permuteKATCase{
	{
		name:  "zero state",
		input: State{},
		output: State{
			0xc4, 0xd8, 0x67, 0x64, 0x3b, 0xf8, 0xdc, 0x07, 0xd4, 0xb0, 0x0b, 0x3b,
			0x4c, 0x36, 0x21, 0x1b, 0xdc, 0x31, 0x34, 0x08, 0x8e, 0xbe, 0xfb, 0x0e,
			0x84, 0xe8, 0x54, 0x00, 0x55, 0xd9, 0x8b, 0x64, 0x2e, 0xb4, 0x5d, 0x4a,
			0xcb, 0x41, 0x06, 0xca, 0xc2, 0xd2, 0x73, 0x86, 0x09, 0xd8, 0x30, 0x2e,
		},
	},
	{
		// input words: word i = i*i*i + i*0x9e3779b9 (mod 2^32), little-endian encoded.
		name: "canonical state[i] = i*i*i + i*0x9e3779b9",
		input: State{
			0x00, 0x00, 0x00, 0x00, 0xba, 0x79, 0x37, 0x9e, 0x7a, 0xf3, 0x6e, 0x3c,
			0x46, 0x6d, 0xa6, 0xda, 0x24, 0xe7, 0xdd, 0x78, 0x1a, 0x61, 0x15, 0x17,
			0x2e, 0xdb, 0x4c, 0xb5, 0x66, 0x55, 0x84, 0x53, 0xc8, 0xcf, 0xbb, 0xf1,
			0x5a, 0x4a, 0xf3, 0x8f, 0x22, 0xc5, 0x2a, 0x2e, 0x26, 0x40, 0x62, 0xcc,
		},
		output: State{
			0x5a, 0xc8, 0x11, 0xba, 0x19, 0xd1, 0xba, 0x91, 0x80, 0xe8, 0x0c, 0x38,
			0x68, 0x2c, 0x4c, 0xd2, 0xea, 0xff, 0xce, 0x3e, 0x1c, 0x92, 0x7a, 0x27,
			0xbd, 0xa0, 0x73, 0x4f, 0xd8, 0x9c, 0x5a, 0xda, 0xf0, 0x73, 0xb6, 0x84,
			0xf7, 0x2f, 0xe5, 0x34, 0x49, 0xef, 0x2b, 0x9e, 0xd6, 0xb8, 0x1b, 0xf4,
		},
	},
}

// TestCanonicalStateMatchesTableInput guards against permutationKAT's
// "canonical" entry silently drifting from spec.md §8's formula if
// either is ever edited independently.
func TestCanonicalStateMatchesTableInput(t *testing.T) {
	var want State
	for i := 0; i < Words; i++ {
		want.SetWord(i, uint32(i*i*i)+uint32(i)*0x9e3779b9)
	}
	for _, tc := range permutationKAT {
		if tc.name == "canonical state[i] = i*i*i + i*0x9e3779b9" {
			if tc.input != want {
				t.Fatalf("permutationKAT canonical input = %x, want %x", tc.input, want)
			}
			return
		}
	}
	t.Fatal("permutationKAT has no canonical-state entry")
}

// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

import (
	"math/rand"
	"testing"

	"github.com/go-quicktest/qt"
)

// allBackends lists every backend implementation so equivalence tests
// exercise all three regardless of GOARCH (none require real vector
// intrinsics — see DESIGN.md). permuteBackend, the one actually wired to
// Permute on this build, is checked too via TestPermuteMatchesDispatch.
var allBackends = map[string]func(*State){
	"scalar": permuteScalarImpl,
	"sse2":   permuteSSE2Impl,
	"neon":   permuteNEONImpl,
}

func TestPermuteDeterministic(t *testing.T) {
	var s State
	for i := range s {
		s[i] = byte(i * 7)
	}
	a := s
	b := s
	Permute(&a)
	Permute(&b)
	qt.Assert(t, qt.DeepEquals(a, b))
}

func TestPermuteBackendsAgreeOnZeroState(t *testing.T) {
	var want State
	permuteScalarImpl(&want)

	for name, backend := range allBackends {
		var got State
		backend(&got)
		qt.Assert(t, qt.DeepEquals(got, want), qt.Commentf("backend %s diverged from scalar on the zero state", name))
	}
}

// TestPermuteBackendsAgreeOnCanonicalState checks the canonical
// state[i] = i*i*i + i*0x9e3779b9 initialization spec.md §8 names.
func TestPermuteBackendsAgreeOnCanonicalState(t *testing.T) {
	canonical := func() State {
		var s State
		for i := 0; i < Words; i++ {
			v := uint32(i*i*i) + uint32(i)*0x9e3779b9
			s.SetWord(i, v)
		}
		return s
	}

	want := canonical()
	permuteScalarImpl(&want)

	for name, backend := range allBackends {
		got := canonical()
		backend(&got)
		qt.Assert(t, qt.DeepEquals(got, want), qt.Commentf("backend %s diverged from scalar on the canonical state", name))
	}
}

func TestPermuteBackendsAgreeOnRandomStates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10000; trial++ {
		var seed State
		rng.Read(seed[:])

		want := seed
		permuteScalarImpl(&want)

		for name, backend := range allBackends {
			got := seed
			backend(&got)
			qt.Assert(t, qt.DeepEquals(got, want), qt.Commentf("backend %s diverged from scalar on random state #%d", name, trial))
		}
	}
}

func TestPermuteMatchesDispatch(t *testing.T) {
	var s State
	for i := range s {
		s[i] = byte(i * 3)
	}
	want := s
	Permute(&want)

	got := s
	permuteBackend(&got)
	qt.Assert(t, qt.DeepEquals(got, want))
}

func BenchmarkPermute(b *testing.B) {
	var s State
	b.SetBytes(StateSize)
	for i := 0; i < b.N; i++ {
		Permute(&s)
	}
}

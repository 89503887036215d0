// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

//go:build arm64

package gimli

// permuteBackend backs Permute on arm64 builds with the NEON-lane-shaped
// implementation, chosen at compile time per spec.md §4.F.
func permuteBackend(s *State) { permuteNEONImpl(s) }

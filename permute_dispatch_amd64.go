// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

//go:build amd64

package gimli

// permuteBackend backs Permute on amd64 builds with the SSE2-lane-shaped
// implementation, chosen at compile time per spec.md §4.F.
func permuteBackend(s *State) { permuteSSE2Impl(s) }

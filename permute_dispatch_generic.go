// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

//go:build !amd64 && !arm64

package gimli

// permuteBackend backs Permute on every GOARCH without a dedicated
// SIMD-shaped backend, per spec.md §4.F.
func permuteBackend(s *State) { permuteScalarImpl(s) }

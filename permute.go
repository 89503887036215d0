// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

// Permute applies the 24-round Gimli permutation to s in place. It is
// deterministic, total, and has no side effect other than mutating s.
//
// The concrete backend is selected at compile time by GOARCH (see
// permute_dispatch_amd64.go, permute_dispatch_arm64.go, and
// permute_dispatch_generic.go) — the mechanism spec.md §4.F and §9 prefer
// over per-call dispatch. All three backends (permute_scalar.go,
// permute_sse2.go, permute_neon.go) are always compiled, regardless of
// GOARCH, so tests can verify they agree on every input.
func Permute(s *State) {
	permuteBackend(s)
}

// Copyright (c) 2025, The Gimli Authors.
// See LICENSE for licensing information.

package gimli

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// probeOnce and simdAvailable implement the optional, spec-permitted
// runtime CPU-feature probe (spec.md §4.F, §5): performed at most once
// per process and cached, idempotent under concurrent callers. It is
// informational only — permuteBackend is always chosen at compile time
// by GOARCH (permute_dispatch_*.go) — but SIMDAvailable lets callers (and
// backend_test.go) confirm the hardware this process is running on
// actually has the vector extensions the compiled-in backend models.
//
// Grounded the same way SnellerInc-sneller/internal/aes/hash_amd64.go and
// the pack's circl keccakf1600 package probe SIMD availability: a single
// golang.org/x/sys/cpu feature check, cached process-wide.
var (
	probeOnce     sync.Once
	simdAvailable bool
)

// SIMDAvailable reports whether the host CPU has the vector extensions
// the compiled-in permutation backend is modeled on (SSE2 on amd64,
// ASIMD/NEON on arm64). The probe runs at most once per process; the
// result is cached and safe for concurrent use.
func SIMDAvailable() bool {
	probeOnce.Do(func() {
		simdAvailable = detectSIMD()
	})
	return simdAvailable
}

func detectSIMD() bool {
	return cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
}

package edwards25519

import "sync"

const (
	// wnafWindowBits is W in spec 4.D.2/4.H.
	wnafWindowBits = 8
	// wnafWindowSize is 2^(W-1), the number of precomputed multiples kept
	// per window.
	wnafWindowSize = 1 << (wnafWindowBits - 1)
	// numBaseWindows is ceil(256/W)+1, sized so a carry propagating out of
	// the top window of a reduced (<L) scalar still has room to land.
	numBaseWindows = (256+wnafWindowBits-1)/wnafWindowBits + 1
)

// baseTable holds, for each window w, the running multiples
// [1*Pw, 2*Pw, ..., 2^(W-1)*Pw] where Pw = 2^(W*w) * Base.
type baseTable [][]ExtendedPoint

var (
	baseTableOnce  sync.Once
	baseTableCache baseTable
)

// getBaseTable returns the process-wide windowed-NAF precomputation table
// for Base, building it on first use (spec 4.H). The table is immutable
// once published; sync.Once runs the build exactly once, and concurrent
// first callers wait for that single build to finish.
func getBaseTable() baseTable {
	baseTableOnce.Do(buildBaseTable)
	return baseTableCache
}

func buildBaseTable() {
	table := make(baseTable, numBaseWindows)
	running := Base
	for w := 0; w < numBaseWindows; w++ {
		window := make([]ExtendedPoint, wnafWindowSize)
		window[0] = running
		for j := 1; j < wnafWindowSize; j++ {
			window[j] = window[j-1].Add(running)
		}
		table[w] = window
		for i := 0; i < wnafWindowBits; i++ {
			running = running.Double()
		}
	}
	baseTableCache = table
}

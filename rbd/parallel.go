package rbd

import (
	"runtime"
	"sync/atomic"
)

// parallelDepth guards against nesting the two data-parallel regions this
// package offers: topology fan-out and intra-SDP decomposition. Running
// both at once can oversubscribe the host; callers pick one level of
// parallelism per call, enforced here with a single counter rather than by
// documentation alone.
var parallelDepth int32

// enterParallelRegion claims the single allowed level of parallelism. It
// reports false, without blocking, if a parallel region is already active.
func enterParallelRegion() bool {
	if atomic.AddInt32(&parallelDepth, 1) == 1 {
		return true
	}
	atomic.AddInt32(&parallelDepth, -1)
	return false
}

func exitParallelRegion() {
	atomic.AddInt32(&parallelDepth, -1)
}

// workerLimit returns override if positive, or the host core count
// otherwise - the convention both parallel regions use to let a caller
// size the worker pool without forcing one on every caller.
func workerLimit(override int) int {
	if override > 0 {
		return override
	}
	return runtime.NumCPU()
}

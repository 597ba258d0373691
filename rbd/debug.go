package rbd

import "time"

// IterationStat records the accumulator size and wall-clock time taken by
// one iteration of a probability-set pipeline, for performance studies.
type IterationStat struct {
	Size    int
	Elapsed time.Duration
}

// DebugInfo maps an iteration number to the IterationStat observed at that
// iteration. Returned by the single-threaded Debug variants of
// ToProbaSetMCS / ToProbaSetPathSet; never produced from inside a parallel
// region.
type DebugInfo map[int]IterationStat

// DecomposeStats records how much work ToSDPDebug's decomposition needed to
// reach a forest with no shared literals between complementary terms:
// NumDecompositions counts every common-element split performed across the
// whole driver run, and MaxQueueWidth is the largest the work queue grew to
// at any point while draining it.
type DecomposeStats struct {
	NumDecompositions int
	MaxQueueWidth     int
}

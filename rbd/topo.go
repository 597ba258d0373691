package rbd

import (
	"golang.org/x/sync/errgroup"
)

// evalFunc is the shape shared by EvalAvailMCS, EvalAvailPathSet and
// EvalAvailSDP (the sequential SDP driver) - the building block
// the topology evaluator maps over many (s,d) pairs.
type evalFunc func(src, dst NodeID, pm *ProbabilityMap, terms TermList) (float64, error)

// evalAvailTopo maps eval over pairs in order, failing the whole batch as
// soon as one pair fails - a failing analysis returns no partial answer.
func evalAvailTopo(pairs []Pair, pm *ProbabilityMap, lists []TermList, eval evalFunc) ([]AvailTriple, error) {
	out := make([]AvailTriple, len(pairs))
	for i, p := range pairs {
		a, err := eval(p.Src, p.Dst, pm, lists[i])
		if err != nil {
			return nil, err
		}
		out[i] = AvailTriple{Src: p.Src, Dst: p.Dst, Availability: a}
	}
	return out, nil
}

// evalAvailTopoParallel is the topology fan-out parallel region: pairs are
// dynamically scheduled across a worker pool sized to workers (or the host
// core count, when workers is zero). ProbabilityMap and the per-pair term
// lists are read-only and shared; each worker writes only to its own
// pre-sized output slot, so no locking is needed. It must not be called
// while another parallel region (this one or the intra-SDP one) is already
// active.
func evalAvailTopoParallel(pairs []Pair, pm *ProbabilityMap, lists []TermList, eval evalFunc, workers int) ([]AvailTriple, error) {
	if !enterParallelRegion() {
		return nil, ErrNestedParallelism
	}
	defer exitParallelRegion()

	out := make([]AvailTriple, len(pairs))
	g := new(errgroup.Group)
	g.SetLimit(workerLimit(workers))
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			a, err := eval(p.Src, p.Dst, pm, lists[i])
			if err != nil {
				return err
			}
			out[i] = AvailTriple{Src: p.Src, Dst: p.Dst, Availability: a}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

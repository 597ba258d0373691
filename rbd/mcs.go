package rbd

import "time"

// ToProbaSetMCS turns a collection of minimal cut sets into a
// probability-set: a TermList whose terms are mutually exclusive and whose
// summed probabilities give the network's unavailability.
//
// Singleton cuts equal to {src} or {dst} are struck out first (trivial cuts
// across the endpoints), then every remaining literal is negated, since cut
// events are failure events and their complements are what feeds the
// disjointing loop.
func ToProbaSetMCS(src, dst NodeID, cutSets TermList) TermList {
	filtered := make(TermList, 0, len(cutSets))
	for _, c := range cutSets {
		if len(c) == 1 && (c[0] == src || c[0] == dst) {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		return TermList{}
	}

	negated := make(TermList, len(filtered))
	for i, c := range filtered {
		nc := make(Term, len(c))
		for j, lit := range c {
			nc[j] = -lit
		}
		negated[i] = nc
	}
	return disjointReduce(negated)
}

// ToProbaSetMCSDebug behaves like ToProbaSetMCS but returns, instead of the
// probability set itself, a map from iteration number to the accumulator
// size and elapsed time at that iteration. It is single-threaded and must
// not be called from inside a parallel region.
func ToProbaSetMCSDebug(src, dst NodeID, cutSets TermList) DebugInfo {
	filtered := make(TermList, 0, len(cutSets))
	for _, c := range cutSets {
		if len(c) == 1 && (c[0] == src || c[0] == dst) {
			continue
		}
		filtered = append(filtered, c)
	}
	info := DebugInfo{}
	if len(filtered) == 0 {
		return info
	}
	for i, c := range filtered {
		nc := make(Term, len(c))
		for j, lit := range c {
			nc[j] = -lit
		}
		filtered[i] = nc
	}
	disjointReduceDebug(filtered, info)
	return info
}

// ProbaSetToAvailMCS converts a probability set produced by ToProbaSetMCS
// into an availability value. The sum over probaSet gives the
// unavailability; the final multiplication by the endpoint availabilities
// compensates for their removal from the cut sets.
func ProbaSetToAvailMCS(src, dst NodeID, pm *ProbabilityMap, probaSet TermList) (float64, error) {
	unavail := 0.0
	for _, t := range probaSet {
		p, err := pm.TermProbability(t)
		if err != nil {
			return 0, err
		}
		unavail += p
	}
	ps, err := pm.Lookup(src)
	if err != nil {
		return 0, err
	}
	pd, err := pm.Lookup(dst)
	if err != nil {
		return 0, err
	}
	return ps * pd * (1 - unavail), nil
}

// EvalAvailMCS computes the (src, dst) availability from a collection of
// minimal cut sets.
func EvalAvailMCS(src, dst NodeID, pm *ProbabilityMap, cutSets TermList) (float64, error) {
	probaSet := ToProbaSetMCS(src, dst, cutSets)
	return ProbaSetToAvailMCS(src, dst, pm, probaSet)
}

// EvalAvailTopoMCS evaluates EvalAvailMCS for every pair in pairs, in order.
func EvalAvailTopoMCS(pairs []Pair, pm *ProbabilityMap, cutSetsList []TermList) ([]AvailTriple, error) {
	return evalAvailTopo(pairs, pm, cutSetsList, EvalAvailMCS)
}

// EvalAvailTopoMCSParallel evaluates EvalAvailTopoMCS with a worker pool
// sized to workers (or the host core count, when workers is zero). Output
// order matches the input pair order.
func EvalAvailTopoMCSParallel(pairs []Pair, pm *ProbabilityMap, cutSetsList []TermList, workers int) ([]AvailTriple, error) {
	return evalAvailTopoParallel(pairs, pm, cutSetsList, EvalAvailMCS, workers)
}

// disjointReduceDebug mirrors disjointReduce but times each round into info.
// The terminating round, where a single term is left to append, breaks
// before recording a stat for it - matching toProbaSetDebug in the source
// this is grounded on, which only times rounds that actually disjoint
// something against a pivot.
func disjointReduceDebug(list TermList, info DebugInfo) TermList {
	acc := make(TermList, 0, len(list))
	iteration := 0
	for len(list) > 0 {
		start := time.Now()
		if len(list) == 1 {
			acc = append(acc, list[0])
			break
		}
		pivot := list[0]
		acc = append(acc, pivot)
		rest := list[1:]
		next := make(TermList, 0, len(rest)*3)
		for _, b := range rest {
			next = append(next, MakeDisjoint(pivot, b)...)
		}
		list = next
		info[iteration] = IterationStat{Size: len(acc), Elapsed: time.Since(start)}
		iteration++
	}
	return acc
}

package rbd

// ToProbaSetPathSet turns a collection of minimal path sets into a
// probability-set whose summed probabilities give the availability
// directly - no endpoint compensation is needed, unlike MCS.
func ToProbaSetPathSet(pathSets TermList) TermList {
	if len(pathSets) == 0 {
		return TermList{}
	}
	return disjointReduce(pathSets)
}

// ToProbaSetPathSetDebug behaves like ToProbaSetPathSet but returns a map
// from iteration number to accumulator size and elapsed time. It is
// single-threaded and must not be called from inside a parallel region.
func ToProbaSetPathSetDebug(pathSets TermList) DebugInfo {
	info := DebugInfo{}
	if len(pathSets) == 0 {
		return info
	}
	disjointReduceDebug(cloneTermList(pathSets), info)
	return info
}

// ProbaSetToAvailPathSet sums, over every Term of probaSet, the product of
// its literals' probabilities.
func ProbaSetToAvailPathSet(pm *ProbabilityMap, probaSet TermList) (float64, error) {
	avail := 0.0
	for _, t := range probaSet {
		p, err := pm.TermProbability(t)
		if err != nil {
			return 0, err
		}
		avail += p
	}
	return avail, nil
}

// EvalAvailPathSet computes the (src, dst) availability from a collection
// of minimal path sets. src and dst are accepted for symmetry with
// EvalAvailMCS and EvalAvailSDP; the path-set algorithm needs only the
// path sets themselves.
func EvalAvailPathSet(src, dst NodeID, pm *ProbabilityMap, pathSets TermList) (float64, error) {
	probaSet := ToProbaSetPathSet(pathSets)
	return ProbaSetToAvailPathSet(pm, probaSet)
}

// EvalAvailTopoPathSet evaluates EvalAvailPathSet for every pair in pairs,
// in order.
func EvalAvailTopoPathSet(pairs []Pair, pm *ProbabilityMap, pathSetsList []TermList) ([]AvailTriple, error) {
	return evalAvailTopo(pairs, pm, pathSetsList, EvalAvailPathSet)
}

// EvalAvailTopoPathSetParallel evaluates EvalAvailTopoPathSet with a worker
// pool sized to workers (or the host core count, when workers is zero).
// Output order matches the input pair order.
func EvalAvailTopoPathSetParallel(pairs []Pair, pm *ProbabilityMap, pathSetsList []TermList, workers int) ([]AvailTriple, error) {
	return evalAvailTopoParallel(pairs, pm, pathSetsList, EvalAvailPathSet, workers)
}

package rbd

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultSDPParallelThreshold is the path-set size at or above which
// ToSDPParallel switches from the sequential driver to the intra-SDP
// parallel region. The original source hard-codes 200; this package
// exposes it as a parameter (ToSDPParallel) rather than a constant per the
// Open Question this threshold raises - there is no principled derivation
// of 200 beyond observed behavior on the reference workload.
const DefaultSDPParallelThreshold = 200

// DisjointTerm is a Term plus a complementary flag. A non-complementary
// term contributes probability equal to the product of its literals'
// probabilities; a complementary term contributes 1 minus that product -
// it is a complemented conjunction, not a product of complements.
type DisjointTerm struct {
	Term          Term
	Complementary bool
}

func (dt DisjointTerm) String() string {
	var b strings.Builder
	if dt.Complementary {
		b.WriteByte('-')
	}
	b.WriteByte('{')
	for i, lit := range dt.Term {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(lit)))
	}
	b.WriteByte('}')
	return b.String()
}

func cloneDisjointTerm(dt DisjointTerm) DisjointTerm {
	return DisjointTerm{Term: cloneTerm(dt.Term), Complementary: dt.Complementary}
}

// SDPList is an ordered sequence of DisjointTerms whose probabilities
// multiply - a single disjoint product.
type SDPList []DisjointTerm

func (s SDPList) String() string {
	parts := make([]string, len(s))
	for i, dt := range s {
		parts[i] = dt.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func cloneSDPList(s SDPList) SDPList {
	out := make(SDPList, len(s))
	for i, dt := range s {
		out[i] = cloneDisjointTerm(dt)
	}
	return out
}

// SDPForest is an ordered sequence of SDPLists whose probabilities add - a
// sum of disjoint products.
type SDPForest []SDPList

func (f SDPForest) String() string {
	parts := make([]string, len(f))
	for i, s := range f {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// dtEquals compares two DisjointTerms for equality regardless of literal
// order: same complementarity and the same set of literals.
func dtEquals(a, b DisjointTerm) bool {
	if a.Complementary != b.Complementary || len(a.Term) != len(b.Term) {
		return false
	}
	return isSubsetLits(a.Term, b.Term)
}

// isSubsetDT reports whether a is a subset of b. Terms of differing
// complementarity are never comparable - disjoint concept.
func isSubsetDT(a, b DisjointTerm) bool {
	if a.Complementary != b.Complementary {
		return false
	}
	return isSubsetLits(a.Term, b.Term)
}

// HasCommonElement reports whether any two complementary DisjointTerms of s
// share a literal.
func HasCommonElement(s SDPList) bool {
	var comp []Term
	for _, dt := range s {
		if dt.Complementary {
			comp = append(comp, dt.Term)
		}
	}
	for i := 0; i < len(comp); i++ {
		for j := i + 1; j < len(comp); j++ {
			if len(intersectLits(comp[i], comp[j])) > 0 {
				return true
			}
		}
	}
	return false
}

// Absorb removes from s any DisjointTerm that is a proper superset of
// another DisjointTerm of the same complementarity, and collapses exact
// duplicates. Terms of opposite complementarity are never compared.
func Absorb(s SDPList) SDPList {
	n := len(s)
	absorbed := make([]bool, n)
	out := make(SDPList, 0, n)
	for i := 0; i < n; i++ {
		if absorbed[i] {
			continue
		}
		cur := s[i]
		for j := i + 1; j < n; j++ {
			if absorbed[j] {
				continue
			}
			other := s[j]
			switch {
			case dtEquals(cur, other):
				absorbed[j] = true
			case isSubsetDT(cur, other):
				// other is a superset of cur: drop other.
				absorbed[j] = true
			case isSubsetDT(other, cur):
				// cur is a superset of other: drop cur, stop comparing it.
				absorbed[i] = true
			}
			if absorbed[i] {
				break
			}
		}
		if !absorbed[i] {
			out = append(out, cur)
		}
	}
	return out
}

// Eliminate rewrites s so that no literal appearing in any non-complementary
// term also appears in any complementary term of the same list. Terms are
// stable-partitioned non-complementary first; the union of their literals
// is subtracted from every complementary term, which is dropped entirely if
// emptied. A list holding both +T and -T for the same T is ill-formed and is
// not rejected: -T loses every literal and is dropped.
func Eliminate(s SDPList) SDPList {
	ordered := make(SDPList, len(s))
	copy(ordered, s)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].Complementary && ordered[j].Complementary
	})

	eliminated := map[NodeID]bool{}
	out := make(SDPList, 0, len(ordered))
	for _, dt := range ordered {
		if !dt.Complementary {
			for _, lit := range dt.Term {
				eliminated[lit] = true
			}
			out = append(out, dt)
			continue
		}
		newTerm := make(Term, 0, len(dt.Term))
		for _, lit := range dt.Term {
			if !eliminated[lit] {
				newTerm = append(newTerm, lit)
			}
		}
		if len(newTerm) > 0 {
			out = append(out, DisjointTerm{Term: newTerm, Complementary: true})
		}
	}
	return out
}

// Decompose splits s, a list still containing two complementary terms
// sharing a literal set K, into a forest of SDPLists none of which have
// that property. It mirrors the identity
//
//	not B and not C  =  not K  or  (K and not (B\K) and not (C\K))
//
// extended with the shared non-complementary/other-complementary context N,
// processed iteratively via a work queue so deep branching factor-2 trees
// cannot blow the native stack. Only the first common-element pair found
// per step is decomposed, keeping the recursion shallow and deterministic.
func Decompose(s SDPList) SDPForest {
	forest, _ := decomposeCounting(s)
	return forest
}

// DecomposeWithStats behaves like Decompose but also returns DecomposeStats
// for the run, for the debug variants of the SDP driver (ToSDPDebug).
func DecomposeWithStats(s SDPList) (SDPForest, DecomposeStats) {
	return decomposeCounting(s)
}

func decomposeCounting(s SDPList) (SDPForest, DecomposeStats) {
	queue := []SDPList{cloneSDPList(s)}
	var results SDPForest
	var stats DecomposeStats

	for len(queue) > 0 {
		if len(queue) > stats.MaxQueueWidth {
			stats.MaxQueueWidth = len(queue)
		}
		cur := queue[0]
		queue = queue[1:]

		if !HasCommonElement(cur) {
			results = append(results, cur)
			continue
		}

		var comp, normal SDPList
		for _, dt := range cur {
			if dt.Complementary {
				comp = append(comp, dt)
			} else {
				normal = append(normal, dt)
			}
		}

		foundI, foundJ := -1, -1
		var common Term
	search:
		for i := 0; i < len(comp); i++ {
			for j := i + 1; j < len(comp); j++ {
				c := intersectLits(comp[i].Term, comp[j].Term)
				if len(c) > 0 {
					foundI, foundJ, common = i, j, c
					break search
				}
			}
		}
		if foundI < 0 {
			results = append(results, cur)
			continue
		}
		stats.NumDecompositions++

		nCtx := make(SDPList, 0, len(normal)+len(comp)-2)
		nCtx = append(nCtx, normal...)
		for i, dt := range comp {
			if i != foundI && i != foundJ {
				nCtx = append(nCtx, dt)
			}
		}

		bMinusK := litDiff(comp[foundI].Term, common)
		cMinusK := litDiff(comp[foundJ].Term, common)

		child1 := cloneSDPList(nCtx)
		child1 = append(child1, DisjointTerm{Term: common, Complementary: true})

		child2 := cloneSDPList(nCtx)
		child2 = append(child2, DisjointTerm{Term: common, Complementary: false})
		if len(bMinusK) > 0 {
			child2 = append(child2, DisjointTerm{Term: bMinusK, Complementary: true})
		}
		if len(cMinusK) > 0 {
			child2 = append(child2, DisjointTerm{Term: cMinusK, Complementary: true})
		}

		child1 = Absorb(Eliminate(child1))
		child2 = Absorb(Eliminate(child2))

		queue = append(queue, child1, child2)
	}

	return results, stats
}

// SortPaths orders a TermList for the SDP driver: literals inside each Term
// ascending by value; Terms stable-sorted by (size, lexicographic content);
// within each size class, Terms are re-ordered by increasing maximum
// intersection size with the already-placed prefix, minimizing the number
// of RC literals generated downstream. Ties keep original relative order.
func SortPaths(pathSets TermList) TermList {
	if len(pathSets) == 0 {
		return TermList{}
	}

	withinSorted := make(TermList, len(pathSets))
	for i, t := range pathSets {
		withinSorted[i] = sortAscending(t)
	}
	sort.SliceStable(withinSorted, func(i, j int) bool {
		if len(withinSorted[i]) != len(withinSorted[j]) {
			return len(withinSorted[i]) < len(withinSorted[j])
		}
		return lexLess(withinSorted[i], withinSorted[j])
	})

	result := make(TermList, 0, len(withinSorted))
	i := 0
	for i < len(withinSorted) {
		j := i
		for j < len(withinSorted) && len(withinSorted[j]) == len(withinSorted[i]) {
			j++
		}
		group := withinSorted[i:j]

		if i == 0 {
			result = append(result, group...)
		} else {
			counts := make([]int, len(group))
			for k, t := range group {
				max := 0
				for _, prec := range result {
					if c := countCommon(t, prec); c > max {
						max = c
					}
				}
				counts[k] = max
			}
			idx := make([]int, len(group))
			for k := range idx {
				idx[k] = k
			}
			sort.SliceStable(idx, func(a, b int) bool { return counts[idx[a]] < counts[idx[b]] })
			for _, k := range idx {
				result = append(result, group[k])
			}
		}
		i = j
	}
	return result
}

// ToSDP is the SDP driver. It sorts pathSets with SortPaths, then builds an
// SDPForest one sorted path at a time: each new path contributes a
// non-complementary term plus, for every earlier path with literals absent
// from the current one, a complementary RC term. The result is absorbed and
// decomposed if its complementary terms still share literals.
func ToSDP(pathSets TermList) SDPForest {
	sorted := SortPaths(pathSets)
	if len(sorted) == 0 {
		return SDPForest{}
	}

	forest := SDPForest{SDPList{{Term: cloneTerm(sorted[0]), Complementary: false}}}
	for i := 1; i < len(sorted); i++ {
		result := buildSDPList(sorted, i)
		if HasCommonElement(result) {
			forest = append(forest, Decompose(result)...)
		} else {
			forest = append(forest, result)
		}
	}
	return forest
}

// ToSDPDebug behaves like ToSDP but also returns DecomposeStats aggregated
// over every Decompose call the driver made: NumDecompositions sums across
// calls, MaxQueueWidth takes the largest width seen by any single call. It
// is single-threaded and must not be called from inside a parallel region.
func ToSDPDebug(pathSets TermList) (SDPForest, DecomposeStats) {
	sorted := SortPaths(pathSets)
	if len(sorted) == 0 {
		return SDPForest{}, DecomposeStats{}
	}

	var total DecomposeStats
	forest := SDPForest{SDPList{{Term: cloneTerm(sorted[0]), Complementary: false}}}
	for i := 1; i < len(sorted); i++ {
		result := buildSDPList(sorted, i)
		if HasCommonElement(result) {
			decomposed, stats := DecomposeWithStats(result)
			forest = append(forest, decomposed...)
			total.NumDecompositions += stats.NumDecompositions
			if stats.MaxQueueWidth > total.MaxQueueWidth {
				total.MaxQueueWidth = stats.MaxQueueWidth
			}
		} else {
			forest = append(forest, result)
		}
	}
	return forest, total
}

func buildSDPList(sorted TermList, i int) SDPList {
	result := make(SDPList, 1, i+1)
	result[0] = DisjointTerm{Term: cloneTerm(sorted[i]), Complementary: false}
	for j := 0; j < i; j++ {
		rc := litDiff(sorted[j], sorted[i])
		if len(rc) > 0 {
			result = append(result, DisjointTerm{Term: rc, Complementary: true})
		}
	}
	return Absorb(result)
}

// ToSDPParallel behaves like ToSDP but, when len(pathSets) is at least
// threshold, computes the per-path contributions concurrently across a
// worker pool sized to workers (or the host core count, when workers is
// zero): each iteration only consumes the sorted prefix, which is frozen
// before the parallel region starts, so each worker can write to its own
// forest slot without locking. It must not be called while another
// parallel region is already active.
func ToSDPParallel(pathSets TermList, threshold, workers int) (SDPForest, error) {
	if len(pathSets) < threshold {
		return ToSDP(pathSets), nil
	}
	if !enterParallelRegion() {
		return nil, ErrNestedParallelism
	}
	defer exitParallelRegion()

	sorted := SortPaths(pathSets)
	if len(sorted) == 0 {
		return SDPForest{}, nil
	}

	threadResults := make([]SDPForest, len(sorted))
	threadResults[0] = SDPForest{SDPList{{Term: cloneTerm(sorted[0]), Complementary: false}}}

	g := new(errgroup.Group)
	g.SetLimit(workerLimit(workers))
	for i := 1; i < len(sorted); i++ {
		i := i
		g.Go(func() error {
			result := buildSDPList(sorted, i)
			if HasCommonElement(result) {
				threadResults[i] = Decompose(result)
			} else {
				threadResults[i] = SDPForest{result}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var forest SDPForest
	for _, tr := range threadResults {
		forest = append(forest, tr...)
	}
	return forest, nil
}

// SDPToAvail reads the availability off an SDPForest: the sum, over every
// SDPList, of the product of its DisjointTerms' contributions. Distinct
// SDPLists are mutually exclusive by construction, so the sum is exact.
func SDPToAvail(pm *ProbabilityMap, forest SDPForest) (float64, error) {
	avail := 0.0
	for _, list := range forest {
		setAvail := 1.0
		for _, dt := range list {
			p, err := pm.TermProbability(dt.Term)
			if err != nil {
				return 0, err
			}
			if dt.Complementary {
				setAvail *= 1 - p
			} else {
				setAvail *= p
			}
		}
		avail += setAvail
	}
	return avail, nil
}

// EvalAvailSDP computes the (src, dst) availability from a collection of
// minimal path sets via the SDP engine. src and dst are accepted for
// symmetry with EvalAvailMCS; the SDP driver needs only the path sets.
func EvalAvailSDP(src, dst NodeID, pm *ProbabilityMap, pathSets TermList) (float64, error) {
	forest := ToSDP(pathSets)
	return SDPToAvail(pm, forest)
}

// EvalAvailSDPParallel behaves like EvalAvailSDP but uses ToSDPParallel
// with the given threshold and worker pool size (zero meaning the host
// core count).
func EvalAvailSDPParallel(src, dst NodeID, pm *ProbabilityMap, pathSets TermList, threshold, workers int) (float64, error) {
	forest, err := ToSDPParallel(pathSets, threshold, workers)
	if err != nil {
		return 0, err
	}
	return SDPToAvail(pm, forest)
}

// EvalAvailTopoSDP evaluates EvalAvailSDP for every pair in pairs, in order.
func EvalAvailTopoSDP(pairs []Pair, pm *ProbabilityMap, pathSetsList []TermList) ([]AvailTriple, error) {
	return evalAvailTopo(pairs, pm, pathSetsList, EvalAvailSDP)
}

// EvalAvailTopoSDPParallel evaluates EvalAvailTopoSDP with a worker pool
// sized to workers (or the host core count, when workers is zero), fanning
// out over pairs. Each pair is solved with the sequential SDP driver
// (EvalAvailSDP), never ToSDPParallel, since the topology and intra-SDP
// parallel regions must not be simultaneously active.
func EvalAvailTopoSDPParallel(pairs []Pair, pm *ProbabilityMap, pathSetsList []TermList, workers int) ([]AvailTriple, error) {
	return evalAvailTopoParallel(pairs, pm, pathSetsList, EvalAvailSDP, workers)
}

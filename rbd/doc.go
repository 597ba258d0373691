/*
Package rbd evaluates the two-terminal availability of a reliability block
diagram: the probability that a source node s reaches a destination node d
given per-component independent up-probabilities.

Three algorithms are offered, each converting a combinatorial description of
the (s,d) connection into a form whose terms are mutually exclusive so that
their probabilities can be added directly:

 1. MCS: from a collection of minimal cut sets, compute the unavailability
    and derive the availability.
 2. PathSet: from a collection of minimal path sets, compute the
    availability directly.
 3. SDP: from path sets, produce a true sum of disjoint products using the
    Abraham/Singh/Xing family of transformations.

Describing a problem

A term is an ordered sequence of signed node identifiers (a Term); a
positive identifier means "component is up", a negative identifier means
"component is down". A TermList is an ordered sequence of Terms representing
a disjunction of conjunctions - a set of path sets or cut sets.

	cutSets := rbd.TermList{
		{1},
		{3},
		{2},
	}
	pm := rbd.NewProbabilityMap(map[int]float64{1: 0.9, 2: 0.9, 3: 0.9})
	avail, err := rbd.EvalAvailMCS(1, 3, pm, cutSets)

Solving a problem

Each algorithm exposes a single-pair entry point (EvalAvailMCS,
EvalAvailPathSet, EvalAvailSDP) and a topology entry point
(EvalAvailTopoMCS, ...) that maps the algorithm over many (s,d) pairs,
serially or with bounded worker-pool parallelism.

This package holds no global mutable state; every entry point is a pure
function of its arguments other than one package-level counter guarding
against nesting the topology and intra-SDP parallel regions.
*/
package rbd

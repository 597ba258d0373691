package rbd

import "fmt"

// ProbabilityMap gives O(1) lookup of a component's up-probability for a
// positive NodeID, or its down-probability for a negated one. It is built
// once per analysis from a (id -> p) mapping, where id >= 1, and is treated
// as read-only afterwards - safe to share across goroutines in a parallel
// region.
type ProbabilityMap struct {
	pos []float64 // pos[i] = P(i), indexed by id, 1-based; index 0 unused.
	neg []float64 // neg[i] = 1 - P(i)
}

// NewProbabilityMap builds a ProbabilityMap from a mapping of positive
// NodeID to up-probability. Every id that will appear in any Term passed to
// this package must be present in ps.
func NewProbabilityMap(ps map[int]float64) *ProbabilityMap {
	maxID := 0
	for id := range ps {
		if id > maxID {
			maxID = id
		}
	}
	pm := &ProbabilityMap{
		pos: make([]float64, maxID+1),
		neg: make([]float64, maxID+1),
	}
	for id, p := range ps {
		pm.pos[id] = p
		pm.neg[id] = 1 - p
	}
	return pm
}

// Lookup returns P(|lit|) if lit > 0, or 1-P(|lit|) if lit < 0.
// lit == 0 is a programming error and is reported as ErrZeroLiteral rather
// than panicking, so that ill-formed input never crashes the caller.
func (pm *ProbabilityMap) Lookup(lit NodeID) (float64, error) {
	if lit == 0 {
		return 0, fmt.Errorf("rbd: probability lookup of literal 0: %w", ErrZeroLiteral)
	}
	idx := int(lit)
	if idx < 0 {
		idx = -idx
	}
	if idx >= len(pm.pos) {
		return 0, fmt.Errorf("rbd: id %d: %w", idx, ErrOutOfRange)
	}
	if lit > 0 {
		return pm.pos[idx], nil
	}
	return pm.neg[idx], nil
}

// TermProbability returns the product of Lookup over every literal of t.
func (pm *ProbabilityMap) TermProbability(t Term) (float64, error) {
	p := 1.0
	for _, lit := range t {
		v, err := pm.Lookup(lit)
		if err != nil {
			return 0, err
		}
		p *= v
	}
	return p, nil
}

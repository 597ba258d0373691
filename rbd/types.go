package rbd

// Describes the basic types shared by every algorithm in this package.

// NodeID is a nonzero integer identifying a component's state literal.
// A positive value encodes "component is up"; a negative value encodes
// "component is down". Zero is reserved and must never appear in a Term.
type NodeID int32

// Term is an ordered sequence of NodeIDs representing a conjunction.
// Order is insertion order; it is irrelevant to the probability a Term
// denotes but is significant to the SDP sort heuristic, which imposes
// ascending-by-value order before use.
type Term []NodeID

// TermList is an ordered sequence of Terms representing a disjunction of
// conjunctions: a set of path sets or cut sets. Order matters because each
// pipeline selects the front Term as its pivot.
type TermList []Term

// Pair is a source/destination node pair to evaluate availability for.
type Pair struct {
	Src, Dst NodeID
}

// AvailTriple is the result of evaluating one (Src, Dst) pair.
type AvailTriple struct {
	Src          NodeID
	Dst          NodeID
	Availability float64
}

func cloneTerm(t Term) Term {
	out := make(Term, len(t))
	copy(out, t)
	return out
}

func cloneTermList(tl TermList) TermList {
	out := make(TermList, len(tl))
	for i, t := range tl {
		out[i] = cloneTerm(t)
	}
	return out
}

// containsLit reports whether lit appears verbatim (same sign) in t.
func containsLit(t Term, lit NodeID) bool {
	for _, x := range t {
		if x == lit {
			return true
		}
	}
	return false
}

package rbd

// MakeDisjoint rewrites Term b to be mutually exclusive with the
// already-committed pivot a. The returned TermList's union equals b AND NOT
// a, and every returned Term is pairwise disjoint from a.
//
// Algorithm:
//
//  1. If any literal x in a has its negation -x in b, a and b are already
//     mutually exclusive: return {b} unchanged.
//  2. Compute RC = a \ b (literals of a absent from b, preserving a's
//     order).
//  3. If RC is empty, b is a subset of a and is absorbed: return the empty
//     list.
//  4. Otherwise produce len(RC) new terms. Starting from b, repeatedly
//     append literals from RC one at a time; each appended literal is
//     negated in the emitted term but kept positive thereafter.
func MakeDisjoint(a, b Term) TermList {
	rc := make(Term, 0, len(a))
	for _, x := range a {
		if containsLit(b, -x) {
			return TermList{cloneTerm(b)}
		}
		if !containsLit(b, x) {
			rc = append(rc, x)
		}
	}
	if len(rc) == 0 {
		return TermList{}
	}

	out := make(TermList, 0, len(rc))
	cur := cloneTerm(b)
	for _, r := range rc {
		next := make(Term, len(cur)+1)
		copy(next, cur)
		next[len(cur)] = -r
		out = append(out, next)
		cur = append(cur, r)
	}
	return out
}

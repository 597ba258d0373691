package rbd

import "testing"

func termListsEqual(a, b TermList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestMakeDisjointAlreadyDisjoint(t *testing.T) {
	// Scenario 6: A={1,2}, B={-1,3} are already disjoint.
	a := Term{1, 2}
	b := Term{-1, 3}
	got := MakeDisjoint(a, b)
	want := TermList{{-1, 3}}
	if !termListsEqual(got, want) {
		t.Fatalf("MakeDisjoint(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestMakeDisjointSubsetAbsorbed(t *testing.T) {
	a := Term{1, 2}
	b := Term{1, 2, 3}
	got := MakeDisjoint(a, b)
	if len(got) != 0 {
		t.Fatalf("MakeDisjoint(%v, %v) = %v, want empty", a, b, got)
	}
}

func TestMakeDisjointWorkedExample(t *testing.T) {
	// Scenario 5: A={1,2,3,4,5}, B={2,4}.
	a := Term{1, 2, 3, 4, 5}
	b := Term{2, 4}
	got := MakeDisjoint(a, b)
	want := TermList{
		{2, 4, -1},
		{2, 4, 1, -3},
		{2, 4, 1, 3, -5},
	}
	if !termListsEqual(got, want) {
		t.Fatalf("MakeDisjoint(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestMakeDisjointDoesNotMutateInputs(t *testing.T) {
	a := Term{1, 2}
	b := Term{3, 4}
	aCopy := cloneTerm(a)
	bCopy := cloneTerm(b)
	MakeDisjoint(a, b)
	if !termListsEqual(TermList{a}, TermList{aCopy}) || !termListsEqual(TermList{b}, TermList{bCopy}) {
		t.Fatalf("MakeDisjoint mutated its inputs")
	}
}

func TestMakeDisjointUnionPreserved(t *testing.T) {
	// b shares no literal with a, so RC is all of a: one term comes back per
	// RC literal, and every returned term still contains all of b.
	a := Term{1, 2, 3}
	b := Term{4, 5}
	out := MakeDisjoint(a, b)
	if len(out) != len(a) {
		t.Fatalf("len(MakeDisjoint(%v, %v)) = %d, want %d", a, b, len(out), len(a))
	}
	for _, term := range out {
		if !isSubsetLits(b, term) {
			t.Fatalf("term %v does not contain all of b %v", term, b)
		}
	}
}

package rbd

import "testing"

func sdpListsEqual(a, b SDPList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Complementary != b[i].Complementary {
			return false
		}
		if !termListsEqual(TermList{a[i].Term}, TermList{b[i].Term}) {
			return false
		}
	}
	return true
}

func TestEliminateScenario7(t *testing.T) {
	in := SDPList{
		{Term: Term{2, 3, 1, 4, 6}, Complementary: false},
		{Term: Term{3, 4, 5}, Complementary: true},
	}
	got := Eliminate(in)
	want := SDPList{
		{Term: Term{2, 3, 1, 4, 6}, Complementary: false},
		{Term: Term{5}, Complementary: true},
	}
	if !sdpListsEqual(got, want) {
		t.Fatalf("Eliminate(%v) = %v, want %v", in, got, want)
	}
}

func TestEliminateIdempotent(t *testing.T) {
	in := SDPList{
		{Term: Term{2, 3, 1, 4, 6}, Complementary: false},
		{Term: Term{3, 4, 5}, Complementary: true},
	}
	once := Eliminate(in)
	twice := Eliminate(once)
	if !sdpListsEqual(once, twice) {
		t.Fatalf("Eliminate is not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestAbsorbIdempotent(t *testing.T) {
	in := SDPList{
		{Term: Term{1, 2}, Complementary: false},
		{Term: Term{1, 2, 3}, Complementary: false},
		{Term: Term{4, 5}, Complementary: true},
	}
	once := Absorb(in)
	twice := Absorb(once)
	if !sdpListsEqual(once, twice) {
		t.Fatalf("Absorb is not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestAbsorbDropsSuperset(t *testing.T) {
	in := SDPList{
		{Term: Term{1, 2}, Complementary: false},
		{Term: Term{1, 2, 3}, Complementary: false},
	}
	got := Absorb(in)
	if len(got) != 1 || len(got[0].Term) != 2 {
		t.Fatalf("Absorb(%v) = %v, want only the {1,2} term to survive", in, got)
	}
}

func TestDecomposeScenario8(t *testing.T) {
	in := SDPList{
		{Term: Term{2, 7}, Complementary: false},
		{Term: Term{3, 4, 5}, Complementary: true},
		{Term: Term{1, 3, 7}, Complementary: true},
	}
	forest := Decompose(in)
	if len(forest) != 2 {
		t.Fatalf("Decompose(%v) produced %d SDPLists, want 2", in, len(forest))
	}
	for _, list := range forest {
		if HasCommonElement(list) {
			t.Fatalf("Decompose result %v still has a shared literal between complementary terms", list)
		}
	}

	want1 := SDPList{
		{Term: Term{2, 7}, Complementary: false},
		{Term: Term{3}, Complementary: true},
	}
	// The second child's literal 7 is eliminated because it already appears
	// in the non-complementary {2,7} term of the same list - elimination
	// runs against the full non-complementary context, per invariant 4.
	want2 := SDPList{
		{Term: Term{2, 7}, Complementary: false},
		{Term: Term{3}, Complementary: false},
		{Term: Term{4, 5}, Complementary: true},
		{Term: Term{1}, Complementary: true},
	}
	if !(sdpListsEqual(forest[0], want1) || sdpListsEqual(forest[0], want2)) {
		t.Fatalf("Decompose first list = %v, want %v or %v", forest[0], want1, want2)
	}
	if !(sdpListsEqual(forest[1], want1) || sdpListsEqual(forest[1], want2)) {
		t.Fatalf("Decompose second list = %v, want %v or %v", forest[1], want1, want2)
	}
}

func TestHasCommonElement(t *testing.T) {
	yes := SDPList{
		{Term: Term{3, 4, 5}, Complementary: true},
		{Term: Term{1, 3, 7}, Complementary: true},
	}
	if !HasCommonElement(yes) {
		t.Fatalf("HasCommonElement(%v) = false, want true", yes)
	}
	no := SDPList{
		{Term: Term{4, 5}, Complementary: true},
		{Term: Term{1, 7}, Complementary: true},
	}
	if HasCommonElement(no) {
		t.Fatalf("HasCommonElement(%v) = true, want false", no)
	}
}

func TestEvalAvailSDPScenario4(t *testing.T) {
	// From the Singh 2002 example, with uniform component probability.
	pathSets := TermList{
		{2, 7}, {1, 4, 6}, {1, 3, 7}, {2, 5, 6},
		{1, 3, 5, 6}, {1, 4, 5, 7}, {2, 3, 4, 6},
	}
	ps := map[int]float64{}
	for i := 1; i <= 7; i++ {
		ps[i] = 0.9
	}
	pm := NewProbabilityMap(ps)

	sdpAvail, err := EvalAvailSDP(1, 4, pm, pathSets)
	if err != nil {
		t.Fatalf("EvalAvailSDP error: %v", err)
	}
	pathAvail, err := EvalAvailPathSet(1, 4, pm, pathSets)
	if err != nil {
		t.Fatalf("EvalAvailPathSet error: %v", err)
	}
	if !almostEqual(sdpAvail, pathAvail, 1e-9) {
		t.Fatalf("SDP=%v PathSet=%v disagree on Singh 2002 example", sdpAvail, pathAvail)
	}
}

func TestToSDPParallelMatchesSerialAboveThreshold(t *testing.T) {
	pathSets := make(TermList, 0, 250)
	for i := 0; i < 250; i++ {
		pathSets = append(pathSets, Term{NodeID(i + 1), NodeID(i + 2)})
	}
	ps := map[int]float64{}
	for i := 1; i <= 252; i++ {
		ps[i] = 0.9
	}
	pm := NewProbabilityMap(ps)

	serialForest := ToSDP(pathSets)
	serialAvail, err := SDPToAvail(pm, serialForest)
	if err != nil {
		t.Fatalf("SDPToAvail serial error: %v", err)
	}

	parallelForest, err := ToSDPParallel(pathSets, DefaultSDPParallelThreshold, 0)
	if err != nil {
		t.Fatalf("ToSDPParallel error: %v", err)
	}
	parallelAvail, err := SDPToAvail(pm, parallelForest)
	if err != nil {
		t.Fatalf("SDPToAvail parallel error: %v", err)
	}

	if !almostEqual(serialAvail, parallelAvail, 1e-12) {
		t.Fatalf("serial=%v parallel=%v disagree", serialAvail, parallelAvail)
	}
}

func TestToSDPParallelBelowThresholdFallsBackToSerial(t *testing.T) {
	pathSets := TermList{{1, 2}, {1, 3, 4}}
	got, err := ToSDPParallel(pathSets, DefaultSDPParallelThreshold, 0)
	if err != nil {
		t.Fatalf("ToSDPParallel error: %v", err)
	}
	want := ToSDP(pathSets)
	if len(got) != len(want) {
		t.Fatalf("ToSDPParallel below threshold = %v, want %v", got, want)
	}
}

func TestSortPathsOrdersBySizeThenContent(t *testing.T) {
	in := TermList{{1, 2, 3}, {2}, {1}, {1, 2}}
	got := SortPaths(in)
	for i := 1; i < len(got); i++ {
		if len(got[i-1]) > len(got[i]) {
			t.Fatalf("SortPaths(%v) = %v, not grouped ascending by size", in, got)
		}
	}
}

func TestDecomposeWithStatsCountsScenario8(t *testing.T) {
	in := SDPList{
		{Term: Term{2, 7}, Complementary: false},
		{Term: Term{3, 4, 5}, Complementary: true},
		{Term: Term{1, 3, 7}, Complementary: true},
	}
	forest, stats := DecomposeWithStats(in)
	if stats.NumDecompositions != 1 {
		t.Fatalf("DecomposeWithStats NumDecompositions = %d, want 1", stats.NumDecompositions)
	}
	if stats.MaxQueueWidth < 1 {
		t.Fatalf("DecomposeWithStats MaxQueueWidth = %d, want at least 1", stats.MaxQueueWidth)
	}
	if len(forest) != 2 {
		t.Fatalf("DecomposeWithStats forest = %v, want 2 SDPLists", forest)
	}
}

func TestDecomposeWithStatsNoSplitNeeded(t *testing.T) {
	in := SDPList{
		{Term: Term{1, 2}, Complementary: false},
		{Term: Term{3}, Complementary: true},
	}
	forest, stats := DecomposeWithStats(in)
	if stats.NumDecompositions != 0 {
		t.Fatalf("DecomposeWithStats NumDecompositions = %d, want 0 when no terms share a literal", stats.NumDecompositions)
	}
	if len(forest) != 1 {
		t.Fatalf("DecomposeWithStats forest = %v, want the single unchanged list", forest)
	}
}

func TestToSDPDebugMatchesToSDP(t *testing.T) {
	pathSets := TermList{
		{2, 7}, {1, 4, 6}, {1, 3, 7}, {2, 5, 6},
		{1, 3, 5, 6}, {1, 4, 5, 7}, {2, 3, 4, 6},
	}
	want := ToSDP(pathSets)
	got, stats := ToSDPDebug(pathSets)
	if len(got) != len(want) {
		t.Fatalf("ToSDPDebug forest length = %d, want %d", len(got), len(want))
	}
	// Once sorted and absorbed, no SDPList of the Singh 2002 example has two
	// complementary terms sharing a literal, so nothing is decomposed.
	if stats.NumDecompositions != 0 {
		t.Fatalf("ToSDPDebug stats = %+v, want no decomposition on the Singh 2002 example", stats)
	}
}

func TestToSDPDebugEmptyInput(t *testing.T) {
	forest, stats := ToSDPDebug(TermList{})
	if len(forest) != 0 {
		t.Fatalf("ToSDPDebug(empty) forest = %v, want empty", forest)
	}
	if stats != (DecomposeStats{}) {
		t.Fatalf("ToSDPDebug(empty) stats = %+v, want zero value", stats)
	}
}

func TestSDPForestString(t *testing.T) {
	forest := SDPForest{
		{{Term: Term{1, 2}, Complementary: false}, {Term: Term{3}, Complementary: true}},
	}
	got := forest.String()
	want := "[[{1 2} -{3}]]"
	if got != want {
		t.Fatalf("SDPForest.String() = %q, want %q", got, want)
	}
}

package ioformat

import (
	"strings"
	"testing"
)

func TestReadProbabilityMap(t *testing.T) {
	pm, err := ReadProbabilityMap(strings.NewReader("1 0.9\n2 0.8\n\n3 1.0\n"))
	if err != nil {
		t.Fatalf("ReadProbabilityMap error: %v", err)
	}
	p, err := pm.Lookup(1)
	if err != nil || p != 0.9 {
		t.Fatalf("Lookup(1) = (%v, %v), want (0.9, nil)", p, err)
	}
}

func TestReadProbabilityMapRejectsMalformedLine(t *testing.T) {
	_, err := ReadProbabilityMap(strings.NewReader("1 0.9 extra\n"))
	if err == nil {
		t.Fatal("ReadProbabilityMap should reject a malformed line")
	}
}

func TestReadPairs(t *testing.T) {
	pairs, err := ReadPairs(strings.NewReader("1 2\n1 3\n"))
	if err != nil {
		t.Fatalf("ReadPairs error: %v", err)
	}
	if len(pairs) != 2 || pairs[0].Src != 1 || pairs[0].Dst != 2 || pairs[1].Dst != 3 {
		t.Fatalf("ReadPairs = %v, unexpected", pairs)
	}
}

func TestReadTermListSections(t *testing.T) {
	in := "1 2\n1 3 2\n\n4 5\n"
	sections, err := ReadTermListSections(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTermListSections error: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("ReadTermListSections produced %d sections, want 2", len(sections))
	}
	if len(sections[0]) != 2 || len(sections[1]) != 1 {
		t.Fatalf("ReadTermListSections = %v, unexpected shape", sections)
	}
}

package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shakthij98/PyRBD3/rbd"
)

// ReadProbabilityMap reads "id probability" pairs, one per line, and builds
// an rbd.ProbabilityMap from them. Blank lines are skipped.
func ReadProbabilityMap(r io.Reader) (*rbd.ProbabilityMap, error) {
	scanner := bufio.NewScanner(r)
	ps := map[int]float64{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("ioformat: line %d: expected \"id probability\", got %q: %w", lineNo, scanner.Text(), ErrIO)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ioformat: line %d: %q is not an integer id: %w", lineNo, fields[0], ErrIO)
		}
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ioformat: line %d: %q is not a probability: %w", lineNo, fields[1], ErrIO)
		}
		ps[id] = p
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading probability map: %w", ErrIO)
	}
	return rbd.NewProbabilityMap(ps), nil
}

// ReadPairs reads "src dst" pairs, one per line, for the topology evaluator.
func ReadPairs(r io.Reader) ([]rbd.Pair, error) {
	scanner := bufio.NewScanner(r)
	var pairs []rbd.Pair
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("ioformat: line %d: expected \"src dst\", got %q: %w", lineNo, scanner.Text(), ErrIO)
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ioformat: line %d: %q is not an integer: %w", lineNo, fields[0], ErrIO)
		}
		dst, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("ioformat: line %d: %q is not an integer: %w", lineNo, fields[1], ErrIO)
		}
		pairs = append(pairs, rbd.Pair{Src: rbd.NodeID(src), Dst: rbd.NodeID(dst)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading pairs: %w", ErrIO)
	}
	return pairs, nil
}

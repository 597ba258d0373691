package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shakthij98/PyRBD3/rbd"
)

// WriteSDPForest writes forest to w in the "SDPSet i (size: k): ..." format:
// one line per SDPList, its index, its DisjointTerm count, then every
// DisjointTerm rendered as "-{1 2}" (complementary) or "{1 2}" otherwise.
func WriteSDPForest(w io.Writer, forest rbd.SDPForest) error {
	bw := bufio.NewWriter(w)
	for i, list := range forest {
		if _, err := fmt.Fprintf(bw, "SDPSet %d (size: %d): ", i, len(list)); err != nil {
			return fmt.Errorf("ioformat: writing SDP forest: %w", ErrIO)
		}
		parts := make([]string, len(list))
		for j, dt := range list {
			parts[j] = dt.String()
		}
		if _, err := bw.WriteString(strings.Join(parts, " ") + "\n"); err != nil {
			return fmt.Errorf("ioformat: writing SDP forest: %w", ErrIO)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ioformat: writing SDP forest: %w", ErrIO)
	}
	return nil
}

// ReadSDPForest parses the format written by WriteSDPForest back into an
// rbd.SDPForest. It is tolerant of the trailing space WriteSDPForest emits
// before an empty term list.
func ReadSDPForest(r io.Reader) (rbd.SDPForest, error) {
	scanner := bufio.NewScanner(r)
	var forest rbd.SDPForest
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		idx := strings.Index(line, "):")
		if !strings.HasPrefix(line, "SDPSet ") || idx < 0 {
			return nil, fmt.Errorf("ioformat: line %d: malformed SDPSet header: %w", lineNo, ErrIO)
		}
		body := line[idx+len("):"):]
		list, err := parseSDPList(body)
		if err != nil {
			return nil, fmt.Errorf("ioformat: line %d: %w", lineNo, err)
		}
		forest = append(forest, list)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading SDP forest: %w", ErrIO)
	}
	return forest, nil
}

// parseSDPList splits body into "-{1 2}"/"{1 2}" tokens by brace matching
// rather than whitespace - a DisjointTerm's own literals are
// space-separated, so splitting on whitespace first would break them apart.
func parseSDPList(body string) (rbd.SDPList, error) {
	var list rbd.SDPList
	rest := strings.TrimSpace(body)
	for rest != "" {
		complementary := strings.HasPrefix(rest, "-{")
		rest = strings.TrimPrefix(rest, "-")
		if !strings.HasPrefix(rest, "{") {
			return nil, fmt.Errorf("expected '{' in %q: %w", rest, ErrIO)
		}
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, fmt.Errorf("unterminated term in %q: %w", rest, ErrIO)
		}
		inner := rest[1:end]
		term := rbd.Term{}
		for _, f := range strings.Fields(inner) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer: %w", f, ErrIO)
			}
			term = append(term, rbd.NodeID(v))
		}
		list = append(list, rbd.DisjointTerm{Term: term, Complementary: complementary})
		rest = strings.TrimSpace(rest[end+1:])
	}
	return list, nil
}

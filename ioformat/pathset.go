package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shakthij98/PyRBD3/rbd"
)

// ReadTermList reads one Term per line from r: whitespace-separated signed
// integers. Blank lines are skipped. It is the plain-text counterpart to a
// path-set or cut-set file handed to the rbd pipelines.
func ReadTermList(r io.Reader) (rbd.TermList, error) {
	scanner := bufio.NewScanner(r)
	var out rbd.TermList
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		term := make(rbd.Term, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: %q is not an integer: %w", lineNo, f, ErrIO)
			}
			if v == 0 {
				return nil, fmt.Errorf("ioformat: line %d: literal 0 is not allowed: %w", lineNo, rbd.ErrZeroLiteral)
			}
			term[i] = rbd.NodeID(v)
		}
		out = append(out, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading term list: %w", ErrIO)
	}
	return out, nil
}

// ReadTermListSections reads one rbd.TermList per pair for the topology
// evaluator: consecutive non-blank lines form one TermList, and a blank
// line separates it from the next. Leading/trailing blank lines are
// ignored.
func ReadTermListSections(r io.Reader) ([]rbd.TermList, error) {
	scanner := bufio.NewScanner(r)
	var sections []rbd.TermList
	var cur rbd.TermList
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			if len(cur) > 0 {
				sections = append(sections, cur)
				cur = nil
			}
			continue
		}
		term := make(rbd.Term, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: %q is not an integer: %w", lineNo, f, ErrIO)
			}
			if v == 0 {
				return nil, fmt.Errorf("ioformat: line %d: literal 0 is not allowed: %w", lineNo, rbd.ErrZeroLiteral)
			}
			term[i] = rbd.NodeID(v)
		}
		cur = append(cur, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading term list sections: %w", ErrIO)
	}
	if len(cur) > 0 {
		sections = append(sections, cur)
	}
	return sections, nil
}

// WriteTermList writes tl to w, one Term per line, literals space-separated
// in their existing order.
func WriteTermList(w io.Writer, tl rbd.TermList) error {
	bw := bufio.NewWriter(w)
	for _, term := range tl {
		parts := make([]string, len(term))
		for i, lit := range term {
			parts[i] = strconv.Itoa(int(lit))
		}
		if _, err := bw.WriteString(strings.Join(parts, " ") + "\n"); err != nil {
			return fmt.Errorf("ioformat: writing term list: %w", ErrIO)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ioformat: writing term list: %w", ErrIO)
	}
	return nil
}

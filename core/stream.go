package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// NewFromReader builds a Graph from the plain serialized format: the
// vertex count V, then the edge count E, then 2×E integers forming E
// (v, w) pairs, all separated by arbitrary whitespace or newlines. There
// is no header, checksum, or versioning.
//
// Any truncation, non-integer token, negative count, or out-of-range
// endpoint fails the whole construction with ErrMalformedInput; no
// partial graph is ever returned.
// Complexity: O(V+E)
func NewFromReader(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	v, err := scanInt(sc, "vertex count")
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrMalformedInput, v)
	}

	e, err := scanInt(sc, "edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrMalformedInput, e)
	}

	g, err := New(v)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e; i++ {
		from, err := scanInt(sc, fmt.Sprintf("edge %d tail", i))
		if err != nil {
			return nil, err
		}
		to, err := scanInt(sc, fmt.Sprintf("edge %d head", i))
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%d, %d): endpoint out of range", ErrMalformedInput, i, from, to)
		}
	}

	return g, nil
}

// scanInt consumes one whitespace-delimited token and parses it as an
// integer; what names the token for error messages.
func scanInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, what, err)
		}

		return 0, fmt.Errorf("%w: stream ended before %s", ErrMalformedInput, what)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, what, sc.Text())
	}

	return n, nil
}

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	startToken = "S"
	endToken   = "E"
)

// Parse reads a grid in textual form from r: one row per line, cells
// separated by whitespace. A cell is a non-negative decimal weight, "S" for
// the start or "E" for the end. Blank lines are ignored.
//
// Token errors are reported as ErrBadToken with the 1-based line and column
// of the token; structural problems surface as the NewGrid errors.
func Parse(r io.Reader, opts Options) (*Grid, error) {
	var cells [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("%w %q at line %d, cell %d", ErrBadToken, tok, line, i+1)
			}
			row[i] = v
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	return NewGrid(cells, opts)
}

// ParseString is Parse over a string with DefaultOptions.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s), DefaultOptions())
}

// parseToken maps a single cell token to its table value.
func parseToken(tok string) (int, error) {
	switch tok {
	case startToken:
		return StartMarker, nil
	case endToken:
		return EndMarker, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative weight %d", v)
	}
	return v, nil
}

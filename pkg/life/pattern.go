package life

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ParseError reports a malformed line in a coordinate file.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads one "x,y" cell per line. Any malformed line aborts the parse and
// no grid is returned.
func Parse(r io.Reader) (*Grid, error) {
	g := New()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		c, err := parseCoord(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		g.Add(c)
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: line + 1, Err: err}
	}
	return g, nil
}

func parseCoord(text string) (Coord, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 2 {
		return Coord{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Coord{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Coord{}, fmt.Errorf("y: %w", err)
	}
	return Coord{X: x, Y: y}, nil
}

// Load parses the coordinate file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// LoadAll loads every path concurrently. The grids are returned in argument
// order; the first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths ...string) ([]*Grid, error) {
	grids := make([]*Grid, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := Load(path)
			if err != nil {
				return err
			}
			grids[i] = g
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return grids, nil
}

// Write emits g in the format read by Parse, one cell per line sorted by Y
// then X.
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for _, c := range g.Cells() {
		bw.WriteString(strconv.Itoa(c.X))
		bw.WriteByte(',')
		bw.WriteString(strconv.Itoa(c.Y))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

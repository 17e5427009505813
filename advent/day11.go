package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

func init() {
	register("11", day11)
}

const (
	flashThreshold = 9
	fixedSteps     = 100
	maxSyncSteps   = 10000
)

func day11(_ []string) error {
	return solveDay11(os.Stdin, os.Stdout)
}

func solveDay11(r io.Reader, w io.Writer) error {
	g, err := parseEnergyGrid(r)
	if err != nil {
		return err
	}
	flashes := g.clone().runFixed(fixedSteps)
	sync, err := g.clone().runUntilAllFlash(maxSyncSteps)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Part 1:\n\t%d\n", flashes)
	fmt.Fprintf(w, "Part 2:\n\t%d\n", sync)
	return nil
}

var (
	errEmptyGrid = errors.New("empty grid")
	errNoSync    = errors.New("grid never synchronized")
)

type cell struct {
	level   int
	flashed bool // only set in the middle of a step
}

// An energyGrid is a fixed-size rectangle of cells stored in row-major
// order.
type energyGrid struct {
	width  int
	height int
	cells  []cell
}

func parseEnergyGrid(r io.Reader) (*energyGrid, error) {
	g := new(energyGrid)
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		row := scanner.Text()
		if line == 1 {
			if len(row) == 0 {
				return nil, errEmptyGrid
			}
			g.width = len(row)
		}
		if len(row) != g.width {
			return nil, fmt.Errorf("line %d has length %d; want %d", line, len(row), g.width)
		}
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("unexpected %q at line %d, column %d", c, line, i+1)
			}
			g.cells = append(g.cells, cell{level: int(c - '0')})
		}
		g.height++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g.height == 0 {
		return nil, errEmptyGrid
	}
	return g, nil
}

func (g *energyGrid) index(x, y int) int { return x + y*g.width }

func (g *energyGrid) at(x, y int) (*cell, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil, false
	}
	return &g.cells[g.index(x, y)], true
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (g *energyGrid) neighbors(x, y int, fn func(x, y int, c *cell)) {
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if c, ok := g.at(nx, ny); ok {
			fn(nx, ny, c)
		}
	}
}

// step advances the grid by one step and reports how many cells flashed.
func (g *energyGrid) step() int {
	var stack []int
	charge := func(i int) {
		c := &g.cells[i]
		c.level++
		if c.level > flashThreshold && !c.flashed {
			c.flashed = true
			stack = append(stack, i)
		}
	}
	for i := range g.cells {
		charge(i)
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		g.neighbors(i%g.width, i/g.width, func(x, y int, _ *cell) {
			charge(g.index(x, y))
		})
	}

	var flashes int
	for i := range g.cells {
		c := &g.cells[i]
		if c.flashed {
			c.level = 0
			c.flashed = false
			flashes++
		}
	}
	return flashes
}

func (g *energyGrid) runFixed(n int) int {
	var total int
	for i := 0; i < n; i++ {
		total += g.step()
	}
	return total
}

// runUntilAllFlash steps the grid until every cell flashes during the same
// step and returns that step's 1-based index. It gives up after maxSteps.
func (g *energyGrid) runUntilAllFlash(maxSteps int) (int, error) {
	for i := 1; i <= maxSteps; i++ {
		g.step()
		if g.allZero() {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w after %s steps", errNoSync, humanize.Comma(int64(maxSteps)))
}

func (g *energyGrid) allZero() bool {
	for _, c := range g.cells {
		if c.level != 0 {
			return false
		}
	}
	return true
}

func (g *energyGrid) clone() *energyGrid {
	g1 := *g
	g1.cells = make([]cell, len(g.cells))
	copy(g1.cells, g.cells)
	return &g1
}

func (g *energyGrid) levels() []int {
	levels := make([]int, len(g.cells))
	for i, c := range g.cells {
		levels[i] = c.level
	}
	return levels
}

func (g *energyGrid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c, _ := g.at(x, y)
			if c.level > 9 {
				fmt.Fprintf(&b, "[%d]", c.level)
			} else {
				fmt.Fprintf(&b, "%d", c.level)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

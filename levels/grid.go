package levels

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
)

// Cell values are the editor's selection indices.
const (
	CellPlayer     = 0
	CellTerrain    = 2
	CellWater      = 3
	CellGold       = 4
	CellSilver     = 5
	CellDiamond    = 6
	CellSpikes     = 7
	CellTooth      = 8
	CellShellLeft  = 9
	CellShellRight = 10
	CellPalmFG     = 11 // through 14
	CellPalmBG     = 15 // through 18

	MinSelection = 2
	MaxSelection = 18
)

var (
	ErrOutOfBounds = errors.New("levels: cell out of bounds")
	ErrBadCell     = errors.New("levels: invalid cell value")
)

// Grid is a level as painted in the editor: a fixed-size tile grid holding
// one selection index per cell plus the player's start cell.
type Grid struct {
	Width  int
	Height int

	cells     map[image.Point]int
	player    image.Point
	hasPlayer bool
}

func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make(map[image.Point]int)}
}

func (g *Grid) Contains(c image.Point) bool {
	return g != nil && c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// Set paints value into cell c. CellPlayer moves the player start instead
// of occupying the cell.
func (g *Grid) Set(c image.Point, value int) error {
	if !g.Contains(c) {
		return fmt.Errorf("levels: set %v: %w", c, ErrOutOfBounds)
	}
	if value == CellPlayer {
		g.player = c
		g.hasPlayer = true
		return nil
	}
	if value < MinSelection || value > MaxSelection {
		return fmt.Errorf("levels: set %v to %d: %w", c, value, ErrBadCell)
	}
	g.cells[c] = value
	return nil
}

func (g *Grid) Clear(c image.Point) {
	if g == nil {
		return
	}
	delete(g.cells, c)
}

func (g *Grid) At(c image.Point) (int, bool) {
	if g == nil {
		return 0, false
	}
	v, ok := g.cells[c]
	return v, ok
}

func (g *Grid) Player() (image.Point, bool) {
	if g == nil {
		return image.Point{}, false
	}
	return g.player, g.hasPlayer
}

// Cells returns painted cells in row-major order.
func (g *Grid) Cells() []image.Point {
	if g == nil {
		return nil
	}
	out := make([]image.Point, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	out := NewGrid(g.Width, g.Height)
	for c, v := range g.cells {
		out.cells[c] = v
	}
	out.player, out.hasPlayer = g.player, g.hasPlayer
	return out
}

func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

var asciiCells = map[rune]int{
	'#': CellTerrain,
	'~': CellWater,
	'g': CellGold,
	's': CellSilver,
	'd': CellDiamond,
	'^': CellSpikes,
	't': CellTooth,
	'<': CellShellLeft,
	'>': CellShellRight,
	'1': CellPalmFG,
	'2': CellPalmFG + 1,
	'3': CellPalmFG + 2,
	'4': CellPalmFG + 3,
	'5': CellPalmBG,
	'6': CellPalmBG + 1,
	'7': CellPalmBG + 2,
	'8': CellPalmBG + 3,
}

// ParseASCII reads a grid from rows of characters: '.' or ' ' is empty,
// 'P' is the player and the rest map through asciiCells. Rows may differ
// in length; the grid is as wide as the longest.
func ParseASCII(rows []string) (*Grid, error) {
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		for x, ch := range []rune(row) {
			c := image.Pt(x, y)
			switch ch {
			case '.', ' ':
				continue
			case 'P':
				if _, ok := g.Player(); ok {
					return nil, fmt.Errorf("levels: second player at %v: %w", c, ErrBadCell)
				}
				_ = g.Set(c, CellPlayer)
			default:
				v, ok := asciiCells[ch]
				if !ok {
					return nil, fmt.Errorf("levels: unknown tile %q at %v: %w", ch, c, ErrBadCell)
				}
				_ = g.Set(c, v)
			}
		}
	}
	return g, nil
}

// String renders the grid back to the ASCII form ParseASCII reads.
func (g *Grid) String() string {
	if g == nil {
		return ""
	}
	glyphs := make(map[int]rune, len(asciiCells))
	for r, v := range asciiCells {
		glyphs[v] = r
	}
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := image.Pt(x, y)
			if p, ok := g.Player(); ok && p == c {
				b.WriteRune('P')
				continue
			}
			if v, ok := g.cells[c]; ok {
				b.WriteRune(glyphs[v])
				continue
			}
			b.WriteRune('.')
		}
		b.WriteRune('\n')
	}
	return b.String()
}

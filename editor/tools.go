package editor

import (
	"errors"
	"image"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/levels"
)

type Tool int

const (
	ToolBrush Tool = iota
	ToolErase
	ToolFill
	ToolPlayer
)

var toolNames = []string{"Brush", "Erase", "Fill", "Player"}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return "Unknown"
	}
	return toolNames[t]
}

// ToolNames lists tools in Tool order.
func ToolNames() []string {
	return append([]string(nil), toolNames...)
}

const defaultMaxUndo = 100

var ErrEmptyPaste = errors.New("editor: nothing to paste")

// BeginStroke snapshots the grid so the whole stroke undoes in one step.
func (c *Canvas) BeginStroke() {
	limit := c.MaxUndo
	if limit <= 0 {
		limit = defaultMaxUndo
	}
	if len(c.undo) >= limit {
		c.undo = c.undo[1:]
	}
	c.undo = append(c.undo, c.Grid.Clone())
}

// Undo restores the grid to before the last stroke.
func (c *Canvas) Undo() bool {
	if len(c.undo) == 0 {
		return false
	}
	idx := len(c.undo) - 1
	c.Grid = c.undo[idx]
	c.undo = c.undo[:idx]
	return true
}

func (c *Canvas) UndoDepth() int {
	return len(c.undo)
}

// Apply runs tool at the cell under mouse. Points off the grid are ignored.
func (c *Canvas) Apply(tool Tool, mouse cp.Vector) error {
	cell := c.CellAt(mouse)
	if !c.Grid.Contains(cell) {
		return nil
	}
	switch tool {
	case ToolBrush:
		return c.Paint(mouse)
	case ToolErase:
		c.Erase(mouse)
	case ToolFill:
		c.Fill(cell)
	case ToolPlayer:
		return c.PlacePlayer(mouse)
	}
	return nil
}

// Fill replaces the 4-connected region of cells sharing start's value
// (empty counts as a value) with the selection.
func (c *Canvas) Fill(start image.Point) {
	g := c.Grid
	if !g.Contains(start) {
		return
	}
	target, had := g.At(start)
	if had && target == c.Selection {
		return
	}
	same := func(p image.Point) bool {
		v, ok := g.At(p)
		return ok == had && (!ok || v == target)
	}

	stack := []image.Point{start}
	seen := map[image.Point]bool{start: true}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		_ = g.Set(p, c.Selection)
		for _, d := range []image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := p.Add(d)
			if seen[n] || !g.Contains(n) || !same(n) {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
}

// TogglePlay switches between editing and running the level.
func (c *Canvas) TogglePlay() bool {
	c.playing = !c.playing
	return c.playing
}

func (c *Canvas) Playing() bool {
	return c.playing
}

// CopyASCII renders the grid in the text form PasteASCII reads.
func (c *Canvas) CopyASCII() string {
	return c.Grid.String()
}

// PasteASCII replaces the grid with one parsed from text. The old grid is
// kept for Undo. A text that does not parse leaves the grid untouched.
func (c *Canvas) PasteASCII(text string) error {
	rows := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return ErrEmptyPaste
	}
	grid, err := levels.ParseASCII(rows)
	if err != nil {
		return err
	}
	c.BeginStroke()
	c.Grid = grid
	return nil
}
